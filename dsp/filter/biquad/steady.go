package biquad

// PadLen returns the number of samples a forward-backward filter should
// extend the signal by at each edge:
//
//	3 * (2*sections + 1 - min(#sections with B2 == 0, #sections with A2 == 0))
//
// First-order sections therefore need less padding than full biquads.
func (c *Chain) PadLen() int {
	zerosB, zerosA := 0, 0
	for i := range c.sections {
		if c.sections[i].B2 == 0 {
			zerosB++
		}
		if c.sections[i].A2 == 0 {
			zerosA++
		}
	}

	return 3 * (2*len(c.sections) + 1 - min(zerosB, zerosA))
}

// Prime sets every section to the state it would hold after an infinitely
// long constant input x0, so filtering a signal that starts at x0 produces no
// start-up transient. The input of each section is x0 scaled by the chain gain
// and the DC gain of all preceding sections.
func (c *Chain) Prime(x0 float64) {
	x := x0 * c.gain
	for i := range c.sections {
		s := &c.sections[i]
		s.SetState(s.SteadyState(x))
		x *= s.DCGain()
	}
}
