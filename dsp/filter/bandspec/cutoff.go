package bandspec

import "strconv"

// Cutoff is an optional cutoff frequency.
type Cutoff struct {
	hz  float64
	set bool
}

// None is the absent cutoff.
var None = Cutoff{}

// Hz returns a present cutoff at v. Hz(0) behaves like None during
// classification.
func Hz(v float64) Cutoff {
	return Cutoff{hz: v, set: true}
}

// Value returns the frequency and whether it was set.
func (c Cutoff) Value() (float64, bool) {
	return c.hz, c.set
}

// present reports whether the cutoff takes part in classification.
func (c Cutoff) present() bool {
	return c.set && c.hz != 0
}

func (c Cutoff) String() string {
	if !c.set {
		return "none"
	}
	return strconv.FormatFloat(c.hz, 'g', -1, 64)
}
