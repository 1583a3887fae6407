package biquad

import "math/cmplx"

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
//
// For first-order sections the second pole is 0.
func (c *Coefficients) Poles() [2]complex128 {
	disc := complex(c.A1*c.A1-4*c.A2, 0)
	sq := cmplx.Sqrt(disc)
	return [2]complex128{
		(-complex(c.A1, 0) + sq) / 2,
		(-complex(c.A1, 0) - sq) / 2,
	}
}

// PoleRadius returns the largest pole magnitude of the section.
func (c *Coefficients) PoleRadius() float64 {
	p := c.Poles()
	return max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c *Coefficients) Stable() bool {
	return c.PoleRadius() < 1
}

// Stable reports whether every section of the cascade is stable.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}
	return true
}
