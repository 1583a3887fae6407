package tf

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biosig/dsp/core"
)

var (
	ErrEmptyNumerator         = errors.New("tf: empty numerator")
	ErrEmptyDenominator       = errors.New("tf: empty denominator")
	ErrZeroLeadingDenominator = errors.New("tf: leading denominator coefficient is zero")
	ErrNonFinite              = errors.New("tf: non-finite coefficient")
)

// Filter implements H(z) = B(z)/A(z) in Direct Form II Transposed:
//
//	y[n]   = b[0]*x[n] + z[0]
//	z[i]   = b[i+1]*x[n] - a[i+1]*y[n] + z[i+1]
//
// b and a are padded to a common length and normalized so that a[0] = 1.
type Filter struct {
	b, a []float64
	z    []float64
}

// New creates a filter from numerator b and denominator a. The slices are
// copied.
func New(b, a []float64) (*Filter, error) {
	if len(b) == 0 {
		return nil, ErrEmptyNumerator
	}
	if len(a) == 0 {
		return nil, ErrEmptyDenominator
	}
	if ok, i := core.AllFinite(b...); !ok {
		return nil, fmt.Errorf("%w: b[%d] = %v", ErrNonFinite, i, b[i])
	}
	if ok, i := core.AllFinite(a...); !ok {
		return nil, fmt.Errorf("%w: a[%d] = %v", ErrNonFinite, i, a[i])
	}
	if a[0] == 0 {
		return nil, ErrZeroLeadingDenominator
	}

	n := max(len(a), len(b))
	f := &Filter{
		b: make([]float64, n),
		a: make([]float64, n),
		z: make([]float64, n-1),
	}

	vecmath.ScaleBlock(f.b[:len(b)], b, 1/a[0])
	vecmath.ScaleBlock(f.a[:len(a)], a, 1/a[0])

	return f, nil
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.b[0]*x + f.state(0)

	last := len(f.z) - 1
	for i := 0; i < last; i++ {
		f.z[i] = f.b[i+1]*x - f.a[i+1]*y + f.z[i+1]
	}
	if last >= 0 {
		f.z[last] = f.b[last+1]*x - f.a[last+1]*y
	}

	return y
}

func (f *Filter) state(i int) float64 {
	if i < len(f.z) {
		return f.z[i]
	}
	return 0
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	for i := range f.z {
		f.z[i] = 0
	}
}

// State returns a copy of the delay line.
func (f *Filter) State() []float64 {
	return core.Clone(f.z)
}

// Order returns the polynomial order (common length - 1).
func (f *Filter) Order() int {
	return len(f.z)
}

// Numerator returns a copy of the normalized numerator.
func (f *Filter) Numerator() []float64 { return core.Clone(f.b) }

// Denominator returns a copy of the normalized denominator.
func (f *Filter) Denominator() []float64 { return core.Clone(f.a) }

// DCGain returns B(1)/A(1).
func (f *Filter) DCGain() float64 {
	var sb, sa float64
	for i := range f.b {
		sb += f.b[i]
		sa += f.a[i]
	}
	return sb / sa
}

// PadLen returns the edge extension used by forward-backward filtering:
// three times the longer of the original numerator and denominator.
func (f *Filter) PadLen() int {
	return 3 * len(f.b)
}

// Prime sets the delay line to the steady state reached after an infinitely
// long constant input x0:
//
//	z[i] = sum_{j>i} (b[j] - a[j]*y) * x0,  y = DCGain()
func (f *Filter) Prime(x0 float64) {
	y := f.DCGain()

	var acc float64
	for i := len(f.z) - 1; i >= 0; i-- {
		acc += f.b[i+1] - f.a[i+1]*y
		f.z[i] = acc * x0
	}
}

// Response computes H(e^jw) at freqHz for the given sample rate.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var num, den complex128
	for k := range f.b {
		e := cmplx.Exp(complex(0, -w*float64(k)))
		num += complex(f.b[k], 0) * e
		den += complex(f.a[k], 0) * e
	}
	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
