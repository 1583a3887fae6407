package pass

import (
	"math"

	"github.com/cwbudde/algo-biosig/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	if _, ok := bilinearK(freq, sampleRate); !ok {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		sections = append(sections, LowpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	if _, ok := bilinearK(freq, sampleRate); !ok {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		sections = append(sections, HighpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderHP(freq, sampleRate))
	}
	return sections
}

// ButterworthBP designs a bandpass Butterworth cascade passing lo..hi Hz.
// The resulting filter has order 2*order and needs order sections.
func ButterworthBP(lo, hi float64, order int, sampleRate float64) []biquad.Coefficients {
	w0, bw, ok := bandEdges(lo, hi, order, sampleRate)
	if !ok {
		return nil
	}

	proto := butterworthPrototype(order)
	poles := make([]complex128, 0, 2*order)
	for _, p := range proto {
		r1, r2 := quadRoots(p*complex(bw, 0), w0*w0)
		poles = append(poles, r1, r2)
	}
	zeros := make([]complex128, order)

	gain := 1.0
	for range order {
		gain *= bw
	}

	return designZPK(zeros, poles, gain)
}

// ButterworthBS designs a bandstop Butterworth cascade rejecting lo..hi Hz.
// The resulting filter has order 2*order and needs order sections.
func ButterworthBS(lo, hi float64, order int, sampleRate float64) []biquad.Coefficients {
	w0, bw, ok := bandEdges(lo, hi, order, sampleRate)
	if !ok {
		return nil
	}

	proto := butterworthPrototype(order)
	poles := make([]complex128, 0, 2*order)
	zeros := make([]complex128, 0, 2*order)
	for _, p := range proto {
		r1, r2 := quadRoots(complex(bw, 0)/p, w0*w0)
		poles = append(poles, r1, r2)
		zeros = append(zeros, complex(0, w0), complex(0, -w0))
	}

	// The prototype has no zeros and the product of -p over its poles is 1.
	return designZPK(zeros, poles, 1)
}

// bandEdges returns the prewarped geometric center and bandwidth of lo..hi
// in the analog domain of the unit bilinear transform s = (z-1)/(z+1).
func bandEdges(lo, hi float64, order int, sampleRate float64) (float64, float64, bool) {
	if order <= 0 || lo >= hi {
		return 0, 0, false
	}

	w1, ok := bilinearK(lo, sampleRate)
	if !ok {
		return 0, 0, false
	}

	w2, ok := bilinearK(hi, sampleRate)
	if !ok {
		return 0, 0, false
	}

	return math.Sqrt(w1 * w2), w2 - w1, true
}
