package pass

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/filter/bandspec"
	"github.com/cwbudde/algo-biosig/dsp/filter/biquad"
)

// ErrStability marks synthesized coefficients that are non-finite or place a
// pole on or outside the unit circle.
var ErrStability = errors.New("filter stability error")

// Butterworth designs a Butterworth cascade of the given order for a
// classified frequency spec. Normalized specs are converted back to Hz.
//
// Invalid requests (order < 1, TypeNone, cutoffs outside the band or
// non-ascending band edges) return an error wrapping bandspec.ErrDesign.
// Bandstop specs produced by bandspec.Classify carry their edges in
// descending order and are rejected here rather than silently reordered.
// Coefficients that are not finite or not stable wrap ErrStability.
func Butterworth(order int, spec bandspec.FrequencySpec, sampleRate float64) ([]biquad.Coefficients, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: order must be >= 1, got %d", bandspec.ErrDesign, order)
	}

	if err := spec.Validate(sampleRate); err != nil {
		return nil, err
	}

	f := spec.Hz(sampleRate)

	var sections []biquad.Coefficients

	switch spec.Type {
	case bandspec.TypeLowpass:
		sections = ButterworthLP(f[0], order, sampleRate)
	case bandspec.TypeHighpass:
		sections = ButterworthHP(f[0], order, sampleRate)
	case bandspec.TypeBandpass, bandspec.TypeBandstop:
		if f[0] >= f[1] {
			return nil, fmt.Errorf("%w: %s edges must be ascending, got %v", bandspec.ErrDesign, spec.Type, f)
		}
		if spec.Type == bandspec.TypeBandpass {
			sections = ButterworthBP(f[0], f[1], order, sampleRate)
		} else {
			sections = ButterworthBS(f[0], f[1], order, sampleRate)
		}
	default:
		return nil, fmt.Errorf("%w: nothing to design for filter type %s", bandspec.ErrDesign, spec.Type)
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: %s order %d at %g Hz produced no sections", ErrStability, spec.Type, order, sampleRate)
	}

	for i, s := range sections {
		if !s.IsFinite() {
			return nil, fmt.Errorf("%w: section %d has non-finite coefficients %+v", ErrStability, i, s)
		}
		if !s.Stable() {
			return nil, fmt.Errorf("%w: section %d pole radius %g >= 1", ErrStability, i, s.PoleRadius())
		}
	}

	return sections, nil
}
