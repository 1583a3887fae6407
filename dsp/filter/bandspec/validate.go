package bandspec

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/core"
)

// ErrDesign marks a request that cannot be turned into a filter: a bad
// sampling rate, a cutoff outside the representable band or a degenerate
// kernel.
var ErrDesign = errors.New("filter design error")

// Hz returns the cutoffs in Hz, undoing normalization if needed.
func (s FrequencySpec) Hz(sampleRate float64) []float64 {
	out := make([]float64, len(s.Cutoffs))
	for i, c := range s.Cutoffs {
		if s.Normalized {
			c *= sampleRate / 2
		}
		out[i] = c
	}
	return out
}

// Validate checks that s can be designed at sampleRate: the number of
// cutoffs matches the type, normalized cutoffs lie in (0, 1) and absolute
// cutoffs lie in (0, sampleRate/2). Errors wrap ErrDesign.
func (s FrequencySpec) Validate(sampleRate float64) error {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%w: sampling rate must be positive, got %g", ErrDesign, sampleRate)
	}

	if want := s.Type.NumCutoffs(); len(s.Cutoffs) != want {
		return fmt.Errorf("%w: %s needs %d cutoffs, got %d", ErrDesign, s.Type, want, len(s.Cutoffs))
	}

	for _, c := range s.Cutoffs {
		if s.Normalized {
			if !core.IsFinite(c) || c <= 0 || c >= 1 {
				return fmt.Errorf("%w: normalized cutoff %g outside (0, 1)", ErrDesign, c)
			}
			continue
		}

		if !core.IsFinite(c) || c <= 0 || c >= sampleRate/2 {
			return fmt.Errorf("%w: cutoff %g Hz outside (0, %g) for sampling rate %g Hz",
				ErrDesign, c, sampleRate/2, sampleRate)
		}
	}

	return nil
}
