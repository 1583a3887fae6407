package bandspec

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/cwbudde/algo-biosig/dsp/core"
)

// FrequencySpec is a classified filter request. Cutoffs holds 0, 1 or 2
// values matching Type. When Normalized is set the cutoffs are fractions of
// the Nyquist frequency rather than Hz.
type FrequencySpec struct {
	Cutoffs    []float64
	Type       Type
	Normalized bool
}

func (s FrequencySpec) String() string {
	unit := "Hz"
	if s.Normalized {
		unit = "×Nyquist"
	}
	return fmt.Sprintf("%s %v %s", s.Type, s.Cutoffs, unit)
}

// ConfigurationWarning reports a sampling rate at or below twice the
// requested high cutoff. It is advisory and never stops processing.
type ConfigurationWarning struct {
	SampleRate float64
	Highcut    float64
}

func (w ConfigurationWarning) String() string {
	return fmt.Sprintf("sampling rate %g Hz below Nyquist for highcut %g Hz", w.SampleRate, w.Highcut)
}

type config struct {
	logger logr.Logger
}

// Option configures Classify.
type Option func(*config)

// WithLogger routes configuration warnings to l. The default discards them.
func WithLogger(l logr.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// NyquistWarning checks a high cutoff against the sampling rate. Only
// whole-number cutoffs are checked.
func NyquistWarning(high Cutoff, sampleRate float64) (ConfigurationWarning, bool) {
	h, ok := high.Value()
	if !ok || !core.IsInteger(h) {
		return ConfigurationWarning{}, false
	}
	if sampleRate > 2*h {
		return ConfigurationWarning{}, false
	}
	return ConfigurationWarning{SampleRate: sampleRate, Highcut: h}, true
}

// Classify maps a low/high cutoff pair to a filter type:
//
//	low, high both set: bandstop if low > high, else bandpass; cutoffs [low, high]
//	only low:           highpass [low]
//	only high:          lowpass [high]
//	neither:            none []
//
// The band edges keep the order given, they are never sorted. A zero cutoff
// is treated as absent. With normalize set, every cutoff is divided by
// sampleRate/2; the result is not range-checked.
func Classify(low, high Cutoff, sampleRate float64, normalize bool, opts ...Option) FrequencySpec {
	cfg := config{logger: logr.Discard()}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	if w, ok := NyquistWarning(high, sampleRate); ok {
		cfg.logger.Info("sampling rate below Nyquist", "sampleRate", w.SampleRate, "highcut", w.Highcut)
	}

	var spec FrequencySpec

	switch lo, hi := low.present(), high.present(); {
	case lo && hi:
		spec.Type = TypeBandpass
		if low.hz > high.hz {
			spec.Type = TypeBandstop
		}
		spec.Cutoffs = []float64{low.hz, high.hz}
	case lo:
		spec.Type = TypeHighpass
		spec.Cutoffs = []float64{low.hz}
	case hi:
		spec.Type = TypeLowpass
		spec.Cutoffs = []float64{high.hz}
	default:
		spec.Type = TypeNone
		spec.Cutoffs = []float64{}
	}

	if normalize {
		nyquist := sampleRate / 2
		for i := range spec.Cutoffs {
			spec.Cutoffs[i] /= nyquist
		}
		spec.Normalized = true
	}

	return spec
}
