package quality

import (
	"errors"
	"fmt"
)

// Default thresholds for Assess.
const (
	DefaultMinKurtosis = 3.0
	DefaultMaxSkewness = 10.0
)

// ErrUnusable is wrapped by Assess when a signal fails a quality check.
var ErrUnusable = errors.New("quality: signal unusable")

// Thresholds bound the statistics a usable recording must satisfy.
type Thresholds struct {
	MinKurtosis float64
	MaxSkewness float64 // on |Skewness|
}

// DefaultThresholds returns limits suited to a single ECG lead.
func DefaultThresholds() Thresholds {
	return Thresholds{MinKurtosis: DefaultMinKurtosis, MaxSkewness: DefaultMaxSkewness}
}

// Assess checks s against th and returns nil or an error wrapping
// ErrUnusable naming the first failed check. A flat signal always fails.
func Assess(s Stats, th Thresholds) error {
	switch {
	case s.Length == 0:
		return fmt.Errorf("%w: empty", ErrUnusable)
	case s.Variance == 0:
		return fmt.Errorf("%w: flat line", ErrUnusable)
	case s.Kurtosis < th.MinKurtosis:
		return fmt.Errorf("%w: kurtosis %.2f below %.2f", ErrUnusable, s.Kurtosis, th.MinKurtosis)
	case th.MaxSkewness > 0 && (s.Skewness > th.MaxSkewness || s.Skewness < -th.MaxSkewness):
		return fmt.Errorf("%w: skewness %.2f beyond ±%.2f", ErrUnusable, s.Skewness, th.MaxSkewness)
	}
	return nil
}
