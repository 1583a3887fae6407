package biosignal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biosig/dsp/core"
	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
)

// KernelLength returns the moving-average length for powerline cancellation:
// floor(sampleRate/powerline) once the rate reaches twice the powerline
// frequency, 2 below that. At 50 Hz the switch happens at 100 Hz.
func KernelLength(sampleRate, powerline float64) (int, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sampling rate must be positive, got %g", ErrDesign, sampleRate)
	}
	if !core.IsFinite(powerline) || powerline <= 0 {
		return 0, fmt.Errorf("%w: powerline frequency must be positive, got %g", ErrDesign, powerline)
	}

	if sampleRate < 2*powerline {
		return 2, nil
	}

	n := math.Floor(sampleRate / powerline)
	if n < 1 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: kernel length %g for %g Hz at %g Hz", ErrDesign, n, powerline, sampleRate)
	}
	return int(n), nil
}

// MovingAverageKernel returns the numerator ones(n) and denominator [n] of
// an n-point moving average.
func MovingAverageKernel(n int) (b, a []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: kernel length must be >= 1, got %d", ErrDesign, n)
	}
	b = make([]float64, n)
	for i := range b {
		b[i] = 1
	}
	return b, []float64{float64(n)}, nil
}

func movingAverage(n int) (*tf.Filter, error) {
	b, a, err := MovingAverageKernel(n)
	if err != nil {
		return nil, err
	}
	return tf.New(b, a)
}
