package zerophase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/core"
)

var (
	ErrEmptySignal       = errors.New("zerophase: empty signal")
	ErrSignalTooShort    = errors.New("zerophase: signal shorter than edge padding")
	ErrUnknownEdgeMethod = errors.New("zerophase: unknown edge method")
)

// Filter is a causal filter that can be primed to its steady state.
// *biquad.Chain and *tf.Filter satisfy it.
type Filter interface {
	// PadLen returns the edge extension length for the filter.
	PadLen() int
	// Prime sets the internal state to the steady state for a constant
	// input x0.
	Prime(x0 float64)
	// ProcessBlock filters buf in place, continuing from the current state.
	ProcessBlock(buf []float64)
}

// Apply filters x forward and backward and returns a new slice of the same
// length. x is not modified. The filter state is overwritten.
//
// Unless method is EdgeNone, x must be longer than f.PadLen().
func Apply(f Filter, x []float64, method EdgeMethod) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	switch method {
	case EdgeReflect, EdgePad, EdgeNone:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownEdgeMethod, method)
	}
	pad := PadLen(f, method)

	if pad > 0 && len(x) <= pad {
		return nil, fmt.Errorf("%w: length %d, padding %d", ErrSignalTooShort, len(x), pad)
	}

	ext := make([]float64, len(x)+2*pad)
	extend(ext, x, pad, method)

	f.Prime(ext[0])
	f.ProcessBlock(ext)

	core.Reverse(ext)
	f.Prime(ext[0])
	f.ProcessBlock(ext)
	core.Reverse(ext)

	return ext[pad : pad+len(x) : pad+len(x)], nil
}

// PadLen returns the extension Apply would use for f with method.
func PadLen(f Filter, method EdgeMethod) int {
	if method == EdgeNone {
		return 0
	}
	return f.PadLen()
}
