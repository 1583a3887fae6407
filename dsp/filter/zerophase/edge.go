package zerophase

import (
	"fmt"
	"strings"
)

// EdgeMethod selects how a signal is extended before filtering.
type EdgeMethod int

const (
	// EdgeReflect extends with an odd reflection about the end sample:
	// x[-k] = 2*x[0] - x[k].
	EdgeReflect EdgeMethod = iota
	// EdgePad repeats the end sample.
	EdgePad
	// EdgeNone filters the signal without extension.
	EdgeNone
)

func (m EdgeMethod) String() string {
	switch m {
	case EdgeReflect:
		return "reflect"
	case EdgePad:
		return "pad"
	case EdgeNone:
		return "none"
	default:
		return fmt.Sprintf("EdgeMethod(%d)", int(m))
	}
}

// ParseEdgeMethod parses "reflect" (alias "odd"), "pad" (alias "constant")
// or "none".
func ParseEdgeMethod(s string) (EdgeMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reflect", "odd":
		return EdgeReflect, nil
	case "pad", "constant":
		return EdgePad, nil
	case "none":
		return EdgeNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEdgeMethod, s)
	}
}

// extend writes x into the middle of dst and fills n samples on each side.
// len(dst) must be len(x)+2n and len(x) must exceed n.
func extend(dst, x []float64, n int, m EdgeMethod) {
	copy(dst[n:], x)
	last := len(x) - 1

	switch m {
	case EdgeReflect:
		for k := 1; k <= n; k++ {
			dst[n-k] = 2*x[0] - x[k]
			dst[n+last+k] = 2*x[last] - x[last-k]
		}
	case EdgePad:
		for k := 1; k <= n; k++ {
			dst[n-k] = x[0]
			dst[n+last+k] = x[last]
		}
	}
}
