package pass

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-biosig/dsp/filter/biquad"
)

const minus3dB = -3.0102999566398116 // 20*log10(1/sqrt(2))

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertFiniteStable(t *testing.T, sections []biquad.Coefficients) {
	t.Helper()
	for i := range sections {
		if !sections[i].IsFinite() {
			t.Fatalf("section %d: non-finite coefficients %+v", i, sections[i])
		}
		if !sections[i].Stable() {
			t.Fatalf("section %d: unstable, pole radius %v", i, sections[i].PoleRadius())
		}
	}
}

// prewarpedCenter returns the digital frequency whose prewarped analog
// frequency is the geometric mean of the prewarped band edges.
func prewarpedCenter(lo, hi, sr float64) float64 {
	w0 := math.Sqrt(math.Tan(math.Pi*lo/sr) * math.Tan(math.Pi*hi/sr))
	return sr / math.Pi * math.Atan(w0)
}
