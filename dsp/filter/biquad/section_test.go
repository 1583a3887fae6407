package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// smoothing returns a stable second-order lowpass-like section with complex
// poles of radius 0.2.
func smoothing() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

// leakyDiff returns a first-order highpass-like section (B2 = A2 = 0).
func leakyDiff() Coefficients {
	return Coefficients{B0: 0.9, B1: -0.9, A1: -0.8}
}

func TestProcessSample_TracedImpulse(t *testing.T) {
	// n=0: y=0.25, d0=0.5+0.05=0.55, d1=0.25-0.01=0.24
	// n=1: y=0.55, d0=0.11+0.24=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.07-0.022=0.048, d1=-0.014
	s := NewSection(smoothing())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	// Odd and even lengths exercise the unrolled loop tail.
	for _, n := range []int{1, 2, 7, 8} {
		input := make([]float64, n)
		for i := range input {
			input[i] = math.Sin(float64(i)*0.7) + 0.3
		}

		ref := NewSection(smoothing())
		want := make([]float64, n)
		for i, x := range input {
			want[i] = ref.ProcessSample(x)
		}

		s := NewSection(smoothing())
		block := append([]float64(nil), input...)
		s.ProcessBlock(block)

		for i := range block {
			if !almostEqual(block[i], want[i], eps) {
				t.Fatalf("n=%d sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", n, i, block[i], want[i])
			}
		}
		gotState, wantState := s.State(), ref.State()
		if !almostEqual(gotState[0], wantState[0], eps) || !almostEqual(gotState[1], wantState[1], eps) {
			t.Fatalf("n=%d: state diverged: block=%v sample=%v", n, gotState, wantState)
		}
	}
}

func TestSection_ResetAndState(t *testing.T) {
	s := NewSection(smoothing())
	s.ProcessSample(1)
	if s.State() == [2]float64{} {
		t.Fatal("expected non-zero state after an impulse")
	}

	saved := s.State()
	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("Reset left state %v", s.State())
	}

	s.SetState(saved)
	if s.State() != saved {
		t.Fatalf("SetState: got %v, want %v", s.State(), saved)
	}
}

func TestCoefficients_DCGain(t *testing.T) {
	if got, want := smoothing().DCGain(), 1/0.84; !almostEqual(got, want, eps) {
		t.Fatalf("DCGain = %v, want %v", got, want)
	}
	if got := leakyDiff().DCGain(); !almostEqual(got, 0, eps) {
		t.Fatalf("highpass DCGain = %v, want 0", got)
	}
}

func TestCoefficients_IsFinite(t *testing.T) {
	if !smoothing().IsFinite() {
		t.Fatal("finite coefficients reported non-finite")
	}
	bad := smoothing()
	bad.A2 = math.NaN()
	if bad.IsFinite() {
		t.Fatal("NaN coefficient reported finite")
	}
	bad = smoothing()
	bad.B0 = math.Inf(1)
	if bad.IsFinite() {
		t.Fatal("Inf coefficient reported finite")
	}
}

func TestCoefficients_SteadyStateHoldsConstantOutput(t *testing.T) {
	for _, c := range []Coefficients{smoothing(), leakyDiff()} {
		const x0 = 2.5

		s := NewSection(c)
		s.SetState(c.SteadyState(x0))

		want := c.DCGain() * x0
		for i := range 50 {
			if y := s.ProcessSample(x0); !almostEqual(y, want, 1e-12) {
				t.Fatalf("%+v sample %d: got %v, want %v", c, i, y, want)
			}
		}
	}
}
