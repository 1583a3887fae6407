package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	for typ := range typeNames {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}
			for i, v := range w {
				if math.IsNaN(v) || v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] = %v", i, v)
				}
			}
			// Symmetric windows mirror around the centre.
			for i := range w {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("asymmetric at %d: %v vs %v", i, w[i], w[len(w)-1-i])
				}
			}
		})
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
}

func TestTukeyLimits(t *testing.T) {
	rect := Generate(TypeTukey, 32, WithAlpha(0))
	hann := Generate(TypeTukey, 32, WithAlpha(1))
	ref := Generate(TypeHann, 32)
	for i := range rect {
		if rect[i] != 1 {
			t.Fatalf("alpha 0: w[%d] = %v, want 1", i, rect[i])
		}
		if math.Abs(hann[i]-ref[i]) > 1e-12 {
			t.Fatalf("alpha 1: w[%d] = %v, want %v", i, hann[i], ref[i])
		}
	}
}

func TestCoherentGainAndENBW(t *testing.T) {
	tests := []struct {
		typ      Type
		gain     float64
		enbwBins float64
	}{
		{TypeRectangular, 1, 1},
		{TypeHann, 0.5, 1.5},
		{TypeHamming, 0.54, 1.3628},
		{TypeBlackman, 0.42, 1.7268},
	}
	for _, tt := range tests {
		w := Generate(tt.typ, 4096, WithPeriodic())
		g, err := CoherentGain(w)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(g-tt.gain) > 1e-9 {
			t.Fatalf("%s coherent gain = %v, want %v", tt.typ, g, tt.gain)
		}
		enbw, err := EquivalentNoiseBandwidth(w)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(enbw-tt.enbwBins) > 1e-3 {
			t.Fatalf("%s ENBW = %v, want %v", tt.typ, enbw, tt.enbwBins)
		}
	}

	if _, err := CoherentGain(nil); !errors.Is(err, errEmptyCoeffs) {
		t.Fatalf("CoherentGain(nil) err = %v", err)
	}
	if _, err := EquivalentNoiseBandwidth([]float64{1, -1}); !errors.Is(err, errZeroCoherentGain) {
		t.Fatalf("ENBW zero-sum err = %v", err)
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{1, 2, 3}, []float64{0.5, 0.5, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 1, 6}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out = %v, want %v", out, want)
		}
	}
	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); !errors.Is(err, errMismatchedLength) {
		t.Fatalf("mismatch err = %v", err)
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range typeNames {
		got, err := ParseType(" " + name + " ")
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseType("kaiser"); !errors.Is(err, errUnknownType) {
		t.Fatalf("ParseType(kaiser) err = %v", err)
	}
}
