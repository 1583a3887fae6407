package pass

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-biosig/dsp/filter/bandspec"
)

func TestButterworth_BaselineHighpass(t *testing.T) {
	spec := bandspec.Classify(bandspec.Hz(0.5), bandspec.None, 250, false)

	got, err := Butterworth(5, spec, 250)
	if err != nil {
		t.Fatalf("Butterworth: %v", err)
	}

	want := ButterworthHP(0.5, 5, 250)
	if len(got) != 3 || len(got) != len(want) {
		t.Fatalf("sections=%d, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("section %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestButterworth_NormalizedSpecMatchesHz(t *testing.T) {
	sr := 100.0
	spec := bandspec.Classify(bandspec.Hz(10), bandspec.None, sr, true)

	got, err := Butterworth(4, spec, sr)
	if err != nil {
		t.Fatalf("Butterworth: %v", err)
	}

	want := ButterworthHP(10, 4, sr)
	for i := range want {
		for j, pair := range [][2]float64{
			{got[i].B0, want[i].B0}, {got[i].B1, want[i].B1}, {got[i].B2, want[i].B2},
			{got[i].A1, want[i].A1}, {got[i].A2, want[i].A2},
		} {
			if !almostEqual(pair[0], pair[1], 1e-12) {
				t.Fatalf("section %d coefficient %d: got %v, want %v", i, j, pair[0], pair[1])
			}
		}
	}
}

func TestButterworth_DispatchesAllTypes(t *testing.T) {
	sr := 250.0
	tests := []struct {
		name      string
		low, high bandspec.Cutoff
		sections  int
	}{
		{name: "lowpass", low: bandspec.None, high: bandspec.Hz(40), sections: 2},
		{name: "highpass", low: bandspec.Hz(0.5), high: bandspec.None, sections: 2},
		{name: "bandpass", low: bandspec.Hz(0.5), high: bandspec.Hz(40), sections: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := bandspec.Classify(tt.low, tt.high, sr, false)
			got, err := Butterworth(3, spec, sr)
			if err != nil {
				t.Fatalf("Butterworth: %v", err)
			}
			if len(got) != tt.sections {
				t.Fatalf("sections=%d, want %d", len(got), tt.sections)
			}
		})
	}

	ascending := bandspec.FrequencySpec{Type: bandspec.TypeBandstop, Cutoffs: []float64{45, 55}}
	if _, err := Butterworth(2, ascending, sr); err != nil {
		t.Fatalf("ascending bandstop: %v", err)
	}
}

func TestButterworth_DesignErrors(t *testing.T) {
	sr := 250.0
	tests := []struct {
		name  string
		order int
		spec  bandspec.FrequencySpec
		rate  float64
	}{
		{name: "zero order", order: 0, spec: bandspec.Classify(bandspec.Hz(0.5), bandspec.None, sr, false), rate: sr},
		{name: "none", order: 5, spec: bandspec.Classify(bandspec.None, bandspec.None, sr, false), rate: sr},
		// Classify keeps inverted edges as given; the designer refuses them.
		{name: "classified bandstop", order: 2, spec: bandspec.Classify(bandspec.Hz(55), bandspec.Hz(45), sr, false), rate: sr},
		{name: "cutoff at Nyquist", order: 5, spec: bandspec.Classify(bandspec.Hz(0.5), bandspec.None, 1, false), rate: 1},
		{name: "negative rate", order: 5, spec: bandspec.Classify(bandspec.Hz(0.5), bandspec.None, -250, false), rate: -250},
		{name: "normalized out of range", order: 5, spec: bandspec.Classify(bandspec.Hz(60), bandspec.None, 100, true), rate: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Butterworth(tt.order, tt.spec, tt.rate)
			if !errors.Is(err, bandspec.ErrDesign) {
				t.Fatalf("error = %v, want ErrDesign", err)
			}
		})
	}
}

func TestButterworth_StabilityError(t *testing.T) {
	// At an absurd sampling rate the 0.5 Hz poles round onto z = 1.
	sr := 1e300
	spec := bandspec.Classify(bandspec.Hz(0.5), bandspec.None, sr, false)

	_, err := Butterworth(5, spec, sr)
	if !errors.Is(err, ErrStability) {
		t.Fatalf("error = %v, want ErrStability", err)
	}
	if errors.Is(err, bandspec.ErrDesign) {
		t.Fatal("stability failure must not be reported as a design error")
	}
}
