package signal

import (
	"fmt"
	"math"
)

// wave is a Gaussian bump at a fractional position of the cardiac cycle.
type wave struct {
	amp, center, width float64
}

// P, Q, R, S and T waves of a lead-II like beat.
var ecgWaves = []wave{
	{0.08, 0.18, 0.03},
	{-0.12, 0.30, 0.01},
	{1.00, 0.32, 0.008},
	{-0.25, 0.35, 0.012},
	{0.25, 0.60, 0.06},
}

// Systolic peak and dicrotic wave of a fingertip pulse.
var ppgWaves = []wave{
	{1.00, 0.25, 0.08},
	{0.35, 0.55, 0.07},
}

// ECG synthesizes a noise-free ECG-like waveform with peak near 1 at a fixed
// heart rate. It is a test signal, not a physiological model.
func (g *Generator) ECG(heartRateBPM, seconds float64) ([]float64, error) {
	return g.cardiac("ecg", ecgWaves, heartRateBPM, seconds)
}

// PPG synthesizes a photoplethysmogram-like pulse train with peak near 1.
func (g *Generator) PPG(heartRateBPM, seconds float64) ([]float64, error) {
	return g.cardiac("ppg", ppgWaves, heartRateBPM, seconds)
}

func (g *Generator) cardiac(name string, waves []wave, bpm, seconds float64) ([]float64, error) {
	if !(bpm > 0 && bpm <= 300) {
		return nil, fmt.Errorf("%s heart rate must be in (0, 300] bpm: %f", name, bpm)
	}
	n, err := g.Samples(seconds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	out := make([]float64, n)
	step := bpm / 60 / g.cfg.SampleRate
	for i := range out {
		_, phase := math.Modf(step * float64(i))
		var v float64
		for _, w := range waves {
			// Include the neighbouring cycles so wide waves wrap smoothly.
			for _, shift := range [...]float64{-1, 0, 1} {
				v += w.amp * gauss(phase, w.center+shift, w.width)
			}
		}
		out[i] = v
	}
	return out, nil
}

func gauss(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}
