package testutil

import (
	"math"
	"math/rand"
)

// Sine returns n samples of amplitude*sin(2*pi*freqHz*t) at sampleRate.
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise returns uniform noise in [-amplitude, amplitude] from a fixed seed.
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC returns n copies of value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns start, start+slope, start+2*slope, ...
func Ramp(start, slope float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + slope*float64(i)
	}
	return out
}

// Sum adds equally long signals sample by sample. It panics on a length
// mismatch.
func Sum(parts ...[]float64) []float64 {
	if len(parts) == 0 {
		return nil
	}
	out := make([]float64, len(parts[0]))
	for _, p := range parts {
		if len(p) != len(out) {
			panic("testutil: Sum length mismatch")
		}
		for i, v := range p {
			out[i] += v
		}
	}
	return out
}
