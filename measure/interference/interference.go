// Package interference measures how much baseline wander and powerline
// pickup a recording contains.
//
// [Analyze] estimates a one-sided power spectrum with a windowed FFT and
// integrates it over the baseline band (0, BaselineCutoff] and narrow bands
// around the powerline frequency and its harmonics. Powers are scaled so
// that their sum approximates the mean square of the de-meaned signal; a
// sine of amplitude A reports A²/2.
package interference

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biosig/dsp/core"
	"github.com/cwbudde/algo-biosig/dsp/window"
)

const (
	defaultPowerline      = 50.0
	defaultHarmonics      = 3
	defaultBaselineCutoff = 0.5
	defaultBandwidth      = 1.0
	minSamples            = 8
)

var (
	ErrSignalTooShort = errors.New("interference: signal too short")
	ErrSampleRate     = errors.New("interference: invalid sampling rate")
)

// Config holds analysis parameters. Zero fields take defaults: 50 Hz
// powerline, 3 harmonics, 0.5 Hz baseline cutoff, ±1 Hz bands and a Hann
// window.
type Config struct {
	Powerline      float64
	Harmonics      int
	BaselineCutoff float64
	// Bandwidth is the half-width in Hz of each powerline band. It never
	// drops below two FFT bins so the window main lobe is captured.
	Bandwidth float64
	Window    window.Type
	// WindowSet marks Window as explicit, allowing TypeRectangular.
	WindowSet bool
}

// Report summarizes the interference content of one signal.
type Report struct {
	SampleRate float64
	FFTSize    int
	// Resolution is the bin spacing in Hz.
	Resolution float64

	Mean             float64
	TotalPower       float64
	BaselinePower    float64
	PowerlinePower   float64
	BaselineRatioDB  float64
	PowerlineRatioDB float64
}

func (r Report) String() string {
	return fmt.Sprintf("mean %.4g, total %.4g, baseline %.4g (%.1f dB), powerline %.4g (%.1f dB)",
		r.Mean, r.TotalPower, r.BaselinePower, r.BaselineRatioDB, r.PowerlinePower, r.PowerlineRatioDB)
}

func normalizeConfig(cfg Config) Config {
	if cfg.Powerline <= 0 {
		cfg.Powerline = defaultPowerline
	}
	if cfg.Harmonics <= 0 {
		cfg.Harmonics = defaultHarmonics
	}
	if cfg.BaselineCutoff <= 0 {
		cfg.BaselineCutoff = defaultBaselineCutoff
	}
	if cfg.Bandwidth <= 0 {
		cfg.Bandwidth = defaultBandwidth
	}
	if !cfg.WindowSet {
		cfg.Window = window.TypeHann
	}
	return cfg
}

// Analyze computes the interference report for signal sampled at
// sampleRate.
func Analyze(signal []float64, sampleRate float64, cfg Config) (Report, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return Report{}, fmt.Errorf("%w: %g", ErrSampleRate, sampleRate)
	}
	if len(signal) < minSamples {
		return Report{}, fmt.Errorf("%w: %d samples, need %d", ErrSignalTooShort, len(signal), minSamples)
	}
	cfg = normalizeConfig(cfg)

	power, fftSize, err := powerSpectrum(signal, cfg.Window)
	if err != nil {
		return Report{}, err
	}

	binHz := sampleRate / float64(fftSize)
	r := Report{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Resolution: binHz,
		Mean:       core.Mean(signal),
	}

	for k := 1; k < len(power); k++ {
		r.TotalPower += power[k]
	}

	upper := min(int(math.Floor(cfg.BaselineCutoff/binHz)), len(power)-1)
	for k := 1; k <= upper; k++ {
		r.BaselinePower += power[k]
	}

	half := max(cfg.Bandwidth, 2*binHz)
	nyquist := sampleRate / 2
	for h := 1; h <= cfg.Harmonics; h++ {
		f := cfg.Powerline * float64(h)
		if f >= nyquist {
			break
		}
		lo := max(int(math.Ceil((f-half)/binHz)), upper+1, 1)
		hi := min(int(math.Floor((f+half)/binHz)), len(power)-1)
		for k := lo; k <= hi; k++ {
			r.PowerlinePower += power[k]
		}
	}

	r.BaselineRatioDB = ratioDB(r.BaselinePower, r.TotalPower-r.BaselinePower)
	r.PowerlineRatioDB = ratioDB(r.PowerlinePower, r.TotalPower-r.PowerlinePower)

	return r, nil
}

// powerSpectrum returns the one-sided power of the de-meaned, windowed
// signal, bins 0..N/2, scaled so the bins sum to the mean square.
func powerSpectrum(signal []float64, win window.Type) ([]float64, int, error) {
	n := len(signal)
	fftSize := nextPowerOf2(n)

	coeffs := window.Generate(win, n)
	mean := core.Mean(signal)

	centered := make([]float64, n)
	for i, v := range signal {
		centered[i] = v - mean
	}
	windowed, err := window.ApplyCoefficients(centered, coeffs)
	if err != nil {
		return nil, 0, err
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("interference: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("interference: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	var energy float64
	for _, w := range coeffs {
		energy += w * w
	}
	if energy == 0 {
		return nil, 0, fmt.Errorf("interference: window %s has no energy", win)
	}

	vecmath.ScaleBlock(power, power, 1/(float64(fftSize)*energy))
	// Fold negative frequencies onto the positive bins.
	vecmath.ScaleBlock(power[1:bins-1], power[1:bins-1], 2)

	return power, fftSize, nil
}

func ratioDB(num, den float64) float64 {
	if den <= 0 {
		return math.Inf(1)
	}
	return core.LinearPowerToDB(num / den)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
