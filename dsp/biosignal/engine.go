package biosignal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/core"
	"github.com/cwbudde/algo-biosig/dsp/filter/bandspec"
	"github.com/cwbudde/algo-biosig/dsp/filter/biquad"
	"github.com/cwbudde/algo-biosig/dsp/filter/design/pass"
	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
)

// Engine removes baseline wander and powerline interference.
type Engine struct {
	cfg Config
}

// New returns an Engine configured with DefaultConfig and opts.
func New(opts ...Option) *Engine {
	return &Engine{cfg: applyOptions(opts...)}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// FilterSignal cleans signal with the default configuration.
func FilterSignal(signal []float64, sampleRate float64) ([]float64, error) {
	return New().Filter(signal, sampleRate)
}

// Filter returns a cleaned copy of signal, which is left untouched. The
// result has the same length as the input.
//
// Errors are *StageError values wrapping ErrDesign for invalid sampling
// rates, cutoffs above Nyquist or signals too short for the edge padding,
// and ErrStability for unusable coefficients.
func (e *Engine) Filter(signal []float64, sampleRate float64) ([]float64, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, stageErr(StageBaseline, "sampleRate",
			fmt.Errorf("%w: sampling rate must be positive, got %g", ErrDesign, sampleRate))
	}
	if len(signal) == 0 {
		return nil, stageErr(StageBaseline, "signal", fmt.Errorf("%w: %w", ErrDesign, zerophase.ErrEmptySignal))
	}

	chain, err := e.baseline(sampleRate)
	if err != nil {
		return nil, err
	}

	detrended, err := zerophase.Apply(chain, signal, zerophase.EdgeReflect)
	if err != nil {
		return nil, stageErr(StageBaseline, "signal", fmt.Errorf("%w: %w", ErrDesign, err))
	}

	n, err := KernelLength(sampleRate, e.cfg.Powerline)
	if err != nil {
		return nil, stageErr(StagePowerline, "kernelLength", err)
	}

	avg, err := movingAverage(n)
	if err != nil {
		return nil, stageErr(StagePowerline, "kernel", err)
	}
	e.cfg.Logger.V(1).Info("powerline kernel", "length", n, "powerline", e.cfg.Powerline, "edge", e.cfg.NotchEdge.String())

	out, err := zerophase.Apply(avg, detrended, e.cfg.NotchEdge)
	if err != nil {
		return nil, stageErr(StagePowerline, "signal", fmt.Errorf("%w: %w", ErrDesign, err))
	}

	return out, nil
}

// baseline designs the high-pass cascade for sampleRate.
func (e *Engine) baseline(sampleRate float64) (*biquad.Chain, error) {
	spec := bandspec.Classify(
		bandspec.Hz(e.cfg.BaselineCutoff), bandspec.None, sampleRate, false,
		bandspec.WithLogger(e.cfg.Logger),
	)

	coeffs, err := pass.Butterworth(e.cfg.Order, spec, sampleRate)
	if err != nil {
		param := "cutoff"
		switch {
		case e.cfg.Order < 1:
			param = "order"
		case errors.Is(err, ErrStability):
			param = "coefficients"
		}
		return nil, stageErr(StageBaseline, param, err)
	}

	chain := biquad.NewChain(coeffs)
	e.cfg.Logger.V(1).Info("baseline filter",
		"type", spec.Type.String(), "cutoffs", spec.Cutoffs, "order", chain.Order(), "sections", chain.NumSections())

	return chain, nil
}
