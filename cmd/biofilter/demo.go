package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-logr/logr"

	"github.com/cwbudde/algo-biosig/dsp/core"
	"github.com/cwbudde/algo-biosig/dsp/signal"
	"github.com/cwbudde/algo-biosig/measure/interference"
	"github.com/cwbudde/algo-biosig/measure/quality"
)

const (
	demoHeartRate   = 72
	demoWanderHz    = 0.2
	demoWanderAmp   = 0.8
	demoMainsAmp    = 0.3
	demoHarmonics   = 3
	demoNoiseAmp    = 0.02
	reportHarmonics = 3
)

// demoSignal builds a synthetic waveform contaminated with baseline wander,
// mains pickup and noise.
func demoSignal(kind string, opts options) ([]float64, error) {
	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(opts.rate)},
		signal.WithSeed(opts.seed),
	)

	var (
		clean []float64
		err   error
	)
	switch kind {
	case "ecg":
		clean, err = g.ECG(demoHeartRate, opts.seconds)
	case "ppg":
		clean, err = g.PPG(demoHeartRate, opts.seconds)
	default:
		return nil, fmt.Errorf("unknown demo signal %q (want ecg or ppg)", kind)
	}
	if err != nil {
		return nil, err
	}

	n := len(clean)
	wander, err := g.BaselineWander(demoWanderHz, demoWanderAmp, n)
	if err != nil {
		return nil, err
	}
	mains, err := g.Powerline(opts.powerline, demoMainsAmp, demoHarmonics, n)
	if err != nil {
		return nil, err
	}
	noise, err := g.WhiteNoise(demoNoiseAmp, n)
	if err != nil {
		return nil, err
	}

	return signal.Mix(clean, wander, mains, noise)
}

func runDemo(w io.Writer, logger logr.Logger, opts options) error {
	engine, err := newEngine(logger, opts)
	if err != nil {
		return err
	}

	raw, err := demoSignal(opts.demo, opts)
	if err != nil {
		return err
	}
	logger.Info("generated demo signal", "kind", opts.demo, "samples", len(raw), "rate", opts.rate)

	filtered, err := engine.Filter(raw, opts.rate)
	if err != nil {
		return err
	}

	if err := printReports(w, raw, filtered, opts); err != nil {
		return err
	}

	if opts.out == "" {
		return nil
	}
	return saveSamples(opts.out, filtered)
}

func printReports(w io.Writer, raw, filtered []float64, opts options) error {
	cfg := interference.Config{Powerline: opts.powerline, Harmonics: reportHarmonics}

	before, err := interference.Analyze(raw, opts.rate, cfg)
	if err != nil {
		return err
	}
	after, err := interference.Analyze(filtered, opts.rate, cfg)
	if err != nil {
		return err
	}
	red := interference.Attenuation(before, after)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\tmean\ttotal\tbaseline\tpowerline\tpowerline dB\t\n")
	for _, row := range []struct {
		name string
		r    interference.Report
	}{{"input", before}, {"output", after}} {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4g\t%.4g\t%.4g\t%.1f\t\n",
			row.name, row.r.Mean, row.r.TotalPower, row.r.BaselinePower, row.r.PowerlinePower, row.r.PowerlineRatioDB)
	}
	fmt.Fprintf(tw, "reduction dB\t\t%.1f\t%.1f\t%.1f\t\t\n", red.TotalDB, red.BaselineDB, red.PowerlineDB)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return printQuality(w, raw, filtered, opts.rate)
}

func printQuality(w io.Writer, raw, filtered []float64, rate float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\trms\tpeak-to-peak\tzc/s\tskewness\tkurtosis\tquality\t\n")
	for _, row := range []struct {
		name string
		x    []float64
	}{{"input", raw}, {"output", filtered}} {
		s := quality.Calculate(row.x)
		verdict := "ok"
		if err := quality.Assess(s, quality.DefaultThresholds()); err != nil {
			verdict = "poor"
		}
		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%.1f\t%.2f\t%.2f\t%s\t\n",
			row.name, s.RMS, s.PeakToPeak, s.ZeroCrossingRate(rate), s.Skewness, s.Kurtosis, verdict)
	}
	return tw.Flush()
}
