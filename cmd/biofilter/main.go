// Command biofilter removes baseline wander and powerline interference from
// single-channel ECG/PPG recordings.
//
// Usage:
//
//	biofilter [flags]
//
// Samples are read one per line, or from a CSV column, and the cleaned signal
// is written one value per line.
//
// Examples:
//
//	biofilter -rate 250 -in raw.txt -out clean.txt
//	biofilter -rate 500 -in lead2.csv -column 1 -report
//	biofilter -classify -low 0.5 -high 40 -rate 250
//	biofilter -demo ecg -rate 360 -seconds 10 -powerline 60
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/cwbudde/algo-biosig/dsp/biosignal"
	"github.com/cwbudde/algo-biosig/dsp/core"
	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
)

type options struct {
	rate      float64
	in        string
	out       string
	column    int
	report    bool
	order     int
	powerline float64
	notchEdge string
	verbose   bool

	classify  bool
	low       float64
	high      float64
	normalize bool

	demo    string
	seconds float64
	seed    int64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("biofilter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opts.rate, "rate", core.DefaultSampleRate, "sampling rate in Hz")
	fs.StringVar(&opts.in, "in", "", "input file (default stdin)")
	fs.StringVar(&opts.out, "out", "", "output file (default stdout)")
	fs.IntVar(&opts.column, "column", 0, "zero-based CSV column holding the samples")
	fs.BoolVar(&opts.report, "report", false, "print an interference report to stderr")
	fs.IntVar(&opts.order, "order", biosignal.DefaultOrder, "baseline high-pass order")
	fs.Float64Var(&opts.powerline, "powerline", biosignal.DefaultPowerline, "mains frequency in Hz")
	fs.StringVar(&opts.notchEdge, "notch-edge", "pad", "edge extension for the powerline stage: pad, reflect or none")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.BoolVar(&opts.classify, "classify", false, "classify -low/-high into a filter type and exit")
	fs.Float64Var(&opts.low, "low", 0, "low cutoff in Hz for -classify (0 means none)")
	fs.Float64Var(&opts.high, "high", 0, "high cutoff in Hz for -classify (0 means none)")
	fs.BoolVar(&opts.normalize, "normalize", false, "report -classify cutoffs as fractions of Nyquist")
	fs.StringVar(&opts.demo, "demo", "", "filter a synthetic contaminated signal: ecg or ppg")
	fs.Float64Var(&opts.seconds, "seconds", 10, "duration of the -demo signal")
	fs.Int64Var(&opts.seed, "seed", 1, "noise seed for -demo")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: biofilter [flags]\n\n")
		fmt.Fprintf(stderr, "Removes baseline wander and powerline interference from ECG/PPG samples.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  biofilter -rate 250 -in raw.txt -out clean.txt\n")
		fmt.Fprintf(stderr, "  biofilter -classify -low 0.5 -high 40 -rate 250\n")
		fmt.Fprintf(stderr, "  biofilter -demo ecg -rate 360 -seconds 10\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, sync := newLogger(stderr, opts.verbose)
	defer sync()

	var err error
	switch {
	case opts.classify:
		err = runClassify(stdout, logger, opts)
	case opts.demo != "":
		err = runDemo(stdout, logger, opts)
	default:
		err = runFilter(stdin, stdout, stderr, logger, opts)
	}
	if err != nil {
		logger.Error(err, "biofilter failed")
		return 1
	}
	return 0
}

func newEngine(logger logr.Logger, opts options) (*biosignal.Engine, error) {
	edge, err := zerophase.ParseEdgeMethod(opts.notchEdge)
	if err != nil {
		return nil, err
	}
	return biosignal.New(
		biosignal.WithOrder(opts.order),
		biosignal.WithPowerline(opts.powerline),
		biosignal.WithNotchEdge(edge),
		biosignal.WithLogger(logger.WithName("engine")),
	), nil
}

func runFilter(stdin io.Reader, stdout, stderr io.Writer, logger logr.Logger, opts options) error {
	engine, err := newEngine(logger, opts)
	if err != nil {
		return err
	}

	in := stdin
	if opts.in != "" {
		f, err := os.Open(opts.in)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	samples, err := readSamples(in, opts.column)
	if err != nil {
		return err
	}
	logger.V(1).Info("read samples", "count", len(samples), "column", opts.column)

	clean, err := engine.Filter(samples, opts.rate)
	if err != nil {
		return err
	}

	if opts.report {
		if err := printReports(stderr, samples, clean, opts); err != nil {
			return err
		}
	}

	if opts.out != "" {
		return saveSamples(opts.out, clean)
	}
	return writeSamples(stdout, clean)
}
