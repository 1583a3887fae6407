package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-logr/logr"

	"github.com/cwbudde/algo-biosig/dsp/filter/bandspec"
	"github.com/cwbudde/algo-biosig/dsp/filter/design/pass"
)

func cutoffFlag(v float64) bandspec.Cutoff {
	if v == 0 {
		return bandspec.None
	}
	return bandspec.Hz(v)
}

func runClassify(w io.Writer, logger logr.Logger, opts options) error {
	spec := bandspec.Classify(cutoffFlag(opts.low), cutoffFlag(opts.high), opts.rate, opts.normalize,
		bandspec.WithLogger(logger.WithName("classify")))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "type\t%s\n", spec.Type)
	fmt.Fprintf(tw, "cutoffs\t%v\n", spec.Cutoffs)
	fmt.Fprintf(tw, "normalized\t%t\n", spec.Normalized)
	if spec.Type != bandspec.TypeNone {
		var status string
		if sections, err := pass.Butterworth(opts.order, spec, opts.rate); err != nil {
			status = err.Error()
		} else {
			status = fmt.Sprintf("ok, order %d in %d sections", opts.order, len(sections))
		}
		fmt.Fprintf(tw, "design\t%s\n", status)
	}
	return tw.Flush()
}
