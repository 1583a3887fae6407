package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(500))
	fmt.Println(cfg.SampleRate)

	// Output:
	// 500
}
