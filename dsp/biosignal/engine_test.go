package biosignal

import (
	"errors"
	"math"
	"math/cmplx"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/cwbudde/algo-biosig/dsp/core"
	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
	"github.com/cwbudde/algo-biosig/internal/testutil"
)

// toneAmplitude estimates the amplitude of a freqHz component in x by
// correlating with a complex exponential.
func toneAmplitude(x []float64, freqHz, sampleRate float64) float64 {
	var acc complex128
	w := 2 * math.Pi * freqHz / sampleRate
	for i, v := range x {
		acc += complex(v, 0) * cmplx.Exp(complex(0, -w*float64(i)))
	}
	return 2 * cmplx.Abs(acc) / float64(len(x))
}

func contaminatedSignal(sampleRate float64, seconds int) []float64 {
	n := int(sampleRate) * seconds
	return testutil.Sum(
		testutil.Sine(1.2, sampleRate, 1, n),
		testutil.Sine(0.15, sampleRate, 0.8, n),
		testutil.Sine(50, sampleRate, 0.3, n),
		testutil.Noise(7, 0.05, n),
	)
}

func TestFilterPreservesLength(t *testing.T) {
	for _, sr := range []float64{50, 99, 100, 128, 250, 360, 500, 1000} {
		for _, seconds := range []int{1, 3} {
			x := contaminatedSignal(sr, seconds)
			y, err := FilterSignal(x, sr)
			if err != nil {
				t.Fatalf("rate %v, %d s: %v", sr, seconds, err)
			}
			if len(y) != len(x) {
				t.Fatalf("rate %v: len = %d, want %d", sr, len(y), len(x))
			}
			testutil.RequireFinite(t, y)
		}
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	x := contaminatedSignal(250, 2)
	orig := core.Clone(x)
	if _, err := FilterSignal(x, 250); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, x, orig, 0)
}

func TestFilterRemovesDC(t *testing.T) {
	for _, sr := range []float64{10, 100, 250, 1000} {
		for _, level := range []float64{1, -42.5, 1e3} {
			x := testutil.DC(level, int(4*sr))
			y, err := FilterSignal(x, sr)
			if err != nil {
				t.Fatalf("rate %v: %v", sr, err)
			}
			var meanAbs float64
			for _, v := range y {
				meanAbs += math.Abs(v)
			}
			meanAbs /= float64(len(y))
			if meanAbs > 1e-3*math.Abs(level) {
				t.Fatalf("rate %v level %v: mean |y| = %v", sr, level, meanAbs)
			}
		}
	}
}

func TestFilterCancelsPowerline(t *testing.T) {
	const sr = 250.0
	x := contaminatedSignal(sr, 20)
	x = testutil.Sum(x, testutil.Sine(10, sr, 0.5, len(x)))

	y, err := FilterSignal(x, sr)
	if err != nil {
		t.Fatal(err)
	}

	// Ten seconds from the middle, an integer number of periods of both tones.
	mid := y[1250:3750]
	if a := toneAmplitude(mid, 50, sr); a > 0.01 {
		t.Fatalf("50 Hz amplitude = %v, want < 0.01 (input 0.3)", a)
	}
	if a := toneAmplitude(mid, 10, sr); a < 0.4 {
		t.Fatalf("10 Hz amplitude = %v, want > 0.4 (input 0.5)", a)
	}
}

func TestFilterIsNotIdempotent(t *testing.T) {
	x := contaminatedSignal(250, 4)
	once, err := FilterSignal(x, 250)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := FilterSignal(once, 250)
	if err != nil {
		t.Fatal(err)
	}
	d, err := testutil.MaxAbsDiff(once, twice)
	if err != nil {
		t.Fatal(err)
	}
	if d < 1e-3 {
		t.Fatalf("filtering twice changed the result by only %v", d)
	}
}

func TestFilterRejectsBadSampleRate(t *testing.T) {
	x := testutil.DC(1, 100)
	for _, sr := range []float64{0, -250, math.NaN(), math.Inf(1)} {
		_, err := FilterSignal(x, sr)
		if !errors.Is(err, ErrDesign) {
			t.Fatalf("rate %v: err = %v, want ErrDesign", sr, err)
		}
		var se *StageError
		if !errors.As(err, &se) || se.Stage != StageBaseline || se.Param != "sampleRate" {
			t.Fatalf("rate %v: err = %#v, want baseline/sampleRate StageError", sr, err)
		}
	}
}

func TestFilterRejectsCutoffAboveNyquist(t *testing.T) {
	for _, sr := range []float64{0.5, 1} {
		_, err := FilterSignal(testutil.DC(1, 100), sr)
		if !errors.Is(err, ErrDesign) {
			t.Fatalf("rate %v: err = %v, want ErrDesign", sr, err)
		}
		var se *StageError
		if !errors.As(err, &se) || se.Param != "cutoff" {
			t.Fatalf("rate %v: err = %v, want cutoff StageError", sr, err)
		}
	}
}

func TestFilterStabilityError(t *testing.T) {
	_, err := FilterSignal(testutil.DC(1, 100), 1e300)
	if !errors.Is(err, ErrStability) {
		t.Fatalf("err = %v, want ErrStability", err)
	}
	if errors.Is(err, ErrDesign) {
		t.Fatalf("err = %v should not be a design error", err)
	}
}

func TestFilterShortSignals(t *testing.T) {
	// Order 5 at 250 Hz pads 18 samples, the 5-tap average pads 15.
	if _, err := FilterSignal(nil, 250); !errors.Is(err, zerophase.ErrEmptySignal) {
		t.Fatalf("empty: err = %v", err)
	}
	_, err := FilterSignal(testutil.DC(1, 18), 250)
	if !errors.Is(err, ErrDesign) || !errors.Is(err, zerophase.ErrSignalTooShort) {
		t.Fatalf("18 samples: err = %v", err)
	}
	y, err := FilterSignal(testutil.Ramp(0, 1, 19), 250)
	if err != nil {
		t.Fatalf("19 samples: %v", err)
	}
	if len(y) != 19 {
		t.Fatalf("len = %d, want 19", len(y))
	}
}

func TestEngineOptions(t *testing.T) {
	e := New(WithOrder(3), WithBaselineCutoff(0.67), WithPowerline(60), WithNotchEdge(zerophase.EdgeReflect), nil)
	cfg := e.Config()
	if cfg.Order != 3 || cfg.BaselineCutoff != 0.67 || cfg.Powerline != 60 || cfg.NotchEdge != zerophase.EdgeReflect {
		t.Fatalf("Config() = %+v", cfg)
	}

	x := contaminatedSignal(360, 7)
	x = testutil.Sum(x, testutil.Sine(60, 360, 0.3, len(x)))
	y, err := e.Filter(x, 360)
	if err != nil {
		t.Fatal(err)
	}
	// Five seconds hold whole periods of 1.2, 50 and 60 Hz.
	if a := toneAmplitude(y[360:2160], 60, 360); a > 0.01 {
		t.Fatalf("60 Hz amplitude = %v", a)
	}
}

func TestEngineNotchEdgeChangesEdgesOnly(t *testing.T) {
	x := contaminatedSignal(250, 4)
	pad, err := New().Filter(x, 250)
	if err != nil {
		t.Fatal(err)
	}
	reflect, err := New(WithNotchEdge(zerophase.EdgeReflect)).Filter(x, 250)
	if err != nil {
		t.Fatal(err)
	}

	if pad[0] == reflect[0] {
		t.Fatal("edge methods produced identical first samples")
	}
	// A 5-tap kernel reaches at most 4 samples into the signal from each edge.
	testutil.RequireSliceNearlyEqual(t, pad[10:len(x)-10], reflect[10:len(x)-10], 1e-12)
}

func TestEngineReflectNotchMatchesOddPadding(t *testing.T) {
	const rate = 250
	x := contaminatedSignal(rate, 4)

	e := New(WithNotchEdge(zerophase.EdgeReflect))
	got, err := e.Filter(x, rate)
	if err != nil {
		t.Fatal(err)
	}

	chain, err := e.baseline(rate)
	if err != nil {
		t.Fatal(err)
	}
	detrended, err := zerophase.Apply(chain, x, zerophase.EdgeReflect)
	if err != nil {
		t.Fatal(err)
	}
	avg, err := movingAverage(5)
	if err != nil {
		t.Fatal(err)
	}
	if pad := avg.PadLen(); pad != 15 {
		t.Fatalf("moving average pad length = %d, want 15", pad)
	}
	want, err := zerophase.Apply(avg, detrended, zerophase.EdgeReflect)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestEngineInvalidOrder(t *testing.T) {
	_, err := New(WithOrder(0)).Filter(testutil.DC(1, 100), 250)
	var se *StageError
	if !errors.As(err, &se) || se.Param != "order" || !errors.Is(err, ErrDesign) {
		t.Fatalf("err = %v, want order design error", err)
	}
}

func TestEngineLogsStages(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	if _, err := New(WithLogger(logger)).Filter(contaminatedSignal(250, 1), 250); err != nil {
		t.Fatal(err)
	}

	joined := strings.Join(lines, "\n")
	for _, want := range []string{`"msg"="baseline filter"`, `"order"=5`, `"msg"="powerline kernel"`, `"length"=5`} {
		if !strings.Contains(joined, want) {
			t.Fatalf("log missing %s:\n%s", want, joined)
		}
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	e := New(WithLogger(logr.Discard()))
	x := contaminatedSignal(250, 4)
	want, err := e.Filter(x, 250)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Filter(x, 250)
			if err != nil {
				errs <- err
				return
			}
			for i := range got {
				if got[i] != want[i] {
					errs <- errors.New("concurrent result differs")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
