package biosignal

import (
	"github.com/go-logr/logr"

	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
)

const (
	// DefaultOrder is the Butterworth order of the baseline high-pass.
	DefaultOrder = 5
	// DefaultBaselineCutoff is the baseline high-pass cutoff in Hz.
	DefaultBaselineCutoff = 0.5
	// DefaultPowerline is the mains frequency in Hz the kernel is tuned to.
	DefaultPowerline = 50.0
)

// Config holds the engine settings.
type Config struct {
	// Order of the baseline high-pass.
	Order int
	// BaselineCutoff is the high-pass cutoff in Hz.
	BaselineCutoff float64
	// Powerline is the mains frequency the moving average is tuned to.
	Powerline float64
	// NotchEdge is the edge extension used for the moving average.
	NotchEdge zerophase.EdgeMethod
	Logger    logr.Logger
}

// DefaultConfig returns order 5, 0.5 Hz baseline cutoff, 50 Hz powerline,
// constant edge padding for the notch and a discarding logger.
func DefaultConfig() Config {
	return Config{
		Order:          DefaultOrder,
		BaselineCutoff: DefaultBaselineCutoff,
		Powerline:      DefaultPowerline,
		NotchEdge:      zerophase.EdgePad,
		Logger:         logr.Discard(),
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithOrder sets the baseline high-pass order.
func WithOrder(order int) Option {
	return func(cfg *Config) { cfg.Order = order }
}

// WithBaselineCutoff sets the baseline high-pass cutoff in Hz.
func WithBaselineCutoff(hz float64) Option {
	return func(cfg *Config) { cfg.BaselineCutoff = hz }
}

// WithPowerline sets the mains frequency, typically 50 or 60 Hz.
func WithPowerline(hz float64) Option {
	return func(cfg *Config) { cfg.Powerline = hz }
}

// WithNotchEdge sets the edge extension for the moving-average stage.
// The default zerophase.EdgePad repeats the edge value. SciPy's filtfilt
// defaults to padtype="odd", which zerophase.EdgeReflect reproduces; the two
// differ only in the first and last kernel-length samples.
func WithNotchEdge(m zerophase.EdgeMethod) Option {
	return func(cfg *Config) { cfg.NotchEdge = m }
}

// WithLogger sets the logger for configuration warnings and stage traces.
func WithLogger(l logr.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
