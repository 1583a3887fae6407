package main

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a development-style console logger on w. Info and above
// are shown; verbose adds debug output, which is where logr V(1) lands.
func newLogger(w io.Writer, verbose bool) (logr.Logger, func()) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	zl := zap.New(core, zap.AddCaller())

	return zapr.NewLogger(zl).WithName("biofilter"), func() { _ = zl.Sync() }
}
