package biosignal

import (
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/filter/bandspec"
	"github.com/cwbudde/algo-biosig/dsp/filter/design/pass"
)

// Sentinel errors from the design packages, for errors.Is.
var (
	ErrDesign    = bandspec.ErrDesign
	ErrStability = pass.ErrStability
)

// Stage names used in StageError.
const (
	StageBaseline  = "baseline"
	StagePowerline = "powerline"
)

// StageError reports which stage and parameter rejected a request.
type StageError struct {
	Stage string
	Param string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("biosignal: %s stage, %s: %v", e.Stage, e.Param, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage, param string, err error) error {
	return &StageError{Stage: stage, Param: param, Err: err}
}
