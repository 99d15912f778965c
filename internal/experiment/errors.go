package experiment

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownModel          = errors.New("experiment: unknown model")
	ErrUnknownRepresentation = errors.New("experiment: representation not supported by model")
	ErrInitState             = errors.New("experiment: initial state has the wrong length")
	ErrDiverged              = errors.New("experiment: state is no longer finite")
)

// RunError reports where a run stopped early.
type RunError struct {
	Step int
	Time float64
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }
