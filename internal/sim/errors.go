package sim

import (
	"errors"
	"fmt"
)

// ErrUnstable indicates the field diverged to non-finite values, the symptom
// of a time step above the CFL bound.
var ErrUnstable = errors.New("sim: field diverged (non-finite values)")

// StepError wraps an error with the step at which it was observed.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }
