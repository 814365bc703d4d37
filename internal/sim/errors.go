package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrInvalidState indicates a NaN or Inf crept into positions or
	// velocities.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrConfig indicates a run configuration rejected at validation.
	ErrConfig = errors.New("sim: invalid configuration")
)

// StepError records where a run went bad.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
