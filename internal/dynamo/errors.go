package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInputUnavailable indicates the source of initial bodies could not be read.
	ErrInputUnavailable = errors.New("dynamo: input unavailable")

	// ErrInvalidInput indicates a line of input is not a coordinate tuple.
	ErrInvalidInput = errors.New("dynamo: invalid body description")

	// ErrEmptyInput indicates the input held no bodies at all.
	ErrEmptyInput = errors.New("dynamo: input contains no bodies")

	// ErrEmptySystem indicates a simulation was started without bodies.
	ErrEmptySystem = errors.New("dynamo: system has no bodies")

	// ErrNoRecurrence indicates the step bound was hit before every axis recurred.
	ErrNoRecurrence = errors.New("dynamo: no recurrence within step bound")

	// ErrCanceled indicates the simulation was interrupted.
	ErrCanceled = errors.New("dynamo: simulation canceled by context")

	// ErrOverflow indicates a period does not fit in 64 bits.
	ErrOverflow = errors.New("dynamo: period overflows int64")

	// ErrInvalidConfig indicates a run configuration outside valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
