package dynamo

import (
	"errors"
	"fmt"
)

// Precondition violations. The core panics with errors wrapping these values;
// none of them is recoverable.
var (
	// ErrShapeMismatch indicates that a state and a scratch buffer disagree in shape.
	ErrShapeMismatch = errors.New("dynamo: shape mismatch between state and scratch buffer")

	// ErrLayoutMismatch indicates a container that is not laid out contiguously.
	ErrLayoutMismatch = errors.New("dynamo: container layout is not contiguous")

	// ErrInvalidTimestep indicates a timestep that is not a positive finite number.
	ErrInvalidTimestep = errors.New("dynamo: timestep must be positive and finite")

	// ErrNilSpace indicates a stepper constructed without a numeric container capability.
	ErrNilSpace = errors.New("dynamo: nil space")
)

// PreconditionError carries the operation that detected a violated precondition.
type PreconditionError struct {
	Op      string
	Wrapped error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
}

func (e *PreconditionError) Unwrap() error {
	return e.Wrapped
}

// Fail panics with a *PreconditionError for op. It is the single place where
// the core turns a programmer error into a panic.
func Fail(op string, err error) {
	panic(&PreconditionError{Op: op, Wrapped: err})
}
