package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for an empty shape or a non-positive extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an index outside the array bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible shape, or an
	// index with the wrong number of axes.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")
)

func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}
