package zip

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSameShape is matched by a *LockstepError for operands of different shape.
	ErrNotSameShape = errors.New("zip: containers do not have the same shape")

	// ErrNotSameLayout is matched by a *LockstepError for an operand without a
	// contiguous row-major backing slice.
	ErrNotSameLayout = errors.New("zip: containers do not have the same layout")
)

// Kind distinguishes the two ways aligned containers can disagree.
type Kind int

const (
	NotSameShape Kind = iota + 1
	NotSameLayout
)

func (k Kind) String() string {
	switch k {
	case NotSameShape:
		return "not same shape"
	case NotSameLayout:
		return "not same layout"
	default:
		return "unknown"
	}
}

// LockstepError reports which operand broke the alignment. Operand 0 is the
// output (or the first folded container), 1..N the inputs in call order.
type LockstepError struct {
	Kind    Kind
	Operand int
}

func (e *LockstepError) Error() string {
	return fmt.Sprintf("zip: operand %d: %s", e.Operand, e.Kind)
}

func (e *LockstepError) Unwrap() error {
	if e.Kind == NotSameLayout {
		return ErrNotSameLayout
	}
	return ErrNotSameShape
}
