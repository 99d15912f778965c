package space

import (
	"errors"
	"fmt"

	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/zip"
)

// Vec is a dynamically sized state. Its length is fixed for the lifetime of
// any stepper built against it.
type Vec []float64

// SameShape reports whether v and o have the same length.
func (v Vec) SameShape(o Vec) bool { return len(v) == len(o) }

// Flat returns v itself; a Vec is always contiguous.
func (v Vec) Flat() ([]float64, bool) { return v, true }

// Seq is the space of Vec states.
type Seq struct{}

var _ dynamo.Space[Vec] = Seq{}

// mustZip turns a lockstep failure into a precondition panic.
func mustZip(op string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, zip.ErrNotSameLayout) {
		dynamo.Fail(op, fmt.Errorf("%w: %w", dynamo.ErrLayoutMismatch, err))
	}
	dynamo.Fail(op, fmt.Errorf("%w: %w", dynamo.ErrShapeMismatch, err))
}

func (Seq) Clone(x Vec) Vec {
	c := make(Vec, len(x))
	copy(c, x)
	return c
}

func (Seq) Assign(dst *Vec, src Vec) {
	mustZip("space.Seq.Assign", zip.ZipMutWith1(*dst, src, func(o *float64, s float64) {
		*o = s
	}))
}

func (Seq) AddScaled(dst *Vec, x Vec, a float64, k Vec) {
	mustZip("space.Seq.AddScaled", zip.ZipMutWith2(*dst, x, k, func(o *float64, x, k float64) {
		*o = x + a*k
	}))
}

func (Seq) AddScaled2(dst *Vec, x Vec, a float64, k1 Vec, b float64, k2 Vec) {
	mustZip("space.Seq.AddScaled2", zip.ZipMutWith3(*dst, x, k1, k2, func(o *float64, x, k1, k2 float64) {
		*o = x + a*k1 + b*k2
	}))
}

func (Seq) AddScaled4(dst *Vec, x Vec, a float64, k1 Vec, b float64, k2 Vec, c float64, k3 Vec, d float64, k4 Vec) {
	mustZip("space.Seq.AddScaled4", zip.ZipMutWith5(*dst, x, k1, k2, k3, k4, func(o *float64, x, k1, k2, k3, k4 float64) {
		*o = x + a*k1 + b*k2 + c*k3 + d*k4
	}))
}

func (Seq) Len(x Vec) int { return len(x) }

func (Seq) At(x Vec, i int) float64 { return x[i] }

func (Seq) SetAt(x *Vec, i int, v float64) { (*x)[i] = v }
