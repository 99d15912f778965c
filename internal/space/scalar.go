package space

import (
	"fmt"

	"github.com/san-kum/freude/internal/dynamo"
)

// Scalar is the space of single float64 states.
type Scalar struct{}

var _ dynamo.Space[float64] = Scalar{}

func (Scalar) Clone(x float64) float64 { return x }

func (Scalar) Assign(dst *float64, src float64) { *dst = src }

func (Scalar) AddScaled(dst *float64, x, a, k float64) { *dst = x + a*k }

func (Scalar) AddScaled2(dst *float64, x, a, k1, b, k2 float64) {
	*dst = x + a*k1 + b*k2
}

func (Scalar) AddScaled4(dst *float64, x, a, k1, b, k2, c, k3, d, k4 float64) {
	*dst = x + a*k1 + b*k2 + c*k3 + d*k4
}

func (Scalar) Len(float64) int { return 1 }

func (Scalar) At(x float64, i int) float64 {
	if i != 0 {
		dynamo.Fail("space.Scalar.At", fmt.Errorf("%w: index %d", dynamo.ErrShapeMismatch, i))
	}
	return x
}

func (Scalar) SetAt(x *float64, i int, v float64) {
	if i != 0 {
		dynamo.Fail("space.Scalar.SetAt", fmt.Errorf("%w: index %d", dynamo.ErrShapeMismatch, i))
	}
	*x = v
}
