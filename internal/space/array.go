package space

import (
	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/ndarray"
	"github.com/san-kum/freude/internal/zip"
)

// Array is the space of N-dimensional array states. The live state and the
// scratch buffers must all be contiguous; Clone always returns a contiguous
// array.
type Array struct{}

var _ dynamo.Space[*ndarray.Array] = Array{}

func (Array) Clone(x *ndarray.Array) *ndarray.Array { return x.Clone() }

func (Array) Assign(dst **ndarray.Array, src *ndarray.Array) {
	mustZip("space.Array.Assign", zip.ZipMutWith1(*dst, src, func(o *float64, s float64) {
		*o = s
	}))
}

func (Array) AddScaled(dst **ndarray.Array, x *ndarray.Array, a float64, k *ndarray.Array) {
	mustZip("space.Array.AddScaled", zip.ZipMutWith2(*dst, x, k, func(o *float64, x, k float64) {
		*o = x + a*k
	}))
}

func (Array) AddScaled2(dst **ndarray.Array, x *ndarray.Array, a float64, k1 *ndarray.Array, b float64, k2 *ndarray.Array) {
	mustZip("space.Array.AddScaled2", zip.ZipMutWith3(*dst, x, k1, k2, func(o *float64, x, k1, k2 float64) {
		*o = x + a*k1 + b*k2
	}))
}

func (Array) AddScaled4(dst **ndarray.Array, x *ndarray.Array, a float64, k1 *ndarray.Array, b float64, k2 *ndarray.Array, c float64, k3 *ndarray.Array, d float64, k4 *ndarray.Array) {
	mustZip("space.Array.AddScaled4", zip.ZipMutWith5(*dst, x, k1, k2, k3, k4, func(o *float64, x, k1, k2, k3, k4 float64) {
		*o = x + a*k1 + b*k2 + c*k3 + d*k4
	}))
}

func (Array) Len(x *ndarray.Array) int { return x.Size() }

func (Array) At(x *ndarray.Array, i int) float64 { return x.AtFlat(i) }

func (Array) SetAt(x **ndarray.Array, i int, v float64) { (*x).SetFlat(i, v) }
