package space

import (
	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/zip"
	"gonum.org/v1/gonum/mat"
)

// dense presents a gonum matrix to the lockstep functions.
type dense struct{ m *mat.Dense }

func (d dense) SameShape(o dense) bool {
	r, c := d.m.Dims()
	or, oc := o.m.Dims()
	return r == or && c == oc
}

// Flat exposes the backing slice when rows are packed without padding.
func (d dense) Flat() ([]float64, bool) {
	raw := d.m.RawMatrix()
	if raw.Rows > 1 && raw.Stride != raw.Cols {
		return nil, false
	}
	return raw.Data[:raw.Rows*raw.Cols], true
}

// Matrix is the space of two-dimensional gonum matrix states. Views produced
// by (*mat.Dense).Slice with fewer columns than their parent are padded and
// cannot be used as live state.
type Matrix struct{}

var _ dynamo.Space[*mat.Dense] = Matrix{}

func (Matrix) Clone(x *mat.Dense) *mat.Dense { return mat.DenseCopyOf(x) }

func (Matrix) Assign(dst **mat.Dense, src *mat.Dense) {
	mustZip("space.Matrix.Assign", zip.ZipMutWith1(dense{*dst}, dense{src}, func(o *float64, s float64) {
		*o = s
	}))
}

func (Matrix) AddScaled(dst **mat.Dense, x *mat.Dense, a float64, k *mat.Dense) {
	mustZip("space.Matrix.AddScaled", zip.ZipMutWith2(dense{*dst}, dense{x}, dense{k}, func(o *float64, x, k float64) {
		*o = x + a*k
	}))
}

func (Matrix) AddScaled2(dst **mat.Dense, x *mat.Dense, a float64, k1 *mat.Dense, b float64, k2 *mat.Dense) {
	mustZip("space.Matrix.AddScaled2", zip.ZipMutWith3(dense{*dst}, dense{x}, dense{k1}, dense{k2}, func(o *float64, x, k1, k2 float64) {
		*o = x + a*k1 + b*k2
	}))
}

func (Matrix) AddScaled4(dst **mat.Dense, x *mat.Dense, a float64, k1 *mat.Dense, b float64, k2 *mat.Dense, c float64, k3 *mat.Dense, d float64, k4 *mat.Dense) {
	mustZip("space.Matrix.AddScaled4", zip.ZipMutWith5(dense{*dst}, dense{x}, dense{k1}, dense{k2}, dense{k3}, dense{k4}, func(o *float64, x, k1, k2, k3, k4 float64) {
		*o = x + a*k1 + b*k2 + c*k3 + d*k4
	}))
}

func (Matrix) Len(x *mat.Dense) int {
	r, c := x.Dims()
	return r * c
}

func (Matrix) At(x *mat.Dense, i int) float64 {
	_, c := x.Dims()
	return x.At(i/c, i%c)
}

func (Matrix) SetAt(x **mat.Dense, i int, v float64) {
	_, c := (*x).Dims()
	(*x).Set(i/c, i%c, v)
}
