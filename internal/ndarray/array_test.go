package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadShapes(t *testing.T) {
	for _, shape := range [][]int{nil, {0}, {3, -1}} {
		_, err := New(shape...)
		assert.ErrorIs(t, err, ErrBadShape, "New(%v)", shape)
	}
	_, err := FromSlice([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestIndexing(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, a.Ndim())
	require.Equal(t, 6, a.Size())

	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	require.NoError(t, a.Set(9, 0, 1))
	assert.Equal(t, 9.0, a.AtFlat(1))

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = a.At(0)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestShapeIsCopied(t *testing.T) {
	a := MustNew(2, 3)
	s := a.Shape()
	s[0] = 5
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 2, a.Dim(0))
	assert.Equal(t, 3, a.Dim(1))
}

func TestDimDoesNotAllocate(t *testing.T) {
	a := MustNew(4, 5)
	var n int
	allocs := testing.AllocsPerRun(100, func() {
		n = a.Dim(0) * a.Dim(1)
	})
	assert.Zero(t, allocs)
	assert.Equal(t, 20, n)
}

func TestTransposeView(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	v := a.Transpose()

	require.Equal(t, []int{3, 2}, v.Shape())
	assert.Equal(t, 3, v.Dim(0))
	assert.False(t, v.Contiguous(), "transpose of a 2x3 array")
	_, ok := v.Flat()
	assert.False(t, ok, "Flat on a strided view")

	x, err := v.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, x)

	// Row-major order of the view walks the columns of a.
	got := make([]float64, v.Size())
	for i := range got {
		got[i] = v.AtFlat(i)
	}
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, got)

	require.NoError(t, v.Set(-1, 0, 1))
	x, _ = a.At(1, 0)
	assert.Equal(t, -1.0, x, "view shares storage")

	c := v.Clone()
	assert.True(t, c.Contiguous())
	flat, _ := c.Flat()
	assert.Equal(t, []float64{1, -1, 2, 5, 3, 6}, flat)
}

func TestSliceView(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	rows, err := a.Slice(0, 1, 3)
	require.NoError(t, err)
	assert.True(t, rows.Contiguous())
	flat, _ := rows.Flat()
	assert.Equal(t, []float64{3, 4, 5, 6}, flat)

	col, err := a.Slice(1, 1, 2)
	require.NoError(t, err)
	assert.False(t, col.Contiguous())

	_, err = a.Slice(2, 0, 1)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = a.Slice(0, 2, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCopyFromAndFill(t *testing.T) {
	a := MustNew(2, 3)
	src, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	require.NoError(t, a.CopyFrom(src.Transpose()))
	flat, _ := a.Flat()
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, flat)
	assert.ErrorIs(t, a.CopyFrom(src), ErrDimensionMismatch)

	a.Fill(2.5)
	for i := 0; i < a.Size(); i++ {
		require.Equal(t, 2.5, a.AtFlat(i), "element %d", i)
	}
}

func TestAtFlatPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { MustNew(2, 3).AtFlat(6) })
	assert.Panics(t, func() { MustNew(2, 3).SetFlat(-1, 0) })
}
