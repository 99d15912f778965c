// Package ndarray provides a strided N-dimensional float64 array with a fixed
// shape. Arrays created by New and FromSlice are contiguous in row-major
// order; Transpose and Slice return views over the same storage whose layout
// may not be.
package ndarray

// Array is an N-dimensional array of float64 values. The shape never changes
// after construction.
type Array struct {
	shape   []int
	strides []int
	offset  int
	data    []float64
}

func validShape(shape []int) (int, bool) {
	if len(shape) == 0 {
		return 0, false
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, false
		}
		n *= d
	}
	return n, true
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}
	return strides
}

// New returns a zero-filled contiguous array with the given shape.
func New(shape ...int) (*Array, error) {
	n, ok := validShape(shape)
	if !ok {
		return nil, arrayErrorf("New", ErrBadShape)
	}
	sh := append([]int(nil), shape...)
	return &Array{shape: sh, strides: rowMajorStrides(sh), data: make([]float64, n)}, nil
}

// FromSlice wraps data as a contiguous array of the given shape. The slice is
// used as backing storage, not copied.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	n, ok := validShape(shape)
	if !ok {
		return nil, arrayErrorf("FromSlice", ErrBadShape)
	}
	if len(data) != n {
		return nil, arrayErrorf("FromSlice", ErrDimensionMismatch)
	}
	sh := append([]int(nil), shape...)
	return &Array{shape: sh, strides: rowMajorStrides(sh), data: data}, nil
}

// MustNew is New for shapes known to be valid; it panics otherwise.
func MustNew(shape ...int) *Array {
	a, err := New(shape...)
	if err != nil {
		panic(err)
	}
	return a
}

// Shape returns a copy of the extents.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Dim is the extent of axis. It does not copy the shape.
func (a *Array) Dim(axis int) int { return a.shape[axis] }

// Ndim is the number of axes.
func (a *Array) Ndim() int { return len(a.shape) }

// Size is the total number of elements.
func (a *Array) Size() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// SameShape reports whether a and b have identical extents.
func (a *Array) SameShape(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i, d := range a.shape {
		if b.shape[i] != d {
			return false
		}
	}
	return true
}

// Contiguous reports whether the elements occupy one row-major run of storage.
func (a *Array) Contiguous() bool {
	s := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] != 1 && a.strides[i] != s {
			return false
		}
		s *= a.shape[i]
	}
	return true
}

// Flat returns the row-major elements when the array is contiguous. The
// returned slice aliases the array.
func (a *Array) Flat() ([]float64, bool) {
	if !a.Contiguous() {
		return nil, false
	}
	return a.data[a.offset : a.offset+a.Size()], true
}

func (a *Array) offsetOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrDimensionMismatch
	}
	off := a.offset
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return 0, ErrOutOfRange
		}
		off += v * a.strides[i]
	}
	return off, nil
}

// flatOffset maps a row-major element number to a storage offset.
func (a *Array) flatOffset(n int) int {
	off := a.offset
	for i := len(a.shape) - 1; i >= 0; i-- {
		off += (n % a.shape[i]) * a.strides[i]
		n /= a.shape[i]
	}
	return off
}

// At returns the element at idx.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		return 0, arrayErrorf("At", err)
	}
	return a.data[off], nil
}

// Set stores v at idx.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offsetOf(idx)
	if err != nil {
		return arrayErrorf("Set", err)
	}
	a.data[off] = v
	return nil
}

// AtFlat returns the n-th element in row-major order. It panics when n is
// out of range, like a slice index.
func (a *Array) AtFlat(n int) float64 {
	if n < 0 || n >= a.Size() {
		panic(arrayErrorf("AtFlat", ErrOutOfRange))
	}
	return a.data[a.flatOffset(n)]
}

// SetFlat stores v as the n-th element in row-major order.
func (a *Array) SetFlat(n int, v float64) {
	if n < 0 || n >= a.Size() {
		panic(arrayErrorf("SetFlat", ErrOutOfRange))
	}
	a.data[a.flatOffset(n)] = v
}

// Clone returns a contiguous copy of a, whatever the layout of a.
func (a *Array) Clone() *Array {
	c := MustNew(a.shape...)
	if s, ok := a.Flat(); ok {
		copy(c.data, s)
		return c
	}
	for i := range c.data {
		c.data[i] = a.data[a.flatOffset(i)]
	}
	return c
}

// CopyFrom overwrites a elementwise with b.
func (a *Array) CopyFrom(b *Array) error {
	if !a.SameShape(b) {
		return arrayErrorf("CopyFrom", ErrDimensionMismatch)
	}
	dst, okA := a.Flat()
	src, okB := b.Flat()
	if okA && okB {
		copy(dst, src)
		return nil
	}
	for i, n := 0, a.Size(); i < n; i++ {
		a.data[a.flatOffset(i)] = b.data[b.flatOffset(i)]
	}
	return nil
}

// Fill sets every element to v.
func (a *Array) Fill(v float64) {
	for i, n := 0, a.Size(); i < n; i++ {
		a.data[a.flatOffset(i)] = v
	}
}

// Transpose returns a view with the axes reversed. For more than one
// non-trivial axis the view is not contiguous.
func (a *Array) Transpose() *Array {
	n := len(a.shape)
	t := &Array{shape: make([]int, n), strides: make([]int, n), offset: a.offset, data: a.data}
	for i := 0; i < n; i++ {
		t.shape[i] = a.shape[n-1-i]
		t.strides[i] = a.strides[n-1-i]
	}
	return t
}

// Slice returns a view restricted to [from, to) along axis.
func (a *Array) Slice(axis, from, to int) (*Array, error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, arrayErrorf("Slice", ErrDimensionMismatch)
	}
	if from < 0 || to > a.shape[axis] || from >= to {
		return nil, arrayErrorf("Slice", ErrOutOfRange)
	}
	v := &Array{
		shape:   a.Shape(),
		strides: append([]int(nil), a.strides...),
		offset:  a.offset + from*a.strides[axis],
		data:    a.data,
	}
	v.shape[axis] = to - from
	return v, nil
}
