package space

import "github.com/san-kum/freude/internal/dynamo"

// Tupled is the value arithmetic a fixed-arity tuple provides. All methods
// take and return values; nothing escapes to the heap.
type Tupled[T any] interface {
	Add(o T) T
	Scale(a float64) T
	Len() int
	Get(i int) float64
	With(i int, v float64) T
}

// Tuple is the space of fixed-arity tuple states T1..T4.
type Tuple[T Tupled[T]] struct{}

var (
	_ dynamo.Space[T1] = Tuple[T1]{}
	_ dynamo.Space[T2] = Tuple[T2]{}
	_ dynamo.Space[T3] = Tuple[T3]{}
	_ dynamo.Space[T4] = Tuple[T4]{}
)

func (Tuple[T]) Clone(x T) T { return x }

func (Tuple[T]) Assign(dst *T, src T) { *dst = src }

func (Tuple[T]) AddScaled(dst *T, x T, a float64, k T) { *dst = x.Add(k.Scale(a)) }

func (Tuple[T]) AddScaled2(dst *T, x T, a float64, k1 T, b float64, k2 T) {
	*dst = x.Add(k1.Scale(a)).Add(k2.Scale(b))
}

func (Tuple[T]) AddScaled4(dst *T, x T, a float64, k1 T, b float64, k2 T, c float64, k3 T, d float64, k4 T) {
	*dst = x.Add(k1.Scale(a)).Add(k2.Scale(b)).Add(k3.Scale(c)).Add(k4.Scale(d))
}

func (Tuple[T]) Len(x T) int { return x.Len() }

func (Tuple[T]) At(x T, i int) float64 { return x.Get(i) }

func (Tuple[T]) SetAt(x *T, i int, v float64) { *x = (*x).With(i, v) }

// T1 is a one-element tuple.
type T1 [1]float64

func (t T1) Add(o T1) T1 {
	t[0] += o[0]
	return t
}

func (t T1) Scale(a float64) T1 {
	t[0] *= a
	return t
}

func (t T1) Len() int { return 1 }

func (t T1) Get(i int) float64 { return t[i] }

func (t T1) With(i int, v float64) T1 {
	t[i] = v
	return t
}

// T2 is a two-element tuple.
type T2 [2]float64

func (t T2) Add(o T2) T2 {
	for i := range t {
		t[i] += o[i]
	}
	return t
}

func (t T2) Scale(a float64) T2 {
	for i := range t {
		t[i] *= a
	}
	return t
}

func (t T2) Len() int { return 2 }

func (t T2) Get(i int) float64 { return t[i] }

func (t T2) With(i int, v float64) T2 {
	t[i] = v
	return t
}

// T3 is a three-element tuple.
type T3 [3]float64

func (t T3) Add(o T3) T3 {
	for i := range t {
		t[i] += o[i]
	}
	return t
}

func (t T3) Scale(a float64) T3 {
	for i := range t {
		t[i] *= a
	}
	return t
}

func (t T3) Len() int { return 3 }

func (t T3) Get(i int) float64 { return t[i] }

func (t T3) With(i int, v float64) T3 {
	t[i] = v
	return t
}

// T4 is a four-element tuple.
type T4 [4]float64

func (t T4) Add(o T4) T4 {
	for i := range t {
		t[i] += o[i]
	}
	return t
}

func (t T4) Scale(a float64) T4 {
	for i := range t {
		t[i] *= a
	}
	return t
}

func (t T4) Len() int { return 4 }

func (t T4) Get(i int) float64 { return t[i] }

func (t T4) With(i int, v float64) T4 {
	t[i] = v
	return t
}
