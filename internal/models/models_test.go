package models

import (
	"math"
	"testing"

	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/ndarray"
	"github.com/san-kum/freude/internal/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var (
	_ dynamo.System[float64]        = (*Exponential)(nil)
	_ dynamo.System[space.T2]       = (*Pendulum)(nil)
	_ dynamo.Hamiltonian[space.T2]  = (*Oscillator)(nil)
	_ dynamo.System[space.T3]       = (*Lorenz)(nil)
	_ dynamo.System[space.Vec]      = (*LorenzVec)(nil)
	_ dynamo.System[space.Vec]      = (*Kuramoto)(nil)
	_ dynamo.System[space.Vec]      = (*NeuralNet)(nil)
	_ dynamo.System[*ndarray.Array] = (*Heat)(nil)
	_ dynamo.System[*mat.Dense]     = (*Linear)(nil)
)

func TestPendulumAtRest(t *testing.T) {
	p := NewPendulum()
	var dx space.T2
	p.DifferentiateInto(space.T2{0, 0}, &dx)
	assert.Equal(t, space.T2{0, 0}, dx)
	assert.Zero(t, p.Energy(space.T2{0, 0}))
}

func TestPendulumRestoring(t *testing.T) {
	p := NewPendulum()
	p.Damping = 0
	var dx space.T2
	p.DifferentiateInto(space.T2{0.1, 0}, &dx)
	assert.InDelta(t, -p.Gravity/p.Length*math.Sin(0.1), dx[1], 1e-12)
}

func TestOscillatorEnergy(t *testing.T) {
	assert.InDelta(t, 2, NewOscillator(2).Energy(space.T2{1, 0}), 1e-12)
}

func TestLorenzVecMatchesTuple(t *testing.T) {
	x := space.T3{1.5, -2, 20}
	var d3 space.T3
	NewLorenz().DifferentiateInto(x, &d3)
	dv := make(space.Vec, 3)
	NewLorenzVec().DifferentiateInto(space.Vec{x[0], x[1], x[2]}, &dv)
	assert.Equal(t, d3[:], []float64(dv))
}

func TestKuramotoMeanFieldMatchesPairwise(t *testing.T) {
	k := NewKuramoto(16, 1.5, 7)
	x := k.DefaultState()
	x[3] += 0.4
	dx := make(space.Vec, len(x))
	k.DifferentiateInto(x, &dx)

	n := float64(len(x))
	for i := range x {
		want := k.Omega[i]
		for j := range x {
			want += k.K / n * math.Sin(x[j]-x[i])
		}
		assert.InDelta(t, want, dx[i], 1e-12, "oscillator %d", i)
	}
}

func TestKuramotoTable(t *testing.T) {
	k := NewKuramoto(8, 2, 1)
	x := k.DefaultState()
	exact := make(space.Vec, len(x))
	fast := make(space.Vec, len(x))
	k.DifferentiateInto(x, &exact)
	k.Table = DefaultTrigTable
	k.DifferentiateInto(x, &fast)
	assert.InDeltaSlice(t, []float64(exact), []float64(fast), 1e-4)
}

func TestKuramotoOrder(t *testing.T) {
	k := NewKuramoto(4, 1, 0)
	assert.InDelta(t, 1, k.Order(space.Vec{1, 1, 1, 1}), 1e-12)
	assert.InDelta(t, 0, k.Order(k.DefaultState()), 1e-12)
}

func TestTrigTable(t *testing.T) {
	for _, x := range []float64{-7, -1, 0, 0.3, 3, 100, 2*math.Pi - 1e-15} {
		s, c := DefaultTrigTable.SinCos(x)
		assert.InDelta(t, math.Sin(x), s, 1e-5, "sin(%v)", x)
		assert.InDelta(t, math.Cos(x), c, 1e-5, "cos(%v)", x)
	}
}

func TestTrigTableNonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.NotPanics(t, func() { DefaultTrigTable.SinCos(x) }, "x=%v", x)
		s, c := DefaultTrigTable.SinCos(x)
		assert.True(t, math.IsNaN(s), "sin(%v) = %v", x, s)
		assert.True(t, math.IsNaN(c), "cos(%v) = %v", x, c)
		assert.True(t, math.IsNaN(DefaultTrigTable.Sin(x)))
		assert.True(t, math.IsNaN(DefaultTrigTable.Cos(x)))
	}
}

func TestNeuralNet(t *testing.T) {
	j := mat.NewDense(2, 2, []float64{0, 1, -1, 0})
	nn := NewNeuralNetWith(j, 1)
	dx := make(space.Vec, 2)
	nn.DifferentiateInto(space.Vec{0.5, -0.25}, &dx)
	want := []float64{-0.5 + math.Tanh(-0.25), 0.25 - math.Tanh(0.5)}
	assert.InDeltaSlice(t, want, []float64(dx), 1e-12)
}

func TestNeuralNetRescale(t *testing.T) {
	nn := NewNeuralNet(10, 1.5, 3)
	before := nn.J.At(2, 3)
	require.NoError(t, nn.SetParam("g", 3))
	assert.InDelta(t, 2*before, nn.J.At(2, 3), 1e-12, "coupling doubles with g")
}

func TestHeatMode(t *testing.T) {
	h := NewHeat()
	u, lambda := h.Mode(6, 5)
	du := ndarray.MustNew(6, 5)
	h.DifferentiateInto(u, &du)
	for i := 0; i < u.Size(); i++ {
		require.InDelta(t, -lambda*u.AtFlat(i), du.AtFlat(i), 1e-12, "element %d", i)
	}
}

func TestHeatDoesNotAllocate(t *testing.T) {
	h := NewHeat()
	u, _ := h.Mode(8, 8)
	du := ndarray.MustNew(8, 8)
	allocs := testing.AllocsPerRun(100, func() {
		h.DifferentiateInto(u, &du)
	})
	assert.Zero(t, allocs)
}

func assertPanicsWith(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value %v", r)
		assert.ErrorIs(t, err, want)
	}()
	f()
}

func TestHeatRejectsView(t *testing.T) {
	h := NewHeat()
	u := ndarray.MustNew(3, 4).Transpose()
	du := ndarray.MustNew(4, 3)
	assertPanicsWith(t, dynamo.ErrLayoutMismatch, func() { h.DifferentiateInto(u, &du) })
}

func TestHeatRejectsShape(t *testing.T) {
	h := NewHeat()
	du := ndarray.MustNew(3, 4)
	assertPanicsWith(t, dynamo.ErrShapeMismatch, func() { h.DifferentiateInto(ndarray.MustNew(4, 3), &du) })

	line := ndarray.MustNew(12)
	assertPanicsWith(t, dynamo.ErrShapeMismatch, func() { h.DifferentiateInto(ndarray.MustNew(12), &line) })
}

func TestLinearRotation(t *testing.T) {
	l := NewRotation(1)
	got := l.Exact(mat.NewDense(2, 1, []float64{1, 0}), math.Pi/2)
	assert.InDelta(t, 0, got.At(0, 0), 1e-12)
	assert.InDelta(t, 1, got.At(1, 0), 1e-12)
}

func TestParams(t *testing.T) {
	l := NewLorenz()
	require.NoError(t, Apply(l, map[string]float64{"rho": 14}))
	assert.Equal(t, 14.0, l.Rho)
	assert.ErrorIs(t, l.SetParam("nope", 1), ErrUnknownParam)
	assert.Equal(t, []string{"damping", "gravity", "length", "mass"}, ParamNames(NewPendulum()))
}
