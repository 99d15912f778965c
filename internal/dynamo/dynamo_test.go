package dynamo_test

import (
	"math"
	"testing"

	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renormalising struct{ commits int }

func (r *renormalising) DifferentiateInto(x space.Vec, dx *space.Vec) {
	for i := range x {
		(*dx)[i] = -x[i]
	}
}

func (r *renormalising) UpdateState(x *space.Vec, value space.Vec) {
	r.commits++
	var norm float64
	for _, v := range value {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	for i, v := range value {
		(*x)[i] = v / norm
	}
}

func TestFuncAdapters(t *testing.T) {
	f := dynamo.Func[float64](func(x float64) float64 { return 2 * x })
	var dx float64
	f.DifferentiateInto(3, &dx)
	assert.Equal(t, 6.0, dx)

	g := dynamo.IntoFunc[space.Vec](func(x space.Vec, dx *space.Vec) {
		(*dx)[0] = x[1]
		(*dx)[1] = -x[0]
	})
	out := make(space.Vec, 2)
	g.DifferentiateInto(space.Vec{1, 2}, &out)
	assert.Equal(t, space.Vec{2, -1}, out)
}

func TestDifferentiateLeavesStateAlone(t *testing.T) {
	x := space.Vec{1, 2}
	dx := dynamo.Differentiate[space.Vec](space.Seq{}, &renormalising{}, x)
	assert.Equal(t, space.Vec{-1, -2}, dx)
	assert.Equal(t, space.Vec{1, 2}, x, "state modified")
}

func TestCommit(t *testing.T) {
	sys := &renormalising{}
	x := space.Vec{0, 0}
	dynamo.Commit[space.Vec](space.Seq{}, sys, &x, space.Vec{3, 4})
	assert.Equal(t, 1, sys.commits, "UpdateState calls")
	assert.InDelta(t, 0.6, x[0], 1e-15)
	assert.InDelta(t, 0.8, x[1], 1e-15)

	plain := dynamo.IntoFunc[space.Vec](func(x space.Vec, dx *space.Vec) {})
	dynamo.Commit[space.Vec](space.Seq{}, plain, &x, space.Vec{3, 4})
	assert.Equal(t, space.Vec{3, 4}, x)
}

func TestValidTimestep(t *testing.T) {
	cases := []struct {
		dt   float64
		want bool
	}{
		{0.01, true},
		{1e-300, true},
		{0, false},
		{-0.1, false},
		{math.Inf(1), false},
		{math.NaN(), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, dynamo.ValidTimestep(c.dt), "dt=%v", c.dt)
	}
}

func TestNullObserver(t *testing.T) {
	var o dynamo.Observer[*renormalising, space.Vec] = dynamo.NullObserver[*renormalising, space.Vec]{}
	x := space.Vec{1}
	o.Observe(nil, &x, 0.1)
	o.AfterRun(nil, &x)
	o.AfterWarmup(nil, &x)
	assert.Equal(t, space.Vec{1}, x, "NullObserver touched the state")
}

func TestFailPanicsWithPreconditionError(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "panic value is not an error")

		var pe *dynamo.PreconditionError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "op", pe.Op)
		assert.ErrorIs(t, err, dynamo.ErrInvalidTimestep)
		assert.EqualError(t, err, "op: "+dynamo.ErrInvalidTimestep.Error())
	}()
	dynamo.Fail("op", dynamo.ErrInvalidTimestep)
}
