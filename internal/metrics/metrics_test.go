package metrics_test

import (
	"math"
	"testing"

	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/integrators"
	"github.com/san-kum/freude/internal/metrics"
	"github.com/san-kum/freude/internal/models"
	"github.com/san-kum/freude/internal/sim"
	"github.com/san-kum/freude/internal/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergyDriftEuler(t *testing.T) {
	const dt = 1.0 / 128
	osc := models.NewOscillator(1)
	drift := metrics.NewEnergyDrift[*models.Oscillator, space.T2]()
	st := integrators.NewEuler[space.T2](space.Tuple[space.T2]{}, osc.DefaultState(), dt)
	in := sim.New[space.T2, *models.Oscillator](st, osc, drift, osc.DefaultState())

	in.IntegrateNSteps(11)

	// Explicit Euler scales the oscillator energy by 1+dt² every step; the
	// reference is the energy after the first observed step.
	want := math.Pow(1+dt*dt, 10) - 1
	assert.InEpsilon(t, want, drift.Value(), 1e-9)
	assert.InEpsilon(t, 0.5*math.Pow(1+dt*dt, 11), drift.Current(), 1e-12)
	assert.Equal(t, "energy_drift", drift.Name())

	drift.Reset()
	assert.Zero(t, drift.Value())
}

func TestEnergyDriftIgnoresNonHamiltonian(t *testing.T) {
	drift := metrics.NewEnergyDrift[*models.Exponential, float64]()
	x := 3.0
	drift.Observe(models.NewExponential(1), &x, 0.1)
	assert.Zero(t, drift.Value())
	assert.Zero(t, drift.Current())
}

func TestStability(t *testing.T) {
	s := metrics.NewStability[any, space.Vec](space.Seq{}, 10)
	assert.Equal(t, 1.0, s.Value(), "no samples counts as stable")

	for _, x := range []space.Vec{{1, 2}, {1, 20}, {math.NaN(), 0}, {math.Inf(-1), 0}, {-9, 9}} {
		s.Observe(nil, &x, 0.1)
	}
	assert.InDelta(t, 0.4, s.Value(), 1e-15)
	assert.Equal(t, "stability", s.Name())

	s.Reset()
	assert.Equal(t, 1.0, s.Value())
}

func TestRecorder(t *testing.T) {
	r := metrics.NewRecorder[any, space.Vec](space.Seq{}, 2)
	x := space.Vec{0, 10}
	r.Record(x)
	for i := 1; i <= 5; i++ {
		x[0] = float64(i)
		r.Observe(nil, &x, 0.25)
	}

	require.Equal(t, 3, r.Len())
	assert.Equal(t, []float64{0, 0.5, 1}, r.Times)
	assert.Equal(t, []float64{0, 2, 4}, r.Series(0))
	assert.Equal(t, []float64{10, 10, 10}, r.Series(1))
	assert.Empty(t, r.Series(2))

	// Samples are copies.
	x[1] = -1
	assert.Equal(t, 10.0, r.States[2][1])

	r.Reset()
	assert.Zero(t, r.Len())

	every := metrics.NewRecorder[any, space.Vec](space.Seq{}, 0)
	every.Observe(nil, &x, 1)
	every.Observe(nil, &x, 1)
	assert.Equal(t, 2, every.Len())
}

func TestTimeAverage(t *testing.T) {
	a := metrics.NewTimeAverage[any, space.Vec](space.Seq{})
	x := space.Vec{100, 100}
	a.Observe(nil, &x, 1)
	a.AfterWarmup(nil, &x)

	x = space.Vec{1, 4}
	a.Observe(nil, &x, 0.5)
	x = space.Vec{3, 4}
	a.Observe(nil, &x, 0.5)
	a.AfterRun(nil, &x)

	assert.Equal(t, []float64{2, 4}, a.Mean)
	assert.Equal(t, 2.0, a.Value())
	name, v := a.Component(1)
	assert.Equal(t, "mean_x1", name)
	assert.Equal(t, 4.0, v)

	empty := metrics.NewTimeAverage[any, space.Vec](space.Seq{})
	empty.AfterRun(nil, &x)
	assert.Zero(t, empty.Value())
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 2*math.Pi-0.5, metrics.Wrap(-0.5), 1e-15)
	assert.Zero(t, metrics.Wrap(2*math.Pi))
	assert.InDelta(t, 7-2*math.Pi, metrics.Wrap(7), 1e-15)
	assert.Equal(t, 1.0, metrics.Wrap(1))

	p := metrics.NewPhaseWrap[any, space.Vec](space.Seq{})
	x := space.Vec{-1, 1, 7}
	p.Observe(nil, &x, 0.1)
	assert.Equal(t, 2, p.Wraps)
	for _, v := range x {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 2*math.Pi)
	}
}

type targets struct {
	dynamo.NullObserver[any, space.Vec]
	seen []float64
}

func (tg *targets) ObserveTarget(_ any, _ *space.Vec, elapsed float64) {
	tg.seen = append(tg.seen, elapsed)
}

func TestMultiAndCounter(t *testing.T) {
	c := &metrics.Counter[any, space.Vec]{}
	tg := &targets{}
	m := metrics.Multi[any, space.Vec]{c, tg}

	x := space.Vec{1}
	m.Observe(nil, &x, 0.5)
	m.Observe(nil, &x, 0.25)
	m.AfterWarmup(nil, &x)
	m.AfterRun(nil, &x)
	m.ObserveTarget(nil, &x, 0.75)

	assert.Equal(t, 2, c.Steps)
	assert.Equal(t, 0.75, c.Elapsed)
	assert.Equal(t, 0.25, c.LastStep)
	assert.Equal(t, 1, c.Runs)
	assert.Equal(t, 1, c.Warmups)
	assert.Equal(t, []float64{0.75}, tg.seen)

	assert.Equal(t, map[string]float64{"steps": 2}, metrics.Collect(c))
	c.Reset()
	assert.Zero(t, c.Value())
}

func TestCollect(t *testing.T) {
	s := metrics.NewStability[any, space.Vec](space.Seq{}, 1)
	c := &metrics.Counter[any, space.Vec]{}
	x := space.Vec{5}
	s.Observe(nil, &x, 1)
	c.Observe(nil, &x, 1)

	got := metrics.Collect(s, c)
	assert.Equal(t, map[string]float64{"stability": 0, "steps": 1}, got)
}
