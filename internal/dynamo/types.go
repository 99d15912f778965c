package dynamo

import "math"

// System is the right-hand side of an ODE. DifferentiateInto must leave x
// untouched and overwrite every element of *dx. The result may depend only on
// x and the system's parameters.
type System[S any] interface {
	DifferentiateInto(x S, dx *S)
}

// Updater is implemented by systems that need to intercept the commit of a
// new state, e.g. to renormalise an auxiliary vector integrated alongside the
// primary trajectory. UpdateState is called exactly once per completed step
// and must leave *x holding the committed value.
type Updater[S any] interface {
	UpdateState(x *S, value S)
}

// Hamiltonian is implemented by conservative systems that can report the
// energy of a state.
type Hamiltonian[S any] interface {
	Energy(x S) float64
}

// Func adapts a plain function to a System. The returned value is assigned
// to *dx, so Func is only suitable for value representations (float64 and
// the fixed tuples); slice-backed states would lose their scratch buffer.
type Func[S any] func(x S) S

func (f Func[S]) DifferentiateInto(x S, dx *S) { *dx = f(x) }

// IntoFunc adapts a function that writes its result in place.
type IntoFunc[S any] func(x S, dx *S)

func (f IntoFunc[S]) DifferentiateInto(x S, dx *S) { f(x, dx) }

// Space is the numeric container capability of a state representation.
// Every combining operation is a single fused elementwise pass; dst may alias
// any of the inputs.
type Space[S any] interface {
	// Clone returns a new container with the shape and values of x.
	Clone(x S) S
	// Assign overwrites *dst elementwise with src.
	Assign(dst *S, src S)
	// AddScaled sets dst = x + a*k.
	AddScaled(dst *S, x S, a float64, k S)
	// AddScaled2 sets dst = x + a*k1 + b*k2.
	AddScaled2(dst *S, x S, a float64, k1 S, b float64, k2 S)
	// AddScaled4 sets dst = x + a*k1 + b*k2 + c*k3 + d*k4.
	AddScaled4(dst *S, x S, a float64, k1 S, b float64, k2 S, c float64, k3 S, d float64, k4 S)
	// Len is the number of scalar elements in x.
	Len(x S) int
	// At reads element i in row-major order.
	At(x S, i int) float64
	// SetAt writes element i in row-major order.
	SetAt(x *S, i int, v float64)
}

// Stepper advances a state by one fixed timestep.
type Stepper[S any] interface {
	DoStep(sys System[S], x *S)
	Timestep() float64
}

// Observer is invoked by the integrator after every completed step and once
// at the end of a bounded run or warmup. It may mutate the state.
type Observer[Sy, S any] interface {
	Observe(sys Sy, x *S, dt float64)
	AfterRun(sys Sy, x *S)
	AfterWarmup(sys Sy, x *S)
}

// RangeObserver is an optional extension of Observer. The range operations of
// the integrator call ObserveTarget once after each target of the range with
// the time elapsed for that target.
type RangeObserver[Sy, S any] interface {
	ObserveTarget(sys Sy, x *S, elapsed float64)
}

// Hooks provides no-op run boundary hooks. Embed it in observers that only
// care about individual steps.
type Hooks[Sy, S any] struct{}

func (Hooks[Sy, S]) AfterRun(Sy, *S)    {}
func (Hooks[Sy, S]) AfterWarmup(Sy, *S) {}

// NullObserver does nothing. It is the default for uninstrumented runs.
type NullObserver[Sy, S any] struct {
	Hooks[Sy, S]
}

func (NullObserver[Sy, S]) Observe(Sy, *S, float64) {}

// Differentiate clones x and evaluates sys into the clone. It allocates and
// is meant for inspection, not for stepping loops.
func Differentiate[S any](sp Space[S], sys System[S], x S) S {
	dx := sp.Clone(x)
	sys.DifferentiateInto(x, &dx)
	return dx
}

// Commit stores value into *x, through the system's Updater when it has one.
func Commit[S any](sp Space[S], sys System[S], x *S, value S) {
	if u, ok := sys.(Updater[S]); ok {
		u.UpdateState(x, value)
		return
	}
	sp.Assign(x, value)
}

// ValidTimestep reports whether dt can drive a stepper.
func ValidTimestep(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 0) && !math.IsNaN(dt)
}
