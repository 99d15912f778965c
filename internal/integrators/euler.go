package integrators

import "github.com/san-kum/freude/internal/dynamo"

// Euler is the explicit first-order method
//
//	x' = x + dt*f(x)
type Euler[S any] struct {
	space dynamo.Space[S]
	dt    float64
	temp  S
}

// NewEuler returns an Euler stepper with one scratch buffer shaped like x0.
func NewEuler[S any](sp dynamo.Space[S], x0 S, dt float64) *Euler[S] {
	mustConfig("integrators.NewEuler", sp, dt)
	return &Euler[S]{space: sp, dt: dt, temp: sp.Clone(x0)}
}

func (e *Euler[S]) DoStep(sys dynamo.System[S], x *S) {
	sys.DifferentiateInto(*x, &e.temp)
	e.space.AddScaled(&e.temp, *x, e.dt, e.temp)
	dynamo.Commit(e.space, sys, x, e.temp)
}

func (e *Euler[S]) Timestep() float64 { return e.dt }
