package integrators

import "github.com/san-kum/freude/internal/dynamo"

// RK4 is the classical fourth-order Runge-Kutta method.
type RK4[S any] struct {
	space dynamo.Space[S]

	dt, dt2, dt3, dt6 float64

	temp           S
	k1, k2, k3, k4 S
}

// NewRK4 returns an RK4 stepper. All five scratch buffers are cloned from x0
// here and reused by every step.
func NewRK4[S any](sp dynamo.Space[S], x0 S, dt float64) *RK4[S] {
	mustConfig("integrators.NewRK4", sp, dt)
	return &RK4[S]{
		space: sp,
		dt:    dt,
		dt2:   dt / 2,
		dt3:   dt / 3,
		dt6:   dt / 6,
		temp:  sp.Clone(x0),
		k1:    sp.Clone(x0),
		k2:    sp.Clone(x0),
		k3:    sp.Clone(x0),
		k4:    sp.Clone(x0),
	}
}

func (r *RK4[S]) DoStep(sys dynamo.System[S], x *S) {
	sys.DifferentiateInto(*x, &r.k1)

	r.space.AddScaled(&r.temp, *x, r.dt2, r.k1)
	sys.DifferentiateInto(r.temp, &r.k2)

	r.space.AddScaled(&r.temp, *x, r.dt2, r.k2)
	sys.DifferentiateInto(r.temp, &r.k3)

	r.space.AddScaled(&r.temp, *x, r.dt, r.k3)
	sys.DifferentiateInto(r.temp, &r.k4)

	r.space.AddScaled4(&r.temp, *x, r.dt6, r.k1, r.dt3, r.k2, r.dt3, r.k3, r.dt6, r.k4)
	dynamo.Commit(r.space, sys, x, r.temp)
}

func (r *RK4[S]) Timestep() float64 { return r.dt }
