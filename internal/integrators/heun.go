package integrators

import "github.com/san-kum/freude/internal/dynamo"

// Heun is the second-order improved Euler method
//
//	k1 = f(x)
//	k2 = f(x + dt*k1)
//	x' = x + dt/2*(k1 + k2)
type Heun[S any] struct {
	space dynamo.Space[S]
	dt    float64
	dt2   float64

	temp   S
	k1, k2 S
}

// NewHeun returns a Heun stepper with scratch buffers shaped like x0.
func NewHeun[S any](sp dynamo.Space[S], x0 S, dt float64) *Heun[S] {
	mustConfig("integrators.NewHeun", sp, dt)
	return &Heun[S]{
		space: sp,
		dt:    dt,
		dt2:   dt / 2,
		temp:  sp.Clone(x0),
		k1:    sp.Clone(x0),
		k2:    sp.Clone(x0),
	}
}

func (h *Heun[S]) DoStep(sys dynamo.System[S], x *S) {
	sys.DifferentiateInto(*x, &h.k1)

	h.space.AddScaled(&h.temp, *x, h.dt, h.k1)
	sys.DifferentiateInto(h.temp, &h.k2)

	h.space.AddScaled2(&h.temp, *x, h.dt2, h.k1, h.dt2, h.k2)
	dynamo.Commit(h.space, sys, x, h.temp)
}

func (h *Heun[S]) Timestep() float64 { return h.dt }
