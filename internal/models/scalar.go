package models

import "math"

// Exponential is dx/dt = Rate*x with solution x0*exp(Rate*t).
type Exponential struct {
	Rate float64
}

func NewExponential(rate float64) *Exponential { return &Exponential{Rate: rate} }

func (e *Exponential) DifferentiateInto(x float64, dx *float64) { *dx = e.Rate * x }

// Exact returns the analytic solution at t.
func (e *Exponential) Exact(x0, t float64) float64 { return x0 * math.Exp(e.Rate*t) }

func (e *Exponential) params() []param { return []param{{"rate", &e.Rate}} }

func (e *Exponential) Params() map[string]float64 { return collect(e.params()) }

func (e *Exponential) SetParam(n string, v float64) error { return assign(e.params(), n, v) }

// SineDrift is dx/dt = A + sin(x).
type SineDrift struct {
	A float64
}

func NewSineDrift(a float64) *SineDrift { return &SineDrift{A: a} }

func (s *SineDrift) DifferentiateInto(x float64, dx *float64) { *dx = s.A + math.Sin(x) }

func (s *SineDrift) params() []param { return []param{{"a", &s.A}} }

func (s *SineDrift) Params() map[string]float64 { return collect(s.params()) }

func (s *SineDrift) SetParam(n string, v float64) error { return assign(s.params(), n, v) }
