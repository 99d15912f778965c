package models

import (
	"math"

	"github.com/san-kum/freude/internal/space"
)

// Oscillator is the harmonic oscillator with state [x, v].
type Oscillator struct {
	Omega float64
}

func NewOscillator(omega float64) *Oscillator { return &Oscillator{Omega: omega} }

func (o *Oscillator) DifferentiateInto(x space.T2, dx *space.T2) {
	dx[0] = x[1]
	dx[1] = -o.Omega * o.Omega * x[0]
}

func (o *Oscillator) Energy(x space.T2) float64 {
	return 0.5 * (x[1]*x[1] + o.Omega*o.Omega*x[0]*x[0])
}

func (o *Oscillator) DefaultState() space.T2 { return space.T2{1, 0} }

func (o *Oscillator) params() []param { return []param{{"omega", &o.Omega}} }

func (o *Oscillator) Params() map[string]float64 { return collect(o.params()) }

func (o *Oscillator) SetParam(n string, v float64) error { return assign(o.params(), n, v) }

// Pendulum is a damped pendulum with state [theta, omega].
type Pendulum struct {
	Mass    float64
	Length  float64
	Damping float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Mass:    1.0,
		Length:  1.0,
		Damping: 0.1,
		Gravity: 9.81,
	}
}

func (p *Pendulum) DifferentiateInto(x space.T2, dx *space.T2) {
	theta, omega := x[0], x[1]
	dx[0] = omega
	dx[1] = (-p.Damping*omega - p.Mass*p.Gravity*p.Length*math.Sin(theta)) / (p.Mass * p.Length * p.Length)
}

// Energy is the mechanical energy; it decays when Damping > 0.
func (p *Pendulum) Energy(x space.T2) float64 {
	theta, omega := x[0], x[1]
	ke := 0.5 * p.Mass * p.Length * p.Length * omega * omega
	pe := p.Mass * p.Gravity * p.Length * (1 - math.Cos(theta))
	return ke + pe
}

func (p *Pendulum) DefaultState() space.T2 { return space.T2{math.Pi / 4, 0} }

func (p *Pendulum) params() []param {
	return []param{
		{"mass", &p.Mass},
		{"length", &p.Length},
		{"damping", &p.Damping},
		{"gravity", &p.Gravity},
	}
}

func (p *Pendulum) Params() map[string]float64 { return collect(p.params()) }

func (p *Pendulum) SetParam(n string, v float64) error { return assign(p.params(), n, v) }

// VanDerPol is the Van der Pol oscillator with state [x, y], y = dx/dt:
//
//	dx/dt = y
//	dy/dt = μ(1 - x²)y - x
type VanDerPol struct {
	Mu float64
}

func NewVanDerPol() *VanDerPol { return &VanDerPol{Mu: 1.0} }

func (v *VanDerPol) DifferentiateInto(s space.T2, dx *space.T2) {
	x, y := s[0], s[1]
	dx[0] = y
	dx[1] = v.Mu*(1-x*x)*y - x
}

func (v *VanDerPol) DefaultState() space.T2 { return space.T2{0.5, 0} }

func (v *VanDerPol) params() []param { return []param{{"mu", &v.Mu}} }

func (v *VanDerPol) Params() map[string]float64 { return collect(v.params()) }

func (v *VanDerPol) SetParam(n string, val float64) error { return assign(v.params(), n, val) }
