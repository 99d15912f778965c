package models

import (
	"math"

	"github.com/san-kum/freude/internal/space"
)

// Lorenz is the Lorenz system on a three-tuple.
type Lorenz struct{ Sigma, Rho, Beta float64 }

func NewLorenz() *Lorenz { return &Lorenz{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0} }

func (l *Lorenz) DifferentiateInto(s space.T3, dx *space.T3) {
	*dx = space.T3{
		l.Sigma * (s[1] - s[0]),
		s[0]*(l.Rho-s[2]) - s[1],
		s[0]*s[1] - l.Beta*s[2],
	}
}

// DefaultState is a point near the attractor.
func (l *Lorenz) DefaultState() space.T3 { return space.T3{1.0, 1.0, 1.0} }

func (l *Lorenz) params() []param {
	return []param{{"sigma", &l.Sigma}, {"rho", &l.Rho}, {"beta", &l.Beta}}
}

func (l *Lorenz) Params() map[string]float64 { return collect(l.params()) }

func (l *Lorenz) SetParam(n string, v float64) error { return assign(l.params(), n, v) }

// LorenzVec is the Lorenz system on a length-3 Vec.
type LorenzVec struct{ Lorenz }

func NewLorenzVec() *LorenzVec { return &LorenzVec{Lorenz: *NewLorenz()} }

func (l *LorenzVec) DifferentiateInto(s space.Vec, dx *space.Vec) {
	d := *dx
	d[0] = l.Sigma * (s[1] - s[0])
	d[1] = s[0]*(l.Rho-s[2]) - s[1]
	d[2] = s[0]*s[1] - l.Beta*s[2]
}

// Rossler is the Rössler attractor.
type Rossler struct{ A, B, C float64 }

func NewRossler() *Rossler { return &Rossler{A: 0.2, B: 0.2, C: 5.7} }

func (r *Rossler) DifferentiateInto(s space.T3, dx *space.T3) {
	*dx = space.T3{-s[1] - s[2], s[0] + r.A*s[1], r.B + s[2]*(s[0]-r.C)}
}

func (r *Rossler) DefaultState() space.T3 { return space.T3{1.0, 1.0, 1.0} }

func (r *Rossler) params() []param { return []param{{"a", &r.A}, {"b", &r.B}, {"c", &r.C}} }

func (r *Rossler) Params() map[string]float64 { return collect(r.params()) }

func (r *Rossler) SetParam(n string, v float64) error { return assign(r.params(), n, v) }

// Duffing is the forced Duffing oscillator in autonomous form: the state is
// [x, v, phi] where phi advances at the forcing frequency.
type Duffing struct {
	Alpha, Beta, Delta, Gamma, Omega float64
}

func NewDuffing() *Duffing {
	return &Duffing{Alpha: -1.0, Beta: 1.0, Delta: 0.3, Gamma: 0.5, Omega: 1.2}
}

func (d *Duffing) DifferentiateInto(s space.T3, dx *space.T3) {
	x, v, phi := s[0], s[1], s[2]
	*dx = space.T3{v, -d.Delta*v - d.Alpha*x - d.Beta*x*x*x + d.Gamma*math.Cos(phi), d.Omega}
}

// Energy is the unforced potential plus kinetic energy.
func (d *Duffing) Energy(s space.T3) float64 {
	x, v := s[0], s[1]
	return 0.5*v*v + 0.5*d.Alpha*x*x + 0.25*d.Beta*x*x*x*x
}

func (d *Duffing) DefaultState() space.T3 { return space.T3{1.0, 0.0, 0.0} }

func (d *Duffing) params() []param {
	return []param{
		{"alpha", &d.Alpha},
		{"beta", &d.Beta},
		{"delta", &d.Delta},
		{"gamma", &d.Gamma},
		{"omega", &d.Omega},
	}
}

func (d *Duffing) Params() map[string]float64 { return collect(d.params()) }

func (d *Duffing) SetParam(n string, v float64) error { return assign(d.params(), n, v) }
