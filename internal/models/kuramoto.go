package models

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/freude/internal/space"
)

// Kuramoto is a population of globally coupled phase oscillators:
//
//	dθᵢ/dt = ωᵢ + (K/N) Σⱼ sin(θⱼ - θᵢ)
//
// The coupling sum is evaluated through the mean field, so one derivative
// costs O(N). A Kuramoto value owns scratch buffers and must not be shared
// between goroutines.
type Kuramoto struct {
	K     float64
	Omega []float64
	// Table, when set, replaces math.Sincos with a lookup.
	Table *TrigTable

	sin, cos []float64
}

// NewKuramoto draws n natural frequencies from N(0, 1) with the given seed.
func NewKuramoto(n int, k float64, seed uint64) *Kuramoto {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	omega := make([]float64, n)
	for i := range omega {
		omega[i] = rng.NormFloat64()
	}
	return NewKuramotoWith(omega, k)
}

// NewKuramotoWith uses the given natural frequencies.
func NewKuramotoWith(omega []float64, k float64) *Kuramoto {
	return &Kuramoto{
		K:     k,
		Omega: omega,
		sin:   make([]float64, len(omega)),
		cos:   make([]float64, len(omega)),
	}
}

func (m *Kuramoto) Dim() int { return len(m.Omega) }

func (m *Kuramoto) DifferentiateInto(x space.Vec, dx *space.Vec) {
	var s, c float64
	for i, th := range x {
		if m.Table != nil {
			m.sin[i], m.cos[i] = m.Table.SinCos(th)
		} else {
			m.sin[i], m.cos[i] = math.Sincos(th)
		}
		s += m.sin[i]
		c += m.cos[i]
	}
	n := float64(len(x))
	s, c = s/n, c/n
	d := *dx
	for i := range x {
		// K r sin(ψ - θᵢ) expanded with r e^{iψ} = c + i s.
		d[i] = m.Omega[i] + m.K*(s*m.cos[i]-c*m.sin[i])
	}
}

// Order returns the synchronisation order parameter r ∈ [0, 1].
func (m *Kuramoto) Order(x space.Vec) float64 {
	var s, c float64
	for _, th := range x {
		sn, cs := math.Sincos(th)
		s += sn
		c += cs
	}
	n := float64(len(x))
	return math.Hypot(s/n, c/n)
}

// DefaultState spreads the phases evenly around the circle.
func (m *Kuramoto) DefaultState() space.Vec {
	x := make(space.Vec, len(m.Omega))
	for i := range x {
		x[i] = 2 * math.Pi * float64(i) / float64(len(x))
	}
	return x
}

func (m *Kuramoto) params() []param { return []param{{"k", &m.K}} }

func (m *Kuramoto) Params() map[string]float64 { return collect(m.params()) }

func (m *Kuramoto) SetParam(n string, v float64) error { return assign(m.params(), n, v) }
