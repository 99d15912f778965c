package models

import (
	"fmt"
	"math"

	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/ndarray"
)

// Heat is the two-dimensional heat equation discretised on an nx×ny grid
// with spacing H and zero Dirichlet boundaries:
//
//	du/dt = D ∇²u
//
// States are contiguous ndarray.Array values of shape [nx, ny].
type Heat struct {
	D float64
	H float64
}

func NewHeat() *Heat { return &Heat{D: 1.0, H: 1.0} }

func (m *Heat) DifferentiateInto(x *ndarray.Array, dx **ndarray.Array) {
	u, ok1 := x.Flat()
	d, ok2 := (*dx).Flat()
	if !ok1 || !ok2 {
		dynamo.Fail("models.Heat.DifferentiateInto", dynamo.ErrLayoutMismatch)
	}
	if x.Ndim() != 2 || !x.SameShape(*dx) {
		dynamo.Fail("models.Heat.DifferentiateInto", fmt.Errorf("%w: shape %v", dynamo.ErrShapeMismatch, x.Shape()))
	}
	nx, ny := x.Dim(0), x.Dim(1)
	k := m.D / (m.H * m.H)
	at := func(i, j int) float64 {
		if i < 0 || i >= nx || j < 0 || j >= ny {
			return 0
		}
		return u[i*ny+j]
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			c := u[i*ny+j]
			d[i*ny+j] = k * (at(i-1, j) + at(i+1, j) + at(i, j-1) + at(i, j+1) - 4*c)
		}
	}
}

// Total is the sum of u over the grid.
func (m *Heat) Total(x *ndarray.Array) float64 {
	var s float64
	for i, n := 0, x.Size(); i < n; i++ {
		s += x.AtFlat(i)
	}
	return s
}

// Mode returns the lowest sine mode on an nx×ny grid, and its decay rate
// under the discrete Laplacian.
func (m *Heat) Mode(nx, ny int) (*ndarray.Array, float64) {
	a := ndarray.MustNew(nx, ny)
	px := math.Pi / float64(nx+1)
	py := math.Pi / float64(ny+1)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			a.SetFlat(i*ny+j, math.Sin(px*float64(i+1))*math.Sin(py*float64(j+1)))
		}
	}
	lambda := m.D / (m.H * m.H) * (4 - 2*math.Cos(px) - 2*math.Cos(py))
	return a, lambda
}

func (m *Heat) params() []param { return []param{{"d", &m.D}, {"h", &m.H}} }

func (m *Heat) Params() map[string]float64 { return collect(m.params()) }

func (m *Heat) SetParam(n string, v float64) error { return assign(m.params(), n, v) }
