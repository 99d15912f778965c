package models

import (
	"github.com/san-kum/freude/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Linear is the matrix ODE dX/dt = A·X. X may have any number of columns.
type Linear struct {
	A *mat.Dense
}

// NewRotation returns the generator of planar rotation at angular speed w.
func NewRotation(w float64) *Linear {
	return &Linear{A: mat.NewDense(2, 2, []float64{0, -w, w, 0})}
}

func (l *Linear) DifferentiateInto(x *mat.Dense, dx **mat.Dense) {
	ar, ac := l.A.Dims()
	xr, xc := x.Dims()
	dr, dc := (*dx).Dims()
	if ar != ac || ac != xr || dr != xr || dc != xc {
		dynamo.Fail("models.Linear.DifferentiateInto", dynamo.ErrShapeMismatch)
	}
	(*dx).Mul(l.A, x)
}

// Exact returns exp(A·t)·x0.
func (l *Linear) Exact(x0 *mat.Dense, t float64) *mat.Dense {
	var at, e, out mat.Dense
	at.Scale(t, l.A)
	e.Exp(&at)
	out.Mul(&e, x0)
	return &out
}

func (l *Linear) Params() map[string]float64 { return map[string]float64{} }

func (l *Linear) SetParam(n string, v float64) error { return assign(nil, n, v) }
