package analysis

import "github.com/san-kum/freude/internal/dynamo"

// Point is a sample in a two-dimensional projection of state space.
type Point struct{ X, Y float64 }

// Poincare records where the trajectory crosses Level upward in component
// Index, projected onto components X and Y. Crossing points are linearly
// interpolated between the two steps that bracket them.
type Poincare[Sy, S any] struct {
	dynamo.Hooks[Sy, S]
	space dynamo.Space[S]
	prev  []float64
	Index int
	Level float64
	X, Y  int

	Points []Point
}

func NewPoincare[Sy, S any](sp dynamo.Space[S], index int, level float64, x, y int) *Poincare[Sy, S] {
	return &Poincare[Sy, S]{space: sp, Index: index, Level: level, X: x, Y: y}
}

func (p *Poincare[Sy, S]) Observe(_ Sy, x *S, _ float64) {
	cur := p.space.At(*x, p.Index)
	if p.prev != nil {
		was := p.prev[p.Index]
		if was < p.Level && cur >= p.Level {
			f := (p.Level - was) / (cur - was)
			p.Points = append(p.Points, Point{
				X: p.prev[p.X] + f*(p.space.At(*x, p.X)-p.prev[p.X]),
				Y: p.prev[p.Y] + f*(p.space.At(*x, p.Y)-p.prev[p.Y]),
			})
		}
	} else {
		p.prev = make([]float64, p.space.Len(*x))
	}
	for i := range p.prev {
		p.prev[i] = p.space.At(*x, i)
	}
}

// Reset forgets the crossings and the previous sample.
func (p *Poincare[Sy, S]) Reset() {
	p.prev = nil
	p.Points = nil
}
