package metrics

import (
	"math"

	"github.com/san-kum/freude/internal/dynamo"
)

// Stability reports the fraction of observed steps whose state stayed finite
// and within threshold in every component.
type Stability[Sy, S any] struct {
	dynamo.Hooks[Sy, S]
	space      dynamo.Space[S]
	threshold  float64
	violations int
	samples    int
}

func NewStability[Sy, S any](sp dynamo.Space[S], threshold float64) *Stability[Sy, S] {
	return &Stability[Sy, S]{
		space:     sp,
		threshold: threshold,
	}
}

func (s *Stability[Sy, S]) Name() string { return "stability" }

func (s *Stability[Sy, S]) Observe(_ Sy, x *S, _ float64) {
	s.samples++
	for i, n := 0, s.space.Len(*x); i < n; i++ {
		v := s.space.At(*x, i)
		if math.IsNaN(v) || math.Abs(v) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability[Sy, S]) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability[Sy, S]) Reset() {
	s.violations = 0
	s.samples = 0
}
