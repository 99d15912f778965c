package metrics

import (
	"math"

	"github.com/san-kum/freude/internal/dynamo"
)

// PhaseWrap keeps every component of a phase state in [0, 2π). It mutates
// the state after each step, which leaves the dynamics of phase-coupled
// systems unchanged.
type PhaseWrap[Sy, S any] struct {
	dynamo.Hooks[Sy, S]
	space dynamo.Space[S]
	Wraps int
}

func NewPhaseWrap[Sy, S any](sp dynamo.Space[S]) *PhaseWrap[Sy, S] {
	return &PhaseWrap[Sy, S]{space: sp}
}

// Wrap maps phi into [0, 2π).
func Wrap(phi float64) float64 {
	phi = math.Mod(phi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	if phi >= 2*math.Pi {
		phi = 0
	}
	return phi
}

func (p *PhaseWrap[Sy, S]) Observe(_ Sy, x *S, _ float64) {
	for i, n := 0, p.space.Len(*x); i < n; i++ {
		v := p.space.At(*x, i)
		if v < 0 || v >= 2*math.Pi {
			p.space.SetAt(x, i, Wrap(v))
			p.Wraps++
		}
	}
}
