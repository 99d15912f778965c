package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/integrators"
	"github.com/san-kum/freude/internal/sim"
	"github.com/san-kum/freude/internal/space"
	"github.com/san-kum/freude/internal/zip"
)

// Paired integrates a reference trajectory and a perturbed copy side by side.
// The state holds the reference in its first half and the copy in its second.
// After every committed step the copy is pulled back to distance D0 from the
// reference along the current separation, and the log of the stretch factor
// is kept for an observer to read.
type Paired struct {
	Inner dynamo.System[space.Vec]
	D0    float64

	n        int
	lastLog  float64
	xa, xb   space.Vec
	dxa, dxb space.Vec
}

// NewPaired pairs inner, whose states have n components, with a copy
// perturbed by d0.
func NewPaired(inner dynamo.System[space.Vec], n int, d0 float64) *Paired {
	return &Paired{Inner: inner, D0: d0, n: n}
}

// Start builds the paired initial state: x0 followed by x0 shifted by D0
// along the first axis.
func (p *Paired) Start(x0 space.Vec) space.Vec {
	if len(x0) != p.n {
		dynamo.Fail("analysis.Paired.Start", fmt.Errorf("%w: want %d components, got %d", dynamo.ErrShapeMismatch, p.n, len(x0)))
	}
	x := make(space.Vec, 2*p.n)
	copy(x, x0)
	copy(x[p.n:], x0)
	x[p.n] += p.D0
	return x
}

// Reference returns the first half of a paired state.
func (p *Paired) Reference(x space.Vec) space.Vec { return x[:p.n] }

func (p *Paired) DifferentiateInto(x space.Vec, dx *space.Vec) {
	if len(x) != 2*p.n || len(*dx) != 2*p.n {
		dynamo.Fail("analysis.Paired.DifferentiateInto", dynamo.ErrShapeMismatch)
	}
	p.xa, p.xb = x[:p.n], x[p.n:]
	p.dxa, p.dxb = (*dx)[:p.n], (*dx)[p.n:]
	p.Inner.DifferentiateInto(p.xa, &p.dxa)
	p.Inner.DifferentiateInto(p.xb, &p.dxb)
}

// Separation is the Euclidean distance between the two halves.
func (p *Paired) Separation(x space.Vec) float64 {
	ss, err := zip.FoldWith1(x[:p.n], x[p.n:], 0, func(acc, a, b float64) float64 {
		d := b - a
		return acc + d*d
	})
	if err != nil {
		dynamo.Fail("analysis.Paired.Separation", fmt.Errorf("%w: %w", dynamo.ErrShapeMismatch, err))
	}
	return math.Sqrt(ss)
}

// UpdateState commits value and renormalises the perturbed half.
func (p *Paired) UpdateState(x *space.Vec, value space.Vec) {
	dst := *x
	copy(dst, value)
	d := p.Separation(dst)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		p.lastLog = 0
		return
	}
	p.lastLog = math.Log(d / p.D0)
	scale := p.D0 / d
	ref, pert := dst[:p.n], dst[p.n:]
	for i := range pert {
		pert[i] = ref[i] + (pert[i]-ref[i])*scale
	}
}

// LastGrowth is ln(d/D0) measured at the most recent commit.
func (p *Paired) LastGrowth() float64 { return p.lastLog }

// Lyapunov accumulates the stretch factors reported by a Paired system.
// AfterRun sets Exponent to the accumulated log growth per unit time.
// AfterWarmup discards anything accumulated so far.
type Lyapunov struct {
	sum     float64
	elapsed float64

	Exponent float64
}

func (l *Lyapunov) Name() string { return "lyapunov" }

func (l *Lyapunov) Observe(sys *Paired, _ *space.Vec, dt float64) {
	l.sum += sys.LastGrowth()
	l.elapsed += dt
}

func (l *Lyapunov) AfterRun(*Paired, *space.Vec) {
	if l.elapsed > 0 {
		l.Exponent = l.sum / l.elapsed
	}
}

func (l *Lyapunov) AfterWarmup(*Paired, *space.Vec) { l.Reset() }

func (l *Lyapunov) Value() float64 { return l.Exponent }

func (l *Lyapunov) Reset() {
	l.sum = 0
	l.elapsed = 0
	l.Exponent = 0
}

// LargestExponent estimates the largest Lyapunov exponent of sys from x0.
// The pair is first advanced for warmup time units without measurement.
func LargestExponent(method string, sys dynamo.System[space.Vec], x0 space.Vec, dt, warmup, duration, d0 float64) (float64, error) {
	p := NewPaired(sys, len(x0), d0)
	start := p.Start(x0)
	st, err := integrators.New[space.Vec](method, space.Seq{}, start, dt)
	if err != nil {
		return 0, err
	}
	obs := &Lyapunov{}
	in := sim.New[space.Vec, *Paired](st, p, obs, start)
	in.WarmupTime(warmup)
	in.IntegrateTime(duration)
	return obs.Exponent, nil
}
