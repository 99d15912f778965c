package analysis

import (
	"fmt"
	"sort"

	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/integrators"
	"github.com/san-kum/freude/internal/models"
	"github.com/san-kum/freude/internal/sim"
)

// Peaks records the local maxima of component Index. Warmup discards any
// maxima found so far.
type Peaks[Sy, S any] struct {
	space dynamo.Space[S]
	Index int
	seen  int
	p1    float64
	p2    float64

	Values []float64
}

func NewPeaks[Sy, S any](sp dynamo.Space[S], index int) *Peaks[Sy, S] {
	return &Peaks[Sy, S]{space: sp, Index: index}
}

func (p *Peaks[Sy, S]) Observe(_ Sy, x *S, _ float64) {
	v := p.space.At(*x, p.Index)
	if p.seen >= 2 && p.p1 > p.p2 && p.p1 >= v {
		p.Values = append(p.Values, p.p1)
	}
	p.p2, p.p1 = p.p1, v
	p.seen++
}

func (p *Peaks[Sy, S]) AfterRun(Sy, *S) {}

func (p *Peaks[Sy, S]) AfterWarmup(Sy, *S) {
	p.Values = nil
	p.seen = 0
}

// BifurcationPoint holds the distinct maxima found for one parameter value.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// Tunable is a system whose parameters can be set by name.
type Tunable[S any] interface {
	dynamo.System[S]
	models.Parametrized
}

// Sweep describes a bifurcation run.
type Sweep struct {
	Method    string
	Dt        float64
	Param     string
	Values    []float64
	Index     int
	Transient float64
	Record    float64
}

// Bifurcation sets Param to each of Values in turn, integrates from a fresh
// copy of x0 past the transient and collects the distinct maxima of
// component Index. Maxima closer than 1e-3 are merged. The parameter is
// restored when the sweep ends.
func Bifurcation[S any, Sy Tunable[S]](sp dynamo.Space[S], sys Sy, x0 S, sw Sweep) ([]BifurcationPoint, error) {
	orig, ok := sys.Params()[sw.Param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownParam, sw.Param)
	}
	defer func() { _ = sys.SetParam(sw.Param, orig) }()

	out := make([]BifurcationPoint, 0, len(sw.Values))
	for _, v := range sw.Values {
		if err := sys.SetParam(sw.Param, v); err != nil {
			return nil, err
		}
		x := sp.Clone(x0)
		st, err := integrators.New(sw.Method, sp, x, sw.Dt)
		if err != nil {
			return nil, err
		}
		peaks := NewPeaks[Sy, S](sp, sw.Index)
		in := sim.New[S, Sy](st, sys, peaks, x)
		in.WarmupTime(sw.Transient)
		in.IntegrateTime(sw.Record)
		out = append(out, BifurcationPoint{Param: v, Values: distinct(peaks.Values, 1e-3)})
	}
	return out, nil
}

// distinct sorts vs and merges neighbours closer than tol. Each cluster is
// represented by its smallest value.
func distinct(vs []float64, tol float64) []float64 {
	if len(vs) == 0 {
		return nil
	}
	sorted := append([]float64(nil), vs...)
	sort.Float64s(sorted)
	out := []float64{sorted[0]}
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] >= tol {
			out = append(out, sorted[i])
		}
	}
	return out
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
