// Package optim searches model parameters for the run that minimises a
// metric.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/freude/internal/config"
	"github.com/san-kum/freude/internal/experiment"
)

var (
	ErrGridShape     = errors.New("optim: need one non-empty range per parameter")
	ErrUnknownMetric = errors.New("optim: run did not report the metric")
	ErrNoCandidate   = errors.New("optim: every run failed")
)

// GridSearch evaluates every combination of the parameter ranges.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) == 0 || len(params) != len(ranges) {
		return nil, ErrGridShape
	}
	for _, r := range ranges {
		if len(r) == 0 {
			return nil, ErrGridShape
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Evaluation is the metric value of one grid point. Err is set for runs
// that diverged.
type Evaluation struct {
	Params map[string]float64
	Value  float64
	Err    error
}

// Search runs base once per grid point, with the point's values layered
// over base.Params, and returns the point with the smallest metric along
// with every evaluation in grid order. Diverged runs are skipped; other
// errors abort the search.
func (g *GridSearch) Search(ctx context.Context, reg *experiment.Registry, base *config.Config, metric string) (Evaluation, []Evaluation, error) {
	best := Evaluation{Value: math.Inf(1)}
	var all []Evaluation
	err := g.searchRecursive(ctx, 0, make(map[string]float64), func(params map[string]float64) error {
		cfg := base.Clone()
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64, len(params))
		}
		for k, v := range params {
			cfg.Params[k] = v
		}
		res, err := reg.Run(ctx, cfg)
		if errors.Is(err, experiment.ErrDiverged) {
			all = append(all, Evaluation{Params: params, Value: math.NaN(), Err: err})
			return nil
		}
		if err != nil {
			return err
		}
		val, ok := res.Metrics[metric]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
		}
		ev := Evaluation{Params: params, Value: val}
		all = append(all, ev)
		if val < best.Value {
			best = ev
		}
		return nil
	})
	if err != nil {
		return Evaluation{}, all, err
	}
	if best.Params == nil {
		return Evaluation{}, all, ErrNoCandidate
	}
	return best, all, nil
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, eval func(map[string]float64) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.paramNames) {
		return eval(current)
	}
	name := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[name] = val
		if err := g.searchRecursive(ctx, depth+1, next, eval); err != nil {
			return err
		}
	}
	return nil
}
