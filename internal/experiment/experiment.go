// Package experiment turns a run configuration into an integration: it picks
// the model, representation and stepper, attaches the standard observers and
// drives the integrator to completion.
package experiment

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/freude/internal/config"
	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/integrators"
	"github.com/san-kum/freude/internal/metrics"
	"github.com/san-kum/freude/internal/sim"
	"github.com/san-kum/freude/internal/space"
)

// chunkSteps bounds how long a run goes without checking for cancellation
// and divergence.
const chunkSteps = 1024

// Result is the outcome of a run. States are flattened in row-major order;
// the first sample is the state after warmup.
type Result struct {
	Times   []float64
	States  [][]float64
	Final   []float64
	Metrics map[string]float64
	Steps   int
	Elapsed float64
}

// setup is everything a run needs for one representation. The extra
// observers run before the standard ones and may mutate the state; summary
// adds model specific metrics computed from the final state.
type setup[S any, Sy dynamo.System[S]] struct {
	space   dynamo.Space[S]
	system  Sy
	x0      S
	extra   []dynamo.Observer[Sy, S]
	summary func(x S) map[string]float64
}

// StepsWithin returns how many steps of dt fit in t when elapsed time is
// accumulated by repeated addition, matching sim.Integrator.IntegrateTime.
func StepsWithin(t, dt float64) int {
	tacc := 0.0
	n := 0
	for tacc+dt <= t {
		tacc += dt
		n++
	}
	return n
}

// runner is a fully resolved run, independent of its state type.
type runner interface {
	execute(ctx context.Context) (*Result, error)
	stream(name string) (*Stream, error)
}

type job[S any, Sy dynamo.System[S]] struct {
	cfg *config.Config
	su  setup[S, Sy]
}

func newJob[S any, Sy dynamo.System[S]](cfg *config.Config, su setup[S, Sy]) (runner, error) {
	return &job[S, Sy]{cfg: cfg, su: su}, nil
}

func (j *job[S, Sy]) execute(ctx context.Context) (*Result, error) {
	cfg, su := j.cfg, j.su
	st, err := integrators.New(cfg.Stepper, su.space, su.x0, cfg.Dt)
	if err != nil {
		return nil, err
	}

	rec := metrics.NewRecorder[Sy, S](su.space, cfg.RecordEvery)
	stab := metrics.NewStability[Sy, S](su.space, cfg.Stability)
	drift := metrics.NewEnergyDrift[Sy, S]()
	avg := metrics.NewTimeAverage[Sy, S](su.space)
	count := &metrics.Counter[Sy, S]{}
	obs := append(metrics.Multi[Sy, S]{}, su.extra...)
	obs = append(obs, rec, stab, drift, avg, count)

	in := sim.New[S, Sy](st, su.system, obs, su.x0)
	if cfg.Warmup > 0 {
		in.WarmupTime(cfg.Warmup)
	}
	rec.Record(*in.State())

	total := cfg.Steps
	if total == 0 {
		total = StepsWithin(cfg.Duration, cfg.Dt)
	}

	res := &Result{}
	var runErr error
	for done := 0; done < total; {
		if err := ctx.Err(); err != nil {
			runErr = &RunError{Step: done, Time: res.Elapsed, Err: err}
			break
		}
		n := min(chunkSteps, total-done)
		res.Elapsed += in.IntegrateNSteps(n)
		done += n
		if !finite(su.space, *in.State()) {
			runErr = &RunError{Step: done, Time: res.Elapsed, Err: ErrDiverged}
			break
		}
	}

	res.Steps = count.Steps
	res.Times, res.States = rec.Times, rec.States
	res.Final = flatten(su.space, *in.State())
	res.Metrics = metrics.Collect(stab, drift, count)
	res.Metrics["elapsed"] = res.Elapsed
	for i := range avg.Mean {
		name, v := avg.Component(i)
		res.Metrics[name] = v
	}
	if su.summary != nil {
		for k, v := range su.summary(*in.State()) {
			res.Metrics[k] = v
		}
	}
	return res, runErr
}

func finite[S any](sp dynamo.Space[S], x S) bool {
	for i, n := 0, sp.Len(x); i < n; i++ {
		v := sp.At(x, i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func flatten[S any](sp dynamo.Space[S], x S) []float64 {
	out := make([]float64, sp.Len(x))
	for i := range out {
		out[i] = sp.At(x, i)
	}
	return out
}

func initScalar(cfg *config.Config, def float64) (float64, error) {
	switch len(cfg.InitState) {
	case 0:
		return def, nil
	case 1:
		return cfg.InitState[0], nil
	default:
		return 0, fmt.Errorf("%w: want 1, got %d", ErrInitState, len(cfg.InitState))
	}
}

func initTuple[T space.Tupled[T]](cfg *config.Config, def T) (T, error) {
	if len(cfg.InitState) == 0 {
		return def, nil
	}
	if len(cfg.InitState) != def.Len() {
		return def, fmt.Errorf("%w: want %d, got %d", ErrInitState, def.Len(), len(cfg.InitState))
	}
	x := def
	for i, v := range cfg.InitState {
		x = x.With(i, v)
	}
	return x, nil
}

func initVec(cfg *config.Config, def space.Vec) (space.Vec, error) {
	if len(cfg.InitState) == 0 {
		return def, nil
	}
	if len(cfg.InitState) != len(def) {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrInitState, len(def), len(cfg.InitState))
	}
	return append(space.Vec(nil), cfg.InitState...), nil
}
