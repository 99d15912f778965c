package experiment

import (
	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/integrators"
	"github.com/san-kum/freude/internal/metrics"
	"github.com/san-kum/freude/internal/sim"
)

// Stream steps a run on demand, for interactive views. A Stream is not safe
// for concurrent use.
type Stream struct {
	Model string
	Dim   int
	Dt    float64
	Time  float64
	Steps int

	advance func(n int) float64
	state   func() []float64
	reset   func()
}

// Advance performs n steps and returns the flattened state.
func (s *Stream) Advance(n int) []float64 {
	s.Time += s.advance(n)
	s.Steps += n
	return s.state()
}

func (s *Stream) State() []float64 { return s.state() }

// Reset restores the initial state and clears the clock.
func (s *Stream) Reset() {
	s.reset()
	s.Time = 0
	s.Steps = 0
}

func (j *job[S, Sy]) stream(name string) (*Stream, error) {
	cfg, su := j.cfg, j.su
	st, err := integrators.New(cfg.Stepper, su.space, su.x0, cfg.Dt)
	if err != nil {
		return nil, err
	}
	initial := su.space.Clone(su.x0)
	var obs dynamo.Observer[Sy, S]
	if len(su.extra) > 0 {
		obs = metrics.Multi[Sy, S](su.extra)
	}
	in := sim.New[S, Sy](st, su.system, obs, su.x0)
	if cfg.Warmup > 0 {
		in.WarmupTime(cfg.Warmup)
	}
	return &Stream{
		Model:   name,
		Dim:     su.space.Len(initial),
		Dt:      cfg.Dt,
		advance: in.IntegrateNSteps,
		state:   func() []float64 { return flatten(su.space, *in.State()) },
		reset:   func() { su.space.Assign(in.State(), initial) },
	}, nil
}
