// Package sim drives a stepper over a run and reports each step to an
// observer.
package sim

import "github.com/san-kum/freude/internal/dynamo"

// Integrator owns a stepper, an observer and the state being integrated. It
// borrows the system. Elapsed time and step counts are returned, never kept.
type Integrator[S any, Sy dynamo.System[S]] struct {
	stepper  dynamo.Stepper[S]
	system   Sy
	observer dynamo.Observer[Sy, S]
	state    S
}

// New returns an integrator starting from x0. The state is taken as is; the
// stepper must have been built against a state of the same shape. A nil
// observer is replaced by a NullObserver.
func New[S any, Sy dynamo.System[S]](stepper dynamo.Stepper[S], system Sy, observer dynamo.Observer[Sy, S], x0 S) *Integrator[S, Sy] {
	if observer == nil {
		observer = dynamo.NullObserver[Sy, S]{}
	}
	return &Integrator[S, Sy]{
		stepper:  stepper,
		system:   system,
		observer: observer,
		state:    x0,
	}
}

// State returns the live state. Mutating it between runs is allowed as long
// as its shape is preserved.
func (in *Integrator[S, Sy]) State() *S { return &in.state }

func (in *Integrator[S, Sy]) System() Sy { return in.system }

func (in *Integrator[S, Sy]) Stepper() dynamo.Stepper[S] { return in.stepper }

func (in *Integrator[S, Sy]) Observer() dynamo.Observer[Sy, S] { return in.observer }

// SetObserver replaces the observer and returns the previous one.
func (in *Integrator[S, Sy]) SetObserver(o dynamo.Observer[Sy, S]) dynamo.Observer[Sy, S] {
	if o == nil {
		o = dynamo.NullObserver[Sy, S]{}
	}
	prev := in.observer
	in.observer = o
	return prev
}

func (in *Integrator[S, Sy]) step(dt float64, observe bool) {
	in.stepper.DoStep(in.system, &in.state)
	if observe {
		in.observer.Observe(in.system, &in.state, dt)
	}
}

func (in *Integrator[S, Sy]) nSteps(n int, observe bool) float64 {
	dt := in.stepper.Timestep()
	tacc := 0.0
	for i := 0; i < n; i++ {
		in.step(dt, observe)
		tacc += dt
	}
	return tacc
}

func (in *Integrator[S, Sy]) untilTime(t float64, observe bool) (float64, int) {
	dt := in.stepper.Timestep()
	tacc := 0.0
	count := 0
	for tacc+dt <= t {
		in.step(dt, observe)
		tacc += dt
		count++
	}
	return tacc, count
}

// IntegrateNSteps performs n observed steps, then calls AfterRun once. It
// returns the elapsed time as the running sum of dt.
func (in *Integrator[S, Sy]) IntegrateNSteps(n int) float64 {
	tacc := in.nSteps(n, true)
	in.observer.AfterRun(in.system, &in.state)
	return tacc
}

// IntegrateTime performs observed steps while one more step would not pass
// t, then calls AfterRun once. It returns the elapsed time and the number of
// steps.
func (in *Integrator[S, Sy]) IntegrateTime(t float64) (float64, int) {
	tacc, count := in.untilTime(t, true)
	in.observer.AfterRun(in.system, &in.state)
	return tacc, count
}

// IntegrateTimeRange runs IntegrateTime semantics for every target in ts in
// order and sums the results. Each target is a duration relative to the end
// of the previous one. AfterRun is called once, after the last target.
func (in *Integrator[S, Sy]) IntegrateTimeRange(ts []float64) (float64, int) {
	ro, _ := in.observer.(dynamo.RangeObserver[Sy, S])
	tacc := 0.0
	count := 0
	for _, t := range ts {
		dtacc, n := in.untilTime(t, true)
		tacc += dtacc
		count += n
		if ro != nil {
			ro.ObserveTarget(in.system, &in.state, dtacc)
		}
	}
	in.observer.AfterRun(in.system, &in.state)
	return tacc, count
}

// IntegrateNRange runs IntegrateNSteps semantics for every count in ns and
// sums the results. AfterRun is called once, after the last count.
func (in *Integrator[S, Sy]) IntegrateNRange(ns []int) (float64, int) {
	ro, _ := in.observer.(dynamo.RangeObserver[Sy, S])
	tacc := 0.0
	count := 0
	for _, n := range ns {
		dtacc := in.nSteps(n, true)
		tacc += dtacc
		count += n
		if ro != nil {
			ro.ObserveTarget(in.system, &in.state, dtacc)
		}
	}
	in.observer.AfterRun(in.system, &in.state)
	return tacc, count
}

// WarmupNSteps performs n steps without observing them, then calls
// AfterWarmup once.
func (in *Integrator[S, Sy]) WarmupNSteps(n int) float64 {
	tacc := in.nSteps(n, false)
	in.observer.AfterWarmup(in.system, &in.state)
	return tacc
}

// WarmupTime steps without observing while one more step would not pass t,
// then calls AfterWarmup once.
func (in *Integrator[S, Sy]) WarmupTime(t float64) (float64, int) {
	tacc, count := in.untilTime(t, false)
	in.observer.AfterWarmup(in.system, &in.state)
	return tacc, count
}
