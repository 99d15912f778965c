package metrics

import "github.com/san-kum/freude/internal/dynamo"

// Multi forwards every callback to each observer in order. Range targets
// reach only the observers that implement dynamo.RangeObserver.
type Multi[Sy, S any] []dynamo.Observer[Sy, S]

func (m Multi[Sy, S]) Observe(sys Sy, x *S, dt float64) {
	for _, o := range m {
		o.Observe(sys, x, dt)
	}
}

func (m Multi[Sy, S]) AfterRun(sys Sy, x *S) {
	for _, o := range m {
		o.AfterRun(sys, x)
	}
}

func (m Multi[Sy, S]) AfterWarmup(sys Sy, x *S) {
	for _, o := range m {
		o.AfterWarmup(sys, x)
	}
}

func (m Multi[Sy, S]) ObserveTarget(sys Sy, x *S, elapsed float64) {
	for _, o := range m {
		if ro, ok := o.(dynamo.RangeObserver[Sy, S]); ok {
			ro.ObserveTarget(sys, x, elapsed)
		}
	}
}
