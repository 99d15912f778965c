package metrics

import (
	"fmt"

	"github.com/san-kum/freude/internal/dynamo"
)

// TimeAverage accumulates the time integral of every state component over
// observed steps. AfterRun divides the integrals by the elapsed time.
type TimeAverage[Sy, S any] struct {
	space   dynamo.Space[S]
	sums    []float64
	elapsed float64

	Mean []float64
}

func NewTimeAverage[Sy, S any](sp dynamo.Space[S]) *TimeAverage[Sy, S] {
	return &TimeAverage[Sy, S]{space: sp}
}

func (a *TimeAverage[Sy, S]) Name() string { return "time_average" }

func (a *TimeAverage[Sy, S]) Observe(_ Sy, x *S, dt float64) {
	n := a.space.Len(*x)
	if a.sums == nil {
		a.sums = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		a.sums[i] += a.space.At(*x, i) * dt
	}
	a.elapsed += dt
}

func (a *TimeAverage[Sy, S]) AfterRun(Sy, *S) {
	a.Mean = make([]float64, len(a.sums))
	if a.elapsed == 0 {
		return
	}
	for i, s := range a.sums {
		a.Mean[i] = s / a.elapsed
	}
}

// AfterWarmup discards anything accumulated so far.
func (a *TimeAverage[Sy, S]) AfterWarmup(Sy, *S) { a.Reset() }

// Value is the mean of the first component after the last run.
func (a *TimeAverage[Sy, S]) Value() float64 {
	if len(a.Mean) == 0 {
		return 0
	}
	return a.Mean[0]
}

// Component returns the mean of component i, named for reports.
func (a *TimeAverage[Sy, S]) Component(i int) (string, float64) {
	return fmt.Sprintf("mean_x%d", i), a.Mean[i]
}

func (a *TimeAverage[Sy, S]) Reset() {
	a.sums = nil
	a.elapsed = 0
	a.Mean = nil
}
