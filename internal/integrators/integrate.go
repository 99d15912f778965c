package integrators

import (
	"fmt"

	"github.com/san-kum/freude/internal/dynamo"
)

func mustConfig[S any](op string, sp dynamo.Space[S], dt float64) {
	if sp == nil {
		dynamo.Fail(op, dynamo.ErrNilSpace)
	}
	if !dynamo.ValidTimestep(dt) {
		dynamo.Fail(op, fmt.Errorf("%w: got %v", dynamo.ErrInvalidTimestep, dt))
	}
}

// IntegrateNSteps performs exactly n steps and returns the elapsed time. The
// elapsed time is the running sum of dt, so it carries the same rounding an
// external accumulator would.
func IntegrateNSteps[S any](st dynamo.Stepper[S], sys dynamo.System[S], x *S, n int) float64 {
	dt := st.Timestep()
	tacc := 0.0
	for i := 0; i < n; i++ {
		st.DoStep(sys, x)
		tacc += dt
	}
	return tacc
}

// IntegrateTime steps while one more step would not pass t. It returns the
// elapsed time and the number of steps taken.
func IntegrateTime[S any](st dynamo.Stepper[S], sys dynamo.System[S], x *S, t float64) (float64, int) {
	dt := st.Timestep()
	tacc := 0.0
	count := 0
	for tacc+dt <= t {
		st.DoStep(sys, x)
		tacc += dt
		count++
	}
	return tacc, count
}
