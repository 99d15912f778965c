// Package dynamo defines the contracts shared by every part of the
// integration core.
//
// The package describes what the other packages agree on:
//
//   - [System]: an ODE right-hand side, dX/dt = f(X)
//   - [Updater]: optional commit hook a system may use to post-process each new state
//   - [Space]: the numeric container capability of a state representation
//   - [Stepper]: one explicit single-step integration method
//   - [Observer]: post-step and post-run hook driven by the integrator
//
// # Ownership
//
// The caller (or the integrator acting for it) owns the state value. A
// System carries only parameters and private scratch; it never keeps the
// current state. Steppers own their scratch buffers and mutate the state only
// through [Commit].
//
// # Example
//
//	sys := models.NewLorenz()
//	x := space.T3{1, 1, 1}
//	rk4 := integrators.NewRK4[space.T3](space.Tuple[space.T3]{}, x, 0.01)
//	elapsed := integrators.IntegrateNSteps(rk4, sys, &x, 1000)
//
// # Thread Safety
//
// Nothing in the core is safe for concurrent use. A stepper and the state it
// advances belong to a single goroutine.
package dynamo
