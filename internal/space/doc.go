// Package space implements [dynamo.Space] for every supported state
// representation:
//
//   - [Scalar]: a single float64
//   - [Seq]: a dynamically sized [Vec]
//   - [Array]: an N-dimensional [ndarray.Array]
//   - [Matrix]: a gonum *mat.Dense
//   - [Tuple]: the fixed-arity tuples [T1] to [T4]
//
// Seq, Array and Matrix route every combination through the lockstep
// functions of package zip, so a step is one pass per stage over buffers
// allocated once. Scalar and Tuple use plain arithmetic on values.
//
// A shape or layout disagreement between a state and a stepper's scratch
// buffer is a programmer error; the container spaces panic with a
// *dynamo.PreconditionError rather than return it.
package space
