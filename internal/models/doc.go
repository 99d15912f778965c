// Package models provides example systems for the integration core.
//
// Each model implements [dynamo.System] for one state representation:
//
//   - [Exponential], [SineDrift]: scalar test equations
//   - [Oscillator], [Pendulum], [VanDerPol]: planar systems on [space.T2]
//   - [Lorenz], [Rossler], [Duffing]: three-dimensional flows on [space.T3]
//   - [LorenzVec]: the Lorenz flow on [space.Vec]
//   - [Kuramoto]: phase oscillators on [space.Vec]
//   - [NeuralNet]: random recurrent network on [space.Vec], product via BLAS
//   - [Heat]: 2D diffusion on an [ndarray.Array]
//   - [Linear]: dX/dt = A·X on a gonum matrix
//
// Conservative models also implement [dynamo.Hamiltonian]. Every model
// implements [Parametrized].
package models
