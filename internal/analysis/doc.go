// Package analysis characterises trajectories produced by the integrator.
//
//   - [Paired] and [Lyapunov]: largest Lyapunov exponent by the two-trajectory
//     renormalisation method, built as a system plus an observer
//   - [Poincare]: stroboscopic section through a level of one component
//   - [Peaks] and [Bifurcation]: parameter sweep of local maxima
//   - [PowerSpectrum] and [DominantFrequency]: spectra of recorded series
//
// A positive exponent indicates chaos:
//
//	lambda, err := analysis.LargestExponent("rk4", models.NewLorenzVec(), x0, 0.01, 10, 100, 1e-8)
//	if err == nil && lambda > 0 {
//		// chaotic
//	}
package analysis
