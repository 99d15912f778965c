package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns the magnitudes of the one-sided discrete Fourier
// transform of series after removing its mean.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	centred := make([]float64, len(series))
	mean := stat.Mean(series, nil)
	for i, v := range series {
		centred[i] = v - mean
	}
	coeff := fourier.NewFFT(len(series)).Coefficients(nil, centred)
	ps := make([]float64, len(coeff))
	for i, c := range coeff {
		ps[i] = cmplx.Abs(c)
	}
	return ps
}

// DominantFrequency returns the frequency, in cycles per time unit, of the
// strongest non-constant component of a series sampled every dt.
func DominantFrequency(series []float64, dt float64) float64 {
	ps := PowerSpectrum(series)
	if len(ps) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return fourier.NewFFT(len(series)).Freq(best) / dt
}
