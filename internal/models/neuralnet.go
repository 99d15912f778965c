package models

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/freude/internal/space"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// NeuralNet is a random recurrent rate network:
//
//	dx/dt = -x + J·tanh(x)
//
// with Jᵢⱼ ~ N(0, G²/N). For G > 1 the dynamics are chaotic. The
// matrix-vector product goes through BLAS.
type NeuralNet struct {
	G float64
	J *mat.Dense

	rate []float64
}

// NewNeuralNet draws an n×n coupling matrix with gain g.
func NewNeuralNet(n int, g float64, seed uint64) *NeuralNet {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	data := make([]float64, n*n)
	sd := g / math.Sqrt(float64(n))
	for i := range data {
		data[i] = sd * rng.NormFloat64()
	}
	return NewNeuralNetWith(mat.NewDense(n, n, data), g)
}

// NewNeuralNetWith uses j as the coupling matrix; j must be square.
func NewNeuralNetWith(j *mat.Dense, g float64) *NeuralNet {
	n, _ := j.Dims()
	return &NeuralNet{G: g, J: j, rate: make([]float64, n)}
}

func (nn *NeuralNet) Dim() int { return len(nn.rate) }

func (nn *NeuralNet) DifferentiateInto(x space.Vec, dx *space.Vec) {
	for i, v := range x {
		nn.rate[i] = math.Tanh(v)
	}
	d := *dx
	copy(d, x)
	n := len(nn.rate)
	blas64.Gemv(blas.NoTrans, 1, nn.J.RawMatrix(),
		blas64.Vector{N: n, Data: nn.rate, Inc: 1},
		-1, blas64.Vector{N: n, Data: d, Inc: 1})
}

// DefaultState is a small deterministic perturbation from the origin.
func (nn *NeuralNet) DefaultState() space.Vec {
	x := make(space.Vec, len(nn.rate))
	for i := range x {
		x[i] = 0.1 * math.Sin(float64(i+1))
	}
	return x
}

func (nn *NeuralNet) Params() map[string]float64 { return map[string]float64{"g": nn.G} }

// SetParam for "g" rescales J in place.
func (nn *NeuralNet) SetParam(n string, v float64) error {
	if n != "g" {
		return assign(nil, n, v)
	}
	if nn.G != 0 {
		nn.J.Scale(v/nn.G, nn.J)
	}
	nn.G = v
	return nil
}
