package metrics

import (
	"math"

	"github.com/san-kum/freude/internal/dynamo"
)

// EnergyDrift tracks the largest relative departure of the energy from its
// value at the first observed step. Systems that are not Hamiltonian leave it
// at zero.
type EnergyDrift[Sy, S any] struct {
	dynamo.Hooks[Sy, S]
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift[Sy, S any]() *EnergyDrift[Sy, S] {
	return &EnergyDrift[Sy, S]{}
}

func (e *EnergyDrift[Sy, S]) Name() string { return "energy_drift" }

func (e *EnergyDrift[Sy, S]) Observe(sys Sy, x *S, _ float64) {
	h, ok := any(sys).(dynamo.Hamiltonian[S])
	if !ok {
		return
	}

	energy := h.Energy(*x)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

// Current is the energy at the last observed step.
func (e *EnergyDrift[Sy, S]) Current() float64 { return e.currentEnergy }

func (e *EnergyDrift[Sy, S]) Value() float64 { return e.maxDrift }

func (e *EnergyDrift[Sy, S]) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
