package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/freude/internal/config"
	"github.com/san-kum/freude/internal/experiment"
	"github.com/san-kum/freude/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
name: drift
description: compare steppers on the oscillator
steps:
  - model: oscillator
    stepper: euler
    dt: 0.0078125
    duration: 1
    save_as: osc-euler
  - model: oscillator
    dt: 0.0078125
    steps: 64
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "drift", sc.Name)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, "euler", sc.Steps[0].Stepper)
	assert.Equal(t, "osc-euler", sc.Steps[0].SaveAs)
	// Keys left out keep their defaults.
	assert.Equal(t, config.DefaultStepper, sc.Steps[1].Stepper)
	assert.Equal(t, config.DefaultRecordEvery, sc.Steps[1].RecordEvery)
	assert.Equal(t, 64, sc.Steps[1].Steps)
}

func TestParseScenarioInvalidStep(t *testing.T) {
	_, err := ParseScenario([]byte("steps:\n  - model: lorenz\n    dt: -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalidTimestep)

	_, err = ParseScenario([]byte("steps: [oops"))
	assert.Error(t, err)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 2)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)
	st := storage.New(t.TempDir())
	require.NoError(t, st.Init())

	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), st)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 128, results[0].Result.Steps)
	assert.NotEmpty(t, results[0].RunID)
	assert.Equal(t, 64, results[1].Result.Steps)
	assert.Empty(t, results[1].RunID)

	runs, err := st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "osc-euler", runs[0].Model)
}

func TestRunScenarioStopsAtFailure(t *testing.T) {
	sc := &Scenario{Name: "bad", Steps: []Step{
		{Config: config.Config{Model: "oscillator", Stepper: "rk4", Dt: 0.1, Steps: 1}},
		{Config: config.Config{Model: "nope", Stepper: "rk4", Dt: 0.1, Steps: 1}},
		{Config: config.Config{Model: "oscillator", Stepper: "rk4", Dt: 0.1, Steps: 1}},
	}}
	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), nil)
	assert.ErrorIs(t, err, experiment.ErrUnknownModel)
	assert.Len(t, results, 1)
}

func TestMonteCarloStable(t *testing.T) {
	base := config.DefaultConfig()
	base.Model = "oscillator"
	base.Dt = 1.0 / 128
	base.Duration = 1
	base.InitState = []float64{1, 0}

	mc := &MonteCarlo{Base: base, Perturbation: 0.1, Trials: 12, Seed: 7}
	trials, err := mc.Run(context.Background(), experiment.NewRegistry())
	require.NoError(t, err)
	require.Len(t, trials, 12)

	stable, unstable := Stats(trials)
	assert.Equal(t, 12, stable)
	assert.Zero(t, unstable)
	for _, tr := range trials {
		assert.InDelta(t, 1, tr.Init[0], 0.1)
		assert.InDelta(t, 0, tr.Init[1], 0.1)
		assert.Len(t, tr.Final, 2)
	}
	assert.Equal(t, []float64{1, 0}, base.InitState, "base state must not be perturbed in place")

	again, err := mc.Run(context.Background(), experiment.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, trials[3].Init, again[3].Init, "same seed, same perturbations")
}

func TestMonteCarloDivergent(t *testing.T) {
	base := config.DefaultConfig()
	base.Model = "exponential"
	base.Dt = 1.0 / 128
	base.Duration = 1
	base.InitState = []float64{1}
	base.Params = map[string]float64{"rate": 2000}

	trials, err := (&MonteCarlo{Base: base, Perturbation: 0.01, Trials: 3, Seed: 1}).Run(context.Background(), experiment.NewRegistry())
	require.NoError(t, err)
	stable, unstable := Stats(trials)
	assert.Zero(t, stable)
	assert.Equal(t, 3, unstable)
}

func TestMonteCarloNeedsState(t *testing.T) {
	_, err := (&MonteCarlo{Base: config.DefaultConfig(), Trials: 1}).Run(context.Background(), experiment.NewRegistry())
	assert.ErrorIs(t, err, ErrNoBaseState)
}
