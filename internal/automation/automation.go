// Package automation runs scripted batches of experiments: YAML scenarios
// and Monte Carlo trials over perturbed initial states.
package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/san-kum/freude/internal/config"
	"github.com/san-kum/freude/internal/experiment"
	"github.com/san-kum/freude/internal/storage"
	"gopkg.in/yaml.v3"
)

var ErrNoBaseState = errors.New("automation: monte carlo needs an initial state to perturb")

// Scenario is a named sequence of runs.
type Scenario struct {
	Name        string
	Description string
	Steps       []Step
}

// Step is one run of a scenario. Keys left out of the YAML keep their
// default values. A non-empty SaveAs stores the run.
type Step struct {
	config.Config `yaml:",inline"`
	SaveAs        string `yaml:"save_as"`
}

type scenarioFile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Steps       []yaml.Node `yaml:"steps"`
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("automation: parse scenario: %w", err)
	}
	sc := &Scenario{Name: f.Name, Description: f.Description, Steps: make([]Step, 0, len(f.Steps))}
	for i := range f.Steps {
		step := Step{Config: *config.DefaultConfig()}
		if err := f.Steps[i].Decode(&step); err != nil {
			return nil, fmt.Errorf("automation: step %d: %w", i+1, err)
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("automation: step %d: %w", i+1, err)
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// StepResult is the outcome of one scenario step. RunID is set when the
// step was saved.
type StepResult struct {
	Step   Step
	Result *experiment.Result
	RunID  string
}

// RunScenario executes the steps in order and stops at the first failure.
// Steps with SaveAs are written to st when st is not nil.
func RunScenario(ctx context.Context, sc *Scenario, reg *experiment.Registry, st *storage.Store) ([]StepResult, error) {
	results := make([]StepResult, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		slog.Info("scenario step", "scenario", sc.Name, "step", i+1, "of", len(sc.Steps), "model", step.Model)
		cfg := step.Config.Clone()
		res, err := reg.Run(ctx, cfg)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		out := StepResult{Step: step, Result: res}
		if step.SaveAs != "" && st != nil {
			meta := storage.RunMetadata{
				Model:          step.SaveAs,
				Seed:           cfg.Seed,
				Dt:             cfg.Dt,
				Duration:       res.Elapsed,
				Steps:          res.Steps,
				Stepper:        cfg.Stepper,
				Representation: cfg.Representation,
				Params:         cfg.Params,
				Metrics:        res.Metrics,
			}
			id, err := st.Save(meta, storage.Trajectory{Times: res.Times, States: res.States})
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			out.RunID = id
		}
		results = append(results, out)
	}
	return results, nil
}

// MonteCarlo repeats Base with every component of its initial state moved
// uniformly within ±Perturbation.
type MonteCarlo struct {
	Base         *config.Config
	Perturbation float64
	Trials       int
	Seed         uint64
}

// Trial is one Monte Carlo sample. A trial is stable when it ran to the end
// and every observed state stayed within the stability threshold.
type Trial struct {
	ID     int
	Init   []float64
	Final  []float64
	Stable bool
}

// Run executes the trials in order. Divergent trials are recorded as
// unstable; any other error aborts the batch.
func (m *MonteCarlo) Run(ctx context.Context, reg *experiment.Registry) ([]Trial, error) {
	if len(m.Base.InitState) == 0 {
		return nil, ErrNoBaseState
	}
	rng := rand.New(rand.NewPCG(m.Seed, m.Seed^0x9e3779b97f4a7c15))
	trials := make([]Trial, 0, m.Trials)
	for i := 0; i < m.Trials; i++ {
		cfg := m.Base.Clone()
		for k, v := range cfg.InitState {
			cfg.InitState[k] = v + (2*rng.Float64()-1)*m.Perturbation
		}
		res, err := reg.Run(ctx, cfg)
		stable := err == nil
		switch {
		case errors.Is(err, experiment.ErrDiverged):
		case err != nil:
			return trials, fmt.Errorf("trial %d: %w", i, err)
		}
		if stable && res.Metrics["stability"] < 1 {
			stable = false
		}
		tr := Trial{ID: i, Init: cfg.InitState, Stable: stable}
		if res != nil {
			tr.Final = res.Final
		}
		trials = append(trials, tr)
		if (i+1)%10 == 0 {
			slog.Debug("monte carlo", "done", i+1, "of", m.Trials)
		}
	}
	return trials, nil
}

// Stats counts stable and unstable trials.
func Stats(trials []Trial) (stable, unstable int) {
	for _, t := range trials {
		if t.Stable {
			stable++
		} else {
			unstable++
		}
	}
	return stable, unstable
}
