package config

import "sort"

var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			Model: "lorenz", Stepper: "rk4", Dt: 0.01, Duration: 50.0, RecordEvery: 5,
			InitState: []float64{1, 1, 1},
		},
		"vec": {
			Model: "lorenz", Stepper: "rk4", Representation: "vec", Dt: 0.01, Duration: 50.0, RecordEvery: 5,
			InitState: []float64{1, 1, 1},
		},
		"periodic": {
			Model: "lorenz", Stepper: "rk4", Dt: 0.005, Duration: 50.0, Warmup: 20, RecordEvery: 10,
			InitState: []float64{1, 1, 1}, Params: map[string]float64{"rho": 160},
		},
	},
	"pendulum": {
		"small": {
			Model: "pendulum", Stepper: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: []float64{0.2, 0.0},
		},
		"large": {
			Model: "pendulum", Stepper: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: []float64{2.5, 0.0},
		},
		"spinning": {
			Model: "pendulum", Stepper: "rk4", Dt: 0.01, Duration: 30.0,
			InitState: []float64{0.1, 8.0},
		},
	},
	"oscillator": {
		"euler-drift": {
			Model: "oscillator", Stepper: "euler", Dt: 0.05, Duration: 20.0,
			InitState: []float64{1, 0},
		},
		"heun": {
			Model: "oscillator", Stepper: "heun", Dt: 0.05, Duration: 20.0,
			InitState: []float64{1, 0},
		},
	},
	"vanderpol": {
		"relaxation": {
			Model: "vanderpol", Stepper: "rk4", Dt: 0.01, Duration: 40.0,
			Params: map[string]float64{"mu": 5},
		},
	},
	"kuramoto": {
		"sync": {
			Model: "kuramoto", Stepper: "rk4", Dt: 0.05, Duration: 50.0, Size: 100, Seed: 1,
			Params: map[string]float64{"k": 4},
		},
		"incoherent": {
			Model: "kuramoto", Stepper: "rk4", Dt: 0.05, Duration: 50.0, Size: 100, Seed: 1,
			Params: map[string]float64{"k": 0.5},
		},
	},
	"neuralnet": {
		"chaotic": {
			Model: "neuralnet", Stepper: "rk4", Dt: 0.1, Duration: 100.0, Size: 100, Seed: 1,
			Params: map[string]float64{"g": 1.5},
		},
	},
	"heat": {
		"plate": {
			Model: "heat", Stepper: "rk4", Dt: 0.1, Duration: 20.0, Size: 16,
		},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in, or
// nil when it does not exist.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	out := cfg.Clone()
	if out.RecordEvery < 1 {
		out.RecordEvery = DefaultRecordEvery
	}
	if out.Stability <= 0 {
		out.Stability = DefaultStability
	}
	return out
}

// ListPresets returns the preset names for model in sorted order.
func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
