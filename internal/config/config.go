// Package config loads and validates run configurations.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel       = "lorenz"
	DefaultStepper     = "rk4"
	DefaultDt          = 0.01
	DefaultDuration    = 10.0
	DefaultRecordEvery = 1
	DefaultStability   = 1e6
)

// Config describes one run. A zero Steps means the run is bounded by
// Duration; otherwise exactly Steps steps are taken and Duration is ignored.
type Config struct {
	Model          string             `yaml:"model"`
	Stepper        string             `yaml:"stepper"`
	Representation string             `yaml:"representation,omitempty"`
	Dt             float64            `yaml:"dt"`
	Duration       float64            `yaml:"duration"`
	Steps          int                `yaml:"steps,omitempty"`
	Warmup         float64            `yaml:"warmup,omitempty"`
	RecordEvery    int                `yaml:"record_every"`
	Size           int                `yaml:"size,omitempty"`
	Seed           uint64             `yaml:"seed"`
	Stability      float64            `yaml:"stability,omitempty"`
	InitState      []float64          `yaml:"init_state,omitempty"`
	Params         map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Stepper:     DefaultStepper,
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		RecordEvery: DefaultRecordEvery,
		Stability:   DefaultStability,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first problem with c.
func (c *Config) Validate() error {
	switch {
	case c.Model == "":
		return ErrMissingModel
	case c.Stepper == "":
		return ErrMissingStepper
	case !(c.Dt > 0) || math.IsInf(c.Dt, 0):
		return fmt.Errorf("%w: got %v", ErrInvalidTimestep, c.Dt)
	case !nonNegativeFinite(c.Duration) || !nonNegativeFinite(c.Warmup) || c.Steps < 0:
		return ErrInvalidDuration
	case c.Size < 0:
		return ErrInvalidSize
	}
	if c.RecordEvery < 1 {
		c.RecordEvery = DefaultRecordEvery
	}
	if c.Stability <= 0 {
		c.Stability = DefaultStability
	}
	return nil
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	if c.InitState != nil {
		out.InitState = append([]float64(nil), c.InitState...)
	}
	if c.Params != nil {
		out.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	return &out
}
