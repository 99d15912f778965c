package config

import "errors"

var (
	ErrInvalidTimestep = errors.New("config: dt must be positive and finite")
	ErrInvalidDuration = errors.New("config: duration must be finite and not negative")
	ErrMissingModel    = errors.New("config: model is required")
	ErrMissingStepper  = errors.New("config: stepper is required")
	ErrInvalidSize     = errors.New("config: size must not be negative")
)
