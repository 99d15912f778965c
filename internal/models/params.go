package models

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownParam is returned by SetParam for names a model does not have.
var ErrUnknownParam = errors.New("unknown parameter")

// Parametrized is implemented by every model in this package so parameters
// can be read and overridden by name from configuration.
type Parametrized interface {
	Params() map[string]float64
	SetParam(name string, v float64) error
}

type param struct {
	name string
	ptr  *float64
}

func collect(ps []param) map[string]float64 {
	m := make(map[string]float64, len(ps))
	for _, p := range ps {
		m[p.name] = *p.ptr
	}
	return m
}

func assign(ps []param, name string, v float64) error {
	for _, p := range ps {
		if p.name == name {
			*p.ptr = v
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// ParamNames returns the sorted parameter names of m.
func ParamNames(m Parametrized) []string {
	ps := m.Params()
	names := make([]string, 0, len(ps))
	for n := range ps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply sets every entry of params on m, stopping at the first failure.
func Apply(m Parametrized, params map[string]float64) error {
	for _, n := range sortedKeys(params) {
		if err := m.SetParam(n, params[n]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
