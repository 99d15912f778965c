package integrators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/freude/internal/dynamo"
)

// ErrUnknownMethod is returned by New for a name that is not registered.
var ErrUnknownMethod = errors.New("integrators: unknown method")

var orders = map[string]int{
	"euler": 1,
	"heun":  2,
	"rk4":   4,
}

// New builds the stepper registered under method.
func New[S any](method string, sp dynamo.Space[S], x0 S, dt float64) (dynamo.Stepper[S], error) {
	switch method {
	case "euler":
		return NewEuler(sp, x0, dt), nil
	case "heun":
		return NewHeun(sp, x0, dt), nil
	case "rk4":
		return NewRK4(sp, x0, dt), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Order returns the global order of accuracy of method, or 0 when unknown.
func Order(method string) int { return orders[method] }

// Methods lists the registered method names.
func Methods() []string {
	names := make([]string, 0, len(orders))
	for name := range orders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
