// Package metrics provides observers that summarise a run.
//
// Every observer here satisfies [dynamo.Observer]; the ones that reduce a run
// to a number also satisfy [Metric] so callers can collect them by name.
package metrics

// Metric is an observer result identified by name.
type Metric interface {
	Name() string
	Value() float64
	Reset()
}

// Collect returns the current value of every metric keyed by name.
func Collect(ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
