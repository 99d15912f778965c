package metrics

import "github.com/san-kum/freude/internal/dynamo"

// Recorder samples the flattened state every Every observed steps together
// with the time elapsed since the recorder was created or reset.
type Recorder[Sy, S any] struct {
	dynamo.Hooks[Sy, S]
	space   dynamo.Space[S]
	every   int
	steps   int
	elapsed float64

	Times  []float64
	States [][]float64
}

// NewRecorder returns a recorder that keeps one sample out of every. Values
// below one record every step.
func NewRecorder[Sy, S any](sp dynamo.Space[S], every int) *Recorder[Sy, S] {
	if every < 1 {
		every = 1
	}
	return &Recorder[Sy, S]{space: sp, every: every}
}

// Record appends x at the current elapsed time. Use it for the initial
// condition before the first step.
func (r *Recorder[Sy, S]) Record(x S) {
	n := r.space.Len(x)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		row[i] = r.space.At(x, i)
	}
	r.Times = append(r.Times, r.elapsed)
	r.States = append(r.States, row)
}

func (r *Recorder[Sy, S]) Observe(_ Sy, x *S, dt float64) {
	r.elapsed += dt
	r.steps++
	if r.steps%r.every == 0 {
		r.Record(*x)
	}
}

// Series returns component i of every sample.
func (r *Recorder[Sy, S]) Series(i int) []float64 {
	out := make([]float64, 0, len(r.States))
	for _, s := range r.States {
		if i < len(s) {
			out = append(out, s[i])
		}
	}
	return out
}

func (r *Recorder[Sy, S]) Len() int { return len(r.States) }

func (r *Recorder[Sy, S]) Reset() {
	r.steps = 0
	r.elapsed = 0
	r.Times = nil
	r.States = nil
}
