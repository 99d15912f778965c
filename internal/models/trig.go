package models

import "math"

// TrigTable approximates sin and cos by linear interpolation between n
// precomputed samples of one period.
type TrigTable struct {
	sin []float64
	cos []float64
	n   int
}

// DefaultTrigTable has a resolution of about 0.0015 rad.
var DefaultTrigTable = NewTrigTable(4096)

func NewTrigTable(n int) *TrigTable {
	t := &TrigTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}
	return t
}

// index locates x in the table. Non-finite input maps to the first sample
// with a NaN weight, so lookups return NaN instead of indexing out of range.
func (t *TrigTable) index(x float64) (i0, i1 int, frac float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 1 % t.n, math.NaN()
	}
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	if i >= t.n {
		i = t.n - 1
	}
	frac = idx - float64(i)
	return i, (i + 1) % t.n, frac
}

func (t *TrigTable) Sin(x float64) float64 {
	i0, i1, f := t.index(x)
	return t.sin[i0]*(1-f) + t.sin[i1]*f
}

func (t *TrigTable) Cos(x float64) float64 {
	i0, i1, f := t.index(x)
	return t.cos[i0]*(1-f) + t.cos[i1]*f
}

func (t *TrigTable) SinCos(x float64) (sin, cos float64) {
	i0, i1, f := t.index(x)
	sin = t.sin[i0]*(1-f) + t.sin[i1]*f
	cos = t.cos[i0]*(1-f) + t.cos[i1]*f
	return
}
