package metrics

// Counter counts hook invocations.
type Counter[Sy, S any] struct {
	Steps    int
	Runs     int
	Warmups  int
	Elapsed  float64
	LastStep float64
}

func (c *Counter[Sy, S]) Name() string { return "steps" }

func (c *Counter[Sy, S]) Observe(_ Sy, _ *S, dt float64) {
	c.Steps++
	c.Elapsed += dt
	c.LastStep = dt
}

func (c *Counter[Sy, S]) AfterRun(Sy, *S) { c.Runs++ }

func (c *Counter[Sy, S]) AfterWarmup(Sy, *S) { c.Warmups++ }

func (c *Counter[Sy, S]) Value() float64 { return float64(c.Steps) }

func (c *Counter[Sy, S]) Reset() { *c = Counter[Sy, S]{} }
