package sim_test

import (
	"math"

	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/integrators"
	"github.com/san-kum/freude/internal/models"
	"github.com/san-kum/freude/internal/sim"
	"github.com/san-kum/freude/internal/space"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const dt = 1.0 / 128

// tape logs every hook in call order.
type tape struct {
	events  []string
	steps   int
	dts     []float64
	targets []float64
	reset   bool
}

func (t *tape) Observe(_ *models.Exponential, x *float64, dt float64) {
	t.events = append(t.events, "step")
	t.steps++
	t.dts = append(t.dts, dt)
	if t.reset {
		*x = 1
	}
}

func (t *tape) AfterRun(*models.Exponential, *float64) { t.events = append(t.events, "run") }

func (t *tape) AfterWarmup(*models.Exponential, *float64) {
	t.events = append(t.events, "warmup")
}

func (t *tape) ObserveTarget(_ *models.Exponential, _ *float64, elapsed float64) {
	t.targets = append(t.targets, elapsed)
}

func count(events []string, kind string) int {
	n := 0
	for _, e := range events {
		if e == kind {
			n++
		}
	}
	return n
}

var _ = Describe("Integrator", func() {
	var (
		sys *models.Exponential
		obs *tape
		in  *sim.Integrator[float64, *models.Exponential]
	)

	BeforeEach(func() {
		sys = models.NewExponential(0.5)
		obs = &tape{}
		st := integrators.NewEuler[float64](space.Scalar{}, 1, dt)
		in = sim.New[float64, *models.Exponential](st, sys, obs, 1)
	})

	Describe("IntegrateNSteps", func() {
		It("observes every step and finishes the run once", func() {
			elapsed := in.IntegrateNSteps(10)

			Expect(elapsed).To(Equal(10 * dt))
			Expect(obs.steps).To(Equal(10))
			Expect(obs.events[len(obs.events)-1]).To(Equal("run"))
			Expect(count(obs.events, "run")).To(Equal(1))
			Expect(obs.dts).To(HaveEach(dt))

			want := 1.0
			for i := 0; i < 10; i++ {
				want = want + dt*(sys.Rate*want)
			}
			Expect(*in.State()).To(Equal(want))
		})

		It("still calls AfterRun for zero steps", func() {
			Expect(in.IntegrateNSteps(0)).To(BeZero())
			Expect(obs.events).To(Equal([]string{"run"}))
			Expect(*in.State()).To(Equal(1.0))
		})
	})

	Describe("IntegrateTime", func() {
		It("stops before the step that would pass the target", func() {
			elapsed, n := in.IntegrateTime(0.5 + dt/2)
			Expect(n).To(Equal(64))
			Expect(elapsed).To(Equal(0.5))
			Expect(obs.steps).To(Equal(64))
			Expect(count(obs.events, "run")).To(Equal(1))
		})

		It("includes a step that lands exactly on the target", func() {
			elapsed, n := in.IntegrateTime(1)
			Expect(n).To(Equal(128))
			Expect(elapsed).To(Equal(1.0))
		})

		It("takes no step when the target is shorter than dt", func() {
			elapsed, n := in.IntegrateTime(dt / 2)
			Expect(n).To(BeZero())
			Expect(elapsed).To(BeZero())
			Expect(obs.events).To(Equal([]string{"run"}))
		})

		It("matches the equivalent step count exactly for every method", func() {
			for _, method := range integrators.Methods() {
				byCount, err := integrators.New[float64](method, space.Scalar{}, 1, dt)
				Expect(err).NotTo(HaveOccurred())
				byTime, err := integrators.New[float64](method, space.Scalar{}, 1, dt)
				Expect(err).NotTo(HaveOccurred())

				a := sim.New[float64, *models.Exponential](byCount, sys, nil, 1)
				b := sim.New[float64, *models.Exponential](byTime, sys, nil, 1)

				elapsedA := a.IntegrateNSteps(128)
				elapsedB, n := b.IntegrateTime(1)

				Expect(n).To(Equal(128), method)
				Expect(elapsedB).To(Equal(elapsedA), method)
				Expect(*b.State()).To(Equal(*a.State()), method)
				Expect(*a.State()).To(BeNumerically("~", math.Exp(0.5), 5e-3), method)
			}
		})

		It("measures time by repeated addition of dt", func() {
			st := integrators.NewEuler[float64](space.Scalar{}, 1, 0.01)
			in := sim.New[float64, *models.Exponential](st, sys, nil, 1)

			elapsed, n := in.IntegrateTime(1)

			want, steps := 0.0, 0
			for want+0.01 <= 1 {
				want += 0.01
				steps++
			}
			Expect(n).To(Equal(steps))
			Expect(n).To(Equal(99))
			Expect(elapsed).To(Equal(want))
		})
	})

	Describe("ranges", func() {
		It("sums time ranges and reports each target", func() {
			elapsed, n := in.IntegrateTimeRange([]float64{0.5, 0.25})
			Expect(n).To(Equal(96))
			Expect(elapsed).To(Equal(0.75))
			Expect(obs.targets).To(Equal([]float64{0.5, 0.25}))
			Expect(count(obs.events, "run")).To(Equal(1))
		})

		It("sums step ranges and reports each target", func() {
			elapsed, n := in.IntegrateNRange([]int{3, 5})
			Expect(n).To(Equal(8))
			Expect(elapsed).To(Equal(8 * dt))
			Expect(obs.targets).To(Equal([]float64{3 * dt, 5 * dt}))
			Expect(count(obs.events, "run")).To(Equal(1))
		})

		It("finishes an empty range with a single AfterRun", func() {
			elapsed, n := in.IntegrateNRange(nil)
			Expect(n).To(BeZero())
			Expect(elapsed).To(BeZero())
			Expect(obs.events).To(Equal([]string{"run"}))
		})
	})

	Describe("warmup", func() {
		It("advances the state without observing steps", func() {
			elapsed := in.WarmupNSteps(5)
			Expect(elapsed).To(Equal(5 * dt))
			Expect(obs.events).To(Equal([]string{"warmup"}))
			Expect(*in.State()).To(BeNumerically(">", 1))
		})

		It("warms up for a duration", func() {
			elapsed, n := in.WarmupTime(0.25)
			Expect(n).To(Equal(32))
			Expect(elapsed).To(Equal(0.25))
			Expect(obs.steps).To(BeZero())
			Expect(count(obs.events, "warmup")).To(Equal(1))
		})

		It("continues from the warmed-up state", func() {
			in.WarmupNSteps(4)
			warmed := *in.State()
			in.IntegrateNSteps(1)
			Expect(*in.State()).To(Equal(warmed + dt*(sys.Rate*warmed)))
			Expect(obs.events).To(Equal([]string{"warmup", "step", "run"}))
		})
	})

	Describe("observers", func() {
		It("lets the observer mutate the state after a step", func() {
			obs.reset = true
			in.IntegrateNSteps(20)
			Expect(*in.State()).To(Equal(1.0))
		})

		It("swaps observers and returns the previous one", func() {
			next := &tape{}
			prev := in.SetObserver(next)
			Expect(prev).To(BeIdenticalTo(obs))
			in.IntegrateNSteps(2)
			Expect(obs.events).To(BeEmpty())
			Expect(next.steps).To(Equal(2))
		})

		It("replaces a nil observer with a NullObserver", func() {
			in.SetObserver(nil)
			Expect(in.Observer()).To(Equal(dynamo.Observer[*models.Exponential, float64](dynamo.NullObserver[*models.Exponential, float64]{})))
			Expect(func() { in.IntegrateNSteps(3) }).NotTo(Panic())
		})

		It("exposes the live state for edits between runs", func() {
			in.IntegrateNSteps(3)
			*in.State() = 2
			in.IntegrateNSteps(1)
			Expect(*in.State()).To(Equal(2 + dt*(sys.Rate*2)))
			Expect(in.System()).To(BeIdenticalTo(sys))
			Expect(in.Stepper().Timestep()).To(Equal(dt))
		})
	})
})
