package experiment

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/san-kum/freude/internal/config"
	"github.com/san-kum/freude/internal/dynamo"
	"github.com/san-kum/freude/internal/metrics"
	"github.com/san-kum/freude/internal/models"
	"github.com/san-kum/freude/internal/ndarray"
	"github.com/san-kum/freude/internal/space"
	"gonum.org/v1/gonum/mat"
)

type runFunc func(cfg *config.Config, repr string) (runner, error)

type vecFunc func(cfg *config.Config) (dynamo.System[space.Vec], space.Vec, error)

// Model is a registry entry. The first representation is the default.
type Model struct {
	Name            string
	Description     string
	Representations []string

	run runFunc
	vec vecFunc
}

type Registry struct {
	models map[string]Model
}

func NewRegistry() *Registry {
	r := &Registry{models: make(map[string]Model)}

	r.register("exponential", "dx/dt = rate·x, in every representation",
		[]string{"scalar", "tuple", "vec", "array", "matrix"}, runExponential, nil)
	r.register("sine", "dx/dt = a + sin x", []string{"scalar"}, runSine, nil)
	r.register("oscillator", "harmonic oscillator", []string{"tuple"}, func(cfg *config.Config, _ string) (runner, error) {
		return runTuple[space.T2](cfg, models.NewOscillator(1))
	}, nil)
	r.register("pendulum", "damped pendulum", []string{"tuple"}, func(cfg *config.Config, _ string) (runner, error) {
		return runTuple[space.T2](cfg, models.NewPendulum())
	}, nil)
	r.register("vanderpol", "Van der Pol oscillator", []string{"tuple"}, func(cfg *config.Config, _ string) (runner, error) {
		return runTuple[space.T2](cfg, models.NewVanDerPol())
	}, nil)
	r.register("lorenz", "Lorenz attractor", []string{"tuple", "vec"}, runLorenz, lorenzVec)
	r.register("rossler", "Rössler attractor", []string{"tuple"}, func(cfg *config.Config, _ string) (runner, error) {
		return runTuple[space.T3](cfg, models.NewRossler())
	}, nil)
	r.register("duffing", "forced Duffing oscillator", []string{"tuple"}, func(cfg *config.Config, _ string) (runner, error) {
		return runTuple[space.T3](cfg, models.NewDuffing())
	}, nil)
	r.register("kuramoto", "globally coupled phase oscillators", []string{"vec"}, runKuramoto, kuramotoVec)
	r.register("neuralnet", "random recurrent rate network", []string{"vec"}, runNeuralNet, neuralNetVec)
	r.register("heat", "2D heat equation on a square grid", []string{"array"}, runHeat, nil)
	r.register("rotation", "dX/dt = A·X with A a planar rotation generator", []string{"matrix"}, runRotation, nil)

	return r
}

func (r *Registry) register(name, desc string, reprs []string, run runFunc, vec vecFunc) {
	r.models[name] = Model{Name: name, Description: desc, Representations: reprs, run: run, vec: vec}
}

func (r *Registry) Get(name string) (Model, error) {
	m, ok := r.models[name]
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return m, nil
}

// List returns the registered model names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) resolve(cfg *config.Config) (Model, runner, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, nil, err
	}
	m, err := r.Get(cfg.Model)
	if err != nil {
		return Model{}, nil, err
	}
	repr := cfg.Representation
	if repr == "" {
		repr = m.Representations[0]
	}
	if !slices.Contains(m.Representations, repr) {
		return Model{}, nil, fmt.Errorf("%w: %s supports %v, got %q", ErrUnknownRepresentation, m.Name, m.Representations, repr)
	}
	job, err := m.run(cfg, repr)
	if err != nil {
		return Model{}, nil, err
	}
	return m, job, nil
}

// Run validates cfg and executes it.
func (r *Registry) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	_, job, err := r.resolve(cfg)
	if err != nil {
		return nil, err
	}
	return job.execute(ctx)
}

// Stream builds the configured run for stepping on demand.
func (r *Registry) Stream(cfg *config.Config) (*Stream, error) {
	m, job, err := r.resolve(cfg)
	if err != nil {
		return nil, err
	}
	return job.stream(m.Name)
}

// VecSystem builds the Vec form of the configured model and its initial
// state, for analyses that work on Vec states only.
func (r *Registry) VecSystem(cfg *config.Config) (dynamo.System[space.Vec], space.Vec, error) {
	m, err := r.Get(cfg.Model)
	if err != nil {
		return nil, nil, err
	}
	if m.vec == nil {
		return nil, nil, fmt.Errorf("%w: %s has no vec form", ErrUnknownRepresentation, m.Name)
	}
	return m.vec(cfg)
}

func runExponential(cfg *config.Config, repr string) (runner, error) {
	m := models.NewExponential(-1)
	if err := models.Apply(m, cfg.Params); err != nil {
		return nil, err
	}
	x0, err := initScalar(cfg, 1)
	if err != nil {
		return nil, err
	}
	switch repr {
	case "tuple":
		sys := dynamo.IntoFunc[space.T1](func(x space.T1, dx *space.T1) { dx[0] = m.Rate * x[0] })
		return newJob(cfg, setup[space.T1, dynamo.IntoFunc[space.T1]]{
			space: space.Tuple[space.T1]{}, system: sys, x0: space.T1{x0},
		})
	case "vec":
		sys := dynamo.IntoFunc[space.Vec](func(x space.Vec, dx *space.Vec) { (*dx)[0] = m.Rate * x[0] })
		return newJob(cfg, setup[space.Vec, dynamo.IntoFunc[space.Vec]]{
			space: space.Seq{}, system: sys, x0: space.Vec{x0},
		})
	case "array":
		a, err := ndarray.FromSlice([]float64{x0}, 1)
		if err != nil {
			return nil, err
		}
		sys := dynamo.IntoFunc[*ndarray.Array](func(x *ndarray.Array, dx **ndarray.Array) {
			(*dx).SetFlat(0, m.Rate*x.AtFlat(0))
		})
		return newJob(cfg, setup[*ndarray.Array, dynamo.IntoFunc[*ndarray.Array]]{
			space: space.Array{}, system: sys, x0: a,
		})
	case "matrix":
		lin := &models.Linear{A: mat.NewDense(1, 1, []float64{m.Rate})}
		return newJob(cfg, setup[*mat.Dense, *models.Linear]{
			space: space.Matrix{}, system: lin, x0: mat.NewDense(1, 1, []float64{x0}),
		})
	default:
		return newJob(cfg, setup[float64, *models.Exponential]{
			space: space.Scalar{}, system: m, x0: x0,
		})
	}
}

func runSine(cfg *config.Config, _ string) (runner, error) {
	m := models.NewSineDrift(1)
	if err := models.Apply(m, cfg.Params); err != nil {
		return nil, err
	}
	x0, err := initScalar(cfg, 1)
	if err != nil {
		return nil, err
	}
	return newJob(cfg, setup[float64, *models.SineDrift]{space: space.Scalar{}, system: m, x0: x0})
}

type tupleModel[T space.Tupled[T]] interface {
	dynamo.System[T]
	models.Parametrized
	DefaultState() T
}

func runTuple[T space.Tupled[T], Sy tupleModel[T]](cfg *config.Config, sys Sy) (runner, error) {
	if err := models.Apply(sys, cfg.Params); err != nil {
		return nil, err
	}
	x0, err := initTuple(cfg, sys.DefaultState())
	if err != nil {
		return nil, err
	}
	return newJob(cfg, setup[T, Sy]{space: space.Tuple[T]{}, system: sys, x0: x0})
}

func runLorenz(cfg *config.Config, repr string) (runner, error) {
	if repr != "vec" {
		return runTuple[space.T3](cfg, models.NewLorenz())
	}
	sys, x0, err := lorenzVec(cfg)
	if err != nil {
		return nil, err
	}
	return newJob(cfg, setup[space.Vec, dynamo.System[space.Vec]]{space: space.Seq{}, system: sys, x0: x0})
}

func lorenzVec(cfg *config.Config) (dynamo.System[space.Vec], space.Vec, error) {
	m := models.NewLorenzVec()
	if err := models.Apply(m, cfg.Params); err != nil {
		return nil, nil, err
	}
	x0, err := initVec(cfg, space.Vec{1, 1, 1})
	if err != nil {
		return nil, nil, err
	}
	return m, x0, nil
}

func sizeOr(cfg *config.Config, def int) int {
	if cfg.Size > 0 {
		return cfg.Size
	}
	return def
}

func newKuramoto(cfg *config.Config) (*models.Kuramoto, space.Vec, error) {
	m := models.NewKuramoto(sizeOr(cfg, 100), 1, cfg.Seed)
	if err := models.Apply(m, cfg.Params); err != nil {
		return nil, nil, err
	}
	x0, err := initVec(cfg, m.DefaultState())
	if err != nil {
		return nil, nil, err
	}
	return m, x0, nil
}

func kuramotoVec(cfg *config.Config) (dynamo.System[space.Vec], space.Vec, error) {
	return newKuramoto(cfg)
}

func runKuramoto(cfg *config.Config, _ string) (runner, error) {
	m, x0, err := newKuramoto(cfg)
	if err != nil {
		return nil, err
	}
	return newJob(cfg, setup[space.Vec, *models.Kuramoto]{
		space:  space.Seq{},
		system: m,
		x0:     x0,
		extra: []dynamo.Observer[*models.Kuramoto, space.Vec]{
			metrics.NewPhaseWrap[*models.Kuramoto, space.Vec](space.Seq{}),
		},
		summary: func(x space.Vec) map[string]float64 {
			return map[string]float64{"order": m.Order(x)}
		},
	})
}

func newNeuralNet(cfg *config.Config) (*models.NeuralNet, space.Vec, error) {
	m := models.NewNeuralNet(sizeOr(cfg, 100), 1.5, cfg.Seed)
	if err := models.Apply(m, cfg.Params); err != nil {
		return nil, nil, err
	}
	x0, err := initVec(cfg, m.DefaultState())
	if err != nil {
		return nil, nil, err
	}
	return m, x0, nil
}

func neuralNetVec(cfg *config.Config) (dynamo.System[space.Vec], space.Vec, error) {
	return newNeuralNet(cfg)
}

func runNeuralNet(cfg *config.Config, _ string) (runner, error) {
	m, x0, err := newNeuralNet(cfg)
	if err != nil {
		return nil, err
	}
	return newJob(cfg, setup[space.Vec, *models.NeuralNet]{space: space.Seq{}, system: m, x0: x0})
}

func runHeat(cfg *config.Config, _ string) (runner, error) {
	m := models.NewHeat()
	if err := models.Apply(m, cfg.Params); err != nil {
		return nil, err
	}
	n := sizeOr(cfg, 16)
	x0, _ := m.Mode(n, n)
	if len(cfg.InitState) > 0 {
		if len(cfg.InitState) != n*n {
			return nil, fmt.Errorf("%w: want %d, got %d", ErrInitState, n*n, len(cfg.InitState))
		}
		a, err := ndarray.FromSlice(append([]float64(nil), cfg.InitState...), n, n)
		if err != nil {
			return nil, err
		}
		x0 = a
	}
	return newJob(cfg, setup[*ndarray.Array, *models.Heat]{
		space:  space.Array{},
		system: m,
		x0:     x0,
		summary: func(x *ndarray.Array) map[string]float64 {
			return map[string]float64{"total": m.Total(x)}
		},
	})
}

func runRotation(cfg *config.Config, _ string) (runner, error) {
	w := 1.0
	for k, v := range cfg.Params {
		if k != "w" {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownParam, k)
		}
		w = v
	}
	lin := models.NewRotation(w)
	x0 := mat.NewDense(2, 1, []float64{1, 0})
	if len(cfg.InitState) > 0 {
		if len(cfg.InitState)%2 != 0 {
			return nil, fmt.Errorf("%w: want an even length, got %d", ErrInitState, len(cfg.InitState))
		}
		x0 = mat.NewDense(2, len(cfg.InitState)/2, append([]float64(nil), cfg.InitState...))
	}
	return newJob(cfg, setup[*mat.Dense, *models.Linear]{
		space:  space.Matrix{},
		system: lin,
		x0:     x0,
		summary: func(x *mat.Dense) map[string]float64 {
			return map[string]float64{"norm": mat.Norm(x, 2)}
		},
	})
}
