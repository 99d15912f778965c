package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/san-kum/freude/internal/config"
	"github.com/san-kum/freude/internal/experiment"
	"github.com/san-kum/freude/internal/integrators"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	stepper    string
	repr       string
	dt         float64
	duration   float64
	steps      int
	warmup     float64
	every      int
	size       int
	seed       uint64
	initState  []float64
	params     []string
	save       bool
	plot       bool
	jsonOut    string
	components []int
	width      int
	height     int
	theme      string
	svgOut     string
	xAxis      int
	yAxis      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "freude",
		Short:         "fixed-step ODE integration lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".freude", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model and report its metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runModel,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&save, "save", false, "store the run under the data directory")
	runCmd.Flags().BoolVar(&plot, "plot", false, "chart the recorded components")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write metadata and trajectory as JSON to this file ('-' for stdout)")
	runCmd.Flags().IntSliceVar(&components, "components", []int{0}, "components to chart")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [model]",
		Short: "run one configuration over consecutive seeds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEnsemble,
	}
	addRunFlags(ensembleCmd)
	ensembleCmd.Flags().Int("runs", 8, "number of runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list models and steppers",
		Run: func(cmd *cobra.Command, args []string) {
			reg := experiment.NewRegistry()
			fmt.Println("models:")
			for _, name := range reg.List() {
				m, _ := reg.Get(name)
				fmt.Printf("  %-12s %-45s %s\n", m.Name, m.Description, strings.Join(m.Representations, ","))
			}
			fmt.Println("steppers:")
			for _, name := range integrators.Methods() {
				fmt.Printf("  %-12s order %d\n", name, integrators.Order(name))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list presets",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			models := make([]string, 0, len(config.Presets))
			for m := range config.Presets {
				models = append(models, m)
			}
			sort.Strings(models)
			if len(args) == 1 {
				models = []string{args[0]}
			}
			for _, m := range models {
				names := config.ListPresets(m)
				if len(names) == 0 {
					fmt.Printf("no presets for model: %s\n", m)
					continue
				}
				fmt.Printf("%s: %s\n", m, strings.Join(names, ", "))
			}
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a stored run and chart its trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntSliceVar(&components, "components", []int{0}, "components to chart")
	showCmd.Flags().StringVar(&jsonOut, "json", "", "write metadata and trajectory as JSON to this file ('-' for stdout)")
	showCmd.Flags().StringVar(&svgOut, "svg", "", "write a phase portrait to this SVG file")
	showCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	showCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "remove a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteRun,
	}

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [model]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLyapunov,
	}
	addRunFlags(lyapunovCmd)
	lyapunovCmd.Flags().Float64("d0", 1e-8, "initial separation")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation [model]",
		Short: "sweep a parameter and collect the maxima of one component",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBifurcation,
	}
	addRunFlags(bifurcationCmd)
	bifurcationCmd.Flags().String("sweep", "rho", "parameter to sweep")
	bifurcationCmd.Flags().Float64("from", 20, "first value")
	bifurcationCmd.Flags().Float64("to", 200, "last value")
	bifurcationCmd.Flags().Int("n", 10, "number of values")
	bifurcationCmd.Flags().Int("index", 2, "component whose maxima are recorded")
	bifurcationCmd.Flags().Float64("record", 50, "time recorded after the warmup")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "dominant frequency of each component of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpectrum,
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "step a model interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")
	liveCmd.Flags().Int("per-frame", 4, "steps per frame")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "time every stepper on a model",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	addRunFlags(benchCmd)

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the steps of a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	montecarloCmd := &cobra.Command{
		Use:   "montecarlo [model]",
		Short: "repeat a run from randomly perturbed initial states",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMonteCarlo,
	}
	addRunFlags(montecarloCmd)
	montecarloCmd.Flags().Int("trials", 50, "number of trials")
	montecarloCmd.Flags().Float64("perturb", 0.1, "maximum perturbation per component")

	searchCmd := &cobra.Command{
		Use:   "search [model]",
		Short: "grid search parameters for the smallest value of a metric",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSearch,
	}
	addRunFlags(searchCmd)
	searchCmd.Flags().StringArray("grid", nil, "parameter grid as name=v1,v2,...")
	searchCmd.Flags().String("metric", "energy_drift", "metric to minimise")

	rootCmd.AddCommand(runCmd, ensembleCmd, listCmd, presetsCmd, runsCmd, showCmd, deleteCmd,
		lyapunovCmd, bifurcationCmd, spectrumCmd, liveCmd, benchCmd, scenarioCmd, montecarloCmd, searchCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&stepper, "stepper", config.DefaultStepper, "euler, heun or rk4")
	f.StringVar(&repr, "repr", "", "state representation")
	f.Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	f.Float64Var(&duration, "time", config.DefaultDuration, "duration")
	f.IntVar(&steps, "steps", 0, "number of steps, overrides --time")
	f.Float64Var(&warmup, "warmup", 0, "time integrated before recording")
	f.IntVar(&every, "every", config.DefaultRecordEvery, "record every n-th step")
	f.IntVar(&size, "size", 0, "system size for kuramoto, neuralnet and heat")
	f.Uint64Var(&seed, "seed", 0, "random seed")
	f.Float64SliceVar(&initState, "init", nil, "initial state")
	f.StringSliceVar(&params, "param", nil, "model parameter as name=value")
	f.IntVarP(&width, "width", "W", 70, "chart width")
	f.IntVarP(&height, "height", "H", 15, "chart height")
	cmd.MarkFlagsMutuallyExclusive("config", "preset")
}
