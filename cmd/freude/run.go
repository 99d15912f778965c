package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/freude/internal/config"
	"github.com/san-kum/freude/internal/experiment"
	"github.com/san-kum/freude/internal/integrators"
	"github.com/san-kum/freude/internal/storage"
	"github.com/san-kum/freude/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

// buildConfig starts from the config file, the preset or the defaults, in
// that order, and applies only the flags the user set.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	model := ""
	if len(args) == 1 {
		model = args[0]
	}

	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	case preset != "":
		name := model
		if name == "" {
			name = cfg.Model
		}
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}
	if model != "" {
		cfg.Model = model
	}

	f := cmd.Flags()
	if f.Changed("stepper") {
		cfg.Stepper = stepper
	}
	if f.Changed("repr") {
		cfg.Representation = repr
	}
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("time") {
		cfg.Duration = duration
	}
	if f.Changed("steps") {
		cfg.Steps = steps
	}
	if f.Changed("warmup") {
		cfg.Warmup = warmup
	}
	if f.Changed("every") {
		cfg.RecordEvery = every
	}
	if f.Changed("size") {
		cfg.Size = size
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("init") {
		cfg.InitState = initState
	}
	for _, kv := range params {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q: want name=value", kv)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", kv, err)
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		cfg.Params[name] = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func metadata(cfg *config.Config, res *experiment.Result) storage.RunMetadata {
	return storage.RunMetadata{
		Model:          cfg.Model,
		Seed:           cfg.Seed,
		Dt:             cfg.Dt,
		Duration:       res.Elapsed,
		Steps:          res.Steps,
		Stepper:        cfg.Stepper,
		Representation: cfg.Representation,
		Params:         cfg.Params,
		Metrics:        res.Metrics,
	}
}

func writeExport(path string, meta storage.RunMetadata, traj storage.Trajectory) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return storage.ExportJSON(w, meta, traj)
}

func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	ctx, stop := interruptible()
	defer stop()

	slog.Debug("running", "model", cfg.Model, "stepper", cfg.Stepper, "dt", cfg.Dt, "duration", cfg.Duration, "steps", cfg.Steps)
	start := time.Now()
	res, err := experiment.NewRegistry().Run(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("run complete", "model", cfg.Model, "steps", res.Steps, "wall", time.Since(start))

	fmt.Print(viz.Summary(fmt.Sprintf("%s · %s · dt=%g", cfg.Model, cfg.Stepper, cfg.Dt), res.Metrics, viz.GetTheme(theme)))
	if plot {
		fmt.Println(viz.PlotSeries(res.States, components, viz.PlotOptions{
			Width: width, Height: height, Caption: cfg.Model, Color: true,
		}))
	}

	meta := metadata(cfg, res)
	traj := storage.Trajectory{Times: res.Times, States: res.States}
	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(meta, traj)
		if err != nil {
			return err
		}
		meta.ID = id
		fmt.Printf("run id: %s\n", id)
	}
	if jsonOut != "" {
		return writeExport(jsonOut, meta, traj)
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	runs, _ := cmd.Flags().GetInt("runs")
	ctx, stop := interruptible()
	defer stop()

	ens := &experiment.Ensemble{Registry: experiment.NewRegistry(), Runs: runs, SeedStart: cfg.Seed}
	results, err := ens.Run(ctx, cfg)
	if err != nil {
		return err
	}

	samples := make(map[string][]float64)
	for _, r := range results {
		for k, v := range r.Metrics {
			samples[k] = append(samples[k], v)
		}
	}
	names := make([]string, 0, len(samples))
	for k := range samples {
		names = append(names, k)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "METRIC\tMEAN\tSTDDEV\tRUNS\n")
	for _, k := range names {
		mean, std := stat.MeanStdDev(samples[k], nil)
		fmt.Fprintf(w, "%s\t%.6g\t%.3g\t%d\n", k, mean, std, len(samples[k]))
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	s, err := experiment.NewRegistry().Stream(cfg)
	if err != nil {
		return err
	}
	perFrame, _ := cmd.Flags().GetInt("per-frame")
	return viz.RunLive(s, viz.LiveOptions{PerFrame: perFrame, Theme: theme})
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	ctx, stop := interruptible()
	defer stop()
	reg := experiment.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "STEPPER\tORDER\tSTEPS\tWALL\tSTEPS/S\tENERGY DRIFT\n")
	for _, method := range integrators.Methods() {
		c := cfg.Clone()
		c.Stepper = method
		start := time.Now()
		res, err := reg.Run(ctx, c)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		wall := time.Since(start)
		drift := "-"
		if v, ok := res.Metrics["energy_drift"]; ok {
			drift = fmt.Sprintf("%.3e", v)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\t%s\n", method, integrators.Order(method), res.Steps,
			wall.Round(time.Microsecond), float64(res.Steps)/wall.Seconds(), drift)
	}
	return w.Flush()
}
