package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/freude/internal/automation"
	"github.com/san-kum/freude/internal/experiment"
	"github.com/san-kum/freude/internal/optim"
	"github.com/san-kum/freude/internal/storage"
	"github.com/spf13/cobra"
)

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	ctx, stop := interruptible()
	defer stop()

	results, err := automation.RunScenario(ctx, sc, experiment.NewRegistry(), st)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "STEP\tMODEL\tSTEPPER\tSTEPS\tSTABILITY\tRUN ID\n")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.3f\t%s\n", i+1, r.Step.Model, r.Step.Stepper, r.Result.Steps, r.Result.Metrics["stability"], r.RunID)
	}
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return err
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	trials, _ := cmd.Flags().GetInt("trials")
	perturb, _ := cmd.Flags().GetFloat64("perturb")
	ctx, stop := interruptible()
	defer stop()

	mc := &automation.MonteCarlo{Base: cfg, Perturbation: perturb, Trials: trials, Seed: cfg.Seed}
	out, err := mc.Run(ctx, experiment.NewRegistry())
	if err != nil {
		return err
	}
	stable, unstable := automation.Stats(out)
	fmt.Printf("%s: %d stable, %d unstable of %d trials (±%g)\n", cfg.Model, stable, unstable, len(out), perturb)
	return nil
}

// parseGrid reads name=v1,v2,... specs, keeping their order.
func parseGrid(specs []string) ([]string, [][]float64, error) {
	names := make([]string, 0, len(specs))
	ranges := make([][]float64, 0, len(specs))
	for _, spec := range specs {
		name, list, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, nil, fmt.Errorf("grid %q: want name=v1,v2,...", spec)
		}
		var vals []float64
		for _, s := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("grid %q: %w", spec, err)
			}
			vals = append(vals, v)
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}
	return names, ranges, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	specs, _ := cmd.Flags().GetStringArray("grid")
	metric, _ := cmd.Flags().GetString("metric")
	names, ranges, err := parseGrid(specs)
	if err != nil {
		return err
	}
	g, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}
	ctx, stop := interruptible()
	defer stop()

	best, all, err := g.Search(ctx, experiment.NewRegistry(), cfg, metric)
	if err != nil {
		return err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Value < all[j].Value })
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(strings.Join(names, "\t")), strings.ToUpper(metric))
	for _, ev := range all {
		vals := make([]string, len(names))
		for i, n := range names {
			vals[i] = strconv.FormatFloat(ev.Params[n], 'g', -1, 64)
		}
		result := fmt.Sprintf("%.6g", ev.Value)
		if ev.Err != nil {
			result = "diverged"
		}
		fmt.Fprintf(w, "%s\t%s\n", strings.Join(vals, "\t"), result)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("best: %v -> %.6g\n", best.Params, best.Value)
	return nil
}
