package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/freude/internal/analysis"
	"github.com/san-kum/freude/internal/export"
	"github.com/san-kum/freude/internal/storage"
	"github.com/san-kum/freude/internal/viz"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tMODEL\tSTEPPER\tDT\tSTEPS\tWHEN\n")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%d\t%s\n", r.ID, r.Model, r.Stepper, r.Dt, r.Steps, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if jsonOut != "" {
		return writeExport(jsonOut, *meta, traj)
	}
	if svgOut != "" {
		svg := export.PhaseSVG(viz.Column(traj.States, xAxis), viz.Column(traj.States, yAxis), 800, 600, "#00ffcc")
		if svg == "" {
			return fmt.Errorf("run %s has too few samples to draw", args[0])
		}
		return os.WriteFile(svgOut, []byte(svg), 0644)
	}
	fmt.Print(viz.Summary(fmt.Sprintf("%s · %s · dt=%g", meta.Model, meta.ID, meta.Dt), meta.Metrics, viz.GetTheme(theme)))
	fmt.Println(viz.PlotSeries(traj.States, components, viz.PlotOptions{
		Width: 70, Height: 15, Caption: meta.Model, Color: true,
	}))
	return nil
}

func deleteRun(cmd *cobra.Command, args []string) error {
	if err := storage.New(dataDir).Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	traj, err := storage.New(dataDir).LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(traj.Times) < 4 {
		return fmt.Errorf("run %s has too few samples for a spectrum", args[0])
	}
	sample := traj.Times[1] - traj.Times[0]
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "COMPONENT\tFREQUENCY\tPERIOD\n")
	for i := range traj.States[0] {
		f := analysis.DominantFrequency(viz.Column(traj.States, i), sample)
		period := "-"
		if f > 0 {
			period = fmt.Sprintf("%.4g", 1/f)
		}
		fmt.Fprintf(w, "x%d\t%.4g\t%s\n", i, f, period)
	}
	return w.Flush()
}
