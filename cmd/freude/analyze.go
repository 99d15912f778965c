package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/freude/internal/analysis"
	"github.com/san-kum/freude/internal/experiment"
	"github.com/san-kum/freude/internal/space"
	"github.com/san-kum/freude/internal/viz"
	"github.com/spf13/cobra"
)

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	d0, _ := cmd.Flags().GetFloat64("d0")
	sys, x0, err := experiment.NewRegistry().VecSystem(cfg)
	if err != nil {
		return err
	}
	slog.Debug("estimating lyapunov exponent", "model", cfg.Model, "warmup", cfg.Warmup, "duration", cfg.Duration, "d0", d0)
	lambda, err := analysis.LargestExponent(cfg.Stepper, sys, x0, cfg.Dt, cfg.Warmup, cfg.Duration, d0)
	if err != nil {
		return err
	}
	fmt.Printf("largest lyapunov exponent of %s: %.6f\n", cfg.Model, lambda)
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	param, _ := f.GetString("sweep")
	from, _ := f.GetFloat64("from")
	to, _ := f.GetFloat64("to")
	n, _ := f.GetInt("n")
	index, _ := f.GetInt("index")
	record, _ := f.GetFloat64("record")

	sys, x0, err := experiment.NewRegistry().VecSystem(cfg)
	if err != nil {
		return err
	}
	tun, ok := sys.(analysis.Tunable[space.Vec])
	if !ok {
		return fmt.Errorf("%s has no tunable parameters", cfg.Model)
	}
	transient := cfg.Warmup
	if transient == 0 {
		transient = cfg.Duration
	}
	pts, err := analysis.Bifurcation[space.Vec](space.Seq{}, tun, x0, analysis.Sweep{
		Method:    cfg.Stepper,
		Dt:        cfg.Dt,
		Param:     param,
		Values:    analysis.Linspace(from, to, n),
		Index:     index,
		Transient: transient,
		Record:    record,
	})
	if err != nil {
		return err
	}

	var xs, ys []float64
	for _, p := range pts {
		fmt.Printf("%s=%-10.4g %d maxima\n", param, p.Param, len(p.Values))
		for _, v := range p.Values {
			xs = append(xs, p.Param)
			ys = append(ys, v)
		}
	}
	if len(xs) == 0 {
		return nil
	}
	c := viz.NewCanvas(width, height)
	b := viz.BoundsOf(xs, ys)
	if from != to {
		b.MinX, b.MaxX = math.Min(from, to), math.Max(from, to)
	}
	c.Scatter(b, xs, ys)
	fmt.Print(c.String())
	return nil
}
