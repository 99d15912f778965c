package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green, asciigraph.Orange, asciigraph.Blue,
}

// PlotOptions sizes a line chart. Zero Width or Height lets asciigraph pick.
type PlotOptions struct {
	Width   int
	Height  int
	Caption string
	Color   bool
}

// Column extracts component i of every state. Rows too short for i yield NaN.
func Column(states [][]float64, i int) []float64 {
	col := make([]float64, len(states))
	for k, s := range states {
		if i < len(s) {
			col[k] = s[i]
		} else {
			col[k] = math.NaN()
		}
	}
	return col
}

// PlotSeries charts the listed components of states against sample index.
// Non-finite samples become gaps. It returns an empty string when nothing
// finite is left to draw.
func PlotSeries(states [][]float64, components []int, opts PlotOptions) string {
	if len(states) == 0 || len(components) == 0 {
		return ""
	}
	data := make([][]float64, 0, len(components))
	legends := make([]string, 0, len(components))
	drawable := false
	for _, c := range components {
		col := Column(states, c)
		for k, v := range col {
			if finite(v) {
				drawable = true
			} else {
				col[k] = math.NaN()
			}
		}
		data = append(data, col)
		legends = append(legends, fmt.Sprintf("x%d", c))
	}
	if !drawable {
		return ""
	}

	o := []asciigraph.Option{asciigraph.Precision(3)}
	if opts.Width > 0 {
		o = append(o, asciigraph.Width(opts.Width))
	}
	if opts.Height > 0 {
		o = append(o, asciigraph.Height(opts.Height))
	}
	if opts.Caption != "" {
		o = append(o, asciigraph.Caption(opts.Caption))
	}
	// Legends index into the series colors, so both are always set.
	colors := make([]asciigraph.AnsiColor, len(data))
	if opts.Color {
		for i := range colors {
			colors[i] = seriesColors[i%len(seriesColors)]
		}
	}
	o = append(o, asciigraph.SeriesColors(colors...))
	if len(data) > 1 {
		o = append(o, asciigraph.SeriesLegends(legends...))
	}
	return asciigraph.PlotMany(data, o...)
}
