// Package export writes runs as SVG images.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/freude/internal/viz"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`

// CanvasSVG draws every set dot of a Braille canvas as a circle, scale
// pixels per dot.
func CanvasSVG(c *viz.Canvas, scale float64, fill string) string {
	if c == nil {
		return ""
	}
	w, h := c.Width*2, c.Height*4
	var sb strings.Builder
	fmt.Fprintf(&sb, header, int(float64(w)*scale), int(float64(h)*scale), int(float64(w)*scale), int(float64(h)*scale))
	fmt.Fprintf(&sb, "<g fill=%q>\n", fill)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.Dot(x, y) {
				fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
					(float64(x)+0.5)*scale, (float64(y)+0.5)*scale, 0.4*scale)
			}
		}
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// PhaseSVG draws ys against xs as one path. A non-finite point starts a new
// subpath. Fewer than two points yield an empty string.
func PhaseSVG(xs, ys []float64, width, height int, stroke string) string {
	n := min(len(xs), len(ys))
	if n < 2 {
		return ""
	}
	b := viz.BoundsOf(xs[:n], ys[:n])
	rx, ry := b.MaxX-b.MinX, b.MaxY-b.MinY

	var sb strings.Builder
	fmt.Fprintf(&sb, header, width, height, width, height)
	fmt.Fprintf(&sb, "<path fill=\"none\" stroke=%q stroke-width=\"1.5\" d=\"", stroke)
	move := true
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) || math.IsInf(xs[i], 0) || math.IsInf(ys[i], 0) {
			move = true
			continue
		}
		x := (xs[i] - b.MinX) / rx * float64(width)
		y := float64(height) - (ys[i]-b.MinY)/ry*float64(height)
		cmd := "L"
		if move {
			cmd = "M"
			move = false
		}
		fmt.Fprintf(&sb, "%s%.1f,%.1f ", cmd, x, y)
	}
	sb.WriteString("\"/>\n</svg>\n")
	return sb.String()
}
