package viz

import (
	"math"
	"strings"
)

// Braille cells hold 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of Braille cells. Pixel coordinates run over
// (Width*2) x (Height*4) with y growing downward.
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
}

// Dot reports whether pixel (x, y) is set.
func (c *Canvas) Dot(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = blank
		}
	}
}

// Line draws a segment with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Bounds is the data rectangle mapped onto the canvas.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// BoundsOf returns the bounding box of the finite points, padded by 5% on
// every side. Degenerate extents are widened to one unit.
func BoundsOf(xs, ys []float64) Bounds {
	b := Bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for i := range xs {
		if i >= len(ys) || !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		b.MinX, b.MaxX = math.Min(b.MinX, xs[i]), math.Max(b.MaxX, xs[i])
		b.MinY, b.MaxY = math.Min(b.MinY, ys[i]), math.Max(b.MaxY, ys[i])
	}
	if b.MinX > b.MaxX {
		return Bounds{-1, 1, -1, 1}
	}
	pad := func(lo, hi float64) (float64, float64) {
		r := hi - lo
		if r == 0 {
			return lo - 0.5, hi + 0.5
		}
		return lo - 0.05*r, hi + 0.05*r
	}
	b.MinX, b.MaxX = pad(b.MinX, b.MaxX)
	b.MinY, b.MaxY = pad(b.MinY, b.MaxY)
	return b
}

func (c *Canvas) pixel(b Bounds, x, y float64) (int, int) {
	w, h := float64(c.Width*2-1), float64(c.Height*4-1)
	px := int(math.Round((x - b.MinX) / (b.MaxX - b.MinX) * w))
	py := int(math.Round((b.MaxY - y) / (b.MaxY - b.MinY) * h))
	return px, py
}

// Trace draws the polyline through (xs[i], ys[i]). Non-finite points break
// the line.
func (c *Canvas) Trace(b Bounds, xs, ys []float64) {
	havePrev := false
	var px, py int
	for i := range xs {
		if i >= len(ys) || !finite(xs[i]) || !finite(ys[i]) {
			havePrev = false
			continue
		}
		x, y := c.pixel(b, xs[i], ys[i])
		if havePrev {
			c.Line(px, py, x, y)
		} else {
			c.Set(x, y)
		}
		px, py, havePrev = x, y, true
	}
}

// Scatter sets one dot per point.
func (c *Canvas) Scatter(b Bounds, xs, ys []float64) {
	for i := range xs {
		if i < len(ys) && finite(xs[i]) && finite(ys[i]) {
			c.Set(c.pixel(b, xs[i], ys[i]))
		}
	}
}

// Phase renders a w×h cell phase portrait of ys against xs.
func Phase(xs, ys []float64, w, h int) string {
	c := NewCanvas(w, h)
	c.Trace(BoundsOf(xs, ys), xs, ys)
	return c.String()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
