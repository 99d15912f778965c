package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/freude/internal/config"
	"github.com/san-kum/freude/internal/experiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSetAndString(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 0)

	rows := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, rows, 1)
	got := []rune(rows[0])
	assert.Equal(t, rune(blank|0x1), got[0])
	assert.Equal(t, rune(blank|0x80), got[1])

	c.Clear()
	assert.False(t, strings.ContainsFunc(c.String(), func(r rune) bool { return r != blank && r != '\n' }),
		"Clear left dots behind")
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Line(0, 0, 7, 7)
	assert.NotZero(t, c.grid[0][0]&0x1, "start pixel")
	assert.NotZero(t, c.grid[1][3]&0x80, "end pixel")
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]float64{0, 10, math.NaN()}, []float64{-1, 1, 5})
	assert.Less(t, b.MinX, 0.0)
	assert.Greater(t, b.MaxX, 10.0)
	assert.Less(t, b.MaxY, 5.0, "NaN point leaked into y bounds")

	flat := BoundsOf([]float64{2, 2}, []float64{3, 3})
	assert.Equal(t, 1.0, flat.MaxX-flat.MinX)
	assert.Equal(t, 1.0, flat.MaxY-flat.MinY)

	assert.Equal(t, Bounds{-1, 1, -1, 1}, BoundsOf(nil, nil))
}

func TestPhaseDrawsCircle(t *testing.T) {
	n := 200
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		a := 2 * math.Pi * float64(i) / float64(n)
		xs[i], ys[i] = math.Cos(a), math.Sin(a)
	}
	out := Phase(xs, ys, 20, 10)
	assert.True(t, strings.ContainsFunc(out, func(r rune) bool { return r > blank && r <= blank+0xff }),
		"phase portrait is empty")
	assert.Equal(t, 10, strings.Count(out, "\n"))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "────", Sparkline(nil, 4))

	got := []rune(Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8))
	assert.Equal(t, '▁', got[0])
	assert.Equal(t, '█', got[7])

	assert.Equal(t, "▁█", Sparkline([]float64{9, 9, 0, 1}, 2), "keeps the most recent values")

	got = []rune(Sparkline([]float64{0, math.Inf(1), 1}, 3))
	assert.Equal(t, ' ', got[1], "non-finite sample")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "██░░", ProgressBar(0.5, 4))
	assert.Equal(t, "███", ProgressBar(2, 3))
	assert.Equal(t, "░░", ProgressBar(-1, 2))
}

func TestColumn(t *testing.T) {
	col := Column([][]float64{{1, 2}, {3}, {5, 6}}, 1)
	require.Len(t, col, 3)
	assert.Equal(t, 2.0, col[0])
	assert.True(t, math.IsNaN(col[1]))
	assert.Equal(t, 6.0, col[2])
}

func TestPlotSeries(t *testing.T) {
	states := make([][]float64, 50)
	for i := range states {
		x := float64(i) / 10
		states[i] = []float64{math.Sin(x), math.Cos(x)}
	}
	out := PlotSeries(states, []int{0, 1}, PlotOptions{Width: 40, Height: 8, Caption: "trig"})
	assert.Contains(t, out, "trig")
	assert.Contains(t, out, "x0")
	assert.Contains(t, out, "x1")

	assert.Empty(t, PlotSeries([][]float64{{math.NaN()}}, []int{0}, PlotOptions{}))
	assert.Empty(t, PlotSeries(nil, []int{0}, PlotOptions{}))
}

func TestMetricsTable(t *testing.T) {
	out := Summary("lorenz", map[string]float64{"b_metric": 2, "a_metric": 1.5}, ThemeRetro)
	a, b := strings.Index(out, "a_metric"), strings.Index(out, "b_metric")
	require.GreaterOrEqual(t, a, 0)
	require.GreaterOrEqual(t, b, 0)
	assert.Less(t, a, b, "metrics are listed by name")
	assert.Contains(t, out, "1.5")
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "ocean", GetTheme("ocean").Name)
	assert.Equal(t, Themes[0].Name, GetTheme("nope").Name)
	assert.Len(t, ThemeNames(), len(Themes))
}

func TestCameraRotation(t *testing.T) {
	c := Camera{}
	c.RotateZ(math.Pi / 2)
	p := c.RotatePoint(Vec3{1, 0, 0})
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	xs, ys := c.Project([]Vec3{{1, 0, 5}})
	require.Len(t, xs, 1)
	assert.InDelta(t, 1, ys[0], 1e-12)
}

func newStream(t *testing.T, model string) *experiment.Stream {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Model = model
	cfg.Dt = 1.0 / 128
	s, err := experiment.NewRegistry().Stream(cfg)
	require.NoError(t, err)
	return s
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLiveAdvancesOnTick(t *testing.T) {
	s := newStream(t, "lorenz")
	l := NewLive(s, LiveOptions{Width: 30, Height: 10, PerFrame: 8})

	_, cmd := l.Update(TickMsg{})
	assert.NotNil(t, cmd, "a tick schedules the next frame")
	assert.Equal(t, 8, s.Steps)
	assert.Len(t, l.trail, 2)

	l.Update(key(" "))
	l.Update(TickMsg{})
	assert.Equal(t, 8, s.Steps, "paused view kept stepping")

	l.Update(key("+"))
	assert.Equal(t, 16, l.perFrame)
	l.Update(key("-"))
	l.Update(key("-"))
	assert.Equal(t, 4, l.perFrame)

	l.Update(key("r"))
	assert.Zero(t, s.Steps)
	assert.Zero(t, s.Time)
	assert.Len(t, l.trail, 1)
}

func TestLiveKeys(t *testing.T) {
	l := NewLive(newStream(t, "lorenz"), LiveOptions{})

	l.Update(key("tab"))
	assert.Equal(t, 1, l.axis)
	l.Update(key("t"))
	assert.Equal(t, 1, l.theme)
	_, cmd := l.Update(key("q"))
	assert.NotNil(t, cmd, "q quits")
}

func TestLiveTrailCapacity(t *testing.T) {
	l := NewLive(newStream(t, "oscillator"), LiveOptions{PerFrame: 1})
	for i := 0; i < trailCapacity+10; i++ {
		l.Update(TickMsg{})
	}
	assert.Len(t, l.trail, trailCapacity)
}

func TestLiveView(t *testing.T) {
	for _, model := range []string{"lorenz", "oscillator", "exponential"} {
		l := NewLive(newStream(t, model), LiveOptions{Width: 30, Height: 10})
		for i := 0; i < 5; i++ {
			l.Update(TickMsg{})
		}
		out := l.View()
		assert.Contains(t, out, strings.ToUpper(model), "title")
		assert.Contains(t, out, "RUNNING", model)
	}
}
