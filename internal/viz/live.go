package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/freude/internal/experiment"
)

const (
	trailCapacity = 600
	maxPerFrame   = 4096
	frameRate     = time.Second / 30
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// LiveOptions configures a Live view.
type LiveOptions struct {
	Width, Height int
	PerFrame      int
	Theme         string
}

// Live is a Bubble Tea model that advances a stream every frame and draws
// a trail of recent states. Three or more components are shown through a
// rotating camera; two as a phase portrait; one against time.
type Live struct {
	stream   *experiment.Stream
	canvas   *Canvas
	trail    [][]float64
	axis     int
	perFrame int
	running  bool
	theme    int
	camera   Camera
}

func NewLive(s *experiment.Stream, opts LiveOptions) *Live {
	if opts.Width <= 0 {
		opts.Width = 60
	}
	if opts.Height <= 0 {
		opts.Height = 20
	}
	if opts.PerFrame <= 0 {
		opts.PerFrame = 4
	}
	l := &Live{
		stream:   s,
		canvas:   NewCanvas(opts.Width, opts.Height),
		perFrame: opts.PerFrame,
		running:  true,
		camera:   Camera{RotX: -0.4},
	}
	for i, t := range Themes {
		if t.Name == opts.Theme {
			l.theme = i
		}
	}
	l.push(s.State())
	return l
}

func (l *Live) Init() tea.Cmd { return tick() }

func (l *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return l, tea.Quit
		case " ":
			l.running = !l.running
		case "r":
			l.stream.Reset()
			l.trail = l.trail[:0]
			l.push(l.stream.State())
		case "+", "=":
			l.perFrame = min(l.perFrame*2, maxPerFrame)
		case "-", "_":
			l.perFrame = max(l.perFrame/2, 1)
		case "tab":
			if l.stream.Dim > 0 {
				l.axis = (l.axis + 1) % l.stream.Dim
			}
		case "t":
			l.theme = (l.theme + 1) % len(Themes)
		case "x":
			l.camera.RotateX(0.1)
		case "y":
			l.camera.RotateY(0.1)
		case "z":
			l.camera.RotateZ(0.1)
		}
	case tea.WindowSizeMsg:
		w := max(msg.Width-36, 20)
		h := max(msg.Height-4, 8)
		l.canvas = NewCanvas(w, h)
	case TickMsg:
		if l.running {
			l.push(l.stream.Advance(l.perFrame))
			if l.stream.Dim >= 3 {
				l.camera.RotateY(0.01)
			}
		}
		return l, tick()
	}
	return l, nil
}

func (l *Live) push(state []float64) {
	if len(l.trail) == trailCapacity {
		copy(l.trail, l.trail[1:])
		l.trail = l.trail[:trailCapacity-1]
	}
	l.trail = append(l.trail, state)
}

// component returns the trail of component (l.axis+k) mod Dim.
func (l *Live) component(k int) []float64 {
	return Column(l.trail, (l.axis+k)%max(l.stream.Dim, 1))
}

func (l *Live) draw() {
	l.canvas.Clear()
	var xs, ys []float64
	switch dim := l.stream.Dim; {
	case dim >= 3:
		a, b, c := l.component(0), l.component(1), l.component(2)
		pts := make([]Vec3, len(a))
		for i := range pts {
			pts[i] = Vec3{a[i], b[i], c[i]}
		}
		xs, ys = l.camera.Project(pts)
	case dim == 2:
		xs, ys = l.component(0), l.component(1)
	default:
		ys = l.component(0)
		xs = make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
	}
	l.canvas.Trace(BoundsOf(xs, ys), xs, ys)
}

func (l *Live) View() string {
	th := Themes[l.theme]
	st := th.Styles()
	l.draw()

	var s strings.Builder
	s.WriteString(st.Title.Render(strings.ToUpper(l.stream.Model)) + "\n")
	if l.running {
		s.WriteString(st.Good.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.Warn.Render("PAUSED") + "\n\n")
	}
	row := func(k, v string) {
		s.WriteString(st.Label.Render(fmt.Sprintf("%-10s", k)) + st.Value.Render(v) + "\n")
	}
	row("time", fmt.Sprintf("%.3f", l.stream.Time))
	row("steps", fmt.Sprintf("%d", l.stream.Steps))
	row("dt", fmt.Sprintf("%g", l.stream.Dt))
	row("per frame", fmt.Sprintf("%d", l.perFrame))
	row("theme", th.Name)
	if n := len(l.trail); n > 0 {
		last := l.trail[n-1]
		for k := 0; k < min(3, l.stream.Dim); k++ {
			i := (l.axis + k) % l.stream.Dim
			row(fmt.Sprintf("x%d", i), fmt.Sprintf("%.5g", last[i]))
		}
	}
	s.WriteString("\n" + st.Label.Render(fmt.Sprintf("x%d", l.axis)) + "\n")
	s.WriteString(st.Canvas.Render(Sparkline(l.component(0), 28)) + "\n")
	s.WriteString(st.Hint.Render("\nspace pause  r reset  +/- speed\ntab axes  t theme  x/y/z rotate  q quit"))

	canvas := st.Canvas.Render(l.canvas.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, st.Panel.Render(canvas), st.Panel.Render(s.String()))
}

// RunLive runs the view until the user quits.
func RunLive(s *experiment.Stream, opts LiveOptions) error {
	_, err := tea.NewProgram(NewLive(s, opts), tea.WithAltScreen()).Run()
	return err
}
