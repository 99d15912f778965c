package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the rendered styles of a Theme.
type Styles struct {
	Panel  lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Hint   lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
	Canvas lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label:  lipgloss.NewStyle().Foreground(t.Muted),
		Value:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Hint:   lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Good:   lipgloss.NewStyle().Bold(true).Foreground(t.Good),
		Warn:   lipgloss.NewStyle().Bold(true).Foreground(t.Warn),
		Bad:    lipgloss.NewStyle().Bold(true).Foreground(t.Bad),
		Canvas: lipgloss.NewStyle().Foreground(t.Primary),
	}
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the last width values as block characters scaled to
// their own range.
func Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if finite(v) {
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	rng := hi - lo
	if !(rng > 0) || math.IsInf(rng, 0) {
		rng = 1
	}
	var b strings.Builder
	for _, v := range values {
		if !finite(v) {
			b.WriteRune(' ')
			continue
		}
		idx := int((v - lo) / rng * float64(len(sparkChars)-1))
		b.WriteRune(sparkChars[max(0, min(idx, len(sparkChars)-1))])
	}
	return b.String()
}

// ProgressBar renders fraction p of width cells, clamped to [0, 1].
func ProgressBar(p float64, width int) string {
	filled := int(p * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
