package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// MetricsTable renders metrics as a two column table sorted by name.
func MetricsTable(metrics map[string]float64, th Theme) string {
	st := th.Styles()
	names := make([]string, 0, len(metrics))
	for k := range metrics {
		names = append(names, k)
	}
	sort.Strings(names)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(th.Muted)).
		Headers("metric", "value").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Title.Padding(0, 1)
			case col == 0:
				return st.Label.Padding(0, 1)
			default:
				return st.Value.Padding(0, 1)
			}
		})
	for _, k := range names {
		t.Row(k, fmt.Sprintf("%.6g", metrics[k]))
	}
	return t.Render()
}

// Summary is the header line and metrics table printed after a run.
func Summary(title string, metrics map[string]float64, th Theme) string {
	var b strings.Builder
	b.WriteString(th.Styles().Title.Render(title))
	b.WriteByte('\n')
	b.WriteString(MetricsTable(metrics, th))
	b.WriteByte('\n')
	return b.String()
}
