package formats

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/registry"
)

func init() {
	registry.Register("table", func() registry.Exporter { return Table{} })
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

// Table renders a report as bordered terminal tables.
type Table struct{}

func (Table) ID() string    { return "table" }
func (Table) Title() string { return "Terminal table" }

func (Table) Write(w io.Writer, r export.Report) error {
	var sb strings.Builder

	title := "Results"
	if r.Label != "" {
		title = "Results: " + r.Label
	}
	sb.WriteString(tableTitleStyle.Render(title))
	sb.WriteByte('\n')

	summary := newTable("Quantity", "Value")
	for _, f := range r.Fields() {
		summary.Row(f.Name, f.Value)
	}
	sb.WriteString(summary.String())
	sb.WriteByte('\n')

	if r.Query != nil {
		sb.WriteString(tableTitleStyle.Render("Point on trajectory"))
		sb.WriteByte('\n')
		if r.Point == nil {
			sb.WriteString("Not on trajectory or invalid.\n")
		} else {
			pt := newTable("x (m)", "y (m)", "t (s)")
			pt.Row(
				export.Format(r.Point.X, "%.2f"),
				export.Format(r.Point.Y, "%.2f"),
				export.Format(r.Point.T, "%.2f"),
			)
			sb.WriteString(pt.String())
			sb.WriteByte('\n')
		}
	}

	if len(r.Points) > 0 {
		sb.WriteString(tableTitleStyle.Render(fmt.Sprintf("Samples (%d)", len(r.Points))))
		sb.WriteByte('\n')
		samples := newTable("#", "t (s)", "x (m)", "y (m)")
		for i, p := range r.Points {
			samples.Row(
				fmt.Sprintf("%d", i),
				export.Format(p.T, "%.3f"),
				export.Format(p.X, "%.3f"),
				export.Format(p.Y, "%.3f"),
			)
		}
		sb.WriteString(samples.String())
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}
