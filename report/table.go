// File: table.go
// Role: terminal rendering of a Report.

package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
	colorCyan = lipgloss.Color("6")

	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(colorCyan).PaddingRight(1)
	valueStyle  = lipgloss.NewStyle().PaddingLeft(1)
)

// Table renders r as a two-column lipgloss table.
func Table(r *Report) string {
	rows := [][]string{
		{"Graph", r.Name},
		{"Representation", r.Representation.String()},
		{"Nodes", strconv.Itoa(r.Nodes)},
		{"Edges", strconv.Itoa(r.Edges)},
		{"Max degree", strconv.Itoa(r.Degree.Max)},
		{"Min degree", strconv.Itoa(r.Degree.Min)},
		{"Mean degree", formatFloat(r.Degree.Mean)},
		{"Median degree", formatFloat(r.Degree.Median)},
		{"Degree stddev", fmt.Sprintf("%.3f", r.Degree.StdDev)},
		{"Components", strconv.Itoa(len(r.Components))},
		{"Largest component", strconv.Itoa(r.Largest())},
		{"Smallest component", strconv.Itoa(r.Smallest())},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Metric", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return labelStyle
			}
			return valueStyle
		})

	return t.String()
}
