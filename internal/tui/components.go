package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// MetricCard renders a small bordered label/value card.
func MetricCard(label, value string) string {
	content := MetricLabelStyle.Render(label) + "\n" + MetricValueStyle.Render(value)
	return CardStyle.Render(content)
}

// ASCIIChart draws a simple filled line chart of the series, scaled to the
// given width and height in character cells.
func ASCIIChart(series []decimal.Decimal, width, height int) string {
	if len(series) == 0 || width < 2 || height < 2 {
		return ""
	}

	max := series[0]
	for _, v := range series[1:] {
		if v.GreaterThan(max) {
			max = v
		}
	}
	if max.LessThanOrEqual(decimal.Zero) {
		max = decimal.NewFromInt(1)
	}

	// Resample the series to the chart width.
	heights := make([]int, width)
	for col := 0; col < width; col++ {
		idx := col * (len(series) - 1) / (width - 1)
		frac := series[idx].Div(max)
		h, _ := frac.Mul(decimal.NewFromInt(int64(height))).Float64()
		heights[col] = int(h)
	}

	var b strings.Builder
	for row := height; row > 0; row-- {
		var line strings.Builder
		for col := 0; col < width; col++ {
			if heights[col] >= row {
				line.WriteString("█")
			} else {
				line.WriteString(" ")
			}
		}
		b.WriteString(lipgloss.NewStyle().Foreground(ColorPrimary).Render(line.String()))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("─", width))
	return b.String()
}
