package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary = lipgloss.Color("39")
	ColorSuccess = lipgloss.Color("42")
	ColorDanger  = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")
	ColorBorder  = lipgloss.Color("238")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)
	PositiveStyle    = lipgloss.NewStyle().Foreground(ColorSuccess)
	NegativeStyle    = lipgloss.NewStyle().Foreground(ColorDanger)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	HelpKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	SpinnerStyle   = lipgloss.NewStyle().Foreground(ColorPrimary)
)

// FormatCurrency renders compact dollar amounts for dashboard cards.
func FormatCurrency(amount decimal.Decimal) string {
	million := decimal.NewFromInt(1000000)
	thousand := decimal.NewFromInt(1000)
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(million):
		return "$" + amount.Div(million).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return "$" + amount.Div(thousand).StringFixed(1) + "K"
	default:
		return "$" + amount.StringFixed(0)
	}
}
