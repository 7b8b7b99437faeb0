package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// View renders the current scene.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("finplan"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n" + StatusBarStyle.Render("r to retry, q to quit"))
	case m.loading:
		b.WriteString(m.spinner.View() + " Calculating plan...")
	default:
		b.WriteString(m.renderScene())
	}

	b.WriteString("\n\n")
	b.WriteString(StatusBarStyle.Render("tab/arrows switch " + HelpKeyStyle.Render("?") + " help " + HelpKeyStyle.Render("q") + " quit"))
	return AppStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(sceneOrder))
	for _, s := range sceneOrder {
		style := TabStyle
		if s == m.currentScene {
			style = ActiveTabStyle
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderScene() string {
	switch m.currentScene {
	case SceneSummary:
		return m.viewSummary()
	case SceneProjection:
		return m.viewProjection()
	case SceneMonteCarlo:
		return m.viewMonteCarlo()
	case SceneClaiming:
		return m.viewClaiming()
	case SceneHelp:
		return m.viewHelp()
	default:
		return ""
	}
}

func (m Model) viewSummary() string {
	if m.plan == nil {
		return "No plan loaded."
	}
	cards := []string{
		MetricCard("Portfolio", FormatCurrency(m.plan.Household.Accounts.Total())),
		MetricCard("Annual Spending", FormatCurrency(m.plan.Spending.AnnualSpending)),
	}
	if m.projection != nil {
		cards = append(cards, MetricCard("Ending Balance", FormatCurrency(m.projection.EndingBalance)))
	}
	if m.perpetuity != nil {
		status := NegativeStyle.Render("not perpetual")
		if m.perpetuity.Perpetual {
			status = PositiveStyle.Render("perpetual")
		}
		cards = append(cards, MetricCard("Withdrawal", status))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) viewProjection() string {
	if m.projection == nil || len(m.projection.Years) == 0 {
		return "No projection available."
	}
	balances := make([]decimal.Decimal, 0, len(m.projection.Years))
	for i := range m.projection.Years {
		balances = append(balances, m.projection.Years[i].TotalBalance())
	}
	var b strings.Builder
	b.WriteString(ASCIIChart(balances, 60, 12))
	b.WriteString("\n")
	last := m.projection.Years[len(m.projection.Years)-1]
	b.WriteString(fmt.Sprintf("Ends %d at age %d with %s. Lifetime taxes %s.",
		last.Year, last.Age, FormatCurrency(m.projection.EndingBalance),
		FormatCurrency(m.projection.LifetimeTaxes)))
	if m.projection.DepletionYear != 0 {
		b.WriteString("\n" + NegativeStyle.Render(fmt.Sprintf("Portfolio depleted in %d.", m.projection.DepletionYear)))
	}
	return b.String()
}

func (m Model) viewMonteCarlo() string {
	if m.monteCarlo == nil {
		return "No simulation available."
	}
	rate := m.monteCarlo.SuccessRate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
	style := PositiveStyle
	if m.monteCarlo.SuccessRate.LessThan(decimal.NewFromFloat(0.8)) {
		style = NegativeStyle
	}
	cards := []string{
		MetricCard("Success Rate", style.Render(rate)),
		MetricCard("Median End", FormatCurrency(m.monteCarlo.MedianEndingBalance)),
		MetricCard("P10", FormatCurrency(m.monteCarlo.Percentiles.P10)),
		MetricCard("P90", FormatCurrency(m.monteCarlo.Percentiles.P90)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) viewClaiming() string {
	if m.claiming == nil {
		return "No claiming analysis available."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("PIA at FRA %d: %s/mo\n\n", m.claiming.FRA, FormatCurrency(m.claiming.PIA)))
	for _, opt := range m.claiming.Options {
		line := fmt.Sprintf("age %d  %10s/mo", opt.ClaimAge, FormatCurrency(opt.MonthlyBenefit))
		if opt.ClaimAge == m.claiming.RecommendedAge {
			line = PositiveStyle.Render(line + "  <- recommended")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewHelp() string {
	rows := [][2]string{
		{"tab / right", "next screen"},
		{"shift+tab / left", "previous screen"},
		{"1-4", "jump to screen"},
		{"r", "reload plan file"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(HelpKeyStyle.Render(fmt.Sprintf("%-18s", row[0])))
		b.WriteString(row[1] + "\n")
	}
	return b.String()
}
