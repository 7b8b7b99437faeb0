package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/awconrad/finplan/internal/calculation"
	"github.com/awconrad/finplan/internal/config"
	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/sequencing"
	"github.com/shopspring/decimal"
)

// Model is the application state for the interactive dashboard.
type Model struct {
	currentScene Scene

	width  int
	height int

	planPath string
	plan     *domain.Plan

	projection *domain.ProjectionSummary
	monteCarlo *domain.MonteCarloResults
	claiming   *domain.ClaimingAnalysis
	perpetuity *domain.PerpetuityAnalysis

	spinner spinner.Model
	loading bool
	err     error
}

// NewModel creates the dashboard model for a plan file.
func NewModel(planPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle
	return Model{
		currentScene: SceneSummary,
		planPath:     planPath,
		spinner:      sp,
		loading:      true,
		width:        80,
		height:       24,
	}
}

// Init starts the spinner and kicks off the plan load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadPlanCmd(m.planPath))
}

func loadPlanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return PlanLoadedMsg{Plan: plan}
	}
}

func calculateCmd(plan *domain.Plan) tea.Cmd {
	return func() tea.Msg {
		policy := domain.WithdrawalPolicy{}
		if plan.Withdrawal != nil {
			policy = *plan.Withdrawal
		}
		strategy, err := sequencing.NewStrategy(policy, decimal.Zero)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		engine := calculation.NewProjectionEngine(plan.Household.FilingStatus, strategy, nil)
		projection, err := engine.Project(plan)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		mc := calculation.NewMonteCarloSimulator(calculation.DefaultMonteCarloConfig(), nil)
		mcResults, err := mc.Simulate(plan.Household.Accounts.Total(), plan.Spending.AnnualSpending, plan.Assumptions)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		msg := ResultsReadyMsg{
			Projection: projection,
			MonteCarlo: mcResults,
		}
		if primary := plan.Household.Primary(); primary != nil {
			claiming := calculation.NewClaimingOptimizer().Analyze(primary)
			msg.Claiming = &claiming
		}
		perpetuity := calculation.NewPerpetuityAnalyzer().Analyze(
			plan.Household.Accounts.Total(), plan.Spending.AnnualSpending, plan.Assumptions)
		msg.Perpetuity = &perpetuity
		return msg
	}
}
