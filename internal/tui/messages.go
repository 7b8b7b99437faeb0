package tui

import (
	"github.com/awconrad/finplan/internal/domain"
)

// Scene identifies the screens in the TUI.
type Scene int

const (
	SceneSummary Scene = iota
	SceneProjection
	SceneMonteCarlo
	SceneClaiming
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneSummary:
		return "Summary"
	case SceneProjection:
		return "Projection"
	case SceneMonteCarlo:
		return "Monte Carlo"
	case SceneClaiming:
		return "Social Security"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// PlanLoadedMsg signals the plan file has been parsed.
type PlanLoadedMsg struct {
	Plan *domain.Plan
}

// ResultsReadyMsg carries the computed analyses.
type ResultsReadyMsg struct {
	Projection *domain.ProjectionSummary
	MonteCarlo *domain.MonteCarloResults
	Claiming   *domain.ClaimingAnalysis
	Perpetuity *domain.PerpetuityAnalysis
}

// ErrorMsg surfaces a load or calculation failure.
type ErrorMsg struct {
	Err error
}
