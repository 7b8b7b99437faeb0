package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PlanLoadedMsg:
		m.plan = msg.Plan
		return m, calculateCmd(msg.Plan)

	case ResultsReadyMsg:
		m.loading = false
		m.projection = msg.Projection
		m.monteCarlo = msg.MonteCarlo
		m.claiming = msg.Claiming
		m.perpetuity = msg.Perpetuity
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

var sceneOrder = []Scene{SceneSummary, SceneProjection, SceneMonteCarlo, SceneClaiming, SceneHelp}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.currentScene = nextScene(m.currentScene, 1)
	case "shift+tab", "left", "h":
		m.currentScene = nextScene(m.currentScene, -1)
	case "1":
		m.currentScene = SceneSummary
	case "2":
		m.currentScene = SceneProjection
	case "3":
		m.currentScene = SceneMonteCarlo
	case "4":
		m.currentScene = SceneClaiming
	case "?":
		m.currentScene = SceneHelp
	case "r":
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, loadPlanCmd(m.planPath))
	}
	return m, nil
}

func nextScene(current Scene, step int) Scene {
	for i, s := range sceneOrder {
		if s == current {
			idx := (i + step + len(sceneOrder)) % len(sceneOrder)
			return sceneOrder[idx]
		}
	}
	return SceneSummary
}
