package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive dashboard over a plan file and blocks until
// the user quits.
func Run(planPath string) error {
	program := tea.NewProgram(NewModel(planPath), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
