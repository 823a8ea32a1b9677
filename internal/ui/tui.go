// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the player UI
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavkit/wavkit-go/pkg/sampler"
)

// Run starts the TUI and blocks until the user quits.
func Run(player *sampler.Player) error {
	p := tea.NewProgram(NewModel(player), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
