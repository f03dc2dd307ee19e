// Package bubbletea provides an interactive terminal preview of a rendered
// document.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. When ctx is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}
