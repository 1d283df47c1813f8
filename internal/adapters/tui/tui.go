package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkaski/focusforge/internal/config"
	"github.com/mkaski/focusforge/internal/services"
)

// Run starts the interactive timer screen and blocks until the user
// quits or the context is cancelled.
func Run(ctx context.Context, controller *services.Controller, theme *config.ThemeConfig, gitBranch string) error {
	model := NewModel(controller, theme, gitBranch)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		// Context cancellation (Ctrl+C at the signal level) is a
		// normal shutdown, not a failure.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
