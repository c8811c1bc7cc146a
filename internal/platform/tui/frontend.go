package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/fifteen/internal/registry"
)

// Frontend runs the game in the terminal.
type Frontend struct{}

func init() {
	registry.Register("terminal", func() registry.Frontend {
		return &Frontend{}
	})
}

// ID returns the front-end identifier.
func (f *Frontend) ID() string {
	return "terminal"
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Terminal (box drawing, mouse)"
}

// Run starts the Bubble Tea program and blocks until the game terminates.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	model := NewModel(ctx, env.Game, env.Config, env.Runtime.TickRate)

	// Minimum: board plus title, status and help lines.
	needW, needH := model.view.Width(), model.view.Height()+boardTop+2
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < needW || h < needH) {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, needW, needH)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks slide tiles
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	env.Logger.Debug("terminal closed", "moves", env.Game.Moves())
	return nil
}
