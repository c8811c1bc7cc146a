package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fifteen/internal/config"
	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/puzzle"
)

// boardTop is the terminal row the board starts at; row 0 holds the title.
const boardTop = 1

// Model is the Bubble Tea model running one puzzle game.
type Model struct {
	ctx      context.Context
	game     *puzzle.Game
	title    string
	screen   *core.Screen
	view     Viewport
	frame    core.InputFrame
	keys     keyMap
	help     help.Model
	tickRate int
	quitting bool
}

// NewModel creates a model for game using the terminal settings in cfg.
func NewModel(ctx context.Context, game *puzzle.Game, cfg config.Config, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	view := NewViewport(game.Board().Layout(), cfg.Terminal, 0, boardTop)
	return Model{
		ctx:      ctx,
		game:     game,
		title:    cfg.Window.Title,
		screen:   core.NewScreen(view.Width(), view.Height()),
		view:     view,
		frame:    core.NewInputFrame(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update collects input into the pending frame and runs the game on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.frame.RequestQuit()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.frame.Click(m.view.ToBoard(msg.X, msg.Y))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one loop iteration: the drained frame goes to the game,
// then the view is redrawn by Bubble Tea.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctx != nil && m.ctx.Err() != nil {
		m.frame.RequestQuit()
	}

	m.game.Update(m.frame)
	m.frame.Clear()

	if m.game.State() == puzzle.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the board, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.view.drawable(), m.game.Board().Entities())
	return fmt.Sprintf("%s\n%s\nmoves: %d\n%s",
		titleStyle.Render(m.title),
		RenderScreen(m.screen),
		m.game.Moves(),
		m.help.View(m.keys),
	)
}
