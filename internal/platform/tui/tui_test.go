package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/fifteen/internal/config"
	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/puzzle"
)

func newTestModel(ctx context.Context) Model {
	game := puzzle.NewGame(puzzle.NewBoard(puzzle.ClassicLayout), puzzle.StepMotion(5))
	return NewModel(ctx, game, config.Default(), 60)
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestViewportMapsEveryTerminalCellToItsTile(t *testing.T) {
	board := puzzle.NewBoard(puzzle.ClassicLayout)
	v := NewViewport(board.Layout(), config.Default().Terminal, 3, 2)

	assert.Equal(t, 32, v.Width())
	assert.Equal(t, 16, v.Height())

	for i, tile := range board.Tiles() {
		box := v.ToCells(tile.Screen)
		for y := box.Y; y < box.Bottom(); y++ {
			for x := box.X; x < box.Right(); x++ {
				require.Equal(t, i, board.TileAt(v.ToBoard(x, y)),
					"terminal cell (%d, %d) should hit tile %d", x, y, i+1)
			}
		}
	}
}

func TestViewportToCells(t *testing.T) {
	v := NewViewport(puzzle.ClassicLayout, config.Default().Terminal, 0, 1)

	assert.Equal(t, core.NewRect(0, 1, 8, 4), v.ToCells(core.NewRect(2, 2, 100, 100)))
	assert.Equal(t, core.NewRect(24, 13, 8, 4), v.ToCells(core.NewRect(308, 308, 100, 100)))

	outside := v.ToBoard(-1, 0)
	assert.Less(t, outside.X, 2)
	assert.Less(t, outside.Y, 2)
}

func TestViewportTitleRowMissesBoard(t *testing.T) {
	board := puzzle.NewBoard(puzzle.ClassicLayout)
	// Cells taller than half a pitch used to round the title row into row 0.
	v := NewViewport(board.Layout(), config.TerminalConfig{CellWidth: 8, CellHeight: 60}, 0, 1)

	for col := 0; col < v.Width(); col++ {
		assert.Equal(t, -1, board.TileAt(v.ToBoard(col, 0)), "title cell (%d, 0)", col)
	}
	assert.Equal(t, 0, board.TileAt(v.ToBoard(2, 1)))
}

func TestClickSlidesTileOnTicks(t *testing.T) {
	m := newTestModel(context.Background())

	// Tile 15 is drawn at columns 16..23, rows 13..16 (title row above).
	next, cmd := m.Update(leftClick(18, 14))
	assert.Nil(t, cmd)
	m = next.(Model)

	for i := 0; i < 21; i++ {
		next, cmd = m.Update(TickMsg{})
		m = next.(Model)
		require.False(t, isQuit(cmd))
	}

	assert.False(t, m.game.Sliding())
	assert.Equal(t, 1, m.game.Moves())
	assert.Equal(t, core.Cell{Col: 3, Row: 3}, m.game.Board().Tile(14).Cell)
}

func TestNonLeftClicksAreIgnored(t *testing.T) {
	m := newTestModel(context.Background())

	next, _ := m.Update(tea.MouseMsg{X: 18, Y: 14, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = next.(Model)
	next, _ = m.Update(tea.MouseMsg{X: 18, Y: 14, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)

	assert.False(t, m.game.Sliding())
}

func TestQuitKeyTerminatesOnNextTick(t *testing.T) {
	m := newTestModel(context.Background())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	assert.Nil(t, cmd)

	next, cmd = m.Update(TickMsg{})
	m = next.(Model)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, puzzle.Terminated, m.game.State())
	assert.Empty(t, m.View())
}

func TestCancelledContextTerminates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := newTestModel(ctx)
	cancel()

	_, cmd := m.Update(TickMsg{})
	assert.True(t, isQuit(cmd))
}

func TestViewShowsTilesAndHelp(t *testing.T) {
	m := newTestModel(context.Background())
	out := m.View()

	for _, label := range []string{"Game 15", "15", "moves: 0", "quit", "slide tile"} {
		assert.Contains(t, out, label)
	}
}

func TestDrawBoardSkipsEmptyCell(t *testing.T) {
	board := puzzle.NewBoard(puzzle.ClassicLayout)
	v := NewViewport(board.Layout(), config.Default().Terminal, 0, 0)
	s := core.NewScreen(v.Width(), v.Height())

	DrawBoard(s, v, board.Entities())

	lines := strings.Split(s.String(), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "┌──────┐", lines[0][:len("┌──────┐")])
	assert.Equal(t, "│  1   │", string([]rune(lines[1])[:8]))
	assert.Equal(t, strings.Repeat(" ", 8), string([]rune(lines[13])[24:32]), "empty cell stays blank")
	assert.Equal(t, core.TileColor(1), s.GetCell(0, 0).Color)
}
