package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/fifteen/internal/config"
	"github.com/vovakirdan/fifteen/internal/core"
)

// State is the application loop state.
type State int

const (
	Running State = iota
	Terminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Game ties the board, click handling and the active slide together.
// Front-ends call Update once per loop iteration and then redraw.
type Game struct {
	board  *Board
	motion MotionFactory
	slide  *Slide
	state  State
	moves  int
}

// NewGame creates a game over an already prepared board.
func NewGame(board *Board, motion MotionFactory) *Game {
	return &Game{
		board:  board,
		motion: motion,
		state:  Running,
	}
}

// New builds a shuffled game from configuration.
func New(cfg config.Config, rng *rand.Rand, tickRate int) (*Game, error) {
	motion, err := MotionFromConfig(cfg.Animation, tickRate)
	if err != nil {
		return nil, fmt.Errorf("animation: %w", err)
	}

	board := NewBoard(Layout{
		Grid:     cfg.Board.Grid,
		TileSize: cfg.Board.TileSize,
		Border:   cfg.Board.Border,
	})
	board.Shuffle(rng, cfg.ShuffleSwaps())

	return NewGame(board, motion), nil
}

// Board returns the board.
func (g *Game) Board() *Board {
	return g.board
}

// State returns the loop state.
func (g *Game) State() State {
	return g.state
}

// Sliding reports whether a slide is in flight.
func (g *Game) Sliding() bool {
	return g.slide != nil
}

// Moves returns the number of committed slides.
func (g *Game) Moves() int {
	return g.moves
}

// Quit terminates the loop.
func (g *Game) Quit() {
	g.state = Terminated
}

// HandleClick starts a slide if p lies on a tile next to the empty cell.
// Clicks elsewhere, and clicks while a slide is in flight, are ignored.
// Returns whether a slide was started.
func (g *Game) HandleClick(p core.Point) bool {
	if g.slide != nil || g.state != Running {
		return false
	}

	tile := g.board.TileAt(p)
	if tile < 0 || !g.board.Movable(tile) {
		return false
	}

	g.slide = newSlide(g.board, tile, g.motion)
	return true
}

// Update drains one input frame and advances the active slide by one step.
func (g *Game) Update(in core.InputFrame) {
	if g.state != Running {
		return
	}
	if in.Quit {
		g.Quit()
		return
	}

	for _, p := range in.Clicks {
		g.HandleClick(p)
	}

	if g.slide != nil && g.slide.Advance(g.board) {
		g.slide = nil
		g.moves++
	}
}
