package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/puzzle"
)

// App is the Ebiten game: it drains input into a frame, updates the puzzle
// and redraws every frame.
type App struct {
	ctx      context.Context
	game     *puzzle.Game
	renderer *Renderer
	frame    core.InputFrame
}

// NewApp wires a game to a renderer.
func NewApp(ctx context.Context, game *puzzle.Game, renderer *Renderer) *App {
	return &App{
		ctx:      ctx,
		game:     game,
		renderer: renderer,
		frame:    core.NewInputFrame(),
	}
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() || a.ctx.Err() != nil {
		a.frame.RequestQuit()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.frame.Click(core.Pt(x, y))
	}

	a.game.Update(a.frame)
	a.frame.Clear()

	if a.game.State() == puzzle.Terminated {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.DrawFrame(screen, a.game.Board().Entities())
}

// Layout implements ebiten.Game. The board is drawn at a fixed size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.renderer.Size(), a.renderer.Size()
}
