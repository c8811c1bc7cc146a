package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/fifteen/internal/registry"
)

// Frontend runs the game in a desktop window.
type Frontend struct{}

func init() {
	registry.Register("window", func() registry.Frontend {
		return &Frontend{}
	})
}

// ID returns the front-end identifier.
func (f *Frontend) ID() string {
	return "window"
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Desktop window (spritesheet, mouse)"
}

// Run initializes the renderer, runs the Ebiten loop and always shuts the
// renderer down before returning.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	renderer, err := Init(env.Config, env.Logger)
	if err != nil {
		return err
	}
	defer renderer.Shutdown()

	if env.Runtime.TickRate > 0 {
		ebiten.SetTPS(env.Runtime.TickRate)
	}

	app := NewApp(ctx, env.Game, renderer)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	env.Logger.Debug("window closed", "moves", env.Game.Moves())
	return nil
}
