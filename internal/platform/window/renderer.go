// Package window provides the desktop front-end: an Ebiten window drawing
// the board from a spritesheet and feeding mouse clicks to the puzzle.
package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/fifteen/internal/config"
	"github.com/vovakirdan/fifteen/internal/puzzle"
)

// Renderer owns the window settings, the offscreen drawing surface and the
// spritesheet texture.
type Renderer struct {
	size       int
	background color.RGBA
	surface    *ebiten.Image
	texture    *ebiten.Image
	res        resources
	logger     *log.Logger
}

// Init prepares the window, the drawing surface and the spritesheet texture.
// A failure at any stage releases what was already acquired and returns an
// *InitError.
func Init(cfg config.Config, logger *log.Logger) (*Renderer, error) {
	r := &Renderer{
		size:   cfg.WindowSize(),
		logger: logger,
	}

	if err := r.initWindow(cfg); err != nil {
		return nil, r.fail(err)
	}
	if err := r.initSurface(cfg); err != nil {
		return nil, r.fail(err)
	}
	sheet, err := LoadSpritesheet(cfg.Sprite.Path, cfg.ChromaKeyColor())
	if err != nil {
		return nil, r.fail(initErr(StageImage, err))
	}
	if err := r.initTexture(sheet, cfg.WindowSize()); err != nil {
		return nil, r.fail(err)
	}

	logger.Debug("renderer ready", "size", r.size, "sprite", cfg.Sprite.Path)
	return r, nil
}

func (r *Renderer) initWindow(cfg config.Config) error {
	if r.size <= 0 {
		return initErr(StageWindow, fmt.Errorf("invalid window size %d", r.size))
	}
	ebiten.SetWindowSize(r.size, r.size)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	r.res.acquired(string(StageWindow), func() {
		ebiten.SetWindowClosingHandled(false)
	})
	return nil
}

func (r *Renderer) initSurface(cfg config.Config) error {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return initErr(StageSurface, err)
	}
	r.background = bg
	r.surface = ebiten.NewImage(r.size, r.size)
	r.res.acquired(string(StageSurface), func() {
		r.surface.Deallocate()
		r.surface = nil
	})
	return nil
}

func (r *Renderer) initTexture(sheet *image.NRGBA, boardSize int) error {
	fitted, scaled, err := FitSpritesheet(sheet, boardSize)
	if err != nil {
		return initErr(StageTexture, err)
	}
	if scaled {
		b := sheet.Bounds()
		r.logger.Warn("spritesheet smaller than board, scaling", "from", b.Dx(), "to", boardSize)
	}
	r.texture = ebiten.NewImageFromImage(fitted)
	r.res.acquired(string(StageTexture), func() {
		r.texture.Deallocate()
		r.texture = nil
	})
	return nil
}

// fail releases everything acquired so far and returns err.
func (r *Renderer) fail(err error) error {
	r.Shutdown()
	return err
}

// Size returns the window edge in pixels.
func (r *Renderer) Size() int {
	return r.size
}

// DrawFrame clears the surface, draws every tile's spritesheet region at its
// screen rectangle and presents the surface on screen.
func (r *Renderer) DrawFrame(screen *ebiten.Image, entities []puzzle.Entity) {
	r.surface.Fill(r.background)

	for _, e := range entities {
		if e.IsEmpty() {
			continue
		}
		src := image.Rect(e.Source.X, e.Source.Y, e.Source.Right(), e.Source.Bottom())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(e.Screen.W)/float64(e.Source.W), float64(e.Screen.H)/float64(e.Source.H))
		op.GeoM.Translate(float64(e.Screen.X), float64(e.Screen.Y))
		r.surface.DrawImage(r.texture.SubImage(src).(*ebiten.Image), op)
	}

	screen.DrawImage(r.surface, nil)
}

// Shutdown releases the texture, then the surface, then the window. Only the
// first call has an effect.
func (r *Renderer) Shutdown() {
	for _, name := range r.res.releaseAll() {
		r.logger.Debug("released", "resource", name)
	}
}
