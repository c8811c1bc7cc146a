// Package config provides YAML-based configuration loading for the puzzle.
// The embedded defaults reproduce the classic 4x4 board with 100px tiles.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"
)

// Config contains all tunable settings.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Shuffle   ShuffleConfig   `yaml:"shuffle"`
	Window    WindowConfig    `yaml:"window"`
	Sprite    SpriteConfig    `yaml:"sprite"`
	Animation AnimationConfig `yaml:"animation"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// BoardConfig defines board geometry in pixels.
type BoardConfig struct {
	Grid     int `yaml:"grid"`
	TileSize int `yaml:"tile_size"`
	Border   int `yaml:"border"`
}

// ShuffleConfig defines the startup shuffle.
type ShuffleConfig struct {
	Swaps int `yaml:"swaps"` // 0 = (number of tiles)^2
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // "#rrggbb"
}

// SpriteConfig defines the spritesheet artwork.
type SpriteConfig struct {
	Path      string `yaml:"path"`
	ChromaKey []int  `yaml:"chroma_key"` // RGB made fully transparent
}

// AnimationMode selects how a slide advances.
type AnimationMode string

const (
	AnimationStep  AnimationMode = "step"
	AnimationTween AnimationMode = "tween"
)

// Easings lists the accepted animation.easing names, sorted.
var Easings = []string{
	"in_cubic",
	"in_out_cubic",
	"in_out_quad",
	"in_quad",
	"linear",
	"out_bounce",
	"out_cubic",
	"out_quad",
}

// AnimationConfig defines slide animation parameters.
type AnimationConfig struct {
	Mode     AnimationMode `yaml:"mode"`
	Step     int           `yaml:"step"`     // Pixels per tick in step mode
	Duration float64       `yaml:"duration"` // Seconds per slide in tween mode
	Easing   string        `yaml:"easing"`
}

// TerminalConfig defines how a tile maps to terminal cells.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Tiles returns the number of numbered tiles on the board.
func (c Config) Tiles() int {
	return c.Board.Grid*c.Board.Grid - 1
}

// ShuffleSwaps returns the effective number of shuffle transpositions.
func (c Config) ShuffleSwaps() int {
	if c.Shuffle.Swaps > 0 {
		return c.Shuffle.Swaps
	}
	return c.Tiles() * c.Tiles()
}

// WindowSize returns the square window edge: grid*(tile+border)+border.
func (c Config) WindowSize() int {
	return c.Board.Grid*(c.Board.TileSize+c.Board.Border) + c.Board.Border
}

// ChromaKeyColor returns the chroma key as an opaque RGBA color.
func (c Config) ChromaKeyColor() color.RGBA {
	k := c.Sprite.ChromaKey
	if len(k) != 3 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(k[0]), G: uint8(k[1]), B: uint8(k[2]), A: 0xff}
}

// BackgroundColor parses Window.Background.
func (c Config) BackgroundColor() (color.RGBA, error) {
	return ParseHexColor(c.Window.Background)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Grid < 2 || c.Board.Grid > 8 {
		errs = append(errs, fmt.Errorf("board.grid must be in [2, 8], got %d", c.Board.Grid))
	}
	if c.Board.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("board.tile_size must be positive, got %d", c.Board.TileSize))
	}
	if c.Board.Border < 0 {
		errs = append(errs, fmt.Errorf("board.border must not be negative, got %d", c.Board.Border))
	}
	if c.Shuffle.Swaps < 0 {
		errs = append(errs, fmt.Errorf("shuffle.swaps must not be negative, got %d", c.Shuffle.Swaps))
	}
	if c.Sprite.Path == "" {
		errs = append(errs, errors.New("sprite.path must be set"))
	}
	if len(c.Sprite.ChromaKey) != 3 {
		errs = append(errs, fmt.Errorf("sprite.chroma_key must have 3 components, got %d", len(c.Sprite.ChromaKey)))
	} else {
		for _, v := range c.Sprite.ChromaKey {
			if v < 0 || v > 0xff {
				errs = append(errs, fmt.Errorf("sprite.chroma_key component %d out of range [0, 255]", v))
			}
		}
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, fmt.Errorf("window.background: %w", err))
	}
	switch c.Animation.Mode {
	case AnimationStep:
		if c.Animation.Step <= 0 {
			errs = append(errs, fmt.Errorf("animation.step must be positive, got %d", c.Animation.Step))
		}
	case AnimationTween:
		if c.Animation.Duration <= 0 {
			errs = append(errs, fmt.Errorf("animation.duration must be positive, got %g", c.Animation.Duration))
		}
	default:
		errs = append(errs, fmt.Errorf("animation.mode must be %q or %q, got %q",
			AnimationStep, AnimationTween, c.Animation.Mode))
	}
	if !slices.Contains(Easings, c.Animation.Easing) {
		errs = append(errs, fmt.Errorf("animation.easing must be one of %v, got %q",
			Easings, c.Animation.Easing))
	}
	if c.Terminal.CellWidth < 3 || c.Terminal.CellHeight < 2 {
		errs = append(errs, fmt.Errorf("terminal cell must be at least 3x2, got %dx%d",
			c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	return errors.Join(errs...)
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional).
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
