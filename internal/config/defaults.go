package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Grid:     4,
			TileSize: 100,
			Border:   2,
		},
		Shuffle: ShuffleConfig{
			Swaps: 0,
		},
		Window: WindowConfig{
			Title:      "Game 15",
			Background: "#000080",
		},
		Sprite: SpriteConfig{
			Path:      "board.png",
			ChromaKey: []int{0x00, 0xff, 0xff},
		},
		Animation: AnimationConfig{
			Mode:     AnimationStep,
			Step:     5,
			Duration: 0.2,
			Easing:   "linear",
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
