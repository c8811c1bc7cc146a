package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fifteen/internal/config"
	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/puzzle"
	"github.com/vovakirdan/fifteen/internal/registry"
)

const defaultFrontend = "window"

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the puzzle",
	Long: `Shuffle a new board and play it with the given front-end
(default: window).

Controls:
  Left click  - Slide a tile next to the empty cell
  Close/q/Esc - Quit

Examples:
  fifteen play
  fifteen play terminal
  fifteen play window --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := defaultFrontend
		if len(args) == 1 {
			id = args[0]
		}
		return runFrontend(cmd.Context(), id)
	},
}

// runFrontend loads the configuration, shuffles a board and hands it to the
// front-end. It returns once the game loop has ended.
func runFrontend(ctx context.Context, id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q; run 'fifteen list' to see available front-ends", id)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	rt := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.TickRate <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", rt.TickRate)
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game, err := puzzle.New(cfg, rand.New(rand.NewSource(rt.Seed)), rt.TickRate)
	if err != nil {
		return err
	}
	logger.Debug("board shuffled",
		"frontend", id,
		"seed", rt.Seed,
		"swaps", cfg.ShuffleSwaps(),
		"solvable", game.Board().Solvable(),
		"solved", game.Board().Solved())

	fe, err := registry.Create(id)
	if err != nil {
		return err
	}
	return fe.Run(ctx, registry.Env{
		Config:  cfg,
		Runtime: rt,
		Game:    game,
		Logger:  logger,
	})
}
