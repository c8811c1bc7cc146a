// fifteen is the classic 15-puzzle: click a tile next to the empty cell to
// slide it.
//
// Usage:
//
//	fifteen                  - Play in a desktop window
//	fifteen play [frontend]  - Play with the given front-end (window, terminal)
//	fifteen list             - List available front-ends
//	fifteen config           - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Path to a YAML config file
//	--seed <value>  - Shuffle seed (0 = random based on time)
//	--fps <rate>    - Loop iterations per second (default: 60)
//	--debug         - Verbose logging
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import front-ends to register them
	_ "github.com/vovakirdan/fifteen/internal/platform/tui"
	_ "github.com/vovakirdan/fifteen/internal/platform/window"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagFPS    int
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "fifteen",
})

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fifteen",
	Short: "The classic 15-puzzle",
	Long: `fifteen shuffles a 4x4 board of numbered tiles. Click a tile next to the
empty cell to slide it there.

Available commands:
  play     - Play with a specific front-end
  list     - Show all available front-ends
  config   - Print the effective configuration

Examples:
  fifteen
  fifteen play terminal
  fifteen --seed 42
  fifteen --config ./my-board.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFrontend(cmd.Context(), defaultFrontend)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Shuffle seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Loop iterations per second")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
