package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fifteen/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available front-ends",
	Long:  `Shows a list of all front-ends the puzzle can be played with.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Fprintln(out, "No front-ends available.")
		return
	}

	fmt.Fprintln(out, "Available front-ends:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range frontends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'fifteen play <id>' to play.")
}
