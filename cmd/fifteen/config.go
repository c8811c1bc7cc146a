package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fifteen/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.
With --defaults, prints the commented built-in defaults instead, suitable as
a starting point for ~/.fifteen/fifteen.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
