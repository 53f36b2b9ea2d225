package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default gameplay config",
	Long: `Print the default gameplay configuration YAML.

Save it to ~/.tetris/configs/tetris.yaml (or pass --config to 'play')
to customize gravity speed and scoring.

Examples:
  tetris config > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultYAML()))
}
