// tetris is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetris play              - Play in the current terminal
//	tetris menu              - Start the interactive menu
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show high scores
//	tetris config            - Print the default gameplay config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle game for your terminal",
	Long: `Tetris is a terminal-based falling-block puzzle game.

Available commands:
  play     - Play in the current terminal
  menu     - Interactive menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default gameplay config

Examples:
  tetris play
  tetris play --seed 42
  tetris serve --ssh :2222
  tetris scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
