// treblecross is a terminal implementation of the Treblecross line-forming
// game: place three of your marks in a row on a 1-D board to win. Lines
// wrap around the board edge.
//
// Usage:
//
//	treblecross play              - Play a game (TUI)
//	treblecross play --plain      - Play with line-based prompts
//	treblecross menu              - Start menu to pick mode interactively
//	treblecross results           - Show recorded match results
//	treblecross replay <file>     - Print the board and move log of a save file
//	treblecross serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible bot play
//	--db <path>      - Set database path (default: ~/.treblecross/results.db)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/treblecross/internal/games/treblecross"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "treblecross",
	Short: "Treblecross - three in a row on a 1-D board, in your terminal",
	Long: `Treblecross is a terminal board game: players take turns placing
marks on a one-dimensional board, and three identical marks in a row win.
Winning lines wrap around the board edge.

Available commands:
  play     - Play a game (TUI by default, --plain for line prompts)
  menu     - Interactive mode picker
  results  - View recorded match results
  replay   - Inspect a save file
  serve    - Start SSH server for remote play

Examples:
  treblecross play
  treblecross play --size 11 --mode cpu
  treblecross play --plain
  treblecross menu
  treblecross serve --ssh :2222
  treblecross results`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.treblecross/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
