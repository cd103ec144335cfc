package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treblecross/internal/config"
	"github.com/vovakirdan/treblecross/internal/core"
	"github.com/vovakirdan/treblecross/internal/games/treblecross"
	"github.com/vovakirdan/treblecross/internal/platform/tui"
	"github.com/vovakirdan/treblecross/internal/registry"
	"github.com/vovakirdan/treblecross/internal/storage"
)

var (
	flagSize  int
	flagMode  string
	flagPlain bool
	flagSave  string
	flagLoad  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Treblecross.

TUI controls:
  Left/Right   - Move the cursor
  Enter/Space  - Place your mark
  U            - Undo last move
  Ctrl+R       - Redo undone move
  Ctrl+S       - Save game to the save file
  Ctrl+O       - Load game from the save file
  M            - Toggle move history
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Modes:
  pvp  - Two human players take turns at the same terminal
  cpu  - Play against a random-moving computer opponent

Examples:
  treblecross play
  treblecross play --size 11
  treblecross play --mode cpu
  treblecross play --plain
  treblecross play --load ./game.txt
  treblecross play --config ./my-treblecross.yaml`,
}

func init() {
	playCmd.Run = runPlay
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config, minimum 3)")
	playCmd.Flags().StringVar(&flagMode, "mode", "pvp", "Game mode: pvp or cpu")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-based prompts instead of the TUI")
	playCmd.Flags().StringVar(&flagSave, "save", "", "Save file path (overrides config)")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Save file to load before the first move")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts := gameOptions(cfg)
	if flagLoad != "" {
		opts.LoadOnStart = flagLoad
	}

	gameID := "treblecross"
	switch flagMode {
	case "pvp":
	case "cpu":
		gameID = "treblecross_cpu"
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want pvp or cpu)\n", flagMode)
		os.Exit(1)
	}

	// Open result storage; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if flagPlain {
		if err := runPlainGame(os.Stdin, os.Stdout, opts, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	treblecross.SetOptions(opts)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, store, runtimeConfig()); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// gameOptions builds the variant options from config plus flags.
func gameOptions(cfg config.Config) treblecross.Options {
	symA, symB := cfg.SymbolRunes()
	opts := treblecross.Options{
		BoardSize: cfg.Board.Size,
		SymbolA:   symA,
		SymbolB:   symB,
		BotDelay:  cfg.Bot.DelayTicks,
		SavePath:  config.ExpandHome(cfg.Files.SavePath),
	}
	if flagSize > 0 {
		opts.BoardSize = flagSize
	}
	if flagSave != "" {
		opts.SavePath = flagSave
	}
	return opts
}

// runtimeConfig probes the terminal size and applies the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
