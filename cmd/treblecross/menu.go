package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treblecross/internal/config"
	"github.com/vovakirdan/treblecross/internal/games/treblecross"
	"github.com/vovakirdan/treblecross/internal/platform/tui"
	"github.com/vovakirdan/treblecross/internal/registry"
	"github.com/vovakirdan/treblecross/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long: `Open the interactive menu to pick a mode, adjust the board
size and browse match results. Returns to the menu after each game.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()

	for {
		result, err := tui.RunMenu(rc, cfg.Board.Size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}

		if result.WantsResults {
			goingBack, err := tui.RunResults(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error showing results: %v\n", err)
				os.Exit(1)
			}
			if !goingBack {
				return
			}
			continue
		}

		opts := gameOptions(cfg)
		opts.BoardSize = result.BoardSize
		treblecross.SetOptions(opts)

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		gameRC := rc
		if gameRC.Seed == 0 {
			gameRC.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, gameRC); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
	}
}
