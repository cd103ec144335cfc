package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treblecross/internal/codec"
	"github.com/vovakirdan/treblecross/internal/config"
	"github.com/vovakirdan/treblecross/internal/game"
)

var replayCmd = &cobra.Command{
	Use:   "replay <save-file>",
	Short: "Replay a saved game",
	Long: `Replay a saved game move by move.

Reads a save file, replays its moves on an empty board and prints
the board after every move, ending with the final position.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	symA, symB := cfg.SymbolRunes()

	board, hist, err := codec.LoadFile(args[0], symA, symB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading save file: %v\n", err)
		os.Exit(1)
	}

	moves := hist.Moves()
	fmt.Printf("Board size %d, %d move(s)\n", board.Size(), len(moves))

	replay := game.NewBoard(board.Size())
	for i, mv := range moves {
		replay.PlaceMove(mv.Pos, mv.Symbol)
		fmt.Printf("\nMove %d: %c at %d", i+1, mv.Symbol, mv.Pos)
		printBoard(os.Stdout, replay)
	}

	fmt.Println("\nFinal position:")
	printBoard(os.Stdout, board)

	if board.HasWinningLine(symA) {
		fmt.Printf("Winner: %c\n", symA)
	} else if board.HasWinningLine(symB) {
		fmt.Printf("Winner: %c\n", symB)
	} else if board.IsFull() {
		fmt.Println("Result: draw")
	} else {
		fmt.Println("Game still in progress.")
	}
}
