package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/treblecross/internal/codec"
	"github.com/vovakirdan/treblecross/internal/game"
	"github.com/vovakirdan/treblecross/internal/games/treblecross"
	"github.com/vovakirdan/treblecross/internal/player"
	"github.com/vovakirdan/treblecross/internal/storage"
)

// runPlainGame drives a full match over line-based prompts, without
// the TUI. One board per run; EOF on in quits. All reads go through a
// single buffered reader so the setup questions and the move prompt
// consume one stream without losing piped lines between them.
func runPlainGame(in io.Reader, out io.Writer, opts treblecross.Options, store *storage.Store) error {
	rd := bufio.NewReader(in)

	size := opts.BoardSize
	if flagSize == 0 {
		var err error
		size, err = askInt(rd, out, fmt.Sprintf("Board size [%d]: ", opts.BoardSize), opts.BoardSize, game.MinBoardSize)
		if err != nil {
			return err
		}
	}

	vsBot := flagMode == "cpu"
	if !cmdFlagChanged("mode") {
		choice, err := askInt(rd, out, "Mode (1 = two players, 2 = vs computer) [1]: ", 1, 1)
		if err != nil {
			return err
		}
		vsBot = choice == 2
	}

	symA, symB := opts.SymbolA, opts.SymbolB
	eng := game.NewEngine(size, symA, symB)

	if opts.LoadOnStart != "" {
		board, hist, err := codec.LoadFile(opts.LoadOnStart, symA, symB)
		if err != nil {
			return fmt.Errorf("load %s: %w", opts.LoadOnStart, err)
		}
		eng.Restore(board, hist)
	}

	prompt := player.NewPrompt(rd, out, eng, opts.SavePath)
	prompt.SetVsBot(vsBot)
	var bot *player.Random
	if vsBot {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		bot = player.NewRandom(seed)
	}

	start := time.Now()
	moves := 0

	for eng.Status() == game.StatusPlaying {
		printBoard(out, eng.Board())

		var pos int
		var ok bool
		if vsBot && eng.Current().Turn == 2 {
			pos, ok = bot.ChooseMove(eng.Board())
			if ok {
				fmt.Fprintf(out, "Computer plays %d\n", pos)
			}
		} else {
			pos, ok = prompt.ChooseMove(eng.Board())
		}
		if !ok {
			fmt.Fprintln(out, "\nGame abandoned.")
			saveResult(store, eng, vsBot, moves, start, true)
			return nil
		}

		if err := eng.Apply(pos); err != nil {
			fmt.Fprintf(out, "Invalid move: %v\n", err)
			continue
		}
		moves++
	}

	printBoard(out, eng.Board())
	switch eng.Status() {
	case game.StatusWon:
		fmt.Fprintf(out, "Player %d (%c) wins!\n", eng.Winner().Turn, eng.Winner().Symbol)
	case game.StatusDraw:
		fmt.Fprintln(out, "The board is full. It's a draw.")
	}

	saveResult(store, eng, vsBot, moves, start, false)
	return nil
}

func saveResult(store *storage.Store, eng *game.Engine, vsBot bool, moves int, start time.Time, abandoned bool) {
	if store == nil {
		return
	}
	mode := "pvp"
	if vsBot {
		mode = "cpu"
	}
	result := storage.ResultAbandoned
	if !abandoned {
		switch eng.Status() {
		case game.StatusWon:
			result = string(eng.Winner().Symbol)
		case game.StatusDraw:
			result = storage.ResultDraw
		}
	}
	// Best effort; the outcome was already announced.
	_, _ = store.SaveMatch(storage.MatchResult{
		Mode:      mode,
		BoardSize: eng.Board().Size(),
		Result:    result,
		Moves:     moves,
		Duration:  int(time.Since(start).Seconds()),
	})
}

// printBoard writes the board with a 0-9 repeating index ruler underneath.
func printBoard(w io.Writer, b *game.Board) {
	var cells, ruler strings.Builder
	for i := 0; i < b.Size(); i++ {
		cells.WriteByte('|')
		cells.WriteRune(b.Cell(i))
		ruler.WriteByte(' ')
		ruler.WriteByte(byte('0' + i%10))
	}
	cells.WriteByte('|')
	fmt.Fprintf(w, "\n%s\n%s\n", cells.String(), ruler.String())
}

// askInt reads one integer with a default used for empty input,
// re-prompting until the value is at least min. It reads exactly one
// line per prompt so the rest of the stream stays in rd for later
// consumers.
func askInt(rd *bufio.Reader, out io.Writer, prompt string, def, min int) (int, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := rd.ReadString('\n')
		if err != nil && line == "" {
			return 0, io.EOF
		}
		text := strings.TrimSpace(line)
		if text == "" {
			return def, nil
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < min {
			fmt.Fprintf(out, "Please enter a number of at least %d.\n", min)
			continue
		}
		return n, nil
	}
}

func cmdFlagChanged(name string) bool {
	return playCmd.Flags().Changed(name)
}
