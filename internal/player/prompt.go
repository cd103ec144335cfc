package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/treblecross/internal/codec"
	"github.com/vovakirdan/treblecross/internal/game"
)

// MenuToken is the input that diverts the move prompt into the
// save/load/history/undo/redo menu.
const MenuToken = "m"

// Prompt reads moves from a line-based terminal. It re-prompts until a
// valid integer naming an empty cell is entered. The MenuToken input
// opens a menu whose actions are side effects on the shared engine,
// not moves; after the menu the move prompt resumes.
type Prompt struct {
	in       *bufio.Scanner
	out      io.Writer
	engine   *game.Engine
	savePath string
	vsBot    bool
}

// NewPrompt creates an interactive strategy reading from in and
// prompting on out. savePath is the default filename offered by the
// save and load menu entries.
func NewPrompt(in io.Reader, out io.Writer, e *game.Engine, savePath string) *Prompt {
	return &Prompt{
		in:       bufio.NewScanner(in),
		out:      out,
		engine:   e,
		savePath: savePath,
	}
}

// SetVsBot marks the second player as computer-controlled. Menu undo
// and redo then move two plies so the turn lands back on the human.
func (p *Prompt) SetVsBot(vsBot bool) {
	p.vsBot = vsBot
}

// ChooseMove prompts until a legal move is entered. Returns ok=false
// only when the input stream ends.
func (p *Prompt) ChooseMove(*game.Board) (int, bool) {
	for {
		b := p.engine.Board()
		fmt.Fprintf(p.out, "Player %d (%c), enter a cell 0-%d (or %q for menu): ",
			p.engine.Current().Turn, p.engine.Current().Symbol, b.Size()-1, MenuToken)

		line, ok := p.readLine()
		if !ok {
			return 0, false
		}

		if strings.EqualFold(line, MenuToken) {
			p.runMenu()
			continue
		}

		pos, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Not a number: %q\n", line)
			continue
		}
		if !b.IsValidMove(pos) {
			fmt.Fprintf(p.out, "Cell %d is occupied or out of range.\n", pos)
			continue
		}
		return pos, true
	}
}

// runMenu handles the menu detour. Every failure is reported and the
// menu abandoned; nothing here terminates the game.
func (p *Prompt) runMenu() {
	fmt.Fprintln(p.out, "Menu: 1) save  2) load  3) history  4) undo  5) redo  other) back")
	fmt.Fprint(p.out, "> ")

	choice, ok := p.readLine()
	if !ok {
		return
	}

	switch choice {
	case "1":
		path := p.askPath("Save to")
		if path == "" {
			return
		}
		if err := codec.SaveFile(path, p.engine.Board(), p.engine.History()); err != nil {
			fmt.Fprintf(p.out, "Save failed: %v\n", err)
			return
		}
		fmt.Fprintf(p.out, "Saved to %s\n", path)

	case "2":
		path := p.askPath("Load from")
		if path == "" {
			return
		}
		players := p.engine.Players()
		b, h, err := codec.LoadFile(path, players[0].Symbol, players[1].Symbol)
		if err != nil {
			fmt.Fprintf(p.out, "Load failed: %v\n", err)
			return
		}
		p.engine.Restore(b, h)
		fmt.Fprintf(p.out, "Loaded %s: %q\n", path, b.String())

	case "3":
		moves := p.engine.History().Moves()
		if len(moves) == 0 {
			fmt.Fprintln(p.out, "No moves yet.")
			return
		}
		for i, m := range moves {
			fmt.Fprintf(p.out, "%2d. %c at %d\n", i+1, m.Symbol, m.Pos)
		}

	case "4":
		if !p.engine.Undo() {
			fmt.Fprintln(p.out, "Nothing to undo.")
			return
		}
		if p.vsBot && p.engine.Current().Turn == 2 {
			p.engine.Undo()
		}
		fmt.Fprintf(p.out, "Undone. Board: %q\n", p.engine.Board().String())

	case "5":
		if !p.engine.Redo() {
			fmt.Fprintln(p.out, "Nothing to redo.")
			return
		}
		if p.vsBot && p.engine.Current().Turn == 2 && p.engine.History().CanRedo() {
			p.engine.Redo()
		}
		fmt.Fprintf(p.out, "Redone. Board: %q\n", p.engine.Board().String())
	}
}

func (p *Prompt) askPath(verb string) string {
	fmt.Fprintf(p.out, "%s [%s]: ", verb, p.savePath)
	line, ok := p.readLine()
	if !ok {
		return ""
	}
	if line == "" {
		return p.savePath
	}
	return line
}

func (p *Prompt) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}
