// Package treblecross implements the board game as a platform game
// variant: cursor-driven move entry over the shared rules engine, with
// undo/redo, save/load, and a move-history overlay.
package treblecross

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/treblecross/internal/codec"
	"github.com/vovakirdan/treblecross/internal/core"
	"github.com/vovakirdan/treblecross/internal/game"
	"github.com/vovakirdan/treblecross/internal/player"
	"github.com/vovakirdan/treblecross/internal/registry"
)

// Mode selects who controls the second player.
type Mode string

const (
	ModePvP   Mode = "pvp"
	ModeVsCPU Mode = "cpu"
)

// messageTicks is how long a status message stays visible.
const messageTicks = 120

// Options are the settings applied to the next created game. Set from
// config/flags before the platform calls Reset.
type Options struct {
	BoardSize   int
	SymbolA     rune
	SymbolB     rune
	BotDelay    int    // Ticks the bot waits before moving
	SavePath    string // Target of the in-game save/load keys
	LoadOnStart string // Save file applied on the first Reset, once
}

var opts = Options{
	BoardSize: 9,
	SymbolA:   'X',
	SymbolB:   'O',
	BotDelay:  15,
	SavePath:  "treblecross-save.txt",
}

// SetOptions configures the next created game.
func SetOptions(o Options) {
	opts = o
}

// Game hosts one Treblecross match for the platform.
type Game struct {
	mode   Mode
	engine *game.Engine
	bot    player.Strategy

	cursor      int
	botTicker   int
	tick        uint64
	showHistory bool

	message     string
	messageLeft int

	savePath string

	screenW int
	screenH int
}

// New creates a two-human-players game.
func New() *Game {
	return &Game{mode: ModePvP}
}

// NewVsCPU creates a human-vs-computer game.
func NewVsCPU() *Game {
	return &Game{mode: ModeVsCPU}
}

func init() {
	registry.Register("treblecross", func() registry.Game {
		return New()
	})
	registry.Register("treblecross_cpu", func() registry.Game {
		return NewVsCPU()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	if g.mode == ModeVsCPU {
		return "treblecross_cpu"
	}
	return "treblecross"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeVsCPU {
		return "Treblecross (vs Computer)"
	}
	return "Treblecross (2 Players)"
}

// Mode returns the variant's play mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game from the current Options.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	size := core.Max(opts.BoardSize, game.MinBoardSize)
	g.engine = game.NewEngine(size, opts.SymbolA, opts.SymbolB)
	g.bot = player.NewRandom(cfg.Seed)
	g.cursor = 0
	g.botTicker = 0
	g.tick = 0
	g.showHistory = false
	g.message = ""
	g.messageLeft = 0
	g.savePath = opts.SavePath
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if opts.LoadOnStart != "" {
		path := opts.LoadOnStart
		opts.LoadOnStart = ""
		g.load(path)
	}
}

// Engine exposes the rules engine, mainly for tests.
func (g *Game) Engine() *game.Engine {
	return g.engine
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	if g.messageLeft > 0 {
		g.messageLeft--
		if g.messageLeft == 0 {
			g.message = ""
		}
	}

	if input.Has(core.ActionHistory) {
		g.showHistory = !g.showHistory
	}

	over := g.engine.Status() != game.StatusPlaying
	if input.Has(core.ActionRestart) && over {
		g.engine.Restart()
		g.cursor = 0
		g.botTicker = 0
		g.say("New game.")
		return core.StepResult{State: g.State()}
	}
	if over {
		return core.StepResult{State: g.State()}
	}

	if g.botTurn() {
		g.stepBot()
		return core.StepResult{State: g.State()}
	}

	g.stepHuman(input)
	return core.StepResult{State: g.State()}
}

// botTurn reports whether the computer is due to move.
func (g *Game) botTurn() bool {
	return g.mode == ModeVsCPU && g.engine.Current().Turn == 2
}

func (g *Game) stepBot() {
	g.botTicker++
	if g.botTicker < opts.BotDelay {
		return
	}
	g.botTicker = 0

	pos, ok := g.bot.ChooseMove(g.engine.Board())
	if !ok {
		return
	}
	//nolint:errcheck // Bot moves come from EmptyCells, always legal
	g.engine.Apply(pos)
}

func (g *Game) stepHuman(input core.InputFrame) {
	size := g.engine.Board().Size()

	switch {
	case input.Has(core.ActionLeft):
		g.cursor = (g.cursor + size - 1) % size
	case input.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % size
	}

	switch {
	case input.Has(core.ActionConfirm):
		g.place()
	case input.Has(core.ActionUndo):
		g.undo()
	case input.Has(core.ActionRedo):
		g.redo()
	case input.Has(core.ActionSave):
		g.save()
	case input.Has(core.ActionLoad):
		g.load(g.savePath)
	}
}

func (g *Game) place() {
	if !g.engine.Board().IsValidMove(g.cursor) {
		g.say(fmt.Sprintf("Cell %d is occupied.", g.cursor))
		return
	}
	if err := g.engine.Apply(g.cursor); err != nil {
		g.say(err.Error())
	}
}

// undo takes back one ply, or two in cpu mode so the turn lands back
// on the human.
func (g *Game) undo() {
	if !g.engine.Undo() {
		g.say("Nothing to undo.")
		return
	}
	if g.mode == ModeVsCPU && g.botTurn() {
		g.engine.Undo()
	}
	g.say("Move undone.")
}

func (g *Game) redo() {
	if !g.engine.Redo() {
		g.say("Nothing to redo.")
		return
	}
	if g.mode == ModeVsCPU && g.botTurn() && g.engine.History().CanRedo() {
		g.engine.Redo()
	}
	g.say("Move redone.")
}

func (g *Game) save() {
	if err := codec.SaveFile(g.savePath, g.engine.Board(), g.engine.History()); err != nil {
		g.say(fmt.Sprintf("Save failed: %v", err))
		return
	}
	g.say(fmt.Sprintf("Saved to %s", g.savePath))
}

func (g *Game) load(path string) {
	b, h, err := codec.LoadFile(path, opts.SymbolA, opts.SymbolB)
	if err != nil {
		g.say(fmt.Sprintf("Load failed: %v", err))
		return
	}
	g.engine.Restore(b, h)
	g.cursor = core.Clamp(g.cursor, 0, b.Size()-1)
	g.say(fmt.Sprintf("Loaded %s", path))
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageLeft = messageTicks
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Turn:      g.engine.Current().Turn,
		Moves:     g.engine.History().Len(),
		BoardSize: g.engine.Board().Size(),
	}
	switch g.engine.Status() {
	case game.StatusWon:
		st.GameOver = true
		st.Winner = g.engine.Winner().Turn
		st.WinnerMark = string(g.engine.Winner().Symbol)
	case game.StatusDraw:
		st.GameOver = true
		st.Draw = true
	}
	return st
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.screenW = dst.Width()
	g.screenH = dst.Height()

	dst.DrawTextCentered(1, "T R E B L E C R O S S")
	dst.DrawTextCentered(2, g.Title())

	boardY := 4
	g.renderBoard(dst, boardY)

	statusY := boardY + 5
	dst.DrawTextCentered(statusY, g.statusLine())
	if g.message != "" {
		dst.DrawTextColored((dst.Width()-len(g.message))/2, statusY+1, g.message, core.ColorYellow)
	}

	if g.showHistory {
		g.renderHistory(dst, statusY+3)
	}

	help := "←/→ move  enter place  u undo  ctrl+r redo  ctrl+s save  ctrl+o load  m history  q quit"
	if g.engine.Status() != game.StatusPlaying {
		help = "r restart  q quit"
	}
	dst.DrawTextColored((dst.Width()-len(help))/2, dst.Height()-2, help, core.ColorGray)
}

// renderBoard draws the boxed cells, their indices, and the cursor.
func (g *Game) renderBoard(dst *core.Screen, y int) {
	b := g.engine.Board()
	n := b.Size()

	// Shrink cells until the board fits the screen.
	cellW := 4
	for cellW > 2 && n*cellW+1 > dst.Width()-2 {
		cellW--
	}
	boardW := n*cellW + 1
	x0 := (dst.Width() - boardW) / 2

	dst.DrawBox(x0, y, boardW, 3)
	for i := 0; i < n; i++ {
		cx := x0 + i*cellW
		if i > 0 {
			dst.Set(cx, y, '┬')
			dst.Set(cx, y+1, '│')
			dst.Set(cx, y+2, '┴')
		}

		sym := b.Cell(i)
		color := core.ColorDefault
		switch sym {
		case g.engine.Players()[0].Symbol:
			color = core.ColorRed
		case g.engine.Players()[1].Symbol:
			color = core.ColorCyan
		}
		dst.SetColored(cx+cellW/2, y+1, sym, color)

		// Index labels, single digit to stay inside narrow cells.
		dst.SetColored(cx+cellW/2, y+3, rune('0'+i%10), core.ColorGray)
	}

	if !g.botTurn() && g.engine.Status() == game.StatusPlaying {
		dst.SetColored(x0+g.cursor*cellW+cellW/2, y+4, '▲', core.ColorBrightYellow)
	}
}

func (g *Game) statusLine() string {
	switch g.engine.Status() {
	case game.StatusWon:
		w := g.engine.Winner()
		return fmt.Sprintf("Player %d (%c) wins!", w.Turn, w.Symbol)
	case game.StatusDraw:
		return "Draw: the board is full."
	default:
		cur := g.engine.Current()
		if g.botTurn() {
			return fmt.Sprintf("Computer (%c) is thinking...", cur.Symbol)
		}
		return fmt.Sprintf("Player %d (%c) to move", cur.Turn, cur.Symbol)
	}
}

func (g *Game) renderHistory(dst *core.Screen, y int) {
	moves := g.engine.History().Moves()
	if len(moves) == 0 {
		dst.DrawTextCentered(y, "No moves yet.")
		return
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fmt.Sprintf("%d.%c@%d", i+1, m.Symbol, m.Pos)
	}
	// Truncate by rune so multi-byte symbols never get torn, and clamp
	// so screens narrower than the ellipsis don't slice negative.
	line := []rune("Moves: " + strings.Join(parts, "  "))
	if limit := dst.Width() - 2; len(line) > limit {
		line = append(line[:core.Max(limit-3, 0)], []rune("...")...)
	}
	dst.DrawTextCentered(y, string(line))
}
