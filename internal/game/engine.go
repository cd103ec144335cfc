package game

import (
	"errors"
	"fmt"
)

// Status is the engine's position in the turn state machine.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusDraw
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Player identifies one side: its mark and its turn number (1 or 2).
// Players share the board for the game's lifetime but do not own it.
type Player struct {
	Symbol rune
	Turn   int
}

var (
	// ErrInvalidMove is returned when a move names an occupied or
	// out-of-range cell.
	ErrInvalidMove = errors.New("game: invalid move")

	// ErrGameOver is returned when a move is applied to a finished game.
	ErrGameOver = errors.New("game: game is over")
)

// Engine orchestrates turn order over a shared board and history.
// It is the single owner of both; players and the UI act through it.
type Engine struct {
	board   *Board
	history *History
	players [2]Player
	current int // index into players
	status  Status
	winner  int // index into players, valid when status == StatusWon
}

// NewEngine creates an engine with an empty board of the given size.
// symbolA moves first.
func NewEngine(size int, symbolA, symbolB rune) *Engine {
	return &Engine{
		board:   NewBoard(size),
		history: NewHistory(),
		players: [2]Player{
			{Symbol: symbolA, Turn: 1},
			{Symbol: symbolB, Turn: 2},
		},
	}
}

// Board returns the shared board.
func (e *Engine) Board() *Board {
	return e.board
}

// History returns the shared move history.
func (e *Engine) History() *History {
	return e.history
}

// Status returns the current terminal-state machine position.
func (e *Engine) Status() Status {
	return e.status
}

// Players returns both players in turn order.
func (e *Engine) Players() [2]Player {
	return e.players
}

// Current returns the player due to move.
func (e *Engine) Current() Player {
	return e.players[e.current]
}

// Winner returns the winning player. Only meaningful when Status is
// StatusWon.
func (e *Engine) Winner() Player {
	return e.players[e.winner]
}

// Apply validates and plays pos for the current player, records it,
// and evaluates the terminal conditions: a winning line for the mover
// ends the game as Won, a full board as Draw, otherwise the turn flips.
func (e *Engine) Apply(pos int) error {
	if e.status != StatusPlaying {
		return ErrGameOver
	}
	if !e.board.IsValidMove(pos) {
		return fmt.Errorf("%w: cell %d", ErrInvalidMove, pos)
	}

	p := e.players[e.current]
	e.board.PlaceMove(pos, p.Symbol)
	e.history.Record(Move{Pos: pos, Symbol: p.Symbol})

	switch {
	case e.board.HasWinningLine(p.Symbol):
		e.status = StatusWon
		e.winner = e.current
	case e.board.IsFull():
		e.status = StatusDraw
	default:
		e.current = 1 - e.current
	}
	return nil
}

// Undo takes back the most recent move and gives the turn back to the
// player who made it. Undoing out of a terminal state resumes play.
// No-op when the log is exhausted.
func (e *Engine) Undo() bool {
	m, ok := e.history.Undo(e.board)
	if !ok {
		return false
	}
	e.status = StatusPlaying
	e.current = e.indexOf(m.Symbol)
	return true
}

// Redo reapplies the most recently undone move and advances the turn
// past its mover, re-evaluating terminal conditions. No-op when the
// redo stack is empty.
func (e *Engine) Redo() bool {
	m, ok := e.history.Redo(e.board)
	if !ok {
		return false
	}

	mover := e.indexOf(m.Symbol)
	switch {
	case e.board.HasWinningLine(m.Symbol):
		e.status = StatusWon
		e.winner = mover
		e.current = mover
	case e.board.IsFull():
		e.status = StatusDraw
		e.current = mover
	default:
		e.status = StatusPlaying
		e.current = 1 - mover
	}
	return true
}

// Restore replaces the board and history wholesale, as after a load.
// The turn is recomputed from the log length parity and the terminal
// state re-evaluated from the board contents.
func (e *Engine) Restore(b *Board, h *History) {
	e.board = b
	e.history = h
	e.current = h.Len() % 2
	e.status = StatusPlaying

	for i, p := range e.players {
		if b.HasWinningLine(p.Symbol) {
			e.status = StatusWon
			e.winner = i
			e.current = i
			return
		}
	}
	if b.IsFull() {
		e.status = StatusDraw
	}
}

// Restart clears the board and history for a fresh game on the same
// board size. symbolA moves first again.
func (e *Engine) Restart() {
	e.board.Reset()
	e.history.Clear()
	e.current = 0
	e.status = StatusPlaying
	e.winner = 0
}

func (e *Engine) indexOf(symbol rune) int {
	if e.players[1].Symbol == symbol {
		return 1
	}
	return 0
}
