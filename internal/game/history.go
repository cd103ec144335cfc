package game

// Move is one applied move: the cell index and the symbol placed there.
// Storing the symbol alongside the position keeps redo unambiguous no
// matter whose turn it is when the redo happens.
type Move struct {
	Pos    int
	Symbol rune
}

// History is the ordered log of applied moves plus the undo and redo
// stacks enabling linear undo/redo. Invariants: recording a new move
// clears the redo stack; undo moves an entry from the undo stack to the
// redo stack and removes it from the log; redo does the reverse.
type History struct {
	log  []Move
	undo []Move
	redo []Move
}

// NewHistory creates an empty move history.
func NewHistory() *History {
	return &History{}
}

// Record appends a move to the log and the undo stack. Any pending redo
// entries are invalidated: a fresh move forks the timeline.
func (h *History) Record(m Move) {
	h.log = append(h.log, m)
	h.undo = append(h.undo, m)
	h.redo = h.redo[:0]
}

// Undo reverts the most recent move: it is popped from the undo stack,
// its first occurrence (matching by position) is removed from the log,
// the board cell is cleared, and the move is pushed onto the redo
// stack. A cell position can never repeat in the log while it stays
// occupied, so first-occurrence removal is unambiguous in legal play.
// Returns the undone move, or ok=false if there is nothing to undo.
func (h *History) Undo(b *Board) (Move, bool) {
	if len(h.undo) == 0 {
		return Move{}, false
	}

	m := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	for i, logged := range h.log {
		if logged.Pos == m.Pos {
			h.log = append(h.log[:i], h.log[i+1:]...)
			break
		}
	}

	h.redo = append(h.redo, m)
	b.ClearCell(m.Pos)
	return m, true
}

// Redo reapplies the most recently undone move: popped from the redo
// stack, appended to the log, pushed onto the undo stack, and its
// stored symbol written back to the board. Returns ok=false if there is
// nothing to redo.
func (h *History) Redo(b *Board) (Move, bool) {
	if len(h.redo) == 0 {
		return Move{}, false
	}

	m := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	h.log = append(h.log, m)
	h.undo = append(h.undo, m)
	b.PlaceMove(m.Pos, m.Symbol)
	return m, true
}

// Clear empties the log and both stacks.
func (h *History) Clear() {
	h.log = h.log[:0]
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Moves returns a copy of the log in chronological order. Repeatable
// and non-destructive.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.log))
	copy(out, h.log)
	return out
}

// Positions returns the logged cell indices in chronological order.
// This is line 2 of the save file format.
func (h *History) Positions() []int {
	out := make([]int, len(h.log))
	for i, m := range h.log {
		out[i] = m.Pos
	}
	return out
}

// Len returns the number of logged moves.
func (h *History) Len() int {
	return len(h.log)
}

// CanUndo reports whether an undo would have any effect.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo would have any effect.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}
