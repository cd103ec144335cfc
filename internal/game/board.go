// Package game contains the Treblecross rules: the 1-D board, the move
// history with undo/redo, and the turn-taking engine. It is pure logic
// with no terminal or storage dependencies.
package game

// WinLength is the number of circularly-consecutive identical symbols
// that form a winning line.
const WinLength = 3

// MinBoardSize is the smallest playable board.
const MinBoardSize = 3

// EmptyCell marks an unoccupied board position.
const EmptyCell = ' '

// Board is a fixed-length 1-D sequence of cells. Each cell holds either
// EmptyCell or a player symbol. The length is fixed at creation; win
// detection wraps around the board edge.
type Board struct {
	cells []rune
}

// NewBoard creates an empty board with n cells.
func NewBoard(n int) *Board {
	b := &Board{cells: make([]rune, n)}
	b.Reset()
	return b
}

// BoardFromCells creates a board holding a copy of the given cells.
func BoardFromCells(cells []rune) *Board {
	b := &Board{cells: make([]rune, len(cells))}
	copy(b.cells, cells)
	return b
}

// Size returns the number of cells.
func (b *Board) Size() int {
	return len(b.cells)
}

// Cell returns the symbol at pos. Out-of-range positions read as empty.
func (b *Board) Cell(pos int) rune {
	if pos < 0 || pos >= len(b.cells) {
		return EmptyCell
	}
	return b.cells[pos]
}

// IsValidMove reports whether pos names an empty cell on the board.
func (b *Board) IsValidMove(pos int) bool {
	return pos >= 0 && pos < len(b.cells) && b.cells[pos] == EmptyCell
}

// PlaceMove writes symbol into the cell at pos. The caller must have
// validated the move with IsValidMove first; no bounds or occupancy
// check is performed here.
func (b *Board) PlaceMove(pos int, symbol rune) {
	b.cells[pos] = symbol
}

// ClearCell resets the cell at pos to empty.
func (b *Board) ClearCell(pos int) {
	if pos >= 0 && pos < len(b.cells) {
		b.cells[pos] = EmptyCell
	}
}

// HasWinningLine reports whether WinLength circularly-consecutive cells
// all hold symbol. Lines wrap around the board edge: on a board of five,
// cells 4, 0, 1 form a line. The wrap is a rule of the game.
func (b *Board) HasWinningLine(symbol rune) bool {
	n := len(b.cells)
	if n < WinLength {
		return false
	}
	for i := 0; i < n; i++ {
		run := true
		for j := 0; j < WinLength; j++ {
			if b.cells[(i+j)%n] != symbol {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == EmptyCell {
			return false
		}
	}
	return true
}

// EmptyCells returns the positions of all empty cells in order.
func (b *Board) EmptyCells() []int {
	var empty []int
	for i, c := range b.cells {
		if c == EmptyCell {
			empty = append(empty, i)
		}
	}
	return empty
}

// Reset sets every cell to empty.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
}

// Cells returns a copy of the board contents.
func (b *Board) Cells() []rune {
	out := make([]rune, len(b.cells))
	copy(out, b.cells)
	return out
}

// String returns the cells concatenated in order, one character per
// cell. This is also line 1 of the save file format.
func (b *Board) String() string {
	return string(b.cells)
}
