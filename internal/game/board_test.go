package game

import "testing"

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(9)

	if b.Size() != 9 {
		t.Fatalf("Size should be 9, got %d", b.Size())
	}
	for i := 0; i < b.Size(); i++ {
		if b.Cell(i) != EmptyCell {
			t.Errorf("Cell %d should be empty, got %q", i, b.Cell(i))
		}
	}
	if b.IsFull() {
		t.Error("Fresh board should not be full")
	}
}

func TestIsValidMove(t *testing.T) {
	b := NewBoard(5)
	b.PlaceMove(2, 'X')

	cases := []struct {
		pos  int
		want bool
	}{
		{0, true},
		{4, true},
		{2, false}, // occupied
		{-1, false},
		{5, false},
	}
	for _, c := range cases {
		if got := b.IsValidMove(c.pos); got != c.want {
			t.Errorf("IsValidMove(%d) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestWinningLineStraight(t *testing.T) {
	// 0, 1, 2 on a board of five is a straight winning line.
	b := NewBoard(5)
	b.PlaceMove(0, 'X')
	b.PlaceMove(1, 'X')

	if b.HasWinningLine('X') {
		t.Fatal("Two in a row should not win")
	}

	b.PlaceMove(2, 'X')
	if !b.HasWinningLine('X') {
		t.Error("Cells 0,1,2 should form a winning line")
	}
	if b.HasWinningLine('O') {
		t.Error("O has no line on this board")
	}
}

func TestWinningLineWrapsAroundEdge(t *testing.T) {
	// The line wraps: on a board of five, cells 4, 0, 1 are consecutive.
	b := NewBoard(5)
	b.PlaceMove(4, 'O')
	b.PlaceMove(0, 'O')
	b.PlaceMove(1, 'O')

	if !b.HasWinningLine('O') {
		t.Error("Cells 4,0,1 should form a winning line across the edge")
	}
}

func TestWinningLineRequiresConsecutive(t *testing.T) {
	b := NewBoard(7)
	b.PlaceMove(0, 'X')
	b.PlaceMove(2, 'X')
	b.PlaceMove(4, 'X')

	if b.HasWinningLine('X') {
		t.Error("Scattered marks should not form a winning line")
	}
}

func TestWinningLineOnMinimumBoard(t *testing.T) {
	// On a board of exactly three, any three marks of one symbol win.
	b := NewBoard(3)
	b.PlaceMove(0, 'X')
	b.PlaceMove(1, 'X')
	b.PlaceMove(2, 'X')

	if !b.HasWinningLine('X') {
		t.Error("Full minimum board of one symbol should win")
	}
}

func TestIsFull(t *testing.T) {
	b := NewBoard(3)
	b.PlaceMove(0, 'X')
	b.PlaceMove(1, 'O')
	if b.IsFull() {
		t.Fatal("Board with an empty cell should not be full")
	}

	b.PlaceMove(2, 'X')
	if !b.IsFull() {
		t.Error("Board with every cell occupied should be full")
	}
}

func TestEmptyCells(t *testing.T) {
	b := NewBoard(5)
	b.PlaceMove(1, 'X')
	b.PlaceMove(3, 'O')

	got := b.EmptyCells()
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("EmptyCells returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyCells[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestClearCell(t *testing.T) {
	b := NewBoard(5)
	b.PlaceMove(2, 'X')
	b.ClearCell(2)

	if b.Cell(2) != EmptyCell {
		t.Errorf("Cell 2 should be empty after clear, got %q", b.Cell(2))
	}
	// Out-of-range clears must be harmless.
	b.ClearCell(-1)
	b.ClearCell(99)
}

func TestBoardFromCellsCopies(t *testing.T) {
	cells := []rune{'X', 'X', EmptyCell, 'O', EmptyCell}
	b := BoardFromCells(cells)

	cells[0] = 'O'
	if b.Cell(0) != 'X' {
		t.Error("Board should hold a copy, not the caller's slice")
	}
	if b.String() != "XX O " {
		t.Errorf("String() = %q, want %q", b.String(), "XX O ")
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard(4)
	b.PlaceMove(1, 'X')
	b.PlaceMove(2, 'O')

	if got := b.String(); got != " XO " {
		t.Errorf("String() = %q, want %q", got, " XO ")
	}
}
