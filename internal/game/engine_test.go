package game

import (
	"errors"
	"testing"
)

func newTestEngine(size int) *Engine {
	return NewEngine(size, 'X', 'O')
}

func TestTurnAlternation(t *testing.T) {
	e := newTestEngine(9)

	if e.Current().Turn != 1 {
		t.Fatalf("Player 1 should move first, got player %d", e.Current().Turn)
	}
	if err := e.Apply(0); err != nil {
		t.Fatalf("Apply(0) failed: %v", err)
	}
	if e.Current().Turn != 2 {
		t.Errorf("Player 2 should move second, got player %d", e.Current().Turn)
	}
	if e.Board().Cell(0) != 'X' {
		t.Errorf("Cell 0 should hold X, got %q", e.Board().Cell(0))
	}
}

func TestApplyRejectsInvalidMoves(t *testing.T) {
	e := newTestEngine(5)
	if err := e.Apply(2); err != nil {
		t.Fatalf("Apply(2) failed: %v", err)
	}

	for _, pos := range []int{2, -1, 5} {
		err := e.Apply(pos)
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("Apply(%d) = %v, want ErrInvalidMove", pos, err)
		}
	}
	// The failed attempts must not flip the turn.
	if e.Current().Turn != 2 {
		t.Errorf("Turn should still be player 2 after rejected moves, got %d", e.Current().Turn)
	}
}

func TestWinEndsGame(t *testing.T) {
	e := newTestEngine(9)

	// X plays 0, 1, 2 while O plays far away.
	for _, pos := range []int{0, 5, 1, 7, 2} {
		if err := e.Apply(pos); err != nil {
			t.Fatalf("Apply(%d) failed: %v", pos, err)
		}
	}

	if e.Status() != StatusWon {
		t.Fatalf("Status = %v, want won", e.Status())
	}
	if e.Winner().Symbol != 'X' {
		t.Errorf("Winner should be X, got %q", e.Winner().Symbol)
	}
	if err := e.Apply(8); !errors.Is(err, ErrGameOver) {
		t.Errorf("Apply after win = %v, want ErrGameOver", err)
	}
}

func TestWrappingWinEndsGame(t *testing.T) {
	e := newTestEngine(5)

	// X takes 4, 0, 1 which wrap around the edge.
	for _, pos := range []int{4, 2, 0, 3, 1} {
		if err := e.Apply(pos); err != nil {
			t.Fatalf("Apply(%d) failed: %v", pos, err)
		}
	}

	if e.Status() != StatusWon {
		t.Fatalf("Status = %v, want won (line wraps the edge)", e.Status())
	}
	if e.Winner().Symbol != 'X' {
		t.Errorf("Winner should be X, got %q", e.Winner().Symbol)
	}
}

func TestDrawOnFullBoard(t *testing.T) {
	e := newTestEngine(4)

	// X: 0, 2  O: 1, 3 -- board XOXO has no three-in-a-row for either.
	for _, pos := range []int{0, 1, 2, 3} {
		if err := e.Apply(pos); err != nil {
			t.Fatalf("Apply(%d) failed: %v", pos, err)
		}
	}

	if e.Status() != StatusDraw {
		t.Errorf("Status = %v, want draw on full board without a line", e.Status())
	}
}

func TestUndoReturnsTurnToMover(t *testing.T) {
	e := newTestEngine(9)
	e.Apply(0) // X
	e.Apply(5) // O

	if !e.Undo() {
		t.Fatal("Undo should succeed")
	}
	if e.Current().Symbol != 'O' {
		t.Errorf("Turn should return to O after undoing O's move, got %q", e.Current().Symbol)
	}
	if e.Board().Cell(5) != EmptyCell {
		t.Error("Cell 5 should be empty after undo")
	}
}

func TestUndoOutOfWonState(t *testing.T) {
	e := newTestEngine(9)
	for _, pos := range []int{0, 5, 1, 7, 2} {
		e.Apply(pos)
	}
	if e.Status() != StatusWon {
		t.Fatal("Setup should end in a won game")
	}

	if !e.Undo() {
		t.Fatal("Undo should succeed out of a won game")
	}
	if e.Status() != StatusPlaying {
		t.Errorf("Status = %v, want playing after undoing the winning move", e.Status())
	}
	if e.Current().Symbol != 'X' {
		t.Errorf("Turn should return to X, got %q", e.Current().Symbol)
	}
}

func TestRedoRestoresWonState(t *testing.T) {
	e := newTestEngine(9)
	for _, pos := range []int{0, 5, 1, 7, 2} {
		e.Apply(pos)
	}
	e.Undo()

	if !e.Redo() {
		t.Fatal("Redo should succeed")
	}
	if e.Status() != StatusWon {
		t.Errorf("Status = %v, want won after redoing the winning move", e.Status())
	}
	if e.Winner().Symbol != 'X' {
		t.Errorf("Winner should be X, got %q", e.Winner().Symbol)
	}
}

func TestUndoOnFreshEngine(t *testing.T) {
	e := newTestEngine(9)
	if e.Undo() {
		t.Error("Undo with no moves should report false")
	}
	if e.Redo() {
		t.Error("Redo with no undone moves should report false")
	}
}

func TestRestoreRecomputesTurnAndStatus(t *testing.T) {
	// Board "XX O " with log 0,1,3: three moves played, X to move.
	b := BoardFromCells([]rune{'X', 'X', EmptyCell, 'O', EmptyCell})
	h := NewHistory()
	h.Record(Move{Pos: 0, Symbol: 'X'})
	h.Record(Move{Pos: 1, Symbol: 'X'})
	h.Record(Move{Pos: 3, Symbol: 'O'})

	e := newTestEngine(9)
	e.Restore(b, h)

	if e.Board().Size() != 5 {
		t.Errorf("Board size should be 5 after restore, got %d", e.Board().Size())
	}
	if e.Status() != StatusPlaying {
		t.Errorf("Status = %v, want playing", e.Status())
	}
	if e.Current().Symbol != 'O' {
		t.Errorf("Odd log length means player 2 to move, got %q", e.Current().Symbol)
	}
}

func TestRestoreDetectsFinishedGame(t *testing.T) {
	b := BoardFromCells([]rune{'X', 'X', 'X', 'O', 'O'})
	h := NewHistory()
	for _, m := range []Move{{0, 'X'}, {3, 'O'}, {1, 'X'}, {4, 'O'}, {2, 'X'}} {
		h.Record(m)
	}

	e := newTestEngine(9)
	e.Restore(b, h)

	if e.Status() != StatusWon {
		t.Fatalf("Status = %v, want won", e.Status())
	}
	if e.Winner().Symbol != 'X' {
		t.Errorf("Winner should be X, got %q", e.Winner().Symbol)
	}
}

func TestRestart(t *testing.T) {
	e := newTestEngine(5)
	e.Apply(0)
	e.Apply(1)
	e.Restart()

	if e.Status() != StatusPlaying {
		t.Errorf("Status = %v, want playing after restart", e.Status())
	}
	if e.Current().Turn != 1 {
		t.Errorf("Player 1 should move first after restart, got %d", e.Current().Turn)
	}
	if e.History().Len() != 0 {
		t.Errorf("History should be empty after restart, got %d moves", e.History().Len())
	}
	for i := 0; i < e.Board().Size(); i++ {
		if e.Board().Cell(i) != EmptyCell {
			t.Errorf("Cell %d should be empty after restart", i)
		}
	}
}
