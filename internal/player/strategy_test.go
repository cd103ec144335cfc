package player

import (
	"testing"

	"github.com/vovakirdan/treblecross/internal/game"
)

func TestRandomPicksOnlyEmptyCells(t *testing.T) {
	b := game.NewBoard(9)
	b.PlaceMove(0, 'X')
	b.PlaceMove(4, 'O')
	b.PlaceMove(8, 'X')

	r := NewRandom(42)
	for i := 0; i < 200; i++ {
		pos, ok := r.ChooseMove(b)
		if !ok {
			t.Fatal("ChooseMove should succeed while empty cells remain")
		}
		if !b.IsValidMove(pos) {
			t.Fatalf("ChooseMove picked occupied or out-of-range cell %d", pos)
		}
	}
}

func TestRandomFullBoardSentinel(t *testing.T) {
	b := game.NewBoard(3)
	b.PlaceMove(0, 'X')
	b.PlaceMove(1, 'O')
	b.PlaceMove(2, 'X')

	r := NewRandom(1)
	if _, ok := r.ChooseMove(b); ok {
		t.Error("ChooseMove on a full board should report ok=false")
	}
}

func TestRandomDeterministicWithSeed(t *testing.T) {
	b := game.NewBoard(15)

	r1 := NewRandom(99)
	r2 := NewRandom(99)
	for i := 0; i < 50; i++ {
		p1, _ := r1.ChooseMove(b)
		p2, _ := r2.ChooseMove(b)
		if p1 != p2 {
			t.Fatalf("Same seed should pick same moves, got %d vs %d at step %d", p1, p2, i)
		}
	}
}

func TestRandomCoversAllEmptyCells(t *testing.T) {
	b := game.NewBoard(5)
	b.PlaceMove(2, 'X')

	seen := make(map[int]bool)
	r := NewRandom(7)
	for i := 0; i < 500; i++ {
		pos, _ := r.ChooseMove(b)
		seen[pos] = true
	}

	for _, pos := range []int{0, 1, 3, 4} {
		if !seen[pos] {
			t.Errorf("Cell %d was never picked in 500 draws", pos)
		}
	}
}
