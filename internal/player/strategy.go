// Package player provides move-selection strategies: an automated
// uniform-random player and an interactive line-based prompt player.
package player

import (
	"math/rand"

	"github.com/vovakirdan/treblecross/internal/game"
)

// Strategy selects the next move for one side. ok is false when no
// legal move exists (the no-legal-move sentinel).
type Strategy interface {
	ChooseMove(b *game.Board) (pos int, ok bool)
}

// Random picks uniformly among the empty cells.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy seeded for reproducible play.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove returns a uniformly random empty cell, or ok=false when
// the board is full.
func (r *Random) ChooseMove(b *game.Board) (int, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return 0, false
	}
	return empty[r.rng.Intn(len(empty))], true
}
