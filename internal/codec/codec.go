// Package codec serializes a board and its move history to the
// line-oriented save file format and back.
//
// The format is two newline-separated records:
//
//	line 1: the board cells concatenated in order, one character per
//	        cell (space for empty)
//	line 2: the logged move indices in chronological order, separated
//	        by single spaces (may be empty for a fresh game)
package codec

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/treblecross/internal/game"
)

var (
	// ErrMissingBoard is returned when the save content has no board line.
	ErrMissingBoard = errors.New("codec: save content has no board line")

	// ErrMissingMoves is returned when the save content has no move
	// log line. A fresh game still writes an empty line 2.
	ErrMissingMoves = errors.New("codec: save content has no move log line")

	// ErrBoardTooSmall is returned when the board line is shorter than
	// the minimum playable board.
	ErrBoardTooSmall = errors.New("codec: board line shorter than minimum board size")

	// ErrBadSymbol is returned when the board line contains a character
	// outside the symbol set.
	ErrBadSymbol = errors.New("codec: board line contains unknown symbol")

	// ErrBadMoveIndex is returned when a logged move index is out of
	// range or names an empty board cell.
	ErrBadMoveIndex = errors.New("codec: move log index inconsistent with board")
)

// Encode renders the board and history in the save file format.
func Encode(b *game.Board, h *game.History) []byte {
	positions := h.Positions()
	tokens := make([]string, len(positions))
	for i, p := range positions {
		tokens[i] = strconv.Itoa(p)
	}

	var sb strings.Builder
	sb.WriteString(b.String())
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(tokens, " "))
	sb.WriteByte('\n')
	return []byte(sb.String())
}

// Decode parses save content into a fresh board and history. The board
// line defines the board wholesale: its length is the board size and
// its characters the cells. Every character must be the empty cell or
// one of the given player symbols.
//
// The move log is replayed into the history; the symbol of each move
// is recovered from the board line, so an index naming an empty cell,
// out of range, or repeated is a format error. Tokens that do not
// parse as integers are skipped. The redo stack of a loaded game
// starts empty.
func Decode(data []byte, symbolA, symbolB rune) (*game.Board, *game.History, error) {
	// Only the final newline is decorative; a fresh game's empty move
	// line must survive the split.
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, nil, ErrMissingBoard
	}
	if len(lines) < 2 {
		return nil, nil, ErrMissingMoves
	}

	cells := []rune(lines[0])
	if len(cells) < game.MinBoardSize {
		return nil, nil, fmt.Errorf("%w: got %d cells", ErrBoardTooSmall, len(cells))
	}
	for i, c := range cells {
		if c != game.EmptyCell && c != symbolA && c != symbolB {
			return nil, nil, fmt.Errorf("%w: %q at cell %d", ErrBadSymbol, c, i)
		}
	}

	b := game.BoardFromCells(cells)
	h := game.NewHistory()

	// A cell can be played at most once, so a repeated index is the
	// same corruption as one naming an empty cell.
	seen := make(map[int]bool)
	for _, token := range strings.Fields(lines[1]) {
		pos, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if pos < 0 || pos >= b.Size() || b.Cell(pos) == game.EmptyCell || seen[pos] {
			return nil, nil, fmt.Errorf("%w: index %d", ErrBadMoveIndex, pos)
		}
		seen[pos] = true
		h.Record(game.Move{Pos: pos, Symbol: b.Cell(pos)})
	}

	return b, h, nil
}

// SaveFile writes the encoded board and history to path. The file is
// held open only for the duration of the call. Failures are reported
// to the caller and never corrupt in-memory state.
func SaveFile(path string, b *game.Board, h *game.History) error {
	if err := os.WriteFile(path, Encode(b, h), 0o644); err != nil {
		return fmt.Errorf("codec: cannot write save file: %w", err)
	}
	return nil
}

// LoadFile reads and decodes the save file at path.
func LoadFile(path string, symbolA, symbolB rune) (*game.Board, *game.History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("codec: cannot read save file: %w", err)
	}
	return Decode(data, symbolA, symbolB)
}
