// Package config provides YAML-based configuration loading for the
// game: board size, player symbols, bot pacing, and the save path.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/treblecross/internal/game"
)

// Config contains all user-tunable game settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Symbols SymbolsConfig `yaml:"symbols"`
	Bot     BotConfig     `yaml:"bot"`
	Files   FilesConfig   `yaml:"files"`
}

// BoardConfig defines the board shape.
type BoardConfig struct {
	Size int `yaml:"size"` // Number of cells, minimum 3
}

// SymbolsConfig defines the marks used on the board. Each value must
// be a single character distinct from the others.
type SymbolsConfig struct {
	PlayerOne string `yaml:"player_one"`
	PlayerTwo string `yaml:"player_two"`
}

// BotConfig defines computer opponent pacing.
type BotConfig struct {
	DelayTicks int `yaml:"delay_ticks"` // Ticks the bot "thinks" before moving
}

// FilesConfig defines file locations.
type FilesConfig struct {
	SavePath string `yaml:"save_path"` // Default save file for in-game save/load
}

// ErrInvalidConfig wraps all config validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the config for playable values.
func (c Config) Validate() error {
	if c.Board.Size < game.MinBoardSize {
		return fmt.Errorf("%w: board size %d below minimum %d",
			ErrInvalidConfig, c.Board.Size, game.MinBoardSize)
	}
	if len([]rune(c.Symbols.PlayerOne)) != 1 || len([]rune(c.Symbols.PlayerTwo)) != 1 {
		return fmt.Errorf("%w: player symbols must be single characters", ErrInvalidConfig)
	}
	a, b := c.SymbolRunes()
	if a == b {
		return fmt.Errorf("%w: player symbols must differ", ErrInvalidConfig)
	}
	if a == game.EmptyCell || b == game.EmptyCell {
		return fmt.Errorf("%w: player symbols must not be the empty cell", ErrInvalidConfig)
	}
	if c.Bot.DelayTicks < 0 {
		return fmt.Errorf("%w: bot delay_ticks must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SymbolRunes returns the two player symbols as runes.
func (c Config) SymbolRunes() (rune, rune) {
	return []rune(c.Symbols.PlayerOne)[0], []rune(c.Symbols.PlayerTwo)[0]
}
