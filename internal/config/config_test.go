package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
	if cfg.Board.Size < 3 {
		t.Errorf("Default board size %d below minimum", cfg.Board.Size)
	}
}

func TestEmbeddedDefaultLoads(t *testing.T) {
	// No custom path, no user/local config in a temp working dir.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Loaded config should validate, got %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	base := Default()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"board too small", func(c *Config) { c.Board.Size = 2 }},
		{"empty symbol", func(c *Config) { c.Symbols.PlayerOne = "" }},
		{"multi-char symbol", func(c *Config) { c.Symbols.PlayerTwo = "OO" }},
		{"identical symbols", func(c *Config) { c.Symbols.PlayerTwo = c.Symbols.PlayerOne }},
		{"space symbol", func(c *Config) { c.Symbols.PlayerOne = " " }},
		{"negative bot delay", func(c *Config) { c.Bot.DelayTicks = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSymbolRunes(t *testing.T) {
	cfg := Default()
	cfg.Symbols.PlayerOne = "A"
	cfg.Symbols.PlayerTwo = "B"

	a, b := cfg.SymbolRunes()
	if a != 'A' || b != 'B' {
		t.Errorf("SymbolRunes() = %q, %q, want 'A', 'B'", a, b)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
board:
  size: 11
symbols:
  player_one: "A"
  player_two: "B"
bot:
  delay_ticks: 5
files:
  save_path: "game.txt"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Board.Size != 11 {
		t.Errorf("Board size should be 11, got %d", cfg.Board.Size)
	}
	a, b := cfg.SymbolRunes()
	if a != 'A' || b != 'B' {
		t.Errorf("Symbols should be A/B, got %q/%q", a, b)
	}
	if cfg.Files.SavePath != "game.txt" {
		t.Errorf("Save path should be game.txt, got %s", cfg.Files.SavePath)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load with invalid values = %v, want ErrInvalidConfig", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	got := ExpandHome("~/foo/bar.txt")
	if !strings.HasPrefix(got, home) {
		t.Errorf("ExpandHome should prefix the home dir, got %s", got)
	}
	if ExpandHome("/abs/path") != "/abs/path" {
		t.Error("Absolute paths should pass through unchanged")
	}
	if ExpandHome("") != "" {
		t.Error("Empty path should pass through unchanged")
	}
}
