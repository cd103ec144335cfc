package config

import (
	_ "embed"
)

//go:embed defaults/treblecross.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the
// last-resort fallback when even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: 9,
		},
		Symbols: SymbolsConfig{
			PlayerOne: "X",
			PlayerTwo: "O",
		},
		Bot: BotConfig{
			DelayTicks: 15,
		},
		Files: FilesConfig{
			SavePath: "~/.treblecross/save.txt",
		},
	}
}
