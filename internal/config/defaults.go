package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			DropEveryTicks:  30, // one row per half second at 60 ticks/s
			BoostEveryTicks: 3,
		},
		Scoring: ScoringConfig{
			PointsPerRow: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by the CLI to print a
// starting point for custom config files.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
