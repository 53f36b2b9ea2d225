package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}

	def := DefaultTetrisConfig()
	if cfg != def {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", cfg, def)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tetris.yaml")

	content := []byte("gravity:\n  drop_every_ticks: 12\n  boost_every_ticks: 2\nscoring:\n  points_per_row: 25\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg.Gravity.DropEveryTicks != 12 {
		t.Errorf("DropEveryTicks = %d, want 12", cfg.Gravity.DropEveryTicks)
	}
	if cfg.Gravity.BoostEveryTicks != 2 {
		t.Errorf("BoostEveryTicks = %d, want 2", cfg.Gravity.BoostEveryTicks)
	}
	if cfg.Scoring.PointsPerRow != 25 {
		t.Errorf("PointsPerRow = %d, want 25", cfg.Scoring.PointsPerRow)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadTetris with a missing custom path should fail")
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	var cfg TetrisConfig // all zero, as from an empty YAML file
	cfg.Normalize()

	def := DefaultTetrisConfig()
	if cfg != def {
		t.Errorf("Normalize() on zero config = %+v, want defaults %+v", cfg, def)
	}

	// Valid values survive
	cfg = TetrisConfig{
		Gravity: GravityConfig{DropEveryTicks: 7, BoostEveryTicks: 1},
		Scoring: ScoringConfig{PointsPerRow: 42},
	}
	cfg.Normalize()
	if cfg.Gravity.DropEveryTicks != 7 || cfg.Scoring.PointsPerRow != 42 {
		t.Errorf("Normalize() clobbered valid values: %+v", cfg)
	}
}
