// Package config provides YAML-based game configuration loading for the
// tetris platform.
package config

// TetrisConfig contains all tunable parameters for the tetris engine.
// Board dimensions are fixed constants of the game and deliberately absent.
type TetrisConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// GravityConfig defines the drop timing in simulation ticks.
type GravityConfig struct {
	// DropEveryTicks is the gravity interval while boost is off.
	DropEveryTicks int `yaml:"drop_every_ticks"`
	// BoostEveryTicks is the gravity interval while the boost key is held.
	BoostEveryTicks int `yaml:"boost_every_ticks"`
}

// ScoringConfig defines how cleared rows convert to points.
type ScoringConfig struct {
	PointsPerRow int `yaml:"points_per_row"`
}

// Normalize replaces non-positive values with defaults so a partial or
// hand-edited config file cannot stall the gravity loop.
func (c *TetrisConfig) Normalize() {
	def := DefaultTetrisConfig()
	if c.Gravity.DropEveryTicks <= 0 {
		c.Gravity.DropEveryTicks = def.Gravity.DropEveryTicks
	}
	if c.Gravity.BoostEveryTicks <= 0 {
		c.Gravity.BoostEveryTicks = def.Gravity.BoostEveryTicks
	}
	if c.Scoring.PointsPerRow <= 0 {
		c.Scoring.PointsPerRow = def.Scoring.PointsPerRow
	}
}
