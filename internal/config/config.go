// Package config provides YAML-based game configuration loading and
// difficulty presets for the flood-it platform.
package config

// FloodConfig contains all configuration for the Flood-It game.
type FloodConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Effects EffectsConfig `yaml:"effects"`
	Sound   bool          `yaml:"sound"`
}

// BoardConfig defines board generation parameters.
type BoardConfig struct {
	Size     int `yaml:"size"`      // board dimension N (5-20)
	Colors   int `yaml:"colors"`    // active color count (3-8)
	MaxMoves int `yaml:"max_moves"` // move budget, 0 = derived from size and colors
}

// EffectsConfig defines the confetti overlay parameters.
type EffectsConfig struct {
	Particles int     `yaml:"particles"` // confetti per trigger
	Sparks    int     `yaml:"sparks"`    // sparks per trigger
	Speed     float64 `yaml:"speed"`     // velocity scale factor
	Size      float64 `yaml:"size"`      // particle size scale factor
	Duration  float64 `yaml:"duration"`  // lifetime scale factor
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyFloodPreset adjusts board parameters for a difficulty preset.
// Unknown presets leave the config unchanged.
func ApplyFloodPreset(cfg *FloodConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Size = 10
		cfg.Board.Colors = 4
	case DifficultyNormal:
		cfg.Board.Size = 14
		cfg.Board.Colors = 6
	case DifficultyHard:
		cfg.Board.Size = 18
		cfg.Board.Colors = 8
	default:
		return
	}
	// Budget follows the new board dimensions
	cfg.Board.MaxMoves = 0
}
