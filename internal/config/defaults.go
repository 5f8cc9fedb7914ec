package config

import (
	_ "embed"
)

//go:embed defaults/floodit.yaml
var defaultFloodYAML []byte

// DefaultFloodConfig returns the default Flood-It configuration.
func DefaultFloodConfig() FloodConfig {
	return FloodConfig{
		Board: BoardConfig{
			Size:     14,
			Colors:   6,
			MaxMoves: 0,
		},
		Effects: EffectsConfig{
			Particles: 90,
			Sparks:    24,
			Speed:     1.0,
			Size:      1.0,
			Duration:  1.0,
		},
		Sound: true,
	}
}
