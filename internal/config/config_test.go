package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFloodCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "floodit.yaml")
	content := `
board:
  size: 12
  colors: 5
  max_moves: 20
effects:
  particles: 40
  sparks: 10
  speed: 1.5
sound: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadFlood(path)
	if err != nil {
		t.Fatalf("LoadFlood() failed: %v", err)
	}

	if cfg.Board.Size != 12 || cfg.Board.Colors != 5 || cfg.Board.MaxMoves != 20 {
		t.Errorf("Board config = %+v, want 12/5/20", cfg.Board)
	}
	if cfg.Effects.Particles != 40 || cfg.Effects.Sparks != 10 {
		t.Errorf("Effects config = %+v, want 40 particles, 10 sparks", cfg.Effects)
	}
	if cfg.Effects.Speed != 1.5 {
		t.Errorf("Effects speed = %f, want 1.5", cfg.Effects.Speed)
	}
	if !cfg.Sound {
		t.Error("Sound should be enabled")
	}
}

func TestLoadFloodMissingCustomPathFallsBack(t *testing.T) {
	cfg, err := LoadFlood(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadFlood() with a missing custom path should report the error")
	}

	// Defaults still come back usable
	def := DefaultFloodConfig()
	if cfg.Board.Size != def.Board.Size || cfg.Board.Colors != def.Board.Colors {
		t.Errorf("Fallback config = %+v, want defaults %+v", cfg.Board, def.Board)
	}
}

func TestLoadFloodMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadFlood(path)
	if err == nil {
		t.Error("LoadFlood() should report a parse error")
	}
	if cfg.Board.Size != DefaultFloodConfig().Board.Size {
		t.Errorf("Malformed config should fall back to defaults, got %+v", cfg.Board)
	}
}

func TestDefaultFloodConfig(t *testing.T) {
	cfg := DefaultFloodConfig()

	if cfg.Board.Size != 14 || cfg.Board.Colors != 6 {
		t.Errorf("Default board = %+v, want 14x14 with 6 colors", cfg.Board)
	}
	if cfg.Board.MaxMoves != 0 {
		t.Errorf("Default MaxMoves = %d, want 0 (derived)", cfg.Board.MaxMoves)
	}
	if cfg.Effects.Particles <= 0 {
		t.Error("Default config should enable the confetti overlay")
	}
}

func TestApplyFloodPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		size   int
		colors int
	}{
		{DifficultyEasy, 10, 4},
		{DifficultyNormal, 14, 6},
		{DifficultyHard, 18, 8},
	}

	for _, tc := range tests {
		cfg := DefaultFloodConfig()
		cfg.Board.MaxMoves = 30
		ApplyFloodPreset(&cfg, tc.preset)

		if cfg.Board.Size != tc.size || cfg.Board.Colors != tc.colors {
			t.Errorf("%s: board = %+v, want %d/%d", tc.preset, cfg.Board, tc.size, tc.colors)
		}
		if cfg.Board.MaxMoves != 0 {
			t.Errorf("%s: MaxMoves = %d, presets should re-derive the budget", tc.preset, cfg.Board.MaxMoves)
		}
	}
}

func TestApplyFloodPresetUnknown(t *testing.T) {
	cfg := DefaultFloodConfig()
	cfg.Board.MaxMoves = 30
	ApplyFloodPreset(&cfg, "nightmare")

	if cfg.Board.Size != 14 || cfg.Board.MaxMoves != 30 {
		t.Errorf("Unknown preset should leave config unchanged, got %+v", cfg.Board)
	}
}
