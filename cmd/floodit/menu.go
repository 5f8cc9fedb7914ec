package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flood-arcade/floodit/internal/core"
	"github.com/flood-arcade/floodit/internal/platform/tui"
	"github.com/flood-arcade/floodit/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Flood-It with an interactive menu",
	Long: `Start Flood-It in interactive menu mode.

Pick a variant, set up the board, play, and return to the menu
when the game ends. The scoreboard is one Tab away.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  floodit menu
  floodit menu --fps 30
  floodit menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.RunSession(store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	if store != nil {
		store.Close()
	}
}
