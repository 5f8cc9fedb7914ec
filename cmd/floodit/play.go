package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flood-arcade/floodit/internal/audio"
	"github.com/flood-arcade/floodit/internal/confetti"
	"github.com/flood-arcade/floodit/internal/config"
	"github.com/flood-arcade/floodit/internal/core"
	"github.com/flood-arcade/floodit/internal/games/floodit"
	"github.com/flood-arcade/floodit/internal/platform/tui"
	"github.com/flood-arcade/floodit/internal/registry"
	"github.com/flood-arcade/floodit/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagColors     int
	flagMoves      int
	flagNoSound    bool
	flagNoSetup    bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing Flood-It. With no arguments plays the classic variant.

Controls:
  Left/Right   - Move the palette cursor
  Enter/Space  - Flood with the selected color
  1-8          - Flood with that palette color directly
  Mouse click  - Flood with the clicked cell's or swatch's color
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty presets:
  easy   - 10x10 board, 4 colors
  normal - 14x14 board, 6 colors
  hard   - 18x18 board, 8 colors

Examples:
  floodit play
  floodit play floodit_zen
  floodit play --difficulty hard
  floodit play --size 12 --colors 5 --moves 20
  floodit play --config ./my-floodit.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (5-20, 0 = from config)")
	playCmd.Flags().IntVar(&flagColors, "colors", 0, "Color count (3-8, 0 = from config)")
	playCmd.Flags().IntVar(&flagMoves, "moves", -1, "Move budget (0 = derived, -1 = from config)")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
	playCmd.Flags().BoolVar(&flagNoSetup, "no-setup", false, "Skip the board setup screen")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "floodit"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'floodit list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size early for the setup selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	floodit.SetConfigPath(flagConfig)

	fc, err := config.LoadFlood(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if flagDifficulty != "" {
		config.ApplyFloodPreset(&fc, config.DifficultyPreset(flagDifficulty))
	}

	// Explicit flags pin the board; otherwise offer the setup screen
	explicit := flagSize > 0 || flagColors > 0 || flagMoves >= 0 || flagDifficulty != ""
	switch {
	case explicit:
		size, colors, moves := fc.Board.Size, fc.Board.Colors, fc.Board.MaxMoves
		if flagSize > 0 {
			size = flagSize
		}
		if flagColors > 0 {
			colors = flagColors
		}
		if flagMoves >= 0 {
			moves = flagMoves
		}
		floodit.SetSetup(size, colors, moves)

	case !flagNoSetup:
		selection, updatedCfg, selErr := tui.RunFloodSetup(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		floodit.SetSetup(selection.Size, selection.Colors, selection.MaxMoves)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Overlay defaults from config; sound is fire-and-forget and a
	// failed audio init only disables it
	fx := confetti.Options{
		Count:     fc.Effects.Particles,
		Sparks:    fc.Effects.Sparks,
		Speed:     fc.Effects.Speed,
		SizeScale: fc.Effects.Size,
		Duration:  fc.Effects.Duration,
		Sound:     fc.Sound && !flagNoSound,
	}

	var sound *audio.Player
	if fx.Sound {
		sound = audio.NewPlayer()
		if audioErr := sound.Init(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
			sound = nil
		}
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, fx, sound)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
