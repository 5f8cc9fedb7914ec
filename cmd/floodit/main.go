// floodit is a terminal Flood-It puzzle: repaint the top-left region to a
// neighboring color until the whole board is one color, before the move
// budget runs out.
//
// Usage:
//
//	floodit play [variant]   - Play (default: classic)
//	floodit menu             - Interactive picker with board setup
//	floodit list             - List available variants
//	floodit scores <variant> - Show high scores
//	floodit serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.floodit/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/flood-arcade/floodit/internal/games/floodit"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floodit",
	Short: "Flood-It - Flood the board in your terminal",
	Long: `Flood-It is a terminal puzzle game. Each move repaints the region
connected to the top-left cell with a bordering color; unify the whole
board before the move budget runs out.

Available commands:
  play     - Play a variant directly
  menu     - Interactive picker with board setup
  list     - Show available variants
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  floodit play
  floodit play floodit_zen
  floodit play --size 10 --colors 4
  floodit menu
  floodit serve --ssh :2222
  floodit scores floodit`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floodit/scores.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
