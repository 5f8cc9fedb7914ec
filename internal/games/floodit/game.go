// Package floodit implements the Flood-It puzzle: repeatedly repaint the
// origin region to a bordering color until the whole board is unified,
// within a bounded number of moves.
package floodit

import (
	"math/rand"

	"github.com/flood-arcade/floodit/internal/config"
	"github.com/flood-arcade/floodit/internal/core"
	"github.com/flood-arcade/floodit/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // bounded move budget, loss when exhausted
	ModeZen     Mode = "zen"     // unlimited moves, score favors fewer
)

// Game implements the Flood-It puzzle game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	board      *Board
	colorCount int
	maxMoves   int // 0 in zen mode (unlimited)
	moves      int
	score      int

	// Palette cursor for keyboard selection
	cursor int

	// Rejection shake: ticks remaining and the color that was refused
	shakeTicks  int
	shakeTarget int
	shakeDur    int

	// Screen dimensions and layout (layout is refreshed on render)
	screenW     int
	screenH     int
	boardRect   core.Rect
	paletteRect core.Rect
	laidOut     bool

	// Instance-level board selection, takes precedence over the
	// package-level one
	sel selection

	// Game state flags
	won        bool
	lost       bool
	paused     bool
	tooSmall   bool
	pendingWin bool // won at deal, EventWin not yet emitted
}

// selection is a board setup chosen before Reset.
type selection struct {
	size     int
	colors   int
	maxMoves int
	set      bool
}

// Package-level variables for config, set by the CLI / setup selector
// before the game is created (platform convention).
var (
	configPath       string
	selectedSize     int
	selectedColors   int
	selectedMaxMoves int // -1 = not selected, 0 = derived budget
	setupSelected    bool
)

// SetConfigPath sets a custom YAML config path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetSetup overrides board size, color count and move budget for the next
// game. maxMoves 0 means derive the budget; pass -1 to keep the config value.
// Package-level and single-shot: only for the CLI, which creates one game
// at a time. Concurrent callers (one game per SSH session) must use the
// Setup method instead.
func SetSetup(size, colors, maxMoves int) {
	selectedSize = size
	selectedColors = colors
	selectedMaxMoves = maxMoves
	setupSelected = true
}

// Setup overrides board size, color count and move budget for this
// instance. Same semantics as SetSetup, but the selection is carried on
// the game itself and survives restarts, so concurrently running games
// cannot see each other's choices.
func (g *Game) Setup(size, colors, maxMoves int) {
	g.sel = selection{size: size, colors: colors, maxMoves: maxMoves, set: true}
}

// New creates a new classic mode Flood-It game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a new zen mode (unlimited moves) Flood-It game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("floodit", func() registry.Game {
		return New()
	})
	registry.Register("floodit_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "floodit_zen"
	}
	return "floodit"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Flood-It (Zen)"
	}
	return "Flood-It"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.score = 0
	g.cursor = 0
	g.shakeTicks = 0
	g.shakeTarget = -1
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.won = false
	g.lost = false
	g.paused = false
	g.pendingWin = false
	g.laidOut = false

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	// Rejection shake lasts half a second
	g.shakeDur = tickRate / 2

	fc, _ := config.LoadFlood(configPath) // falls back to defaults on error
	size := fc.Board.Size
	colors := fc.Board.Colors
	budget := fc.Board.MaxMoves
	switch {
	case g.sel.set:
		if g.sel.size > 0 {
			size = g.sel.size
		}
		if g.sel.colors > 0 {
			colors = g.sel.colors
		}
		if g.sel.maxMoves >= 0 {
			budget = g.sel.maxMoves
		}
	case setupSelected:
		if selectedSize > 0 {
			size = selectedSize
		}
		if selectedColors > 0 {
			colors = selectedColors
		}
		if selectedMaxMoves >= 0 {
			budget = selectedMaxMoves
		}
		setupSelected = false
		selectedSize, selectedColors, selectedMaxMoves = 0, 0, -1
	}

	// Out-of-range configuration is clamped, never fatal
	size = core.Clamp(size, MinBoardSize, MaxBoardSize)
	colors = core.Clamp(colors, MinColors, MaxColors)

	g.colorCount = colors
	g.board = NewBoard(size, colors, g.rng)

	switch g.mode {
	case ModeZen:
		g.maxMoves = 0
	default:
		if budget <= 0 {
			budget = deriveBudget(size, colors)
		}
		g.maxMoves = budget
	}

	g.checkDealWin()
	g.checkScreenSize()
}

// checkDealWin latches a win when the fresh deal comes up single-colored.
// The EventWin is deferred to the first Step so the platform still gets
// its celebration.
func (g *Game) checkDealWin() {
	if !g.board.IsUniform() {
		return
	}
	g.won = true
	g.pendingWin = true
	g.score = g.winScore()
}

// deriveBudget computes a move budget from board size and color count.
// Calibrated so the classic 14x14 six-color board gets 28 moves.
func deriveBudget(size, colors int) int {
	return size + colors + size*colors/10
}

// checkScreenSize checks if the screen is large enough for the board,
// HUD and palette row.
func (g *Game) checkScreenSize() {
	minW := g.board.N*cellW + 2
	minH := g.board.N + 5
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.pendingWin {
		g.pendingWin = false
		events = append(events, core.EventWin)
	}

	if g.shakeTicks > 0 {
		g.shakeTicks--
		if g.shakeTicks == 0 {
			g.shakeTarget = -1
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	// Once won or lost, only restart (handled by the platform) applies;
	// in particular pause must not cover the result banner
	if g.won || g.lost {
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Palette cursor movement wraps around
	if in.Has(core.ActionLeft) {
		g.cursor = (g.cursor + g.colorCount - 1) % g.colorCount
	}
	if in.Has(core.ActionRight) {
		g.cursor = (g.cursor + 1) % g.colorCount
	}

	target := -1
	switch {
	case in.ColorPick >= 0 && in.ColorPick < g.colorCount:
		target = in.ColorPick
	case in.Clicked:
		target = g.hitTest(in.ClickX, in.ClickY)
	case in.Has(core.ActionConfirm):
		target = g.cursor
	}

	if target >= 0 {
		g.cursor = target
		events = g.selectColor(ColorIndex(target))
	}

	return core.StepResult{State: g.State(), Events: events}
}

// selectColor applies one color selection: no-op for the origin color,
// flood for a bordering color, rejection shake otherwise.
func (g *Game) selectColor(target ColorIndex) []core.Event {
	if target == g.board.Origin() {
		return nil
	}

	if !g.board.BorderColors()[target] {
		g.shakeTicks = g.shakeDur
		g.shakeTarget = int(target)
		return []core.Event{core.EventReject}
	}

	g.board.Flood(target)
	g.moves++
	events := []core.Event{core.EventFlood}

	if g.board.IsUniform() {
		g.won = true
		g.score = g.winScore()
		return append(events, core.EventWin)
	}

	if g.mode == ModeClassic && g.moves >= g.maxMoves {
		g.lost = true
		return append(events, core.EventLoss)
	}

	return events
}

// winScore computes the final score for a won game.
func (g *Game) winScore() int {
	area := g.board.N * g.board.N
	if g.mode == ModeZen {
		return core.Max(area*10-g.moves*25, area)
	}
	return (g.maxMoves-g.moves)*100 + area
}

// hitTest maps a screen click to a palette index, or -1 for a miss.
// Clicking a board cell selects that cell's color; clicking a palette
// swatch selects it directly.
func (g *Game) hitTest(x, y int) int {
	if !g.laidOut {
		return -1
	}
	if g.boardRect.Contains(x, y) {
		cx := (x - g.boardRect.X) / cellW
		cy := y - g.boardRect.Y
		return int(g.board.At(cx, cy))
	}
	if g.paletteRect.Contains(x, y) {
		idx := (x - g.paletteRect.X) / swatchStride
		if idx >= 0 && idx < g.colorCount && (x-g.paletteRect.X)%swatchStride < swatchW {
			return idx
		}
	}
	return -1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.won || g.lost,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}

// Board exposes the current board for tests and tooling.
func (g *Game) Board() *Board {
	return g.board
}

// BoardDetails reports the board parameters for result persistence.
func (g *Game) BoardDetails() (size, colors int) {
	return g.board.N, g.colorCount
}
