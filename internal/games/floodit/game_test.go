package floodit

import (
	"testing"

	"github.com/flood-arcade/floodit/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame resets a classic game and swaps in a known board.
func newTestGame(t *testing.T, rows []string, colors, maxMoves int) *Game {
	t.Helper()
	g := New()
	SetSetup(MinBoardSize, colors, maxMoves)
	g.Reset(testConfig(1))
	g.board = boardFrom(rows)
	g.colorCount = colors
	if maxMoves > 0 {
		g.maxMoves = maxMoves
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical boards and state
	seed := int64(12345)

	run := func() *Game {
		g := New()
		SetSetup(10, 4, 0)
		g.Reset(testConfig(seed))
		for i := 0; i < 20; i++ {
			in := core.NewInputFrame()
			in.PickColor(i % 4)
			g.Step(in)
			if g.won || g.lost {
				break
			}
		}
		return g
	}

	g1 := run()
	g2 := run()

	if g1.moves != g2.moves {
		t.Errorf("Determinism failed: moves differ. Run1=%d, Run2=%d", g1.moves, g2.moves)
	}
	if g1.score != g2.score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", g1.score, g2.score)
	}
	for i := range g1.board.cells {
		if g1.board.cells[i] != g2.board.cells[i] {
			t.Fatalf("Determinism failed: boards differ at cell %d", i)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	SetSetup(10, 4, 0)
	g.Reset(testConfig(42))

	// Play a few ticks
	for i := 0; i < 10; i++ {
		in := core.NewInputFrame()
		in.PickColor(i % 4)
		g.Step(in)
	}

	SetSetup(10, 4, 0)
	g.Reset(testConfig(42))

	if g.moves != 0 {
		t.Errorf("Reset should clear moves, got %d", g.moves)
	}
	if g.won || g.lost {
		t.Error("Reset should clear terminal flags")
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
	if g.shakeTicks != 0 {
		t.Errorf("Reset should clear shake, got %d ticks", g.shakeTicks)
	}
}

func TestResetClampsConfig(t *testing.T) {
	g := New()
	SetSetup(100, 1, 0)
	g.Reset(testConfig(1))

	if g.board.N != MaxBoardSize {
		t.Errorf("board size = %d, want clamped to %d", g.board.N, MaxBoardSize)
	}
	if g.colorCount != MinColors {
		t.Errorf("color count = %d, want clamped to %d", g.colorCount, MinColors)
	}
}

func TestDerivedBudget(t *testing.T) {
	tests := []struct {
		size, colors int
		want         int
	}{
		{14, 6, 28},
		{10, 4, 18},
		{20, 8, 44},
		{5, 3, 9},
	}
	for _, tt := range tests {
		if got := deriveBudget(tt.size, tt.colors); got != tt.want {
			t.Errorf("deriveBudget(%d, %d) = %d, want %d", tt.size, tt.colors, got, tt.want)
		}
	}
}

func TestOriginColorSelectionIsIgnored(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 0)

	in := core.NewInputFrame()
	in.PickColor(0) // current origin color
	result := g.Step(in)

	if g.moves != 0 {
		t.Errorf("moves = %d, want 0 after selecting the origin color", g.moves)
	}
	if len(result.Events) != 0 {
		t.Errorf("expected no events, got %v", result.Events)
	}
	if g.shakeTicks != 0 {
		t.Error("origin color selection should not trigger the shake")
	}
}

func TestIllegalSelectionShakes(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 0)

	in := core.NewInputFrame()
	in.PickColor(2) // not bordering the origin region
	result := g.Step(in)

	if g.moves != 0 {
		t.Errorf("moves = %d, want 0 after a rejected selection", g.moves)
	}
	if len(result.Events) != 1 || result.Events[0] != core.EventReject {
		t.Errorf("events = %v, want [EventReject]", result.Events)
	}
	if g.shakeTicks != g.shakeDur {
		t.Errorf("shakeTicks = %d, want %d", g.shakeTicks, g.shakeDur)
	}
	if g.board.At(0, 0) != 0 {
		t.Error("rejected selection must not mutate the board")
	}

	// The shake decays on its own
	for i := 0; i < g.shakeDur; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.shakeTicks != 0 {
		t.Errorf("shakeTicks = %d after decay, want 0", g.shakeTicks)
	}
	if g.shakeTarget != -1 {
		t.Errorf("shakeTarget = %d after decay, want -1", g.shakeTarget)
	}
}

func TestLegalFloodCountsMove(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 0)

	in := core.NewInputFrame()
	in.PickColor(1)
	result := g.Step(in)

	if g.moves != 1 {
		t.Errorf("moves = %d, want 1", g.moves)
	}
	if len(result.Events) != 1 || result.Events[0] != core.EventFlood {
		t.Errorf("events = %v, want [EventFlood]", result.Events)
	}
	if g.board.Origin() != 1 {
		t.Errorf("origin color = %d, want 1", g.board.Origin())
	}
}

func TestWinOnUniformBoard(t *testing.T) {
	g := newTestGame(t, []string{
		"001",
		"001",
		"111",
	}, 3, 10)

	in := core.NewInputFrame()
	in.PickColor(1)
	result := g.Step(in)

	if !g.won {
		t.Fatal("game should be won once the board is uniform")
	}
	if len(result.Events) != 2 || result.Events[0] != core.EventFlood || result.Events[1] != core.EventWin {
		t.Errorf("events = %v, want [EventFlood EventWin]", result.Events)
	}

	// (maxMoves - moves) * 100 + area = (10-1)*100 + 9
	if g.score != 909 {
		t.Errorf("score = %d, want 909", g.score)
	}
	if !result.State.GameOver || !result.State.Won {
		t.Errorf("state = %+v, want GameOver and Won", result.State)
	}
}

func TestLossOnExhaustedBudget(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 1)

	in := core.NewInputFrame()
	in.PickColor(1)
	result := g.Step(in)

	if !g.lost {
		t.Fatal("game should be lost when the budget runs out short of a win")
	}
	if len(result.Events) != 2 || result.Events[1] != core.EventLoss {
		t.Errorf("events = %v, want [EventFlood EventLoss]", result.Events)
	}

	// Terminal state ignores further selections
	in2 := core.NewInputFrame()
	in2.PickColor(2)
	g.Step(in2)
	if g.moves != 1 {
		t.Errorf("moves = %d after loss, want 1", g.moves)
	}
}

func TestWinTakesPriorityOverBudget(t *testing.T) {
	// The final move both unifies the board and exhausts the budget
	g := newTestGame(t, []string{
		"001",
		"001",
		"111",
	}, 3, 1)

	in := core.NewInputFrame()
	in.PickColor(1)
	g.Step(in)

	if !g.won {
		t.Error("unifying the board on the last move is a win, not a loss")
	}
	if g.lost {
		t.Error("won game must not also be lost")
	}
}

func TestZenModeHasNoBudget(t *testing.T) {
	g := NewZen()
	SetSetup(10, 4, 0)
	g.Reset(testConfig(3))

	if g.maxMoves != 0 {
		t.Errorf("zen maxMoves = %d, want 0", g.maxMoves)
	}

	// Grind far past any classic budget; the game must not end in a loss
	for i := 0; i < 200 && !g.won; i++ {
		in := core.NewInputFrame()
		in.PickColor(i % 4)
		g.Step(in)
	}
	if g.lost {
		t.Error("zen mode must never lose")
	}
}

func TestZenScoreFloor(t *testing.T) {
	g := NewZen()
	SetSetup(MinBoardSize, 3, 0)
	g.Reset(testConfig(5))
	g.moves = 1000 // far past the point where the formula goes negative
	g.board = boardFrom([]string{"00", "00"})

	if got := g.winScore(); got != 4 {
		t.Errorf("zen win score = %d, want the board area floor 4", got)
	}
}

func TestPauseBlocksSelections(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 0)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	in := core.NewInputFrame()
	in.PickColor(1)
	g.Step(in)
	if g.moves != 0 {
		t.Errorf("moves = %d while paused, want 0", g.moves)
	}

	g.Step(pause)
	g.Step(in)
	if g.moves != 1 {
		t.Errorf("moves = %d after unpause, want 1", g.moves)
	}
}

func TestCursorWrapsAroundPalette(t *testing.T) {
	g := New()
	SetSetup(10, 4, 0)
	g.Reset(testConfig(1))

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)
	if g.cursor != 3 {
		t.Errorf("cursor = %d after wrapping left, want 3", g.cursor)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	if g.cursor != 0 {
		t.Errorf("cursor = %d after wrapping right, want 0", g.cursor)
	}
}

func TestColorPickOutOfRangeIgnored(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 0)

	in := core.NewInputFrame()
	in.PickColor(7) // palette digit beyond the active color count
	result := g.Step(in)

	if g.moves != 0 || len(result.Events) != 0 {
		t.Errorf("out-of-range pick should be ignored, moves=%d events=%v", g.moves, result.Events)
	}
}

func TestClickOnBoardSelectsCellColor(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 0)

	// Layout is computed during render
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !g.laidOut {
		t.Fatal("render should compute the layout")
	}

	// Click the top-right cell (color 2): illegal, shake expected
	x := g.boardRect.X + 2*cellW
	y := g.boardRect.Y
	in := core.NewInputFrame()
	in.SetClick(x, y)
	result := g.Step(in)

	if len(result.Events) != 1 || result.Events[0] != core.EventReject {
		t.Errorf("events = %v, want [EventReject]", result.Events)
	}

	// Click the middle-left cell (color 1): legal flood
	in2 := core.NewInputFrame()
	in2.SetClick(g.boardRect.X, g.boardRect.Y+1)
	g.Step(in2)
	if g.moves != 1 {
		t.Errorf("moves = %d after clicking a legal cell, want 1", g.moves)
	}
}

func TestClickOnPaletteSwatch(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Second swatch (index 1)
	x := g.paletteRect.X + swatchStride
	y := g.paletteRect.Y
	in := core.NewInputFrame()
	in.SetClick(x, y)
	g.Step(in)

	if g.moves != 1 {
		t.Errorf("moves = %d after clicking swatch 1, want 1", g.moves)
	}
	if g.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (click moves the cursor)", g.cursor)
	}

	// The gap between swatches is a miss
	miss := core.NewInputFrame()
	miss.SetClick(g.paletteRect.X+swatchW, y)
	result := g.Step(miss)
	if len(result.Events) != 0 {
		t.Errorf("events = %v for a click between swatches, want none", result.Events)
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	g := newTestGame(t, []string{
		"012",
		"112",
		"222",
	}, 3, 5)

	in := core.NewInputFrame()
	in.PickColor(1)
	g.Step(in)

	snap := g.Snapshot()
	if snap.Moves != 1 {
		t.Errorf("snapshot moves = %d, want 1", snap.Moves)
	}
	if snap.BoardSize != 3 {
		t.Errorf("snapshot board size = %d, want 3", snap.BoardSize)
	}
	if snap.Origin != 1 {
		t.Errorf("snapshot origin = %d, want 1", snap.Origin)
	}
	if snap.State != StatePlaying {
		t.Errorf("snapshot state = %q, want %q", snap.State, StatePlaying)
	}
}

func TestSetupIsPerInstance(t *testing.T) {
	// Two games set up back to back, the way two SSH sessions would
	a := New()
	b := New()
	a.Setup(8, 4, 0)
	b.Setup(12, 8, 0)

	a.Reset(testConfig(1))
	b.Reset(testConfig(2))

	if a.board.N != 8 || a.colorCount != 4 {
		t.Errorf("first game board = %dx%d/%d, want 8x8/4", a.board.N, a.board.N, a.colorCount)
	}
	if b.board.N != 12 || b.colorCount != 8 {
		t.Errorf("second game board = %dx%d/%d, want 12x12/8", b.board.N, b.board.N, b.colorCount)
	}

	// The selection sticks to the instance across restarts
	a.Reset(testConfig(3))
	if a.board.N != 8 {
		t.Errorf("board = %dx%d after restart, want 8x8", a.board.N, a.board.N)
	}
}

func TestInstanceSetupShadowsPackageSetup(t *testing.T) {
	g := New()
	g.Setup(8, 4, 0)
	SetSetup(12, 8, 0)
	g.Reset(testConfig(1))

	if g.board.N != 8 || g.colorCount != 4 {
		t.Errorf("board = %dx%d/%d, want 8x8/4", g.board.N, g.board.N, g.colorCount)
	}
	if !setupSelected {
		t.Error("package-level selection should stay pending for the next game")
	}
	setupSelected = false
	selectedSize, selectedColors, selectedMaxMoves = 0, 0, -1
}

func TestUniformDealWinsImmediately(t *testing.T) {
	g := newTestGame(t, []string{
		"11",
		"11",
	}, 3, 10)
	g.checkDealWin()

	if !g.won {
		t.Fatal("a single-color deal should be won before any move")
	}
	if g.moves != 0 {
		t.Errorf("moves = %d, want 0", g.moves)
	}
	// (maxMoves - moves) * 100 + area = 10*100 + 4
	if g.score != 1004 {
		t.Errorf("score = %d, want 1004", g.score)
	}
	st := g.State()
	if !st.GameOver || !st.Won {
		t.Errorf("state = %+v, want GameOver and Won", st)
	}
}

func TestUniformDealCelebratesOnFirstStep(t *testing.T) {
	g := newTestGame(t, []string{
		"11",
		"11",
	}, 3, 10)
	g.checkDealWin()

	result := g.Step(core.NewInputFrame())
	if len(result.Events) != 1 || result.Events[0] != core.EventWin {
		t.Errorf("first step events = %v, want [EventWin]", result.Events)
	}

	// One-shot: later steps stay quiet
	result = g.Step(core.NewInputFrame())
	if len(result.Events) != 0 {
		t.Errorf("second step events = %v, want none", result.Events)
	}
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	g := newTestGame(t, []string{
		"001",
		"001",
		"111",
	}, 3, 10)

	in := core.NewInputFrame()
	in.PickColor(1)
	g.Step(in)
	if !g.won {
		t.Fatal("game should be won")
	}

	// The result banner must stay up
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.paused {
		t.Error("pause should not engage once the game is over")
	}
	if st := g.State(); st.Paused {
		t.Errorf("state = %+v, want not Paused", st)
	}
}
