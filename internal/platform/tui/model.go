package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flood-arcade/floodit/internal/audio"
	"github.com/flood-arcade/floodit/internal/confetti"
	"github.com/flood-arcade/floodit/internal/core"
	"github.com/flood-arcade/floodit/internal/registry"
	"github.com/flood-arcade/floodit/internal/storage"
)

// boardDetails is implemented by games that can report their board
// parameters for result persistence.
type boardDetails interface {
	BoardDetails() (size, colors int)
}

// boardSetup is implemented by games whose board parameters can be
// chosen per instance. Sessions must use this instead of the games'
// package-level setters: every SSH session runs in its own goroutine.
type boardSetup interface {
	Setup(size, colors, maxMoves int)
}

// Model is the Bubble Tea model for running a game with the confetti
// overlay and sound effects composited on top.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	overlay *confetti.System
	fx      confetti.Options
	sound   *audio.Player

	quitting    bool
	embedded    bool // Running inside a session: back out instead of quitting
	finished    bool // Embedded game is done, return to the menu
	resultSaved bool // Whether the result has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// fx provides the overlay trigger defaults (counts, scale factors, sound
// toggle); sound may be nil when audio failed to initialize.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, fx confetti.Options, sound *audio.Player) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		overlay:    confetti.NewSystem(cfg.ScreenW, cfg.ScreenH, cfg.Seed+1),
		fx:         fx,
		sound:      sound,
	}
}

// NewEmbeddedModel creates a model for use inside a session (menu flow):
// quit and back requests finish the game instead of killing the program.
func NewEmbeddedModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, fx confetti.Options, sound *audio.Player) Model {
	m := NewModel(game, store, cfg, fx, sound)
	m.embedded = true
	return m
}

// Finished reports whether an embedded game wants to return to the menu.
func (m Model) Finished() bool {
	return m.finished
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.embedded {
			m.finished = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "esc", "b":
		if m.embedded {
			m.finished = true
			return m, nil
		}
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if msg.String() == "r" && !m.gameState.GameOver {
		return m, nil // restart only applies after game over
	}

	km := NewKeyMapper()
	km.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleMouse forwards left clicks to the game as raw coordinates;
// the game owns the hit test against its layout.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. The game relayouts from
// the new buffer size on its next render; the puzzle itself survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.overlay.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.overlay.Clear()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.dispatchEvents(result.Events)

	// The overlay self-terminates: stepping stops once it drains
	if m.overlay.Active() {
		m.overlay.Step()
	}

	// Save the result on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// dispatchEvents maps game events to overlay triggers and sounds.
func (m *Model) dispatchEvents(events []core.Event) {
	for _, ev := range events {
		switch ev {
		case core.EventWin:
			opts := m.fx
			opts.Mode = confetti.EmitCorners
			m.overlay.Trigger(opts)
			m.play((*audio.Player).PlayWin)

		case core.EventLoss:
			// A subdued gray drizzle from the bottom, no sparks
			opts := m.fx
			opts.Mode = confetti.EmitBottom
			opts.Count = core.Max(m.fx.Count/3, 10)
			opts.Sparks = -1
			opts.Palette = []core.Color{core.ColorGray, core.ColorWhite}
			m.overlay.Trigger(opts)
			m.play((*audio.Player).PlayLoss)

		case core.EventFlood:
			m.play((*audio.Player).PlayFlood)

		case core.EventReject:
			m.play((*audio.Player).PlayReject)
		}
	}
}

// play invokes a sound effect if audio is available and enabled.
// Playback failures never surface; audio is fire-and-forget.
func (m *Model) play(fn func(*audio.Player)) {
	if m.sound == nil || !m.fx.Sound {
		return
	}
	fn(m.sound)
}

// saveResult persists the finished game, best effort.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	r := storage.Result{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Won:    m.gameState.Won,
		Moves:  m.gameState.Moves,
	}
	if d, ok := m.game.(boardDetails); ok {
		r.BoardSize, r.Colors = d.BoardDetails()
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(r)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	m.overlay.Draw(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".floodit", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	m.overlay.Draw(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, fx confetti.Options, sound *audio.Player) error {
	model := NewModel(game, store, cfg, fx, sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicking cells and swatches selects colors
	)

	_, err := p.Run()
	return err
}
