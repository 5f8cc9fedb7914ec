package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flood-arcade/floodit/internal/config"
	"github.com/flood-arcade/floodit/internal/core"
	"github.com/flood-arcade/floodit/internal/games/floodit"
)

// FloodSelection holds the user's choices from the setup screen.
type FloodSelection struct {
	Size     int
	Colors   int
	MaxMoves int // 0 = derived budget
}

// setup screen rows
const (
	setupRowSize = iota
	setupRowColors
	setupRowMoves
	setupRowStart
	setupRowCount
)

// FloodSetupModel lets users adjust board size, color count and move
// budget before a game starts (the platform's stand-in for sliders).
type FloodSetupModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection FloodSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewFloodSetupModel creates a setup model seeded from the loaded config.
func NewFloodSetupModel(width, height int) FloodSetupModel {
	fc, _ := config.LoadFlood("")
	return FloodSetupModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
		selection: FloodSelection{
			Size:     core.Clamp(fc.Board.Size, floodit.MinBoardSize, floodit.MaxBoardSize),
			Colors:   core.Clamp(fc.Board.Colors, floodit.MinColors, floodit.MaxColors),
			MaxMoves: core.Clamp(fc.Board.MaxMoves, 0, 99),
		},
	}
}

// Init initializes the model.
func (m FloodSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m FloodSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m FloodSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < setupRowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(+1)
	case MenuActionSelect:
		if m.cursor == setupRowStart {
			m.choosing = false
			return m, tea.Quit
		}
		m.cursor++
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// adjust changes the value on the current row, clamped to its range.
func (m *FloodSetupModel) adjust(delta int) {
	switch m.cursor {
	case setupRowSize:
		m.selection.Size = core.Clamp(m.selection.Size+delta, floodit.MinBoardSize, floodit.MaxBoardSize)
	case setupRowColors:
		m.selection.Colors = core.Clamp(m.selection.Colors+delta, floodit.MinColors, floodit.MaxColors)
	case setupRowMoves:
		m.selection.MaxMoves = core.Clamp(m.selection.MaxMoves+delta, 0, 99)
	}
}

// View renders the setup screen.
func (m FloodSetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("  F L O O D - I T  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Board setup", m.width))
	b.WriteString("\n\n")

	moves := "auto"
	if m.selection.MaxMoves > 0 {
		moves = fmt.Sprintf("%d", m.selection.MaxMoves)
	}

	rows := []string{
		fmt.Sprintf("Board size   < %2d >", m.selection.Size),
		fmt.Sprintf("Colors       < %2d >", m.selection.Colors),
		fmt.Sprintf("Move budget  < %s >", moves),
		"[ Start ]",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Left/Right: Adjust  |  Enter: Start  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// RunFloodSetup shows the setup screen and returns the selection.
// Returns nil if the user backed out or quit.
func RunFloodSetup(cfg core.RuntimeConfig) (*FloodSelection, core.RuntimeConfig, error) {
	model := NewFloodSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(FloodSetupModel)
	if !ok {
		return nil, cfg, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height

	if m.quitting || m.back || m.choosing {
		return nil, cfg, nil
	}

	sel := m.selection
	return &sel, cfg, nil
}
