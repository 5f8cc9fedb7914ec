package floodit

import (
	"fmt"

	"github.com/flood-arcade/floodit/internal/core"
)

// Board cells render two characters wide to compensate terminal cell
// aspect ratio; palette swatches are two wide with a two column gap.
const (
	cellW        = 2
	swatchW      = 2
	swatchStride = 4
)

// paletteColors maps board color indices to display colors.
var paletteColors = [MaxColors]core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorWhite,
}

// DisplayColor returns the platform color for a board color index.
func DisplayColor(c ColorIndex) core.Color {
	return paletteColors[int(c)%MaxColors]
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.layout(dst.Width(), dst.Height())

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small for this board")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize the terminal to continue")
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPalette(dst)

	if g.paused {
		dst.DrawTextCenteredColored(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
		return
	}

	switch {
	case g.won:
		dst.DrawTextCenteredColored(g.boardRect.Bottom()+2, fmt.Sprintf(" YOU WIN!  Score %d ", g.score), core.ColorBrightGreen)
		dst.DrawTextCentered(g.boardRect.Bottom()+3, "R: play again   Q: quit")
	case g.lost:
		dst.DrawTextCenteredColored(g.boardRect.Bottom()+2, " OUT OF MOVES ", core.ColorBrightRed)
		dst.DrawTextCentered(g.boardRect.Bottom()+3, "R: try again   Q: quit")
	}
}

// layout recomputes screen placement from the current buffer size, so a
// resized terminal re-centers the board without restarting the puzzle.
func (g *Game) layout(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
	if g.tooSmall {
		g.laidOut = false
		return
	}

	boardW := g.board.N * cellW
	boardH := g.board.N
	x := (w - boardW) / 2
	y := (h - boardH - 3) / 2
	if y < 1 {
		y = 1
	}
	g.boardRect = core.NewRect(x, y, boardW, boardH)

	palW := g.colorCount*swatchStride - (swatchStride - swatchW)
	g.paletteRect = core.NewRect((w-palW)/2, g.boardRect.Bottom()+1, palW, 1)
	g.laidOut = true
}

func (g *Game) renderHUD(dst *core.Screen) {
	title := g.Title()
	dst.DrawTextColored(g.boardRect.X, g.boardRect.Y-1, title, core.ColorBrightWhite)

	var hud string
	if g.mode == ModeZen {
		hud = fmt.Sprintf("Moves %d", g.moves)
	} else {
		hud = fmt.Sprintf("Moves %d/%d", g.moves, g.maxMoves)
	}
	dst.DrawText(g.boardRect.Right()-len(hud), g.boardRect.Y-1, hud)
}

func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.board.N; y++ {
		for x := 0; x < g.board.N; x++ {
			c := DisplayColor(g.board.At(x, y))
			sx := g.boardRect.X + x*cellW
			sy := g.boardRect.Y + y
			for i := 0; i < cellW; i++ {
				dst.SetCell(sx+i, sy, '█', c)
			}
		}
	}
}

func (g *Game) renderPalette(dst *core.Screen) {
	// Horizontal jitter while the rejection shake is active
	offset := 0
	if g.shakeTicks > 0 {
		if (g.shakeTicks/2)%2 == 0 {
			offset = 1
		} else {
			offset = -1
		}
	}

	y := g.paletteRect.Y
	for i := 0; i < g.colorCount; i++ {
		x := g.paletteRect.X + i*swatchStride + offset
		c := DisplayColor(ColorIndex(i))
		for j := 0; j < swatchW; j++ {
			dst.SetCell(x+j, y, '█', c)
		}

		// Digit label and cursor markers under each swatch
		dst.SetCell(x, y+1, rune('1'+i), core.ColorGray)
		if i == g.cursor {
			dst.SetCell(x-1, y, '[', core.ColorBrightWhite)
			dst.SetCell(x+swatchW, y, ']', core.ColorBrightWhite)
		}
		if g.shakeTicks > 0 && i == g.shakeTarget {
			dst.SetCell(x+1, y+1, '✗', core.ColorBrightRed)
		}
	}
}
