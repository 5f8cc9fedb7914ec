package floodit

import "math/rand"

// Board size and palette limits.
const (
	MinBoardSize = 5
	MaxBoardSize = 20
	MinColors    = 3
	MaxColors    = 8 // size of the display palette
)

// ColorIndex identifies one of the active palette colors on the board.
type ColorIndex uint8

// Board is an N x N grid of palette indices, stored row-major.
// The origin region is the maximal 4-connected set of same-colored
// cells containing the top-left cell (0,0).
type Board struct {
	N     int
	cells []ColorIndex
}

// NewBoard creates an N x N board filled with random colors drawn from
// the first colorCount palette entries. Both parameters are assumed to
// be clamped by the caller.
func NewBoard(n, colorCount int, rng *rand.Rand) *Board {
	b := &Board{
		N:     n,
		cells: make([]ColorIndex, n*n),
	}
	for i := range b.cells {
		b.cells[i] = ColorIndex(rng.Intn(colorCount))
	}
	return b
}

// At returns the color at (x, y). Coordinates are assumed in bounds.
func (b *Board) At(x, y int) ColorIndex {
	return b.cells[y*b.N+x]
}

// set writes the color at (x, y).
func (b *Board) set(x, y int, c ColorIndex) {
	b.cells[y*b.N+x] = c
}

// Origin returns the color of the top-left cell.
func (b *Board) Origin() ColorIndex {
	return b.cells[0]
}

// neighbors4 holds the 4-connected offsets used by all traversals.
var neighbors4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Flood repaints the origin region to the target color using a
// breadth-first traversal and reports whether the board changed.
// Selecting the current origin color is a no-op.
func (b *Board) Flood(target ColorIndex) bool {
	from := b.Origin()
	if target == from {
		return false
	}

	visited := make([]bool, len(b.cells))
	queue := make([][2]int, 0, len(b.cells))
	queue = append(queue, [2]int{0, 0})
	visited[0] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		x, y := cur[0], cur[1]
		b.set(x, y, target)

		for _, d := range neighbors4 {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= b.N || ny < 0 || ny >= b.N {
				continue
			}
			idx := ny*b.N + nx
			if visited[idx] || b.cells[idx] != from {
				continue
			}
			visited[idx] = true
			queue = append(queue, [2]int{nx, ny})
		}
	}
	return true
}

// BorderColors returns the set of distinct colors directly bordering
// the origin region (the adjacency check). The origin color itself is
// never in the result.
func (b *Board) BorderColors() map[ColorIndex]bool {
	from := b.Origin()
	border := make(map[ColorIndex]bool)

	visited := make([]bool, len(b.cells))
	queue := make([][2]int, 0, len(b.cells))
	queue = append(queue, [2]int{0, 0})
	visited[0] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		x, y := cur[0], cur[1]

		for _, d := range neighbors4 {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= b.N || ny < 0 || ny >= b.N {
				continue
			}
			idx := ny*b.N + nx
			if visited[idx] {
				continue
			}
			c := b.cells[idx]
			if c == from {
				visited[idx] = true
				queue = append(queue, [2]int{nx, ny})
			} else {
				border[c] = true
			}
		}
	}
	return border
}

// IsLegal reports whether selecting the given color is a legal move:
// the color borders the origin region and differs from the origin color.
func (b *Board) IsLegal(target ColorIndex) bool {
	if target == b.Origin() {
		return false
	}
	return b.BorderColors()[target]
}

// IsUniform reports whether every cell holds the origin color (the win
// condition), checked by a full-board scan.
func (b *Board) IsUniform() bool {
	first := b.cells[0]
	for _, c := range b.cells[1:] {
		if c != first {
			return false
		}
	}
	return true
}

// RegionSize returns the number of cells in the origin region.
// Used for progress display and scoring.
func (b *Board) RegionSize() int {
	from := b.Origin()
	visited := make([]bool, len(b.cells))
	queue := make([][2]int, 0, len(b.cells))
	queue = append(queue, [2]int{0, 0})
	visited[0] = true
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		x, y := cur[0], cur[1]
		count++

		for _, d := range neighbors4 {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= b.N || ny < 0 || ny >= b.N {
				continue
			}
			idx := ny*b.N + nx
			if visited[idx] || b.cells[idx] != from {
				continue
			}
			visited[idx] = true
			queue = append(queue, [2]int{nx, ny})
		}
	}
	return count
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]ColorIndex, len(b.cells))
	copy(cells, b.cells)
	return &Board{N: b.N, cells: cells}
}
