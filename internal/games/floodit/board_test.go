package floodit

import (
	"math/rand"
	"testing"
)

// boardFrom builds a board from digit rows, e.g. {"010", "110", "222"}.
func boardFrom(rows []string) *Board {
	n := len(rows)
	b := &Board{N: n, cells: make([]ColorIndex, n*n)}
	for y, row := range rows {
		for x, r := range row {
			b.cells[y*n+x] = ColorIndex(r - '0')
		}
	}
	return b
}

func TestNewBoardUsesOnlyActiveColors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard(10, 4, rng)

	for y := 0; y < b.N; y++ {
		for x := 0; x < b.N; x++ {
			if c := b.At(x, y); c >= 4 {
				t.Fatalf("cell (%d,%d) has color %d, want < 4", x, y, c)
			}
		}
	}
}

func TestFloodOriginColorIsNoOp(t *testing.T) {
	b := boardFrom([]string{
		"001",
		"011",
		"122",
	})
	before := b.Clone()

	if b.Flood(b.Origin()) {
		t.Error("Flood with the origin color should report no change")
	}
	for i := range b.cells {
		if b.cells[i] != before.cells[i] {
			t.Fatalf("cell %d changed on a no-op flood", i)
		}
	}
}

func TestFloodRepaintsOriginRegionOnly(t *testing.T) {
	// Origin region is the 0-cells in the top-left corner. The 0 in the
	// bottom-right is separated by 2s and must not be repainted.
	b := boardFrom([]string{
		"0012",
		"0112",
		"2222",
		"2210",
	})

	if !b.Flood(1) {
		t.Fatal("Flood(1) should report a change")
	}

	// The old region and the 1-cells it touched are now 1
	want := boardFrom([]string{
		"1112",
		"1112",
		"2222",
		"2210",
	})
	for i := range b.cells {
		if b.cells[i] != want.cells[i] {
			t.Errorf("cell %d = %d, want %d", i, b.cells[i], want.cells[i])
		}
	}
}

func TestFloodMergesCapturedCells(t *testing.T) {
	b := boardFrom([]string{
		"010",
		"110",
		"222",
	})

	if got := b.RegionSize(); got != 1 {
		t.Fatalf("initial region size = %d, want 1", got)
	}

	b.Flood(1)
	// The origin cell joined the three 1-cells
	if got := b.RegionSize(); got != 4 {
		t.Errorf("region size after flood = %d, want 4", got)
	}
	if b.Origin() != 1 {
		t.Errorf("origin color = %d, want 1", b.Origin())
	}
}

func TestBorderColors(t *testing.T) {
	b := boardFrom([]string{
		"001",
		"013",
		"133",
	})

	border := b.BorderColors()
	if border[0] {
		t.Error("origin color must never be in the border set")
	}
	if !border[1] {
		t.Error("color 1 borders the origin region, missing from set")
	}
	if border[3] {
		t.Error("color 3 does not touch the origin region")
	}
}

func TestIsLegal(t *testing.T) {
	b := boardFrom([]string{
		"001",
		"013",
		"133",
	})

	tests := []struct {
		target ColorIndex
		want   bool
	}{
		{0, false}, // origin color
		{1, true},  // borders the region
		{3, false}, // not adjacent
		{7, false}, // not on the board at all
	}
	for _, tt := range tests {
		if got := b.IsLegal(tt.target); got != tt.want {
			t.Errorf("IsLegal(%d) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestIsUniform(t *testing.T) {
	if !boardFrom([]string{"11", "11"}).IsUniform() {
		t.Error("single-color board should be uniform")
	}
	if boardFrom([]string{"11", "12"}).IsUniform() {
		t.Error("mixed board should not be uniform")
	}
}

func TestFloodUntilUniform(t *testing.T) {
	b := boardFrom([]string{
		"012",
		"112",
		"222",
	})

	b.Flood(1)
	if b.IsUniform() {
		t.Fatal("board should not be uniform yet")
	}
	b.Flood(2)
	if !b.IsUniform() {
		t.Error("board should be uniform after flooding all colors")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := boardFrom([]string{"01", "11"})
	c := b.Clone()

	b.Flood(1)
	if c.At(0, 0) != 0 {
		t.Error("mutating the original changed the clone")
	}
}
