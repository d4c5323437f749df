package world

import (
	"testing"
)

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return g
}

func TestGrid_Dimensions(t *testing.T) {
	g := mustParse(t, "6666\n6406\n6666")
	if g.Width() != 4 {
		t.Errorf("Width = %d, want 4", g.Width())
	}
	if g.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", g.Rows())
	}
	if g.Size() != 12 {
		t.Errorf("Size = %d, want 12", g.Size())
	}
}

func TestGrid_TopologySymmetric(t *testing.T) {
	g := mustParse(t, "000\n040\n000")

	for idx := 0; idx < g.Size(); idx++ {
		for _, dir := range AllDirections() {
			n := g.Neighbor(idx, dir)
			if n == NoCell {
				continue
			}
			if back := g.Neighbor(n, dir.Opposite()); back != idx {
				t.Errorf("neighbor(%d, %v) = %d, but neighbor(%d, %v) = %d, want %d",
					idx, dir, n, n, dir.Opposite(), back, idx)
			}
		}
	}
}

func TestGrid_BoundaryNeighbors(t *testing.T) {
	g := mustParse(t, "40\n00")

	// Top-left corner has no Up or Left neighbor.
	if n := g.Neighbor(0, Up); n != NoCell {
		t.Errorf("Neighbor(0, Up) = %d, want NoCell", n)
	}
	if n := g.Neighbor(0, Left); n != NoCell {
		t.Errorf("Neighbor(0, Left) = %d, want NoCell", n)
	}
	if n := g.Neighbor(0, Right); n != 1 {
		t.Errorf("Neighbor(0, Right) = %d, want 1", n)
	}
	if n := g.Neighbor(0, Down); n != 2 {
		t.Errorf("Neighbor(0, Down) = %d, want 2", n)
	}
	// Bottom-right corner has no Down or Right neighbor.
	if n := g.Neighbor(3, Down); n != NoCell {
		t.Errorf("Neighbor(3, Down) = %d, want NoCell", n)
	}
	if n := g.Neighbor(3, Right); n != NoCell {
		t.Errorf("Neighbor(3, Right) = %d, want NoCell", n)
	}
}

func TestGrid_Position(t *testing.T) {
	g := mustParse(t, "000\n040")
	row, col := g.Position(4)
	if row != 1 || col != 1 {
		t.Errorf("Position(4) = (%d, %d), want (1, 1)", row, col)
	}
}

func TestGrid_MovePlayerTo(t *testing.T) {
	g := mustParse(t, "40")
	g.MovePlayerTo(1)

	if g.PlayerIndex() != 1 {
		t.Errorf("PlayerIndex = %d, want 1", g.PlayerIndex())
	}
	if g.Cell(0).Player {
		t.Error("old cell still has player flag")
	}
	if !g.Cell(1).Player {
		t.Error("new cell missing player flag")
	}
}

func TestDirection_Opposite(t *testing.T) {
	for _, dir := range AllDirections() {
		if got := dir.Opposite().Opposite(); got != dir {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", dir, got, dir)
		}
	}
}

func TestDirection_Delta(t *testing.T) {
	for _, dir := range AllDirections() {
		rowDelta, colDelta := dir.Delta()
		oppRow, oppCol := dir.Opposite().Delta()
		if rowDelta != -oppRow || colDelta != -oppCol {
			t.Errorf("%v.Delta() and opposite do not cancel", dir)
		}
	}
}
