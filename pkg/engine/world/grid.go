package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Grid represents a loaded level: an arena of cells in row-major order plus
// the fixed topology built at parse time. Only per-cell flags mutate during
// play; the width, the neighbor links, and the target set never change.
type Grid struct {
	cells  []Cell
	width  int
	player int

	targets mapset.Set[int]
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.cells) / g.width
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Cell returns a pointer into the arena, or nil if the index is out of range.
func (g *Grid) Cell(idx int) *Cell {
	if idx < 0 || idx >= len(g.cells) {
		return nil
	}
	return &g.cells[idx]
}

// Position returns the row and column of an arena index.
func (g *Grid) Position(idx int) (row, col int) {
	return idx / g.width, idx % g.width
}

// Neighbor returns the arena index adjacent to idx in the given direction,
// or NoCell at the grid boundary.
func (g *Grid) Neighbor(idx int, dir Direction) int {
	c := g.Cell(idx)
	if c == nil {
		return NoCell
	}
	return c.Neighbor(dir)
}

// PlayerIndex returns the arena index of the cell currently holding the
// player.
func (g *Grid) PlayerIndex() int {
	return g.player
}

// MovePlayerTo relocates the player flag from its current cell to the cell
// at idx. The destination must exist; callers are expected to have checked
// that the destination is free.
func (g *Grid) MovePlayerTo(idx int) {
	dst := g.Cell(idx)
	if dst == nil {
		return
	}
	g.cells[g.player].Player = false
	dst.Player = true
	g.player = idx
}

// TargetCount returns the number of target squares.
func (g *Grid) TargetCount() int {
	return g.targets.Size()
}

// ForEachTarget calls fn with the arena index of every target square.
// Target membership is fixed at parse time.
func (g *Grid) ForEachTarget(fn func(idx int)) {
	g.targets.Each(fn)
}

// ForEachCell iterates over all cells in row-major order.
func (g *Grid) ForEachCell(fn func(row, col int, c *Cell)) {
	for idx := range g.cells {
		fn(idx/g.width, idx%g.width, &g.cells[idx])
	}
}
