// Package renderer defines the rendering contract for game backends and
// the per-cell render tags they draw from.
package renderer

import (
	"sokoban/pkg/engine/world"
)

// CellTag is the single display category of a cell. Because the cell flags
// are mutually exclusive by the load-time invariant, every cell maps to
// exactly one tag.
type CellTag int

// Render tags, in priority order: box on target wins over player, player
// over target, target over box, box over void, void over floor.
const (
	TagFloor CellTag = iota
	TagTarget
	TagBoxMisplaced
	TagBoxOnTarget
	TagPlayer
	TagVoid
)

// String returns the tag name for logs and tests.
func (t CellTag) String() string {
	switch t {
	case TagFloor:
		return "Floor"
	case TagTarget:
		return "Target"
	case TagBoxMisplaced:
		return "BoxMisplaced"
	case TagBoxOnTarget:
		return "BoxOnTarget"
	case TagPlayer:
		return "Player"
	case TagVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// TagFor derives the render tag from a cell's flags.
func TagFor(c world.Cell) CellTag {
	switch {
	case c.Box && c.Target:
		return TagBoxOnTarget
	case c.Player:
		return TagPlayer
	case c.Target:
		return TagTarget
	case c.Box:
		return TagBoxMisplaced
	case c.Void:
		return TagVoid
	default:
		return TagFloor
	}
}

// Tags returns one tag per cell in row-major order.
func Tags(g *world.Grid) []CellTag {
	tags := make([]CellTag, 0, g.Size())
	g.ForEachCell(func(row, col int, c *world.Cell) {
		tags = append(tags, TagFor(*c))
	})
	return tags
}
