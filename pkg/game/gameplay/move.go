// Package gameplay provides the move resolution and win check for a loaded
// level grid.
package gameplay

import (
	"sokoban/pkg/engine/world"
)

// Move resolves one directional command against the grid. It returns true
// only when the player actually relocated, with or without pushing a box.
//
// A blocked push cancels the whole move: either the box relocates one square
// and the player steps into its place, or nothing changes. Blocked and
// edge-of-grid moves are silent no-ops, not errors.
func Move(g *world.Grid, dir world.Direction) bool {
	next := g.Neighbor(g.PlayerIndex(), dir)
	if next == world.NoCell {
		return false
	}

	nextCell := g.Cell(next)
	if nextCell.Box {
		after := g.Neighbor(next, dir)
		if after == world.NoCell || !g.Cell(after).IsFree() {
			return false
		}
		nextCell.Box = false
		g.Cell(after).Box = true
	}

	// A void square stays unenterable even though it never holds a box.
	if !nextCell.IsFree() {
		return false
	}

	g.MovePlayerTo(next)
	return true
}
