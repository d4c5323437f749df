package gameplay

import (
	"sokoban/pkg/engine/world"
)

// IsWon reports whether every target square holds a box. It is a pure
// predicate over the grid and may be called any number of times.
func IsWon(g *world.Grid) bool {
	won := true
	g.ForEachTarget(func(idx int) {
		if !g.Cell(idx).Box {
			won = false
		}
	})
	return won
}
