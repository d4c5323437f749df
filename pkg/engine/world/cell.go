// Package world provides the grid data model for a Sokoban level: cells,
// directions, the adjacency topology, and the level text codec.
package world

// NoCell marks an absent neighbor (the grid boundary).
const NoCell = -1

// Cell represents a single square of the level grid. Cells live in the
// Grid's arena; neighbors are indices into that arena rather than pointers,
// so the topology carries no reference cycles.
type Cell struct {
	// Target marks a square a box must occupy to win.
	Target bool
	// Box is set while a box sits on this square.
	Box bool
	// Player is set on exactly one cell per grid.
	Player bool
	// Void marks a hole. Void squares are never enterable and carry no
	// other flag.
	Void bool

	neighbors [4]int
}

// Symbol bit weights for the level text encoding.
const (
	symbolTarget = 1
	symbolBox    = 2
	symbolPlayer = 4
	symbolVoid   = 6
	symbolMax    = 6
)

// cellFromSymbol decodes a digit symbol into cell flags.
// Valid symbols are 0..6: floor, target, box, box+target, player,
// player+target, void. Returns false for anything else.
func cellFromSymbol(symbol int) (Cell, bool) {
	if symbol < 0 || symbol > symbolMax {
		return Cell{}, false
	}

	c := Cell{
		Target: symbol == 1 || symbol == 3 || symbol == 5,
		Box:    symbol == 2 || symbol == 3,
		Player: symbol == 4 || symbol == 5,
		Void:   symbol == 6,
	}
	c.neighbors = [4]int{NoCell, NoCell, NoCell, NoCell}

	return c, true
}

// Symbol returns the digit encoding of the cell's flags.
// The flags are mutually exclusive by construction, so this is the exact
// inverse of cellFromSymbol.
func (c Cell) Symbol() int {
	symbol := 0
	if c.Target {
		symbol += symbolTarget
	}
	if c.Box {
		symbol += symbolBox
	}
	if c.Player {
		symbol += symbolPlayer
	}
	if c.Void {
		symbol += symbolVoid
	}
	return symbol
}

// IsFree reports whether the cell can receive the player or a pushed box:
// not a void and not already holding a box. Plain floor and empty target
// squares are free.
func (c Cell) IsFree() bool {
	return !c.Void && !c.Box
}

// Neighbor returns the arena index of the adjacent cell in the given
// direction, or NoCell at the grid boundary.
func (c Cell) Neighbor(dir Direction) int {
	if !dir.IsValid() {
		return NoCell
	}
	return c.neighbors[dir]
}

func (c *Cell) setNeighbor(dir Direction, idx int) {
	c.neighbors[dir] = idx
}
