// Package state owns one game session: the live grid, its undo history,
// and the level source it restarts from.
package state

import (
	"sokoban/pkg/engine/world"
	"sokoban/pkg/game/gameplay"
	"sokoban/pkg/game/history"
	"sokoban/pkg/game/levels"
)

// Game is a single-player session. It is exclusively owned by one driver
// loop and never shared between goroutines.
type Game struct {
	Source  levels.Source
	Grid    *world.Grid
	History *history.Stack
}

// New loads the level from src and seeds the history with its text.
// Returns a *levels.LoadError when the source cannot be read and a
// *world.ParseError when the text is malformed.
func New(src levels.Source) (*Game, error) {
	text, err := src.Read()
	if err != nil {
		return nil, err
	}

	g, err := world.Parse(text)
	if err != nil {
		return nil, err
	}

	return &Game{
		Source:  src,
		Grid:    g,
		History: history.New(text),
	}, nil
}

// Move applies one directional command. When the player advances a snapshot
// is recorded; blocked and edge moves change nothing and record nothing.
func (g *Game) Move(dir world.Direction) bool {
	if !gameplay.Move(g.Grid, dir) {
		return false
	}
	g.History.Record(g.Grid)
	return true
}

// Undo rebuilds the grid from the previous snapshot. At the initial state
// it is a no-op.
func (g *Game) Undo() error {
	grid, err := g.History.Undo()
	if err != nil {
		return err
	}
	if grid != nil {
		g.Grid = grid
	}
	return nil
}

// Restart re-reads the level source and discards all history, matching a
// fresh load of the level.
func (g *Game) Restart() error {
	text, err := g.Source.Read()
	if err != nil {
		return err
	}

	grid, err := world.Parse(text)
	if err != nil {
		return err
	}

	g.Grid = grid
	g.History.Reset(text)
	return nil
}

// Won reports whether every target square holds a box.
func (g *Game) Won() bool {
	return gameplay.IsWon(g.Grid)
}

// Moves returns the number of advanced moves since load or restart.
func (g *Game) Moves() int {
	return g.History.Moves()
}
