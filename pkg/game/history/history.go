// Package history keeps the undo trail of a game as an ordered list of
// serialized grid snapshots. The snapshot text is the source of truth:
// undo and restart reparse a snapshot instead of reverse-applying moves.
package history

import (
	"sokoban/pkg/engine/world"
)

// Stack is an append-only sequence of snapshot strings. Entry 0 is the
// level text as loaded; one entry is appended per advanced move.
type Stack struct {
	states []string
}

// New creates a stack seeded with the freshly loaded level text.
func New(initial string) *Stack {
	return &Stack{states: []string{initial}}
}

// Record appends the current grid state as a snapshot. Call it exactly when
// a move reports that the player advanced.
func (s *Stack) Record(g *world.Grid) {
	s.states = append(s.states, world.Encode(g))
}

// Undo discards the most recent snapshot and returns the grid rebuilt from
// the one before it. At the initial state it returns (nil, nil): there is
// nothing to undo and the caller keeps its current grid.
func (s *Stack) Undo() (*world.Grid, error) {
	if len(s.states) <= 1 {
		return nil, nil
	}

	s.states = s.states[:len(s.states)-1]
	g, err := world.Parse(s.states[len(s.states)-1])
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Reset discards all history and reseeds the stack with freshly loaded
// level text.
func (s *Stack) Reset(initial string) {
	s.states = []string{initial}
}

// Len returns the number of snapshots, including the initial one.
func (s *Stack) Len() int {
	return len(s.states)
}

// Moves returns the number of advanced moves recorded since load.
func (s *Stack) Moves() int {
	return len(s.states) - 1
}
