package renderer

import (
	"sokoban/pkg/game/state"
)

// Renderer defines the interface for interactive game backends.
// Implementations own their display and input primitives; the game core
// only hands them read-only state and receives key codes back.
type Renderer interface {
	// Init prepares the backend (colors, window, ...).
	Init()

	// Clear clears the display before a frame.
	Clear()

	// RenderFrame draws the grid, the legend, and the session status.
	RenderFrame(g *state.Game)

	// ReadCommand blocks for one key and returns its raw code
	// (e.g. "h", "arrow_up", "q").
	ReadCommand() string
}
