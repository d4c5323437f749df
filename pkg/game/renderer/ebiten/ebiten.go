// Package ebiten provides a graphical backend that draws the grid as
// colored tiles in a window. It owns its own game loop and keyboard
// handling; the session is only mutated from Update, one command at a time.
package ebiten

import (
	"errors"
	"image/color"
	"strconv"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sokoban/pkg/engine/world"
	"sokoban/pkg/game/renderer"
	"sokoban/pkg/game/state"
)

const tileSize = 48

// Tile colors match the terminal palette: blue player, red box off target,
// green box on target, yellow target, black void, white floor.
var tileColors = map[renderer.CellTag]color.RGBA{
	renderer.TagPlayer:       {R: 0x20, G: 0x50, B: 0xc8, A: 0xff},
	renderer.TagBoxMisplaced: {R: 0xc0, G: 0x30, B: 0x30, A: 0xff},
	renderer.TagBoxOnTarget:  {R: 0x30, G: 0xa8, B: 0x40, A: 0xff},
	renderer.TagTarget:       {R: 0xd8, G: 0xc0, B: 0x28, A: 0xff},
	renderer.TagVoid:         {R: 0x10, G: 0x10, B: 0x10, A: 0xff},
	renderer.TagFloor:        {R: 0xe8, G: 0xe8, B: 0xe0, A: 0xff},
}

// keyActions maps just-pressed keys to session commands.
var keyActions = map[eb.Key]func(g *state.Game) error{
	eb.KeyArrowUp:    moveAction(world.Up),
	eb.KeyK:          moveAction(world.Up),
	eb.KeyW:          moveAction(world.Up),
	eb.KeyArrowDown:  moveAction(world.Down),
	eb.KeyJ:          moveAction(world.Down),
	eb.KeyS:          moveAction(world.Down),
	eb.KeyArrowLeft:  moveAction(world.Left),
	eb.KeyH:          moveAction(world.Left),
	eb.KeyA:          moveAction(world.Left),
	eb.KeyArrowRight: moveAction(world.Right),
	eb.KeyL:          moveAction(world.Right),
	eb.KeyD:          moveAction(world.Right),
	eb.KeyB:          func(g *state.Game) error { return g.Undo() },
	eb.KeyU:          func(g *state.Game) error { return g.Undo() },
	eb.KeyR:          func(g *state.Game) error { return g.Restart() },
}

func moveAction(dir world.Direction) func(g *state.Game) error {
	return func(g *state.Game) error {
		g.Move(dir)
		return nil
	}
}

// Game adapts a session to the ebiten run loop.
type Game struct {
	session *state.Game
}

// Update handles one tick of keyboard input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(eb.KeyQ) || inpututil.IsKeyJustPressed(eb.KeyEscape) {
		return eb.Termination
	}

	for key, action := range keyActions {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := action(g.session); err != nil {
			return err
		}
	}

	if g.session.Won() {
		eb.SetWindowTitle("Sokoban - solved in " + strconv.Itoa(g.session.Moves()) + " moves")
	}

	return nil
}

// Draw renders one tile per cell, colored by its render tag.
func (g *Game) Draw(screen *eb.Image) {
	grid := g.session.Grid
	tags := renderer.Tags(grid)
	width := grid.Width()

	for idx, tag := range tags {
		x := float32((idx % width) * tileSize)
		y := float32((idx / width) * tileSize)
		vector.DrawFilledRect(screen, x, y, tileSize, tileSize, tileColors[tag], false)
	}
}

// Layout reports the logical screen size: the whole grid at fixed tile size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.session.Grid
	return grid.Width() * tileSize, grid.Rows() * tileSize
}

// Run opens the window and blocks until the player quits.
func Run(session *state.Game) error {
	grid := session.Grid
	eb.SetWindowSize(grid.Width()*tileSize, grid.Rows()*tileSize)
	eb.SetWindowTitle("Sokoban - " + session.Source.Name())

	err := eb.RunGame(&Game{session: session})
	if err != nil && !errors.Is(err, eb.Termination) {
		return err
	}
	return nil
}
