// Package tui renders the game as colored blocks on an ANSI terminal.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"sokoban/pkg/engine/input"
	"sokoban/pkg/engine/terminal"
	"sokoban/pkg/game/renderer"
	"sokoban/pkg/game/state"
)

// Each cell is drawn as a two-space block so the grid looks square.
const cellBlock = "  "

// Renderer is the terminal-based backend.
type Renderer struct {
	colorPlayer      color.Style
	colorBoxWrong    color.Style
	colorBoxOnTarget color.Style
	colorTarget      color.Style
	colorVoid        color.Style
	colorFloor       color.Style
	colorSubtle      color.Style
}

// New creates a new TUI renderer
func New() *Renderer {
	return &Renderer{}
}

// Init initializes the color styles
func (t *Renderer) Init() {
	t.colorPlayer = color.Style{color.BgBlue}
	t.colorBoxWrong = color.Style{color.BgRed}
	t.colorBoxOnTarget = color.Style{color.BgGreen}
	t.colorTarget = color.Style{color.BgYellow}
	t.colorVoid = color.Style{color.BgBlack}
	t.colorFloor = color.Style{color.BgWhite}
	t.colorSubtle = color.Style{color.FgGray}
}

// Clear clears the terminal screen
func (t *Renderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// styleFor returns the block style for a render tag.
func (t *Renderer) styleFor(tag renderer.CellTag) color.Style {
	switch tag {
	case renderer.TagPlayer:
		return t.colorPlayer
	case renderer.TagBoxMisplaced:
		return t.colorBoxWrong
	case renderer.TagBoxOnTarget:
		return t.colorBoxOnTarget
	case renderer.TagTarget:
		return t.colorTarget
	case renderer.TagVoid:
		return t.colorVoid
	default:
		return t.colorFloor
	}
}

// legend returns the per-row legend lines printed beside the grid.
func (t *Renderer) legend() []string {
	return []string{
		"",
		fmt.Sprintf("  %s: %s", t.colorPlayer.Sprint(cellBlock), gotext.Get("Player")),
		fmt.Sprintf("  %s: %s", t.colorBoxWrong.Sprint(cellBlock), gotext.Get("Box on wrong square")),
		fmt.Sprintf("  %s: %s", t.colorBoxOnTarget.Sprint(cellBlock), gotext.Get("Box on target square")),
		fmt.Sprintf("  %s: %s", t.colorTarget.Sprint(cellBlock), gotext.Get("Target square")),
	}
}

// RenderFrame draws the grid with its legend and a status line.
func (t *Renderer) RenderFrame(g *state.Game) {
	tags := renderer.Tags(g.Grid)
	width := g.Grid.Width()
	legend := t.legend()

	var b strings.Builder
	for idx, tag := range tags {
		col := idx % width
		row := idx / width
		if col == 0 && row != 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.styleFor(tag).Sprint(cellBlock))
		if col == width-1 && row < len(legend) {
			b.WriteString(legend[row])
		}
	}
	fmt.Println(b.String())

	fmt.Println()
	t.printStatus(g)
}

// printStatus shows the level name and move counter.
func (t *Renderer) printStatus(g *state.Game) {
	status := fmt.Sprintf("%s: %s   %s: %d",
		gotext.Get("Level"), g.Source.Name(),
		gotext.Get("Moves"), g.Moves())

	width := terminal.GetWidth()
	if len(status) > width {
		status = status[:width]
	}
	fmt.Println(t.colorSubtle.Sprint(status))
}

// ReadCommand blocks for one keypress.
func (t *Renderer) ReadCommand() string {
	return input.ReadKey()
}
