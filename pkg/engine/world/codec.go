package world

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// ParseError describes malformed level or snapshot text. Row and Col are
// 1-based; both are zero when the problem is not tied to a single cell
// (for example a missing player).
type ParseError struct {
	Row int
	Col int
	Msg string
}

func (e *ParseError) Error() string {
	if e.Row == 0 {
		return "parse level: " + e.Msg
	}
	if e.Col == 0 {
		return fmt.Sprintf("parse level: row %d: %s", e.Row, e.Msg)
	}
	return fmt.Sprintf("parse level: row %d, col %d: %s", e.Row, e.Col, e.Msg)
}

// Parse builds a Grid from level text: a rectangle of digit symbols 0-6,
// rows separated by newlines. It wires the four neighbor links in the same
// row-major pass that creates the cells, so the topology is complete and
// symmetric when it returns.
//
// The same format is used for on-disk levels and undo snapshots.
func Parse(text string) (*Grid, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, &ParseError{Msg: "level text is empty"}
	}

	width := len(lines[0])
	g := &Grid{
		width:   width,
		player:  NoCell,
		targets: mapset.New[int](),
	}

	for row, line := range lines {
		if len(line) != width {
			return nil, &ParseError{
				Row: row + 1,
				Msg: fmt.Sprintf("row is %d cells wide, want %d", len(line), width),
			}
		}

		for col := 0; col < len(line); col++ {
			symbol := line[col]
			cell, ok := cellFromSymbol(int(symbol) - '0')
			if !ok {
				return nil, &ParseError{
					Row: row + 1,
					Col: col + 1,
					Msg: fmt.Sprintf("invalid symbol %q", symbol),
				}
			}

			idx := len(g.cells)
			g.cells = append(g.cells, cell)

			if cell.Target {
				g.targets.Put(idx)
			}
			if cell.Player {
				if g.player != NoCell {
					return nil, &ParseError{
						Row: row + 1,
						Col: col + 1,
						Msg: "more than one player cell",
					}
				}
				g.player = idx
			}

			if row != 0 {
				above := idx - width
				g.cells[idx].setNeighbor(Up, above)
				g.cells[above].setNeighbor(Down, idx)
			}
			if col != 0 {
				left := idx - 1
				g.cells[idx].setNeighbor(Left, left)
				g.cells[left].setNeighbor(Right, idx)
			}
		}
	}

	if g.player == NoCell {
		return nil, &ParseError{Msg: "no player cell"}
	}

	return g, nil
}

// Encode serializes a grid back to level text, one line per row joined with
// newlines. Parse(Encode(g)) yields a state-equal grid.
func Encode(g *Grid) string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.Rows())

	for idx, cell := range g.cells {
		if idx != 0 && idx%g.width == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(byte('0' + cell.Symbol()))
	}

	return b.String()
}

// splitLines splits level text into rows, tolerating trailing newlines the
// way level files on disk usually carry them.
func splitLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
