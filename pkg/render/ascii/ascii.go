// Package ascii renders mazes as "+---+" text art.
//
// The format is the classic three-characters-per-cell grid:
//
//	+---+---+---+
//	|       |   |
//	+---+   +   +
//	|           |
//	+---+---+---+
//
// Output is fully determined by the grid's wall state, so a seed-reproduced
// maze renders to byte-identical text.
package ascii

import (
	"io"
	"strings"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

// Render returns the maze as ASCII art, one trailing newline per line.
func Render(g *maze.Grid) string {
	var b strings.Builder
	// Top border is always solid: no passage leaves the grid.
	b.WriteString("+")
	b.WriteString(strings.Repeat("---+", g.Width()))
	b.WriteString("\n")

	for y := 0; y < g.Height(); y++ {
		var body, bottom strings.Builder
		body.WriteString("|")
		bottom.WriteString("+")
		for x := 0; x < g.Width(); x++ {
			body.WriteString("   ")
			if g.LinkedAt(x, y, maze.East) {
				body.WriteString(" ")
			} else {
				body.WriteString("|")
			}
			if g.LinkedAt(x, y, maze.South) {
				bottom.WriteString("   ")
			} else {
				bottom.WriteString("---")
			}
			bottom.WriteString("+")
		}
		b.WriteString(body.String())
		b.WriteString("\n")
		b.WriteString(bottom.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Write renders the maze to w.
func Write(g *maze.Grid, w io.Writer) error {
	_, err := io.WriteString(w, Render(g))
	return err
}
