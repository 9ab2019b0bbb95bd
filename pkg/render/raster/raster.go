// Package raster renders mazes as PNG images.
//
// Every wall still standing is drawn as a filled rectangle of WallSize
// pixels; the rest of the image is the background color. Cell size, wall
// size and both colors are configurable, with hex color parsing for CLI
// flags.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

// Options configures image output.
type Options struct {
	CellSize   int         // interior size of one cell in pixels
	WallSize   int         // wall thickness in pixels
	Background color.Color // passage color
	Wall       color.Color // wall color
}

// DefaultOptions returns the standard style: 10px cells, 1px black walls on
// white.
func DefaultOptions() Options {
	return Options{
		CellSize:   10,
		WallSize:   1,
		Background: color.White,
		Wall:       color.Black,
	}
}

// normalize fills zero-valued fields with defaults so a partially built
// Options literal still renders something sensible.
func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.CellSize <= 0 {
		o.CellSize = def.CellSize
	}
	if o.WallSize <= 0 {
		o.WallSize = def.WallSize
	}
	if o.Background == nil {
		o.Background = def.Background
	}
	if o.Wall == nil {
		o.Wall = def.Wall
	}
	return o
}

// Render draws the maze into a new image. The image is
// cellSize·width+wallSize pixels wide and cellSize·height+wallSize tall, so
// the far east and south borders have room for their closing wall.
func Render(g *maze.Grid, opts Options) image.Image {
	return draw(g, opts).Image()
}

// RenderPNG renders the maze and encodes it as PNG bytes.
func RenderPNG(g *maze.Grid, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := draw(g, opts).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func draw(g *maze.Grid, opts Options) *gg.Context {
	opts = opts.normalize()
	cell := float64(opts.CellSize)
	wall := float64(opts.WallSize)

	imgW := opts.CellSize*g.Width() + opts.WallSize
	imgH := opts.CellSize*g.Height() + opts.WallSize

	dc := gg.NewContext(imgW, imgH)
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.SetColor(opts.Wall)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			px := float64(x) * cell
			py := float64(y) * cell
			// Wall segments run cell+wall long so corners join cleanly.
			if !g.LinkedAt(x, y, maze.North) {
				dc.DrawRectangle(px, py, cell+wall, wall)
			}
			if !g.LinkedAt(x, y, maze.West) {
				dc.DrawRectangle(px, py, wall, cell+wall)
			}
			if !g.LinkedAt(x, y, maze.South) {
				dc.DrawRectangle(px, py+cell, cell+wall, wall)
			}
			if !g.LinkedAt(x, y, maze.East) {
				dc.DrawRectangle(px+cell, py, wall, cell+wall)
			}
		}
	}
	dc.Fill()
	return dc
}

// ParseHexColor parses a "#RRGGBB" hex color (leading '#' optional).
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("expected a 6 character hex color, got %q", s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
}
