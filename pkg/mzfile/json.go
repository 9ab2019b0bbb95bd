package mzfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

// Maze is the JSON wire form of a grid. Cells holds the raw passage flags
// (the same bytes as the binary format) in row-major order.
type Maze struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Cells  []uint8 `json:"cells"`
}

// FromGrid converts a grid to its JSON wire form.
func FromGrid(g *maze.Grid) Maze {
	cells := g.Cells()
	raw := make([]uint8, len(cells))
	for i, c := range cells {
		raw[i] = uint8(c)
	}
	return Maze{Width: g.Width(), Height: g.Height(), Cells: raw}
}

// ToGrid validates the wire form and reconstructs a grid.
func (m Maze) ToGrid() (*maze.Grid, error) {
	cells := make([]maze.Cell, len(m.Cells))
	for i, b := range m.Cells {
		cells[i] = maze.Cell(b)
	}
	return maze.FromCells(m.Width, m.Height, cells)
}

// WriteJSON encodes a grid as indented JSON to w.
func WriteJSON(g *maze.Grid, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGrid(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON returns a grid's indented JSON encoding.
func MarshalJSON(g *maze.Grid) ([]byte, error) {
	data, err := json.MarshalIndent(FromGrid(g), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return append(data, '\n'), nil
}

// ReadJSON decodes and validates a JSON grid from r.
func ReadJSON(r io.Reader) (*maze.Grid, error) {
	var m Maze
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return m.ToGrid()
}

// ExportJSON writes a grid to a JSON file at path.
func ExportJSON(g *maze.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// ImportJSON reads and validates a JSON maze file at path.
func ImportJSON(path string) (*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
