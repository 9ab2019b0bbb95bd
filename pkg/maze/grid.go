package maze

import "fmt"

// Grid is a rectangular maze: width×height cells stored row-major, each a
// bitfield of open passages. A fresh grid has every wall closed.
//
// The grid also carries a per-cell visited marker used transiently by the
// walk-based generators. Visited state never affects wall state and is reset
// at the start of every generation run; renderers and serializers must not
// depend on it.
//
// Grid is not safe for concurrent use. Generation mutates it in place and a
// grid is expected to be generated into exactly once.
type Grid struct {
	width   int
	height  int
	cells   []Cell
	visited []bool
}

// New creates a grid with all walls closed and no cells visited.
// It returns [ErrInvalidDimension] if either dimension is less than 1.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	return &Grid{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		visited: make([]bool, width*height),
	}, nil
}

// FromCells reconstructs a grid from serialized cell data. The data is
// validated before a grid is returned: flags must stay within the four
// passage bits, no passage may cross the outer boundary, and every link must
// be mirrored by the neighbor it points at.
func FromCells(width, height int, cells []Cell) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrCorruptGrid, width*height, len(cells))
	}
	copy(g.cells, cells)
	for i, c := range g.cells {
		if c&^cellMask != 0 {
			return nil, fmt.Errorf("%w: cell %d has invalid flag bits %#x", ErrCorruptGrid, i, uint8(c))
		}
		for _, d := range Directions {
			if !c.Linked(d) {
				continue
			}
			j, ok := g.Neighbor(i, d)
			if !ok {
				return nil, fmt.Errorf("%w: cell %d links %s through the boundary", ErrCorruptGrid, i, d)
			}
			if !g.cells[j].Linked(d.Opposite()) {
				return nil, fmt.Errorf("%w: asymmetric link between cells %d and %d", ErrCorruptGrid, i, j)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the total cell count.
func (g *Grid) Size() int { return len(g.cells) }

// Index converts (x, y) coordinates to a row-major cell index.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coord converts a row-major cell index back to (x, y) coordinates.
func (g *Grid) Coord(i int) (x, y int) { return i % g.width, i / g.width }

// Cell returns the passage flags of cell i.
func (g *Grid) Cell(i int) Cell { return g.cells[i] }

// Cells returns a copy of the raw cell data, for serialization.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// HasNeighbor reports whether cell i has a neighbor in direction d, i.e.
// whether i is not on that boundary edge.
func (g *Grid) HasNeighbor(i int, d Direction) bool {
	switch d {
	case North:
		return i >= g.width
	case South:
		return i+g.width < len(g.cells)
	case East:
		return (i+1)%g.width != 0
	case West:
		return i%g.width != 0
	}
	return false
}

// Neighbor returns the index of cell i's neighbor in direction d.
// The second result is false when i sits on that boundary edge.
func (g *Grid) Neighbor(i int, d Direction) (int, bool) {
	if !g.HasNeighbor(i, d) {
		return 0, false
	}
	switch d {
	case North:
		return i - g.width, true
	case South:
		return i + g.width, true
	case East:
		return i + 1, true
	case West:
		return i - 1, true
	}
	return 0, false
}

// direction returns the direction from cell a to cell b, or false when the
// two cells are not grid-adjacent.
func (g *Grid) direction(a, b int) (Direction, bool) {
	for _, d := range Directions {
		if n, ok := g.Neighbor(a, d); ok && n == b {
			return d, true
		}
	}
	return 0, false
}

// link removes the wall between cell i and its neighbor in direction d,
// setting both passage flags. Callers must have checked HasNeighbor; the
// generators only ever link toward validated directions.
func (g *Grid) link(i int, d Direction) {
	j, ok := g.Neighbor(i, d)
	if !ok {
		panic(fmt.Sprintf("maze: link %s from cell %d crosses the boundary", d, i))
	}
	g.cells[i] |= Cell(d)
	g.cells[j] |= Cell(d.Opposite())
}

// Carve removes the wall between two adjacent cells, updating both cells'
// flags so the shared edge stays symmetric. It returns [ErrNotAdjacent] if b
// is not a grid-adjacent neighbor of a.
func (g *Grid) Carve(a, b int) error {
	d, ok := g.direction(a, b)
	if !ok {
		return fmt.Errorf("%w: cells %d and %d", ErrNotAdjacent, a, b)
	}
	g.link(a, d)
	return nil
}

// Carved reports whether the wall between two adjacent cells has been
// removed. It returns false for non-adjacent cells.
func (g *Grid) Carved(a, b int) bool {
	d, ok := g.direction(a, b)
	if !ok {
		return false
	}
	return g.cells[a].Linked(d)
}

// Linked reports whether cell i has an open passage in direction d. This is
// the wall query surface renderers and serializers use.
func (g *Grid) Linked(i int, d Direction) bool {
	return g.cells[i].Linked(d)
}

// LinkedAt is Linked addressed by (x, y) coordinates.
func (g *Grid) LinkedAt(x, y int, d Direction) bool {
	return g.cells[g.Index(x, y)].Linked(d)
}

// MarkVisited marks cell i as incorporated into the spanning tree under
// construction. Wall state is unaffected.
func (g *Grid) MarkVisited(i int) { g.visited[i] = true }

// Visited reports whether cell i has been marked visited.
func (g *Grid) Visited(i int) bool { return g.visited[i] }

// ResetVisited clears all visited markers. Every generator calls this before
// it starts, so stale markers never leak between runs.
func (g *Grid) ResetVisited() {
	for i := range g.visited {
		g.visited[i] = false
	}
}
