package maze

// Direction identifies one of the four cardinal neighbors of a cell.
// North points toward row 0, West toward column 0.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West
)

// Directions lists all four directions in a fixed order. Generators index
// into this slice with their random source, so the order is part of the
// deterministic replay contract and must not change.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction pointing back at the caller.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "invalid"
}

// Cell is a bitfield of open passages out of a single grid square. A set bit
// means the wall in that direction has been carved away; the zero value has
// all four walls closed.
//
// The flags are two views of one logical edge: if a cell has East set, its
// eastern neighbor must have West set. Grid.Carve maintains that symmetry;
// it would be a logic error for the two flags to ever diverge.
type Cell uint8

// cellMask covers the four valid passage bits.
const cellMask = Cell(North | South | East | West)

// Linked reports whether the passage in direction d is open.
func (c Cell) Linked(d Direction) bool {
	return c&Cell(d) != 0
}

// Links returns the number of open passages out of the cell.
func (c Cell) Links() int {
	n := 0
	for _, d := range Directions {
		if c.Linked(d) {
			n++
		}
	}
	return n
}
