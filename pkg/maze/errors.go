package maze

import "errors"

var (
	// ErrInvalidDimension is returned by [New] and [FromCells] when a grid
	// dimension is zero or negative. No partial grid is ever returned.
	ErrInvalidDimension = errors.New("grid dimensions must be at least 1x1")

	// ErrNotAdjacent is returned by [Grid.Carve] when the two cells are not
	// grid-adjacent neighbors.
	ErrNotAdjacent = errors.New("cells are not adjacent")

	// ErrUnknownAlgorithm is returned by [NewGenerator] for a name that does
	// not match any registered algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrCorruptGrid is returned by [FromCells] when the cell data contains
	// invalid flag bits, passages through the outer boundary, or asymmetric
	// links between neighbors.
	ErrCorruptGrid = errors.New("corrupt grid data")
)
