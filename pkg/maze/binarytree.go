package maze

// BinaryTree visits every cell in row-major order and carves either north or
// east: a coin flip when both are possible, the only valid one otherwise,
// nothing for the northeast corner. One random draw per interior cell.
//
// The output is strongly biased: the top row and rightmost column are
// unbroken corridors, and paths drift toward the northeast corner. That bias
// is documented behavior, not a defect.
type BinaryTree struct{}

// Name returns "BinaryTree".
func (BinaryTree) Name() string { return "BinaryTree" }

// Generate carves a perfect maze into g.
func (BinaryTree) Generate(g *Grid, rng Source) {
	g.ResetVisited()
	for i := 0; i < g.Size(); i++ {
		northOK := g.HasNeighbor(i, North)
		eastOK := g.HasNeighbor(i, East)
		switch {
		case northOK && (!eastOK || rng.IntN(2) == 0):
			g.link(i, North)
		case eastOK:
			g.link(i, East)
		}
	}
}
