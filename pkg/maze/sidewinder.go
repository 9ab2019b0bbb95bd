package maze

// Sidewinder processes each row left to right, keeping a "run" of cells that
// are still candidates for a single northward carve. At each cell a coin
// decides: extend the run by carving east, or close it by carving north from
// a uniformly chosen cell of the run and starting a new run.
//
// The last cell of a row cannot extend east, so it always closes its run,
// except on the top row, where no northward carve exists and the whole row
// becomes one long eastward corridor. Every run below the top row closes
// with exactly one northward carve, which is what guarantees row-to-row
// connectivity.
type Sidewinder struct{}

// Name returns "Sidewinder".
func (Sidewinder) Name() string { return "Sidewinder" }

// Generate carves a perfect maze into g.
func (Sidewinder) Generate(g *Grid, rng Source) {
	g.ResetVisited()

	// The first cell that can carve north starts the second row.
	runStart := g.Width()

	for i := 0; i < g.Size(); i++ {
		northOK := g.HasNeighbor(i, North)
		eastOK := g.HasNeighbor(i, East)
		switch {
		case northOK && (!eastOK || rng.IntN(2) == 0):
			chosen := runStart + rng.IntN(i+1-runStart)
			g.link(chosen, North)
			runStart = i + 1
		case eastOK:
			g.link(i, East)
		default:
			// Northeast corner: no carve, next row starts a fresh run.
			runStart = i + 1
		}
	}
}
