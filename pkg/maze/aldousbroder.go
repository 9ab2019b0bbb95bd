package maze

// AldousBroder samples a mathematically uniform spanning tree by random
// walk: start anywhere, wander to uniformly random neighbors, and carve
// whenever the walk steps onto a cell it has never seen. The walk moves on
// regardless of whether the step carved anything, and stops once every cell
// has been visited.
//
// Uniformity comes at a price: the walk must cover the whole grid, and the
// expected cover time grows superlinearly with grid size. This is the one
// algorithm with no worst-case time bound.
type AldousBroder struct{}

// Name returns "AldousBroder".
func (AldousBroder) Name() string { return "AldousBroder" }

// Generate carves a perfect maze into g.
func (AldousBroder) Generate(g *Grid, rng Source) {
	g.ResetVisited()

	cur := rng.IntN(g.Size())
	g.MarkVisited(cur)
	visited := 1

	for visited < g.Size() {
		d := randomDirection(g, cur, rng)
		next, _ := g.Neighbor(cur, d)
		if !g.Visited(next) {
			g.link(cur, d)
			g.MarkVisited(next)
			visited++
		}
		cur = next
	}
}
