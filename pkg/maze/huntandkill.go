package maze

// HuntAndKill alternates two phases. Kill: random-walk to unvisited
// neighbors, carving as it goes, until the walk boxes itself in. Hunt: scan
// the grid in row-major order for the first unvisited cell that touches the
// visited region, carve to that neighbor, and resume walking from there.
// Generation ends when the hunt comes up empty.
//
// The mix of long kill-phase corridors and hunt-phase restarts near the scan
// origin gives these mazes visible structure toward the top of the grid.
type HuntAndKill struct{}

// Name returns "HuntAndKill".
func (HuntAndKill) Name() string { return "HuntAndKill" }

// Generate carves a perfect maze into g.
func (HuntAndKill) Generate(g *Grid, rng Source) {
	g.ResetVisited()

	cur := rng.IntN(g.Size())
	g.MarkVisited(cur)

	var dirs []Direction
	for {
		// Kill: walk until no unvisited neighbor remains.
		for {
			dirs = unvisitedNeighbors(g, cur, dirs)
			if len(dirs) == 0 {
				break
			}
			d := dirs[rng.IntN(len(dirs))]
			g.link(cur, d)
			cur, _ = g.Neighbor(cur, d)
			g.MarkVisited(cur)
		}

		// Hunt: first unvisited cell adjacent to the visited region.
		found := -1
		for i := 0; i < g.Size() && found < 0; i++ {
			if g.Visited(i) {
				continue
			}
			for _, d := range Directions {
				if n, ok := g.Neighbor(i, d); ok && g.Visited(n) {
					g.link(i, d)
					found = i
					break
				}
			}
		}
		if found < 0 {
			return
		}
		g.MarkVisited(found)
		cur = found
	}
}
