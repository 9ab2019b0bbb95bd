package maze

// Wilsons samples a uniform spanning tree via loop-erased random walks. One
// arbitrary cell seeds the tree; each round starts a random walk from an
// unvisited cell and wanders until it touches the tree, erasing any loop the
// moment the walk re-enters its own path. The surviving simple path is then
// carved into the tree wholesale.
//
// Like AldousBroder the output distribution is exactly uniform, but the
// performance profile is inverted: early walks wander long before finding
// the small tree, while late walks connect almost immediately.
type Wilsons struct{}

// Name returns "Wilsons".
func (Wilsons) Name() string { return "Wilsons" }

// Generate carves a perfect maze into g.
func (Wilsons) Generate(g *Grid, rng Source) {
	g.ResetVisited()
	size := g.Size()

	g.MarkVisited(rng.IntN(size))
	remaining := size - 1

	// Loop erasure needs order-aware truncation, not just membership: the
	// path is an ordered sequence of cells plus each cell's position in it,
	// kept in sync so a revisit can cut the path back to that position.
	path := make([]int, 0, size)
	pos := make(map[int]int, size)

	for remaining > 0 {
		start := rng.IntN(size)
		for g.Visited(start) {
			start = rng.IntN(size)
		}

		path = append(path[:0], start)
		clear(pos)
		pos[start] = 0

		cur := start
		for !g.Visited(cur) {
			d := randomDirection(g, cur, rng)
			next, _ := g.Neighbor(cur, d)
			if at, ok := pos[next]; ok {
				// Walked into our own path: erase the loop.
				for _, c := range path[at+1:] {
					delete(pos, c)
				}
				path = path[:at+1]
			} else {
				pos[next] = len(path)
				path = append(path, next)
			}
			cur = next
		}

		// The final cell is already in the tree; carve the simple path into
		// it and absorb every other cell on the path.
		for k := 0; k+1 < len(path); k++ {
			g.link(path[k], mustDirection(g, path[k], path[k+1]))
			g.MarkVisited(path[k])
			remaining--
		}
	}
}

// mustDirection is direction for consecutive walk cells, which are adjacent
// by construction.
func mustDirection(g *Grid, a, b int) Direction {
	d, ok := g.direction(a, b)
	if !ok {
		panic("maze: walk stepped between non-adjacent cells")
	}
	return d
}
