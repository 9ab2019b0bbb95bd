package maze

// RecursiveBacktracker is depth-first search with an explicit stack: push a
// random start cell, then repeatedly look at the stack top: carve to a
// uniformly chosen unvisited neighbor and push it, or pop when the top is
// boxed in. Generation ends when the stack empties.
//
// The stack is explicit rather than call recursion because the worst case (a
// fully serpentine maze) holds every cell at once, which would blow typical
// call-depth limits on large grids. The classic result: long winding
// passages and few short dead ends.
type RecursiveBacktracker struct{}

// Name returns "RecursiveBacktracker".
func (RecursiveBacktracker) Name() string { return "RecursiveBacktracker" }

// Generate carves a perfect maze into g.
func (RecursiveBacktracker) Generate(g *Grid, rng Source) {
	g.ResetVisited()

	start := rng.IntN(g.Size())
	g.MarkVisited(start)
	stack := make([]int, 0, g.Size())
	stack = append(stack, start)

	var dirs []Direction
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		dirs = unvisitedNeighbors(g, top, dirs)
		if len(dirs) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := dirs[rng.IntN(len(dirs))]
		g.link(top, d)
		next, _ := g.Neighbor(top, d)
		g.MarkVisited(next)
		stack = append(stack, next)
	}
}
