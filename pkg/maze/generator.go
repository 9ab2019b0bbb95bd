package maze

import (
	"fmt"
	"sort"
	"strings"
)

// Generator carves a perfect maze into a grid. Implementations receive a
// freshly constructed grid (all walls closed) and a random source, and on
// return the grid's open passages form a spanning tree over all cells.
//
// Generators are total over a validly constructed grid: there is no error
// path. They are stateless and safe to reuse across runs.
type Generator interface {
	// Name returns the canonical algorithm name.
	Name() string

	// Generate mutates g in place until it is a perfect maze. All random
	// decisions are drawn from rng.
	Generate(g *Grid, rng Source)
}

// registry maps lowercase algorithm names to their generators.
var registry = map[string]Generator{
	"binarytree":           BinaryTree{},
	"sidewinder":           Sidewinder{},
	"aldousbroder":         AldousBroder{},
	"wilsons":              Wilsons{},
	"huntandkill":          HuntAndKill{},
	"recursivebacktracker": RecursiveBacktracker{},
}

// NewGenerator looks up a generator by name. Names are case-insensitive
// ("Wilsons", "wilsons" and "WILSONS" all resolve). It returns
// [ErrUnknownAlgorithm] with the list of valid names for anything else.
func NewGenerator(name string) (Generator, error) {
	gen, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownAlgorithm, name, strings.Join(Algorithms(), ", "))
	}
	return gen, nil
}

// Algorithms returns the canonical names of all registered generators,
// sorted alphabetically.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for _, gen := range registry {
		names = append(names, gen.Name())
	}
	sort.Strings(names)
	return names
}

// randomDirection draws directions until one stays inside the grid. Only an
// issue at the borders: at worst two of four draws are rejected, so the loop
// terminates quickly in expectation.
func randomDirection(g *Grid, i int, rng Source) Direction {
	for {
		d := Directions[rng.IntN(len(Directions))]
		if g.HasNeighbor(i, d) {
			return d
		}
	}
}

// unvisitedNeighbors collects the directions from cell i that lead to
// unvisited cells, in the fixed Directions order. The result is appended to
// buf to avoid per-step allocation in the walk-based generators.
func unvisitedNeighbors(g *Grid, i int, buf []Direction) []Direction {
	buf = buf[:0]
	for _, d := range Directions {
		if n, ok := g.Neighbor(i, d); ok && !g.Visited(n) {
			buf = append(buf, d)
		}
	}
	return buf
}
