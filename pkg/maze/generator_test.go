package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// assertPerfect checks the defining property of a perfect maze: the
// open-passage graph is a spanning tree over all cells: connected, with
// exactly size−1 open edges, hence acyclic.
func assertPerfect(t *testing.T, g *Grid) {
	t.Helper()

	// Edge count: every open edge sets one flag on each endpoint.
	flags := 0
	for i := 0; i < g.Size(); i++ {
		flags += g.Cell(i).Links()
	}
	require.Equal(t, 2*(g.Size()-1), flags, "open edge count")

	// Connectivity: flood fill from cell 0 must reach every cell.
	seen := make([]bool, g.Size())
	queue := []int{0}
	seen[0] = true
	reached := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if !g.Linked(cur, d) {
				continue
			}
			n, ok := g.Neighbor(cur, d)
			require.True(t, ok, "open passage through the boundary at cell %d", cur)
			if !seen[n] {
				seen[n] = true
				reached++
				queue = append(queue, n)
			}
		}
	}
	require.Equal(t, g.Size(), reached, "flood fill must reach all cells")
}

// assertSymmetric checks that every passage flag is mirrored by the cell it
// points at.
func assertSymmetric(t *testing.T, g *Grid) {
	t.Helper()
	for i := 0; i < g.Size(); i++ {
		for _, d := range Directions {
			if !g.Linked(i, d) {
				continue
			}
			n, ok := g.Neighbor(i, d)
			require.True(t, ok)
			require.True(t, g.Linked(n, d.Opposite()), "asymmetric edge between %d and %d", i, n)
			require.Equal(t, g.Carved(i, n), g.Carved(n, i))
		}
	}
}

var testDims = []struct{ width, height int }{
	{1, 1},
	{1, 8},
	{8, 1},
	{2, 2},
	{5, 5},
	{12, 7},
}

func TestGeneratorsProducePerfectMazes(t *testing.T) {
	for _, name := range Algorithms() {
		gen, err := NewGenerator(name)
		require.NoError(t, err)
		for _, dim := range testDims {
			t.Run(fmt.Sprintf("%s/%dx%d", name, dim.width, dim.height), func(t *testing.T) {
				for seed := uint64(0); seed < 20; seed++ {
					g, err := New(dim.width, dim.height)
					require.NoError(t, err)
					gen.Generate(g, NewSource(seed))
					assertPerfect(t, g)
					assertSymmetric(t, g)
				}
			})
		}
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	const seed = 12345678
	for _, name := range Algorithms() {
		t.Run(name, func(t *testing.T) {
			gen, err := NewGenerator(name)
			require.NoError(t, err)

			a, err := New(9, 6)
			require.NoError(t, err)
			b, err := New(9, 6)
			require.NoError(t, err)

			gen.Generate(a, NewSource(seed))
			gen.Generate(b, NewSource(seed))
			require.Equal(t, a.Cells(), b.Cells(), "same seed must replay bit-identically")

			c, err := New(9, 6)
			require.NoError(t, err)
			gen.Generate(c, NewSource(seed+1))
			// Not guaranteed in principle, but for a 9x6 grid two seeds
			// colliding on the exact same maze would indicate a broken source.
			require.NotEqual(t, a.Cells(), c.Cells(), "different seeds should diverge")
		})
	}
}

func TestOneByOneIsDegenerate(t *testing.T) {
	for _, name := range Algorithms() {
		t.Run(name, func(t *testing.T) {
			gen, err := NewGenerator(name)
			require.NoError(t, err)
			g, err := New(1, 1)
			require.NoError(t, err)
			gen.Generate(g, NewSource(1))
			require.Equal(t, Cell(0), g.Cell(0), "1x1 maze has zero open edges")
		})
	}
}

func TestCorridorGrids(t *testing.T) {
	// On 1xN and Nx1 grids the spanning tree is forced: a single corridor
	// with every internal wall carved.
	for _, name := range Algorithms() {
		gen, err := NewGenerator(name)
		require.NoError(t, err)

		t.Run(name+"/Horizontal", func(t *testing.T) {
			g, err := New(6, 1)
			require.NoError(t, err)
			gen.Generate(g, NewSource(99))
			for i := 0; i+1 < g.Size(); i++ {
				require.True(t, g.Carved(i, i+1))
			}
		})
		t.Run(name+"/Vertical", func(t *testing.T) {
			g, err := New(1, 6)
			require.NoError(t, err)
			gen.Generate(g, NewSource(99))
			for i := 0; i+1 < g.Size(); i++ {
				require.True(t, g.Carved(i, i+1))
			}
		})
	}
}

func TestBinaryTreeBias(t *testing.T) {
	// BinaryTree always leaves the top row fully open eastward and the
	// rightmost column fully open northward (except the shared corner). A
	// fixed seed pins the regression to one recorded layout.
	g, err := New(5, 5)
	require.NoError(t, err)
	BinaryTree{}.Generate(g, NewSource(12345678))
	assertPerfect(t, g)

	for x := 0; x+1 < g.Width(); x++ {
		require.True(t, g.LinkedAt(x, 0, East), "top row cell %d must open east", x)
	}
	for y := 1; y < g.Height(); y++ {
		require.True(t, g.LinkedAt(g.Width()-1, y, North), "right column row %d must open north", y)
	}
	// The northeast corner carves nothing of its own.
	require.False(t, g.Linked(g.Index(g.Width()-1, 0), North))
	require.False(t, g.Linked(g.Index(g.Width()-1, 0), East))
}

func TestSidewinderTopRowIsCorridor(t *testing.T) {
	// The top row cannot carve north, so Sidewinder leaves it one long
	// eastward run regardless of seed.
	for seed := uint64(0); seed < 10; seed++ {
		g, err := New(7, 4)
		require.NoError(t, err)
		Sidewinder{}.Generate(g, NewSource(seed))
		assertPerfect(t, g)
		for x := 0; x+1 < g.Width(); x++ {
			require.True(t, g.LinkedAt(x, 0, East), "seed %d: top row cell %d", seed, x)
		}
		for x := 0; x < g.Width(); x++ {
			require.False(t, g.LinkedAt(x, 0, North), "top row must never carve north")
		}
	}
}

func TestNewGeneratorLookup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"Canonical", "BinaryTree", "BinaryTree", true},
		{"Lower", "binarytree", "BinaryTree", true},
		{"Upper", "WILSONS", "Wilsons", true},
		{"Mixed", "hUnTaNdKiLl", "HuntAndKill", true},
		{"Backtracker", "recursivebacktracker", "RecursiveBacktracker", true},
		{"Unknown", "kruskal", "", false},
		{"Empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.input)
			if !tt.ok {
				require.ErrorIs(t, err, ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, gen.Name())
		})
	}
}

func TestAlgorithmsListing(t *testing.T) {
	names := Algorithms()
	require.Len(t, names, 6)
	require.Equal(t, []string{
		"AldousBroder",
		"BinaryTree",
		"HuntAndKill",
		"RecursiveBacktracker",
		"Sidewinder",
		"Wilsons",
	}, names)
}

func TestVisitedStateResetBetweenRuns(t *testing.T) {
	// Running a walk-based generator twice on fresh grids through the same
	// source type must not leak visited state; and the walk generators leave
	// every cell visited, which ResetVisited must clear for the next run.
	g, err := New(4, 4)
	require.NoError(t, err)
	AldousBroder{}.Generate(g, NewSource(3))
	for i := 0; i < g.Size(); i++ {
		require.True(t, g.Visited(i))
	}
	g.ResetVisited()
	for i := 0; i < g.Size(); i++ {
		require.False(t, g.Visited(i))
	}
}
