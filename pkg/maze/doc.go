// Package maze implements the maze generation engine: a rectangular grid of
// cells with four-directional wall state, and six classical generation
// algorithms that carve a perfect maze into it.
//
// # Overview
//
// A Grid starts with every wall closed. A Generator mutates the grid in place
// until its open passages form a spanning tree over all cells: connected,
// exactly width·height−1 open edges, no cycles. That spanning-tree property
// is what makes the maze "perfect": exactly one path between any two cells.
//
// # Usage
//
// Construct a grid, pick a generator, and supply a deterministic random
// source:
//
//	g, err := maze.New(12, 8)
//	if err != nil {
//	    return err
//	}
//	gen, err := maze.NewGenerator("wilsons")
//	if err != nil {
//	    return err
//	}
//	gen.Generate(g, maze.NewSource(12345678))
//
// The same algorithm, dimensions and seed always produce bit-identical wall
// layouts, so a maze can be reproduced from its seed alone.
//
// # Algorithms
//
// Six generators are registered, each with its own bias and performance
// profile:
//
//   - BinaryTree: one coin flip per cell; strong corridor bias along the
//     north and east edges.
//   - Sidewinder: row-wise runs closed by a single northward carve; long
//     east-west corridors.
//   - AldousBroder: unbiased random walk; samples uniformly from all
//     spanning trees, at the cost of unbounded (expected superlinear) time.
//   - Wilsons: loop-erased random walks; also a uniform spanning tree
//     sampler, slow to start and fast to finish.
//   - HuntAndKill: random walk with a row-major hunt for restart points;
//     long corridors with structure near the top of the grid.
//   - RecursiveBacktracker: depth-first search with an explicit stack; long
//     winding passages and few short dead ends.
//
// Generation is single-threaded and synchronous: each carve decision depends
// on the current global wall and visited state, so no generator can be
// parallelized internally.
package maze
