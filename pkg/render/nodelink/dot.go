// Package nodelink renders the maze's passage graph as a node-link diagram.
//
// # Overview
//
// A perfect maze is a spanning tree of the grid graph, and sometimes the
// tree view is more useful than the walls view: every cell becomes a node
// pinned to its grid coordinate, every open passage an edge. The diagram
// makes the no-cycles/fully-connected property directly visible.
//
// # Usage
//
// Convert a grid to DOT format, then render to SVG or PNG:
//
//	dot := nodelink.ToDOT(g)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// The generated DOT pins node positions (neato layout with pos="x,y!"), so
// the diagram keeps the maze's rectangular shape. The DOT source can also be
// saved and processed with external Graphviz tools.
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering; no graphviz installation is required.
package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

// ToDOT converts a maze to Graphviz DOT source. Cells become nodes pinned to
// their grid position; open passages become undirected edges. Only edges to
// the east and south are emitted, so each passage appears exactly once.
func ToDOT(g *maze.Grid) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fixedsize=true, width=0.3, fontsize=10];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	for i := 0; i < g.Size(); i++ {
		x, y := g.Coord(i)
		// Graphviz y grows upward; flip so row 0 renders at the top.
		fmt.Fprintf(&buf, "  %d [label=\"\", pos=\"%d,%d!\"];\n", i, x, g.Height()-1-y)
	}

	buf.WriteString("\n")
	for i := 0; i < g.Size(); i++ {
		for _, d := range [2]maze.Direction{maze.East, maze.South} {
			if g.Linked(i, d) {
				n, _ := g.Neighbor(i, d)
				fmt.Fprintf(&buf, "  %d -- %d;\n", i, n)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
