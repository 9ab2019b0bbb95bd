package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

// algorithmNotes maps canonical algorithm names to one-line descriptions.
var algorithmNotes = map[string]string{
	"AldousBroder":         "uniform random walk; samples all spanning trees uniformly",
	"BinaryTree":           "fastest; strong diagonal bias toward the north-east corner",
	"HuntAndKill":          "random walk with row-major hunt; long winding corridors",
	"RecursiveBacktracker": "depth-first search; long corridors, few dead ends",
	"Sidewinder":           "row-by-row runs; top row is always a single corridor",
	"Wilsons":              "loop-erased random walk; uniform and faster than AldousBroder",
}

// algorithmsCommand creates the algorithms command listing the available
// carving algorithms.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available carving algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(StyleTitle.Render("Available algorithms"))
			for _, name := range maze.Algorithms() {
				fmt.Println("  " + StyleHighlight.Render(name))
				if note := algorithmNotes[name]; note != "" {
					fmt.Println("    " + StyleDim.Render(note))
				}
			}
		},
	}
}
