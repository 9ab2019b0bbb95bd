package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/JakeOShannessy/minotaur/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	algorithm  string // carving algorithm name
	width      int    // columns
	height     int    // rows
	seed       uint64 // RNG seed, only used when the flag was set
	output     string // output file path; empty prints ASCII to stdout
	cellSize   int    // raster cell size in pixels
	wallSize   int    // raster wall thickness in pixels
	background string // raster background color
	wall       string // raster wall color
}

// generateCommand creates the generate command. The output format is
// inferred from the output file extension; without --output the maze is
// printed as ASCII art.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		algorithm:  c.Config.Algorithm,
		width:      c.Config.Width,
		height:     c.Config.Height,
		cellSize:   c.Config.Render.CellSize,
		wallSize:   c.Config.Render.WallSize,
		background: c.Config.Render.Background,
		wall:       c.Config.Render.Wall,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a perfect maze",
		Long: `Generate a perfect maze and write it to stdout or a file.

The output format is inferred from the --output extension:
  .txt   ASCII art
  .png   raster image
  .svg   node-link diagram (Graphviz)
  .dot   Graphviz DOT source
  .mz    binary maze file
  .json  JSON maze file

Without --output the maze is printed as ASCII art. Without --seed a fresh
seed is drawn and reported, so any run can be reproduced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := pipeline.Options{
				Algorithm:  opts.algorithm,
				Width:      opts.width,
				Height:     opts.height,
				CellSize:   opts.cellSize,
				WallSize:   opts.wallSize,
				Background: opts.background,
				WallColor:  opts.wall,
			}
			if cmd.Flags().Changed("seed") {
				popts.Seed = &opts.seed
			}
			return runGenerate(cmd, opts.output, popts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "carving algorithm (see 'minotaur algorithms')")
	cmd.Flags().IntVarP(&opts.width, "width", "x", opts.width, "maze width in cells")
	cmd.Flags().IntVarP(&opts.height, "height", "y", opts.height, "maze height in cells")
	cmd.Flags().Uint64VarP(&opts.seed, "seed", "s", 0, "RNG seed for reproducible mazes")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file; format inferred from extension")
	cmd.Flags().IntVar(&opts.cellSize, "cell-size", opts.cellSize, "cell size in pixels (png)")
	cmd.Flags().IntVar(&opts.wallSize, "wall-size", opts.wallSize, "wall thickness in pixels (png)")
	cmd.Flags().StringVar(&opts.background, "background-color", opts.background, "background color as #RRGGBB (png)")
	cmd.Flags().StringVar(&opts.wall, "wall-color", opts.wall, "wall color as #RRGGBB (png)")

	return cmd
}

// runGenerate executes the pipeline and writes the single artifact.
func runGenerate(cmd *cobra.Command, output string, popts pipeline.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format := pipeline.FormatText
	if output != "" {
		var err error
		if format, err = formatFromPath(output); err != nil {
			return err
		}
	}
	popts.Formats = []string{format}

	spin := newSpinner(ctx, fmt.Sprintf("Carving %dx%d maze", popts.Width, popts.Height))
	spin.Start()
	result, err := pipeline.NewRunner(logger).Execute(ctx, popts)
	spin.Stop()
	if err != nil {
		return err
	}

	data := result.Artifacts[format]
	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		printDetail("algorithm %s · seed %d", result.Stats.Algorithm, result.Seed)
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Generated %dx%d maze with %s",
		result.Grid.Width(), result.Grid.Height(), StyleHighlight.Render(result.Stats.Algorithm))
	printFile(output)
	printDetail("seed %d · carved in %s", result.Seed,
		result.Stats.GenerateTime.Round(time.Millisecond))
	return nil
}

// formatFromPath infers the output format from a file extension.
func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return pipeline.FormatText, nil
	case ".png":
		return pipeline.FormatPNG, nil
	case ".svg":
		return pipeline.FormatSVG, nil
	case ".dot", ".gv":
		return pipeline.FormatDOT, nil
	case ".mz":
		return pipeline.FormatMZ, nil
	case ".json":
		return pipeline.FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot infer format from %q (use .txt, .png, .svg, .dot, .mz or .json)", path)
	}
}
