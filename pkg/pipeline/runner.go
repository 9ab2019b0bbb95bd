package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
	"github.com/JakeOShannessy/minotaur/pkg/mzfile"
	"github.com/JakeOShannessy/minotaur/pkg/render/ascii"
	"github.com/JakeOShannessy/minotaur/pkg/render/nodelink"
	"github.com/JakeOShannessy/minotaur/pkg/render/raster"
)

// Runner executes the generate → render pipeline.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger falls back to the
// package default.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{logger: loggerOrDefault(logger)}
}

// Generate carves a maze with the named algorithm. A nil seed draws one
// from entropy; the seed actually used is returned so the run can be
// reproduced.
func (r *Runner) Generate(algorithm string, width, height int, seed *uint64) (*maze.Grid, uint64, error) {
	gen, err := maze.NewGenerator(algorithm)
	if err != nil {
		return nil, 0, err
	}

	grid, err := maze.New(width, height)
	if err != nil {
		return nil, 0, err
	}

	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = maze.RandomSeed()
		r.logger.Debug("drew seed from entropy", "seed", s)
	}

	gen.Generate(grid, maze.NewSource(s))
	return grid, s, nil
}

// Execute runs the full pipeline: generate the maze, then render every
// requested format. The context cancels Graphviz rendering; the other
// renderers are fast enough that checking is not worthwhile.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	r.logger.Debug("starting pipeline",
		"algorithm", opts.Algorithm,
		"width", opts.Width,
		"height", opts.Height,
		"formats", opts.Formats)

	start := time.Now()
	grid, seed, err := r.Generate(opts.Algorithm, opts.Width, opts.Height, opts.Seed)
	if err != nil {
		return nil, err
	}
	generateTime := time.Since(start)

	r.logger.Debug("maze generated",
		"seed", seed,
		"duration", generateTime)

	renderStart := time.Now()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.Render(ctx, grid, format, opts)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", format, err)
		}
		artifacts[format] = data
	}
	renderTime := time.Since(renderStart)

	return &Result{
		Grid:      grid,
		Seed:      seed,
		Artifacts: artifacts,
		Stats: Stats{
			Algorithm:    opts.Algorithm,
			GenerateTime: generateTime,
			RenderTime:   renderTime,
		},
	}, nil
}

// Render produces one artifact for an existing grid. It is used by Execute
// and by callers re-rendering a previously saved maze.
func (r *Runner) Render(ctx context.Context, grid *maze.Grid, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(ascii.Render(grid)), nil

	case FormatPNG:
		ropts, err := rasterOptions(opts)
		if err != nil {
			return nil, err
		}
		return raster.RenderPNG(grid, ropts)

	case FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(grid))

	case FormatDOT:
		return []byte(nodelink.ToDOT(grid)), nil

	case FormatMZ:
		return mzfile.Marshal(grid)

	case FormatJSON:
		return mzfile.MarshalJSON(grid)

	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// rasterOptions translates pipeline options into raster options.
func rasterOptions(opts Options) (raster.Options, error) {
	bg, err := raster.ParseHexColor(opts.Background)
	if err != nil {
		return raster.Options{}, fmt.Errorf("background color: %w", err)
	}
	wall, err := raster.ParseHexColor(opts.WallColor)
	if err != nil {
		return raster.Options{}, fmt.Errorf("wall color: %w", err)
	}
	return raster.Options{
		CellSize:   opts.CellSize,
		WallSize:   opts.WallSize,
		Background: bg,
		Wall:       wall,
	}, nil
}
