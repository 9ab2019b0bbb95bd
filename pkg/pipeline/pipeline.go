// Package pipeline provides the generate → render pipeline shared by the
// CLI and the HTTP server.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Generate: carve a perfect maze with the selected algorithm and seed
//  2. Render: produce artifacts in the requested output formats
//
// Centralizing this logic keeps the CLI and server behavior identical: the
// same options produce the same maze and the same bytes from either entry
// point.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Algorithm: "wilsons",
//	    Width:     20,
//	    Height:    12,
//	    Formats:   []string{pipeline.FormatText, pipeline.FormatPNG},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts[pipeline.FormatPNG]
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

// =============================================================================
// Defaults - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultAlgorithm carves with AldousBroder, the unbiased sampler.
	DefaultAlgorithm = "AldousBroder"

	// DefaultWidth and DefaultHeight match the historical CLI defaults.
	DefaultWidth  = 5
	DefaultHeight = 5

	// DefaultCellSize is the raster cell size in pixels.
	DefaultCellSize = 10

	// DefaultWallSize is the raster wall thickness in pixels.
	DefaultWallSize = 1

	// DefaultBackground and DefaultWallColor are the raster colors.
	DefaultBackground = "#FFFFFF"
	DefaultWallColor  = "#000000"
)

// Output format identifiers.
const (
	FormatText = "text" // ASCII art
	FormatPNG  = "png"  // raster image
	FormatSVG  = "svg"  // node-link diagram via Graphviz
	FormatDOT  = "dot"  // Graphviz DOT source
	FormatMZ   = "mz"   // binary .mz serialization
	FormatJSON = "json" // JSON serialization
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatPNG:  true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatMZ:   true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: text, png, svg, dot, mz, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one pipeline run. The struct
// supports JSON serialization for API requests.
type Options struct {
	// Generation options
	Algorithm string  `json:"algorithm"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Seed      *uint64 `json:"seed,omitempty"` // nil means entropy-derived

	// Render options
	Formats    []string `json:"formats,omitempty"`
	CellSize   int      `json:"cell_size,omitempty"`
	WallSize   int      `json:"wall_size,omitempty"`
	Background string   `json:"background,omitempty"` // hex "#RRGGBB"
	WallColor  string   `json:"wall_color,omitempty"` // hex "#RRGGBB"

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults. It is
// idempotent: calling it repeatedly has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if _, err := maze.NewGenerator(o.Algorithm); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 1 || o.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", maze.ErrInvalidDimension, o.Width, o.Height)
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.WallSize == 0 {
		o.WallSize = DefaultWallSize
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.WallColor == "" {
		o.WallColor = DefaultWallColor
	}

	o.validated = true
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the generated maze.
	Grid *maze.Grid

	// Seed is the seed actually used; when Options.Seed was nil this is the
	// entropy-derived seed, so the run can be reproduced.
	Seed uint64

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Algorithm    string
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Logging helper
// =============================================================================

// loggerOrDefault guards against a nil logger so library callers are not
// forced to configure one.
func loggerOrDefault(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.Default()
}
