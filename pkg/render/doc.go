// Package render groups the maze output backends.
//
// Each subpackage consumes a finished grid through its public wall query
// surface (dimensions plus per-cell, per-direction passage flags) and
// nothing else; algorithm-internal state such as visited markers never
// leaks into output.
//
//   - [ascii]: classic "+---+" text art, byte-identical across runs over the
//     same grid.
//   - [raster]: PNG images with configurable cell size, wall size and
//     colors, drawn with fogleman/gg.
//   - [nodelink]: the maze's passage graph as Graphviz DOT, rasterized
//     in-process to SVG or PNG via goccy/go-graphviz.
//
// [ascii]: github.com/JakeOShannessy/minotaur/pkg/render/ascii
// [raster]: github.com/JakeOShannessy/minotaur/pkg/render/raster
// [nodelink]: github.com/JakeOShannessy/minotaur/pkg/render/nodelink
package render
