// Package mzfile reads and writes mazes in the .mz binary format.
//
// # Format
//
// A .mz file is a fixed header followed by raw cell data:
//
//	offset  size  field
//	0       4     magic "MZ" + format version "01"
//	4       4     width, uint32 little-endian
//	8       4     height, uint32 little-endian
//	12      w·h   cell passage flags, one byte each, row-major
//
// The read side validates dimensions, flag bits and link symmetry before
// returning a grid, so a corrupt or truncated file never produces a
// half-valid maze. A JSON form with the same validation lives alongside for
// toolchains that prefer text (see WriteJSON/ReadJSON).
package mzfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

// magic identifies a version-01 .mz file.
var magic = [4]byte{'M', 'Z', '0', '1'}

// maxDimension bounds accepted dimensions on read, so a corrupt header
// cannot trigger a multi-gigabyte allocation.
const maxDimension = 1 << 20

var (
	// ErrBadMagic is returned when the input does not start with the .mz
	// magic bytes, typically because the file is not a .mz file at all or
	// was written by an incompatible version.
	ErrBadMagic = errors.New("not a .mz file (bad magic)")

	// ErrTruncated is returned when the input ends before the declared cell
	// data is complete.
	ErrTruncated = errors.New("truncated .mz data")
)

// Marshal encodes a grid to .mz bytes.
func Marshal(g *maze.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes a grid in .mz format to w.
func Write(g *maze.Grid, w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	dims := [2]uint32{uint32(g.Width()), uint32(g.Height())}
	if err := binary.Write(w, binary.LittleEndian, dims); err != nil {
		return fmt.Errorf("write dimensions: %w", err)
	}
	cells := g.Cells()
	raw := make([]byte, len(cells))
	for i, c := range cells {
		raw[i] = byte(c)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write cells: %w", err)
	}
	return nil
}

// WriteFile writes a grid to a .mz file at path.
func WriteFile(g *maze.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes and validates a .mz grid from r.
func Read(r io.Reader) (*maze.Grid, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if hdr != magic {
		return nil, ErrBadMagic
	}

	var dims [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		return nil, fmt.Errorf("%w: reading dimensions: %v", ErrTruncated, err)
	}
	width, height := int(dims[0]), int(dims[1])
	if width < 1 || height < 1 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: implausible dimensions %dx%d", maze.ErrCorruptGrid, width, height)
	}

	raw := make([]byte, width*height)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: reading cells: %v", ErrTruncated, err)
	}
	cells := make([]maze.Cell, len(raw))
	for i, b := range raw {
		cells[i] = maze.Cell(b)
	}
	return maze.FromCells(width, height, cells)
}

// ReadFile reads and validates a .mz file at path.
func ReadFile(path string) (*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
