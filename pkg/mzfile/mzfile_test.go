package mzfile

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

func generated(t *testing.T, width, height int, seed uint64) *maze.Grid {
	t.Helper()
	g, err := maze.New(width, height)
	if err != nil {
		t.Fatal(err)
	}
	gen, err := maze.NewGenerator("huntandkill")
	if err != nil {
		t.Fatal(err)
	}
	gen.Generate(g, maze.NewSource(seed))
	return g
}

func TestBinaryRoundTrip(t *testing.T) {
	g := generated(t, 7, 4, 12345678)

	data, err := Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	if want := 12 + g.Size(); len(data) != want {
		t.Errorf("encoded length = %d, want %d", len(data), want)
	}

	loaded, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Width() != g.Width() || loaded.Height() != g.Height() {
		t.Errorf("dimensions = %dx%d, want %dx%d", loaded.Width(), loaded.Height(), g.Width(), g.Height())
	}
	if !bytes.Equal(cellBytes(loaded), cellBytes(g)) {
		t.Error("cells differ after round trip")
	}
}

func TestFileRoundTrip(t *testing.T) {
	g := generated(t, 5, 5, 99)
	path := filepath.Join(t.TempDir(), "maze.mz")

	if err := WriteFile(g, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(cellBytes(loaded), cellBytes(g)) {
		t.Error("cells differ after file round trip")
	}
}

func TestReadRejectsCorruptInput(t *testing.T) {
	g := generated(t, 3, 3, 1)
	valid, err := Marshal(g)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"BadMagic", append([]byte("XX99"), valid[4:]...)},
		{"TruncatedHeader", valid[:6]},
		{"TruncatedCells", valid[:len(valid)-2]},
		{"ZeroWidth", func() []byte {
			d := append([]byte(nil), valid...)
			d[4], d[5], d[6], d[7] = 0, 0, 0, 0
			return d
		}()},
		{"InvalidFlagBits", func() []byte {
			d := append([]byte(nil), valid...)
			d[12] |= 0xF0
			return d
		}()},
		{"AsymmetricLink", func() []byte {
			d := append([]byte(nil), valid...)
			// Flip one passage bit; symmetry validation must catch it.
			d[12] ^= byte(maze.East)
			return d
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(bytes.NewReader(tt.data)); err == nil {
				t.Error("Read accepted corrupt input")
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := generated(t, 6, 2, 5)

	data, err := MarshalJSON(g)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(cellBytes(loaded), cellBytes(g)) {
		t.Error("cells differ after JSON round trip")
	}
}

func TestJSONExportImport(t *testing.T) {
	g := generated(t, 4, 4, 8)
	path := filepath.Join(t.TempDir(), "maze.json")

	if err := ExportJSON(g, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := ImportJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(cellBytes(loaded), cellBytes(g)) {
		t.Error("cells differ after export/import")
	}
}

func TestReadJSONRejectsCorruptInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"NotJSON", "not json"},
		{"WrongCellCount", `{"width":2,"height":2,"cells":[0,0]}`},
		{"ZeroDims", `{"width":0,"height":2,"cells":[]}`},
		{"BoundaryLink", `{"width":1,"height":1,"cells":[1]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(bytes.NewReader([]byte(tt.data))); err == nil {
				t.Error("ReadJSON accepted corrupt input")
			}
		})
	}
}

func cellBytes(g *maze.Grid) []byte {
	cells := g.Cells()
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = byte(c)
	}
	return out
}
