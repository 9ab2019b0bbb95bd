package raster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"White", "#FFFFFF", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, false},
		{"Black", "#000000", color.RGBA{0, 0, 0, 0xFF}, false},
		{"NoHash", "FF8000", color.RGBA{0xFF, 0x80, 0x00, 0xFF}, false},
		{"Lowercase", "#a0b1c2", color.RGBA{0xA0, 0xB1, 0xC2, 0xFF}, false},
		{"TooShort", "#FFF", color.RGBA{}, true},
		{"TooLong", "#FFFFFFFF", color.RGBA{}, true},
		{"NotHex", "#GGGGGG", color.RGBA{}, true},
		{"Empty", "", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderDimensions(t *testing.T) {
	g, err := maze.New(5, 3)
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{CellSize: 10, WallSize: 2, Background: color.White, Wall: color.Black}
	img := Render(g, opts)
	bounds := img.Bounds()
	if got, want := bounds.Dx(), 5*10+2; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got, want := bounds.Dy(), 3*10+2; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}
}

func TestRenderCellInteriorIsBackground(t *testing.T) {
	g, err := maze.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	bg := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	img := Render(g, Options{CellSize: 10, WallSize: 1, Background: bg, Wall: color.Black})

	// The center of a cell is never covered by a wall rectangle.
	r, gr, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 0xFF || gr>>8 != 0xFF || b>>8 != 0xFF {
		t.Errorf("cell interior = %v, want background", img.At(5, 5))
	}
}

func TestRenderPNGMagic(t *testing.T) {
	g, err := maze.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	gen, err := maze.NewGenerator("sidewinder")
	if err != nil {
		t.Fatal(err)
	}
	gen.Generate(g, maze.NewSource(7))

	data, err := RenderPNG(g, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output does not start with the PNG signature")
	}
}

func TestOptionsNormalize(t *testing.T) {
	g, err := maze.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	// A zero Options must fall back to defaults rather than producing an
	// empty image.
	img := Render(g, Options{})
	def := DefaultOptions()
	if got, want := img.Bounds().Dx(), 2*def.CellSize+def.WallSize; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
}
