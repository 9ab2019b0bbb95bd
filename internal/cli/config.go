package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/JakeOShannessy/minotaur/internal/server"
	"github.com/JakeOShannessy/minotaur/pkg/pipeline"
)

// Config holds user preferences loaded from config.toml. Zero values fall
// back to the pipeline defaults, so a partial file only overrides the keys
// it names.
type Config struct {
	Algorithm string       `toml:"algorithm"`
	Width     int          `toml:"width"`
	Height    int          `toml:"height"`
	Render    RenderConfig `toml:"render"`
	Server    ServerConfig `toml:"server"`
}

// RenderConfig holds raster rendering preferences.
type RenderConfig struct {
	CellSize   int    `toml:"cell_size"`
	WallSize   int    `toml:"wall_size"`
	Background string `toml:"background"`
	Wall       string `toml:"wall"`
}

// ServerConfig holds serve command preferences.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	Redis    string `toml:"redis"`
	MaxCells int    `toml:"max_cells"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Algorithm: pipeline.DefaultAlgorithm,
		Width:     pipeline.DefaultWidth,
		Height:    pipeline.DefaultHeight,
		Render: RenderConfig{
			CellSize:   pipeline.DefaultCellSize,
			WallSize:   pipeline.DefaultWallSize,
			Background: pipeline.DefaultBackground,
			Wall:       pipeline.DefaultWallColor,
		},
		Server: ServerConfig{
			Addr:     ":8080",
			MaxCells: server.DefaultMaxCells,
		},
	}
}

// LoadConfig reads a TOML config file and merges it over the defaults.
// A missing file is not an error; the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

// merge overlays non-zero values from other.
func (c *Config) merge(other Config) {
	if other.Algorithm != "" {
		c.Algorithm = other.Algorithm
	}
	if other.Width != 0 {
		c.Width = other.Width
	}
	if other.Height != 0 {
		c.Height = other.Height
	}
	if other.Render.CellSize != 0 {
		c.Render.CellSize = other.Render.CellSize
	}
	if other.Render.WallSize != 0 {
		c.Render.WallSize = other.Render.WallSize
	}
	if other.Render.Background != "" {
		c.Render.Background = other.Render.Background
	}
	if other.Render.Wall != "" {
		c.Render.Wall = other.Render.Wall
	}
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.Redis != "" {
		c.Server.Redis = other.Server.Redis
	}
	if other.Server.MaxCells != 0 {
		c.Server.MaxCells = other.Server.MaxCells
	}
}
