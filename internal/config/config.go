// Package config holds the start-time settings of a game.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"time"

	"gridsnake/internal/grid"
)

// RGB is an opaque color written as [r, g, b] in config files.
type RGB [3]uint8

func (c RGB) Color() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

// Colors are the four display colors.
type Colors struct {
	Background RGB `json:"background"`
	Border     RGB `json:"border"`
	Food       RGB `json:"food"`
	Snake      RGB `json:"snake"`
}

// Config is read once at startup and never changed while the game runs.
type Config struct {
	GridWidth  int    `json:"grid_width"`
	GridHeight int    `json:"grid_height"`
	CellSize   int    `json:"cell_size"` // pixels, rendering only
	TickRate   int    `json:"tick_rate"` // ticks per second
	Seed       int64  `json:"seed"`      // 0 picks a time based seed
	Colors     Colors `json:"colors"`
}

// Default matches a 640x480 field split into 20 pixel cells.
func Default() Config {
	return Config{
		GridWidth:  32,
		GridHeight: 24,
		CellSize:   20,
		TickRate:   20,
		Colors: Colors{
			Background: RGB{0, 0, 0},
			Border:     RGB{93, 216, 228},
			Food:       RGB{255, 0, 0},
			Snake:      RGB{0, 255, 0},
		},
	}
}

var ErrInvalid = errors.New("invalid config")

// Load reads a JSON file over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.GridWidth < 2 || c.GridHeight < 2:
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalid, c.GridWidth, c.GridHeight)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.CellSize)
	case c.TickRate < 1:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.TickRate)
	}
	return nil
}

func (c Config) Geometry() grid.Geometry {
	return grid.Geometry{Width: c.GridWidth, Height: c.GridHeight}
}

// TickInterval is the wall-clock length of one tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// ScreenSize is the field size in pixels.
func (c Config) ScreenSize() (w, h int) {
	return c.GridWidth * c.CellSize, c.GridHeight * c.CellSize
}
