// Package config provides the application settings for the board viewer and
// the board service. Settings are loaded from a JSON file layered over
// defaults, so a partial file only overrides what it names.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/hexboard/internal/world/board"
	"chosenoffset.com/hexboard/internal/world/layout"
)

// AddrEnv overrides the service listen address when set
const AddrEnv = "HEXBOARD_ADDR"

// Config holds all settings for a board
type Config struct {
	// Board size
	Board BoardConfig `json:"board"`

	// Generation bounds passed to the generator
	Generation board.GenerationConfig `json:"generation"`

	// Window and drawing
	Display DisplayConfig `json:"display"`

	// HTTP service
	Server ServerConfig `json:"server"`
}

// BoardConfig defines the board dimensions and seed
type BoardConfig struct {
	Width  int   `json:"width"`  // Tiles per even row
	Height int   `json:"height"` // Requested rows (capped by what fits on screen)
	Seed   int64 `json:"seed"`   // Random seed (0 = use current time)
}

// DisplayConfig defines the window and sprite settings
type DisplayConfig struct {
	ScreenWidth     int     `json:"screen_width"`      // Logical screen width in pixels
	ScreenHeight    int     `json:"screen_height"`     // Logical screen height in pixels
	AtlasPath       string  `json:"atlas_path"`        // Sprite atlas JSON
	RowOffsetFactor float64 `json:"row_offset_factor"` // Row stride = tile height / factor
	Title           string  `json:"title"`             // Window title
}

// ServerConfig defines the board service settings
type ServerConfig struct {
	Addr      string `json:"addr"`       // Listen address
	MaxWidth  int    `json:"max_width"`  // Largest board width a request may ask for
	MaxHeight int    `json:"max_height"` // Largest board height a request may ask for
}

// DefaultConfig returns the stock 10x10 board on a 1280x800 window
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  10,
			Height: 10,
			Seed:   0,
		},
		Generation: board.DefaultConfig(),
		Display: DisplayConfig{
			ScreenWidth:     1280,
			ScreenHeight:    800,
			AtlasPath:       "data/assets/board_atlas.json",
			RowOffsetFactor: layout.DefaultRowOffsetFactor,
			Title:           "Hexboard",
		},
		Server: ServerConfig{
			Addr:      ":8080",
			MaxWidth:  256,
			MaxHeight: 256,
		},
	}
}

// LoadConfig loads the config from a JSON file. A missing file yields the
// defaults; HEXBOARD_ADDR overrides the listen address either way.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig() // Start with defaults

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Keep defaults
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if addr := os.Getenv(AddrEnv); addr != "" {
		config.Server.Addr = addr
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the settings the binaries rely on
func (c *Config) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("%w: board %dx%d", board.ErrInvalidDimensions, c.Board.Width, c.Board.Height)
	}
	if err := c.Generation.Validate(); err != nil {
		return err
	}
	if c.Display.ScreenWidth < 1 || c.Display.ScreenHeight < 1 {
		return fmt.Errorf("invalid screen size: %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.RowOffsetFactor <= 0 {
		return fmt.Errorf("invalid row offset factor: %v", c.Display.RowOffsetFactor)
	}
	if c.Server.MaxWidth < 1 || c.Server.MaxHeight < 1 {
		return fmt.Errorf("invalid server limits: %dx%d", c.Server.MaxWidth, c.Server.MaxHeight)
	}
	return nil
}
