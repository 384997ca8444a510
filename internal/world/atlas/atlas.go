// Package atlas loads sprite atlases and picks a sprite for each board tile
// from the pool configured for its category.
package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/hexboard/internal/render"
	"chosenoffset.com/hexboard/internal/world/board"
)

var (
	// ErrEmptyPool indicates a category has no sprites to choose from
	ErrEmptyPool = errors.New("atlas: sprite pool is empty")
	// ErrTileNotFound indicates a pool or lookup names a tile the atlas doesn't define
	ErrTileNotFound = errors.New("atlas: tile not found")
)

// TileDefinition defines a single tile within an atlas
type TileDefinition struct {
	Name   string `json:"name"`    // Semantic name (e.g., "light_meadow")
	AtlasX int    `json:"atlas_x"` // X position in atlas (in tiles)
	AtlasY int    `json:"atlas_y"` // Y position in atlas (in tiles)
}

// AtlasConfig defines the JSON configuration for a sprite atlas
type AtlasConfig struct {
	Name       string                          `json:"name"`        // Atlas name
	ImagePath  string                          `json:"image_path"`  // Path to the atlas image, relative to the config file
	TileWidth  int                             `json:"tile_width"`  // Width of each tile in pixels
	TileHeight int                             `json:"tile_height"` // Height of each tile in pixels
	Tiles      []TileDefinition                `json:"tiles"`       // Array of tile definitions
	Pools      map[board.TileCategory][]string `json:"pools"`       // Tile names to pick from per category
}

// Atlas represents a loaded sprite atlas
type Atlas struct {
	Config      *AtlasConfig
	Image       render.Image
	TilesByName map[string]*TileDefinition // Quick lookup by name
}

// ParseConfig parses and validates an atlas configuration without loading its image
func ParseConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}

	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config")
	}

	names := make(map[string]bool, len(config.Tiles))
	for _, tile := range config.Tiles {
		if tile.Name != "" {
			names[tile.Name] = true
		}
	}

	for _, category := range board.Categories {
		pool := config.Pools[category]
		if len(pool) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPool, category)
		}
		for _, name := range pool {
			if !names[name] {
				return nil, fmt.Errorf("%w: %s (pool %s)", ErrTileNotFound, name, category)
			}
		}
	}

	return &config, nil
}

// LoadAtlas loads a sprite atlas from a JSON configuration file
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	// Read the JSON configuration file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse atlas config %s: %w", configPath, err)
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}

	// Load the atlas image
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", imagePath, err)
	}

	return New(config, img), nil
}

// New builds an atlas around an already-loaded image
func New(config *AtlasConfig, img render.Image) *Atlas {
	tilesByName := make(map[string]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		if tile.Name != "" {
			tilesByName[tile.Name] = tile
		}
	}

	return &Atlas{
		Config:      config,
		Image:       img,
		TilesByName: tilesByName,
	}
}

// GetTile returns a tile definition by name
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// TileRect returns the pixel rectangle of a tile within the atlas image
func (a *Atlas) TileRect(tile *TileDefinition) image.Rectangle {
	x := tile.AtlasX * a.Config.TileWidth
	y := tile.AtlasY * a.Config.TileHeight
	return image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight)
}

// GetTileSubImage returns the sub-image for a specific tile
func (a *Atlas) GetTileSubImage(tile *TileDefinition) render.Image {
	return a.Image.SubImage(a.TileRect(tile))
}

// TileAspect returns tile height / width, used to size tiles on screen
func (a *Atlas) TileAspect() float64 {
	return float64(a.Config.TileHeight) / float64(a.Config.TileWidth)
}

// PickTile chooses a sprite for the category uniformly from its pool
func (a *Atlas) PickTile(category board.TileCategory, rng board.RandomSource) (*TileDefinition, error) {
	pool := a.Config.Pools[category]
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPool, category)
	}

	name := pool[0]
	if len(pool) > 1 {
		name = pool[rng.IntRange(0, len(pool))]
	}

	tile, ok := a.GetTile(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTileNotFound, name)
	}
	return tile, nil
}
