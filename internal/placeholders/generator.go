// Package placeholders draws stand-in hex sprites for the board so it can be
// shown before real art exists.
package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"chosenoffset.com/hexboard/internal/world/atlas"
	"chosenoffset.com/hexboard/internal/world/board"
)

// Placeholder tile size. The height gives a pointy-top hexagon its
// natural proportions.
const (
	TileWidth  = 64
	TileHeight = 74
)

// Output file names
const (
	AtlasImageName  = "board.png"
	AtlasConfigName = "board_atlas.json"
)

// ColorPalette defines colors for each side of the board
var ColorPalette = struct {
	Light           color.RGBA
	LightAdditional color.RGBA
	NightAdditional color.RGBA
	Night           color.RGBA
	Outline         color.RGBA
}{
	Light:           color.RGBA{232, 196, 104, 255}, // Sunlit gold
	LightAdditional: color.RGBA{246, 232, 184, 255}, // Pale dawn
	NightAdditional: color.RGBA{92, 104, 140, 255},  // Dusk slate
	Night:           color.RGBA{40, 48, 88, 255},    // Deep night blue
	Outline:         color.RGBA{20, 20, 24, 255},
}

// variant describes one sprite in the generated atlas
type variant struct {
	name     string
	category board.TileCategory
	pattern  string
}

// variants lists the sprites per category; atlas column = category,
// atlas row = variant index
var variants = [][]variant{
	{
		{"light_plain", board.Light, ""},
		{"light_dots", board.Light, "dots"},
	},
	{
		{"light_additional_plain", board.LightAdditional, ""},
		{"light_additional_cross", board.LightAdditional, "cross"},
	},
	{
		{"night_additional_plain", board.NightAdditional, ""},
		{"night_additional_grid", board.NightAdditional, "grid"},
	},
	{
		{"night_plain", board.Night, ""},
		{"night_diagonal", board.Night, "diagonal"},
	},
}

// CategoryColor returns the base palette color of a category
func CategoryColor(category board.TileCategory) color.RGBA {
	switch category {
	case board.Light:
		return ColorPalette.Light
	case board.LightAdditional:
		return ColorPalette.LightAdditional
	case board.NightAdditional:
		return ColorPalette.NightAdditional
	default:
		return ColorPalette.Night
	}
}

// inHex reports whether (x, y) lies inside a pointy-top hexagon inset by
// margin pixels from the tile edges
func inHex(x, y int, margin float64) bool {
	halfW := TileWidth/2.0 - margin
	halfH := TileHeight/2.0 - margin
	if halfW <= 0 || halfH <= 0 {
		return false
	}
	dx := math.Abs(float64(x) + 0.5 - TileWidth/2.0)
	dy := math.Abs(float64(y) + 0.5 - TileHeight/2.0)
	if dx > halfW {
		return false
	}
	return dy <= halfH-(halfH/2)*(dx/halfW)
}

// CreateHexTile creates a transparent tile holding an outlined hexagon
func CreateHexTile(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileWidth, TileHeight))

	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			switch {
			case inHex(x, y, 2):
				img.Set(x, y, fillColor)
			case inHex(x, y, 0):
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreatePatternedTile creates a hex tile with a simple pattern inside it
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateHexTile(baseColor, ColorPalette.Outline)

	set := func(x, y int) {
		// Keep the pattern inside the outline
		if inHex(x, y, 3) {
			img.Set(x, y, patternColor)
		}
	}

	switch pattern {
	case "grid":
		for i := 0; i < TileHeight; i += 6 {
			for x := 0; x < TileWidth; x++ {
				set(x, i)
			}
		}
		for i := 0; i < TileWidth; i += 6 {
			for y := 0; y < TileHeight; y++ {
				set(i, y)
			}
		}
	case "dots":
		cx, cy := TileWidth/2, TileHeight/2
		dots := []image.Point{{cx - 12, cy - 12}, {cx + 12, cy - 12}, {cx - 12, cy + 12}, {cx + 12, cy + 12}, {cx, cy}}
		for _, p := range dots {
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					set(p.X+dx, p.Y+dy)
				}
			}
		}
	case "cross":
		midX, midY := TileWidth/2, TileHeight/2
		for y := 0; y < TileHeight; y++ {
			set(midX, y)
			set(midX-1, y)
		}
		for x := 0; x < TileWidth; x++ {
			set(x, midY)
			set(x, midY-1)
		}
	case "diagonal":
		for i := -TileHeight; i < TileWidth; i += 8 {
			for t := 0; t < TileHeight; t++ {
				set(i+t, t)
			}
		}
	}

	return img
}

// CreateAtlas creates a sprite atlas from multiple tiles laid out in
// columns; nil tiles leave a transparent gap
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	tileCount := len(tiles)
	rows := (tileCount + columns - 1) / columns

	atlasImg := image.NewRGBA(image.Rect(0, 0, columns*TileWidth, rows*TileHeight))

	// Fill with transparent background
	draw.Draw(atlasImg, atlasImg.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	for i, tile := range tiles {
		if tile == nil {
			continue
		}

		x := (i % columns) * TileWidth
		y := (i / columns) * TileHeight

		destRect := image.Rect(x, y, x+TileWidth, y+TileHeight)
		draw.Draw(atlasImg, destRect, tile, image.Point{}, draw.Src)
	}

	return atlasImg
}

// GenerateBoardAtlas draws every variant and returns the atlas image along
// with the matching atlas config
func GenerateBoardAtlas() (*image.RGBA, *atlas.AtlasConfig) {
	columns := len(variants)
	rows := 0
	for _, vs := range variants {
		if len(vs) > rows {
			rows = len(vs)
		}
	}

	config := &atlas.AtlasConfig{
		Name:       "placeholder_board",
		ImagePath:  AtlasImageName,
		TileWidth:  TileWidth,
		TileHeight: TileHeight,
		Pools:      make(map[board.TileCategory][]string),
	}

	tiles := make([]*image.RGBA, columns*rows)
	for col, vs := range variants {
		for row, v := range vs {
			base := CategoryColor(v.category)
			patternColor := Darken(base, 0.7)
			if !v.category.IsLight() {
				patternColor = Lighten(base, 0.35)
			}

			tiles[row*columns+col] = CreatePatternedTile(base, patternColor, v.pattern)
			config.Tiles = append(config.Tiles, atlas.TileDefinition{Name: v.name, AtlasX: col, AtlasY: row})
			config.Pools[v.category] = append(config.Pools[v.category], v.name)
		}
	}

	return CreateAtlas(tiles, columns), config
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes the placeholder atlas image and config into dir
func GenerateAndSave(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}

	img, config := GenerateBoardAtlas()

	imagePath := filepath.Join(dir, AtlasImageName)
	if err := SavePNG(img, imagePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", AtlasImageName, err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode atlas config: %w", err)
	}
	configPath := filepath.Join(dir, AtlasConfigName)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", AtlasConfigName, err)
	}

	return nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
