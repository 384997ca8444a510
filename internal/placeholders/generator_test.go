package placeholders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hexboard/internal/world/atlas"
	"chosenoffset.com/hexboard/internal/world/board"
)

func TestCreateHexTile(t *testing.T) {
	fill := color.RGBA{200, 10, 10, 255}
	img := CreateHexTile(fill, ColorPalette.Outline)

	assert.Equal(t, image.Rect(0, 0, TileWidth, TileHeight), img.Bounds())
	assert.Equal(t, fill, img.RGBAAt(TileWidth/2, TileHeight/2))

	// Corners lie outside the hexagon
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.RGBAAt(TileWidth-1, TileHeight-1).A)
}

func TestCreatePatternedTile(t *testing.T) {
	base := ColorPalette.Night
	pattern := Lighten(base, 0.5)

	img := CreatePatternedTile(base, pattern, "cross")
	assert.Equal(t, pattern, img.RGBAAt(TileWidth/2, TileHeight/2))

	plain := CreatePatternedTile(base, pattern, "")
	assert.Equal(t, base, plain.RGBAAt(TileWidth/2, TileHeight/2))
}

func TestCreateAtlas(t *testing.T) {
	red := CreateHexTile(color.RGBA{255, 0, 0, 255}, ColorPalette.Outline)
	img := CreateAtlas([]*image.RGBA{red, nil, red}, 2)

	assert.Equal(t, image.Rect(0, 0, 2*TileWidth, 2*TileHeight), img.Bounds())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(TileWidth/2, TileHeight+TileHeight/2))
	assert.Equal(t, uint8(0), img.RGBAAt(TileWidth+TileWidth/2, TileHeight/2).A)
}

func TestGenerateBoardAtlas(t *testing.T) {
	img, config := GenerateBoardAtlas()

	assert.Equal(t, image.Rect(0, 0, 4*TileWidth, 2*TileHeight), img.Bounds())
	assert.Len(t, config.Tiles, 8)
	for _, c := range board.Categories {
		assert.Len(t, config.Pools[c], 2, c.String())
	}

	// Each category's plain variant sits in row 0 of its column
	for col, c := range board.Categories {
		center := img.RGBAAt(col*TileWidth+TileWidth/2, TileHeight/2)
		assert.Equal(t, CategoryColor(c), center, c.String())
	}
}

func TestGenerateAndSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	require.NoError(t, GenerateAndSave(dir))

	data, err := os.ReadFile(filepath.Join(dir, AtlasConfigName))
	require.NoError(t, err)
	config, err := atlas.ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, AtlasImageName, config.ImagePath)
	assert.Equal(t, []string{"night_plain", "night_diagonal"}, config.Pools[board.Night])

	f, err := os.Open(filepath.Join(dir, AtlasImageName))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4*TileWidth, img.Bounds().Dx())
	assert.Equal(t, 2*TileHeight, img.Bounds().Dy())
}

func TestDarkenLighten(t *testing.T) {
	c := color.RGBA{100, 200, 50, 255}
	assert.Equal(t, color.RGBA{50, 100, 25, 255}, Darken(c, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(c, 1))
}
