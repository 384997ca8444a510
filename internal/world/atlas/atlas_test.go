package atlas

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hexboard/internal/render"
	"chosenoffset.com/hexboard/internal/world/board"
)

const testAtlasJSON = `{
	"name": "test_board",
	"image_path": "board.png",
	"tile_width": 64,
	"tile_height": 74,
	"tiles": [
		{"name": "light_a", "atlas_x": 0, "atlas_y": 0},
		{"name": "light_b", "atlas_x": 1, "atlas_y": 0},
		{"name": "light_extra", "atlas_x": 2, "atlas_y": 0},
		{"name": "night_extra", "atlas_x": 0, "atlas_y": 1},
		{"name": "night_a", "atlas_x": 1, "atlas_y": 1}
	],
	"pools": {
		"light": ["light_a", "light_b"],
		"light_additional": ["light_extra"],
		"night_additional": ["night_extra"],
		"night": ["night_a"]
	}
}`

// fakeImage remembers the rectangle it was cut from.
type fakeImage struct {
	rect image.Rectangle
}

func (f *fakeImage) Bounds() image.Rectangle { return f.rect }
func (f *fakeImage) Size() (int, int) { return f.rect.Dx(), f.rect.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image { return &fakeImage{rect: r} }
func (f *fakeImage) Fill(color.Color) {}
func (f *fakeImage) Clear() {}
func (f *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (f *fakeImage) Dispose() {}

type fakeLoader struct {
	paths []string
	err   error
}

func (l *fakeLoader) LoadImage(path string) (render.Image, error) {
	l.paths = append(l.paths, path)
	if l.err != nil {
		return nil, l.err
	}
	return &fakeImage{rect: image.Rect(0, 0, 192, 148)}, nil
}

type fixedSource struct {
	value int
	calls int
}

func (s *fixedSource) IntRange(lo, hi int) int {
	s.calls++
	return s.value
}

func TestAtlasConfigParsing(t *testing.T) {
	config, err := ParseConfig([]byte(testAtlasJSON))
	require.NoError(t, err)

	assert.Equal(t, "test_board", config.Name)
	assert.Equal(t, 64, config.TileWidth)
	assert.Equal(t, 74, config.TileHeight)
	require.Len(t, config.Tiles, 5)
	assert.Equal(t, TileDefinition{Name: "night_a", AtlasX: 1, AtlasY: 1}, config.Tiles[4])

	assert.Equal(t, []string{"light_a", "light_b"}, config.Pools[board.Light])
	assert.Equal(t, []string{"night_a"}, config.Pools[board.Night])
}

func TestParseConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		json string
		want error
	}{
		{"BadDimensions", `{"image_path":"a.png","tile_width":0,"tile_height":8}`, nil},
		{"NoImage", `{"tile_width":8,"tile_height":8}`, nil},
		{"MissingPool", `{"image_path":"a.png","tile_width":8,"tile_height":8,
			"tiles":[{"name":"a"}],
			"pools":{"light":["a"],"light_additional":["a"],"night_additional":["a"]}}`, ErrEmptyPool},
		{"UnknownTile", `{"image_path":"a.png","tile_width":8,"tile_height":8,
			"tiles":[{"name":"a"}],
			"pools":{"light":["a"],"light_additional":["a"],"night_additional":["a"],"night":["b"]}}`, ErrTileNotFound},
		{"UnknownCategory", `{"image_path":"a.png","tile_width":8,"tile_height":8,"pools":{"dusk":["a"]}}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.json))
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestLoadAtlas(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "board_atlas.json")
	require.NoError(t, os.WriteFile(configPath, []byte(testAtlasJSON), 0o644))

	loader := &fakeLoader{}
	a, err := LoadAtlas(configPath, loader)
	require.NoError(t, err)

	// The image path is resolved next to the config file.
	assert.Equal(t, []string{filepath.Join(dir, "board.png")}, loader.paths)
	assert.InDelta(t, 74.0/64.0, a.TileAspect(), 1e-9)

	tile, ok := a.GetTile("night_extra")
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 74, 64, 148), a.TileRect(tile))
	sub := a.GetTileSubImage(tile)
	assert.Equal(t, image.Rect(0, 74, 64, 148), sub.Bounds())
}

func TestLoadAtlas_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadAtlas(filepath.Join(dir, "missing.json"), &fakeLoader{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	configPath := filepath.Join(dir, "atlas.json")
	require.NoError(t, os.WriteFile(configPath, []byte(testAtlasJSON), 0o644))
	loadErr := errors.New("decode failed")
	_, err = LoadAtlas(configPath, &fakeLoader{err: loadErr})
	assert.ErrorIs(t, err, loadErr)
}

func TestPickTile(t *testing.T) {
	config, err := ParseConfig([]byte(testAtlasJSON))
	require.NoError(t, err)
	a := New(config, &fakeImage{})

	rng := &fixedSource{value: 1}
	tile, err := a.PickTile(board.Light, rng)
	require.NoError(t, err)
	assert.Equal(t, "light_b", tile.Name)
	assert.Equal(t, 1, rng.calls)

	// Single-entry pools don't consume a draw.
	tile, err = a.PickTile(board.NightAdditional, rng)
	require.NoError(t, err)
	assert.Equal(t, "night_extra", tile.Name)
	assert.Equal(t, 1, rng.calls)
}

func TestPickTile_Errors(t *testing.T) {
	a := New(&AtlasConfig{
		TileWidth:  8,
		TileHeight: 8,
		Tiles:      []TileDefinition{{Name: "a"}},
		Pools:      map[board.TileCategory][]string{board.Light: {"ghost"}},
	}, &fakeImage{})

	_, err := a.PickTile(board.Night, board.NewRandSource(1))
	assert.ErrorIs(t, err, ErrEmptyPool)

	_, err = a.PickTile(board.Light, board.NewRandSource(1))
	assert.ErrorIs(t, err, ErrTileNotFound)
}

func TestPickTile_CoversPool(t *testing.T) {
	config, err := ParseConfig([]byte(testAtlasJSON))
	require.NoError(t, err)
	a := New(config, &fakeImage{})

	rng := board.NewRandSource(11)
	seen := make(map[string]int)
	for i := 0; i < 200; i++ {
		tile, err := a.PickTile(board.Light, rng)
		require.NoError(t, err)
		seen[tile.Name]++
	}
	assert.Len(t, seen, 2)
}
