package board_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hexboard/internal/world/board"
)

func TestTileCategory_Text(t *testing.T) {
	for _, c := range board.Categories {
		parsed, err := board.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := board.ParseCategory("dusk")
	assert.Error(t, err)
	assert.Equal(t, "category(7)", board.TileCategory(7).String())

	_, err = json.Marshal(board.TileCategory(7))
	assert.Error(t, err)
}

func TestTileCategory_Sides(t *testing.T) {
	assert.True(t, board.Light.IsLight())
	assert.True(t, board.LightAdditional.IsLight())
	assert.False(t, board.NightAdditional.IsLight())
	assert.False(t, board.Night.IsLight())

	assert.True(t, board.Light.IsPrimary())
	assert.True(t, board.Night.IsPrimary())
	assert.False(t, board.LightAdditional.IsPrimary())
}

func TestRow_JSON(t *testing.T) {
	row := board.Row{board.Light, board.NightAdditional, board.Night}
	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `["light","night_additional","night"]`, string(out))

	var back board.Row
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, row, back)
}

func TestRow_Ordered(t *testing.T) {
	assert.True(t, board.Row{}.Ordered())
	assert.True(t, board.Row{board.Light, board.Light, board.Night}.Ordered())
	assert.True(t, board.Row{board.LightAdditional, board.NightAdditional}.Ordered())
	assert.False(t, board.Row{board.Night, board.Light}.Ordered())
	assert.False(t, board.Row{board.Light, board.NightAdditional, board.LightAdditional}.Ordered())
}

func TestRowCounts_Row(t *testing.T) {
	rc := board.RowCounts{Light: 2, LightAdditional: 1, NightAdditional: 0, Night: 1}
	assert.Equal(t, board.Row{board.Light, board.Light, board.LightAdditional, board.Night}, rc.Row())
	assert.Equal(t, rc, rc.Row().Counts())
	assert.Equal(t, 4, rc.Total())
}

func TestMatrix_Helpers(t *testing.T) {
	m := board.Matrix{
		{board.Light, board.LightAdditional, board.Night},
		{board.NightAdditional, board.Night},
	}
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, "L l N\n n N\n", m.String())
	assert.Equal(t, [][]string{{"light", "light_additional", "night"}, {"night_additional", "night"}}, m.Strings())
	assert.Equal(t, board.RowCounts{Light: 1, LightAdditional: 1, NightAdditional: 1, Night: 2}, m.Totals())

	c, ok := m.At(1, 1)
	assert.True(t, ok)
	assert.Equal(t, board.Night, c)
	_, ok = m.At(1, 2)
	assert.False(t, ok)
	_, ok = m.At(-1, 0)
	assert.False(t, ok)

	assert.Equal(t, 0, board.Matrix(nil).Width())
}
