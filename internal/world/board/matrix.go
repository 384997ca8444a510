package board

import (
	"strings"
)

// Row is one line of the board, left to right
type Row []TileCategory

// Matrix is the generated board, indexed [row][col]. Odd rows are one tile
// narrower than even rows.
type Matrix []Row

// RowCounts holds the run lengths of a single row in row order
type RowCounts struct {
	Light           int `json:"light"`
	LightAdditional int `json:"light_additional"`
	NightAdditional int `json:"night_additional"`
	Night           int `json:"night"`
}

// Total returns the number of tiles described by the counts
func (rc RowCounts) Total() int {
	return rc.Light + rc.LightAdditional + rc.NightAdditional + rc.Night
}

// Of returns the count for a single category
func (rc RowCounts) Of(c TileCategory) int {
	switch c {
	case Light:
		return rc.Light
	case LightAdditional:
		return rc.LightAdditional
	case NightAdditional:
		return rc.NightAdditional
	case Night:
		return rc.Night
	}
	return 0
}

// Counts tallies each category in the row
func (r Row) Counts() RowCounts {
	var rc RowCounts
	for _, c := range r {
		switch c {
		case Light:
			rc.Light++
		case LightAdditional:
			rc.LightAdditional++
		case NightAdditional:
			rc.NightAdditional++
		case Night:
			rc.Night++
		}
	}
	return rc
}

// Ordered reports whether the row follows the light, light additional,
// night additional, night order with no interleaving
func (r Row) Ordered() bool {
	for i := 1; i < len(r); i++ {
		if r[i] < r[i-1] {
			return false
		}
	}
	return true
}

// Height returns the number of rows
func (m Matrix) Height() int {
	return len(m)
}

// Width returns the width of the widest (even) row
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// At returns the category at (row, col) and whether the cell exists
func (m Matrix) At(row, col int) (TileCategory, bool) {
	if row < 0 || row >= len(m) || col < 0 || col >= len(m[row]) {
		return 0, false
	}
	return m[row][col], true
}

// Counts returns the run lengths of every row
func (m Matrix) Counts() []RowCounts {
	counts := make([]RowCounts, len(m))
	for i, row := range m {
		counts[i] = row.Counts()
	}
	return counts
}

// Totals sums every category across the whole board
func (m Matrix) Totals() RowCounts {
	var total RowCounts
	for _, row := range m {
		rc := row.Counts()
		total.Light += rc.Light
		total.LightAdditional += rc.LightAdditional
		total.NightAdditional += rc.NightAdditional
		total.Night += rc.Night
	}
	return total
}

var categoryGlyphs = [...]byte{
	Light:           'L',
	LightAdditional: 'l',
	NightAdditional: 'n',
	Night:           'N',
}

// String draws the board as text, odd rows indented by one space
func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i%2 == 1 {
			sb.WriteByte(' ')
		}
		for j, c := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if c.Valid() {
				sb.WriteByte(categoryGlyphs[c])
			} else {
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Strings converts the board to its text categories, for JSON responses
func (m Matrix) Strings() [][]string {
	out := make([][]string, len(m))
	for i, row := range m {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.String()
		}
	}
	return out
}
