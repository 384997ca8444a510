// Package board generates the tile matrix for a hex-offset board. Each row is
// split into four contiguous runs: the light side's primary and additional
// tiles on the left, the night side's additional and primary tiles on the
// right.
package board

import (
	"fmt"
)

// TileCategory identifies which of the four tile kinds a cell holds
type TileCategory uint8

const (
	Light           TileCategory = iota // Primary tile of the light side
	LightAdditional                     // Secondary tile of the light side
	NightAdditional                     // Secondary tile of the night side
	Night                               // Primary tile of the night side
)

// Categories lists every category in row order
var Categories = []TileCategory{Light, LightAdditional, NightAdditional, Night}

var categoryNames = [...]string{
	Light:           "light",
	LightAdditional: "light_additional",
	NightAdditional: "night_additional",
	Night:           "night",
}

// String returns the text form used in JSON, atlas pools and logs
func (c TileCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Valid reports whether c is one of the four known categories
func (c TileCategory) Valid() bool {
	return int(c) < len(categoryNames)
}

// IsLight reports whether the category belongs to the light side
func (c TileCategory) IsLight() bool {
	return c == Light || c == LightAdditional
}

// IsPrimary reports whether the category is a side's primary tile
func (c TileCategory) IsPrimary() bool {
	return c == Light || c == Night
}

// ParseCategory converts a text form back into a TileCategory
func ParseCategory(s string) (TileCategory, error) {
	for i, name := range categoryNames {
		if name == s {
			return TileCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tile category: %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (c TileCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown tile category: %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *TileCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
