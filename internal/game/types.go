package game

import (
	"chosenoffset.com/hexboard/internal/render"
	"chosenoffset.com/hexboard/internal/world/atlas"
	"chosenoffset.com/hexboard/internal/world/board"
	"chosenoffset.com/hexboard/internal/world/layout"
)

// PlacedTile is a board cell with its sprite and screen rectangle resolved.
type PlacedTile struct {
	Row, Col int
	Category board.TileCategory
	Tile     *atlas.TileDefinition // nil when drawing without an atlas
	Sprite   render.Image
	Rect     layout.Rect
}

// TileClick is delivered to the click sink when a tile is clicked.
type TileClick struct {
	Row, Col int
	Category board.TileCategory
}

// ClickSink receives tile clicks.
type ClickSink func(TileClick)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
