// Package layout positions board tiles on screen. Tiles are sized to fill the
// area's width, rows overlap vertically by the row offset factor, and odd rows
// are shifted right by half a tile to form the hex offset.
package layout

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/hexboard/internal/world/board"
)

// DefaultRowOffsetFactor is how much rows overlap: stride = tile height / factor
const DefaultRowOffsetFactor = 1.3

// ErrInvalidParams indicates a layout that cannot hold a single tile
var ErrInvalidParams = errors.New("layout: invalid parameters")

// Params describes the drawing area and the board it has to hold
type Params struct {
	AreaWidth       float64 // Width of the drawing area in pixels
	AreaHeight      float64 // Height of the drawing area in pixels
	Columns         int     // Tiles per even row
	TileAspect      float64 // Sprite height / width
	RowOffsetFactor float64 // 0 means DefaultRowOffsetFactor
}

// Rect is an axis-aligned screen rectangle, top-left origin
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the rectangle's centre point
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout holds the derived tile metrics for a set of Params
type Layout struct {
	params     Params
	tileWidth  float64
	tileHeight float64
	stride     float64
}

// New derives tile metrics from the params
func New(p Params) (*Layout, error) {
	if p.AreaWidth <= 0 || p.AreaHeight <= 0 {
		return nil, fmt.Errorf("%w: area %vx%v", ErrInvalidParams, p.AreaWidth, p.AreaHeight)
	}
	if p.Columns < 1 {
		return nil, fmt.Errorf("%w: columns %d", ErrInvalidParams, p.Columns)
	}
	if p.TileAspect <= 0 {
		return nil, fmt.Errorf("%w: tile aspect %v", ErrInvalidParams, p.TileAspect)
	}
	if p.RowOffsetFactor == 0 {
		p.RowOffsetFactor = DefaultRowOffsetFactor
	}
	if p.RowOffsetFactor < 0 {
		return nil, fmt.Errorf("%w: row offset factor %v", ErrInvalidParams, p.RowOffsetFactor)
	}

	tileWidth := p.AreaWidth / float64(p.Columns)
	tileHeight := tileWidth * p.TileAspect

	return &Layout{
		params:     p,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		stride:     tileHeight / p.RowOffsetFactor,
	}, nil
}

// TileSize returns the on-screen size of one tile
func (l *Layout) TileSize() (w, h float64) {
	return l.tileWidth, l.tileHeight
}

// RowStride returns the vertical distance between consecutive rows
func (l *Layout) RowStride() float64 {
	return l.stride
}

// MaxRows returns how many rows fit in the area, measured in whole-pixel strides
func (l *Layout) MaxRows() int {
	step := math.Ceil(l.stride)
	if step <= 0 {
		return 0
	}
	return int(l.params.AreaHeight / step)
}

// FitRows caps the requested row count to what the area can show
func (l *Layout) FitRows(requested int) int {
	if limit := l.MaxRows(); requested > limit {
		return limit
	}
	return requested
}

// Offset returns the centre of cell (row, col) relative to the area centre,
// with y pointing up and row 0 along the bottom edge
func (l *Layout) Offset(row, col int) (x, y float64) {
	shift := 0.0
	if row%2 == 1 {
		shift = l.tileWidth / 2
	}
	x = -l.params.AreaWidth/2 + l.tileWidth/2 + shift + l.tileWidth*float64(col)
	y = -l.params.AreaHeight/2 + l.tileHeight/2 + l.stride*float64(row)
	return x, y
}

// Cell returns the screen rectangle of cell (row, col) with y pointing down
func (l *Layout) Cell(row, col int) Rect {
	ox, oy := l.Offset(row, col)
	cx := l.params.AreaWidth/2 + ox
	cy := l.params.AreaHeight/2 - oy
	return Rect{
		X: cx - l.tileWidth/2,
		Y: cy - l.tileHeight/2,
		W: l.tileWidth,
		H: l.tileHeight,
	}
}

// HitTest finds the cell under a screen point. Rows drawn later sit on top,
// so they are checked first.
func (l *Layout) HitTest(m board.Matrix, x, y float64) (row, col int, ok bool) {
	for i := len(m) - 1; i >= 0; i-- {
		for j := len(m[i]) - 1; j >= 0; j-- {
			if l.Cell(i, j).Contains(x, y) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}
