package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/hexboard/internal/render"
	"chosenoffset.com/hexboard/internal/world/board"
)

var (
	backgroundColor = color.RGBA{18, 20, 28, 255}
	hoverColor      = color.RGBA{255, 255, 255, 200}
	statusColor     = color.RGBA{220, 220, 220, 255}
	statusBarColor  = color.RGBA{0, 0, 0, 160}
)

// categoryColors are used for tiles when no atlas is loaded
var categoryColors = map[board.TileCategory]color.RGBA{
	board.Light:           {232, 196, 104, 255},
	board.LightAdditional: {246, 232, 184, 255},
	board.NightAdditional: {92, 104, 140, 255},
	board.Night:           {40, 48, 88, 255},
}

// Draw renders the board to the screen.
func (v *BoardView) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	v.drawTiles(screen)
	v.drawHover(screen)
	v.drawUI(screen)
}

func (v *BoardView) drawTiles(screen render.Image) {
	for _, tile := range v.tiles {
		if tile.Sprite == nil || render.NewGeoM == nil {
			v.Renderer.FillRect(screen,
				float32(tile.Rect.X), float32(tile.Rect.Y),
				float32(tile.Rect.W), float32(tile.Rect.H),
				categoryColors[tile.Category])
			continue
		}

		// Scale the sprite to the layout cell
		w, h := tile.Sprite.Size()
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Scale(tile.Rect.W/float64(w), tile.Rect.H/float64(h))
		opts.GeoM.Translate(tile.Rect.X, tile.Rect.Y)
		screen.DrawImage(tile.Sprite, opts)
	}
}

func (v *BoardView) drawHover(screen render.Image) {
	if v.Hovered == nil {
		return
	}
	r := v.Hovered.Rect
	v.Renderer.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, hoverColor)
}

func (v *BoardView) drawUI(screen render.Image) {
	if v.matrix != nil {
		totals := v.matrix.Totals()
		status := fmt.Sprintf("seed %d | %dx%d | light %d | night %d | R: regenerate  Esc: quit",
			v.rng.Seed(), v.matrix.Width(), v.matrix.Height(),
			totals.Light+totals.LightAdditional, totals.Night+totals.NightAdditional)
		w, h := v.Renderer.MeasureText(status)
		v.Renderer.FillRect(screen, 4, 14, float32(w+12), float32(h+12), statusBarColor)
		v.Renderer.DrawText(screen, status, 10, 20, statusColor)
	}

	// Draw on-screen messages
	y := 50.0
	for _, msg := range v.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		v.Renderer.DrawText(screen, msg.Text, 20, int(y), color.RGBA{255, 255, 255, alpha})
		y += 20
	}
}
