package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/hexboard/internal/config"
	"chosenoffset.com/hexboard/internal/render"
	"chosenoffset.com/hexboard/internal/world/atlas"
	"chosenoffset.com/hexboard/internal/world/board"
	"chosenoffset.com/hexboard/internal/world/layout"
)

// defaultTileAspect is used when no atlas is loaded
const defaultTileAspect = 1.0

// messageDuration is how long a click readout stays on screen, in seconds
const messageDuration = 2.5

// ErrNoRoom indicates the screen is too short to fit a single row
var ErrNoRoom = errors.New("game: screen too small for a single board row")

// BoardView draws a generated board and reports clicks on its tiles.
// Nothing is generated until Initialize is called.
type BoardView struct {
	Config   *config.Config
	Renderer render.Renderer
	InputMgr render.InputManager
	Atlas    *atlas.Atlas // Optional; tiles are drawn as flat colours without it

	rng       *board.RandSource
	generator *board.Generator
	layout    *layout.Layout
	matrix    board.Matrix
	tiles     []PlacedTile
	onClick   ClickSink

	// UI state
	Hovered     *PlacedTile
	Messages    []Message
	Generations int
}

// NewBoardView creates a board view. The atlas may be nil.
func NewBoardView(cfg *config.Config, r render.Renderer, input render.InputManager, sprites *atlas.Atlas) *BoardView {
	return &BoardView{
		Config:   cfg,
		Renderer: r,
		InputMgr: input,
		Atlas:    sprites,
		onClick:  LogClick,
	}
}

// LogClick is the default click sink.
func LogClick(click TileClick) {
	log.Printf("tile clicked: row=%d col=%d category=%s", click.Row, click.Col, click.Category)
}

// SetClickSink replaces the click sink. A nil sink drops clicks.
func (v *BoardView) SetClickSink(sink ClickSink) {
	v.onClick = sink
}

// Initialize builds the layout and the first board.
func (v *BoardView) Initialize() error {
	aspect := defaultTileAspect
	if v.Atlas != nil {
		aspect = v.Atlas.TileAspect()
	}

	l, err := layout.New(layout.Params{
		AreaWidth:       float64(v.Config.Display.ScreenWidth),
		AreaHeight:      float64(v.Config.Display.ScreenHeight),
		Columns:         v.Config.Board.Width,
		TileAspect:      aspect,
		RowOffsetFactor: v.Config.Display.RowOffsetFactor,
	})
	if err != nil {
		return err
	}

	v.rng = board.NewRandSource(v.Config.Board.Seed)
	generator, err := board.NewGenerator(v.Config.Generation, v.rng)
	if err != nil {
		return err
	}

	v.layout = l
	v.generator = generator

	return v.Regenerate()
}

// Regenerate replaces the board with a fresh one, continuing the same
// random stream.
func (v *BoardView) Regenerate() error {
	if v.generator == nil {
		return fmt.Errorf("game: board view not initialized")
	}

	rows := v.layout.FitRows(v.Config.Board.Height)
	if rows < 1 {
		return ErrNoRoom
	}
	if rows < v.Config.Board.Height {
		log.Printf("Board height capped from %d to %d rows to fit the screen", v.Config.Board.Height, rows)
	}

	matrix, err := v.generator.GenerateMatrix(v.Config.Board.Width, rows)
	if err != nil {
		return err
	}

	tiles, err := v.placeTiles(matrix)
	if err != nil {
		return err
	}

	v.matrix = matrix
	v.tiles = tiles
	v.Hovered = nil
	v.Generations++

	totals := matrix.Totals()
	log.Printf("Generated board %dx%d (seed %d): light=%d light_additional=%d night_additional=%d night=%d",
		matrix.Width(), matrix.Height(), v.rng.Seed(),
		totals.Light, totals.LightAdditional, totals.NightAdditional, totals.Night)

	return nil
}

// placeTiles resolves the screen rectangle and sprite of every cell
func (v *BoardView) placeTiles(matrix board.Matrix) ([]PlacedTile, error) {
	var tiles []PlacedTile
	for i, row := range matrix {
		for j, category := range row {
			placed := PlacedTile{
				Row:      i,
				Col:      j,
				Category: category,
				Rect:     v.layout.Cell(i, j),
			}
			if v.Atlas != nil {
				tile, err := v.Atlas.PickTile(category, v.rng)
				if err != nil {
					return nil, err
				}
				placed.Tile = tile
				placed.Sprite = v.Atlas.GetTileSubImage(tile)
			}
			tiles = append(tiles, placed)
		}
	}
	return tiles, nil
}

// Matrix returns the board currently shown.
func (v *BoardView) Matrix() board.Matrix {
	return v.matrix
}

// Tiles returns the placed tiles in draw order.
func (v *BoardView) Tiles() []PlacedTile {
	return v.tiles
}

// Update handles input: Escape quits, R regenerates, a left click is sent
// to the click sink.
func (v *BoardView) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	v.updateMessages(dt)

	if v.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if v.InputMgr.IsKeyJustPressed(render.KeyR) || v.InputMgr.IsKeyJustPressed(render.KeySpace) {
		if err := v.Regenerate(); err != nil {
			log.Printf("Failed to regenerate board: %v", err)
			return err
		}
	}

	x, y := v.InputMgr.GetCursorPosition()
	v.Hovered = v.tileAt(float64(x), float64(y))

	if v.Hovered != nil && v.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		click := TileClick{Row: v.Hovered.Row, Col: v.Hovered.Col, Category: v.Hovered.Category}
		v.addMessage(fmt.Sprintf("Row %d, col %d: %s", click.Row, click.Col, click.Category))
		if v.onClick != nil {
			v.onClick(click)
		}
	}

	return nil
}

// tileAt returns the placed tile under a screen point, if any
func (v *BoardView) tileAt(x, y float64) *PlacedTile {
	if v.layout == nil {
		return nil
	}
	row, col, ok := v.layout.HitTest(v.matrix, x, y)
	if !ok {
		return nil
	}
	// Tiles are stored row by row; find the row's first index.
	idx := 0
	for i := 0; i < row; i++ {
		idx += len(v.matrix[i])
	}
	return &v.tiles[idx+col]
}

// Layout returns the configured logical screen size.
func (v *BoardView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.Config.Display.ScreenWidth, v.Config.Display.ScreenHeight
}

func (v *BoardView) addMessage(text string) {
	v.Messages = append(v.Messages, Message{Text: text, TimeLeft: messageDuration, MaxTime: messageDuration})
}

func (v *BoardView) updateMessages(dt float64) {
	kept := v.Messages[:0]
	for _, msg := range v.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			kept = append(kept, msg)
		}
	}
	v.Messages = kept
}
