package main

import (
	"flag"
	"log"

	"chosenoffset.com/hexboard/internal/config"
	"chosenoffset.com/hexboard/internal/game"
	ebitenrender "chosenoffset.com/hexboard/internal/render/ebiten"
	"chosenoffset.com/hexboard/internal/world/atlas"
)

func main() {
	configPath := flag.String("config", "hexboard.json", "Config file (missing file uses defaults)")
	seed := flag.Int64("seed", 0, "Random seed (0 = use current time)")
	width := flag.Int("width", 0, "Tiles per even row (overrides config)")
	height := flag.Int("height", 0, "Board rows (overrides config)")
	atlasPath := flag.String("atlas", "", "Sprite atlas JSON (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Only flags given on the command line override the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Board.Seed = *seed
		case "width":
			cfg.Board.Width = *width
		case "height":
			cfg.Board.Height = *height
		case "atlas":
			cfg.Display.AtlasPath = *atlasPath
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	sprites, err := atlas.LoadAtlas(cfg.Display.AtlasPath, loader)
	if err != nil {
		log.Printf("Warning: Failed to load atlas, drawing flat tiles: %v", err)
	}

	view := game.NewBoardView(cfg, renderer, inputMgr, sprites)
	if err := view.Initialize(); err != nil {
		log.Fatalf("Failed to build board: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	engine.SetWindowTitle(cfg.Display.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting board viewer...")
	if err := engine.RunGame(view); err != nil {
		log.Fatal(err)
	}
}
