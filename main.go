package main

import (
	"log"
	"os"
	"time"

	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/config"
	"solitaire/pkg/game/content"
	"solitaire/pkg/game/gameplay"
	"solitaire/pkg/game/i18n"
	"solitaire/pkg/game/renderer"
	ebitenRenderer "solitaire/pkg/game/renderer/ebiten"
	"solitaire/pkg/game/renderer/tui"
	"solitaire/pkg/game/shuffle"
)

// newShuffler returns a shuffler seeded from the config, or from the
// operating system when no seed was given.
func newShuffler(seed uint64) *shuffle.Shuffler {
	if seed != 0 {
		return shuffle.NewSeeded(seed, seed)
	}
	s1, s2, err := shuffle.NewSeed()
	if err != nil {
		log.Fatalf("Failed to seed the shuffle: %v", err)
	}
	return shuffle.NewSeeded(s1, s2)
}

// newController builds the game from the loaded settings and journeys
func newController(cfg config.Config, cat *catalog.Catalog) *gameplay.Controller {
	return gameplay.New(cat, newShuffler(cfg.Seed), gameplay.Options{
		RecycleFor:   cfg.RecycleFor,
		CelebrateFor: cfg.CelebrateFor,
		ShareURL:     cfg.ShareURL,
	})
}

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := i18n.Load(cfg.Locale); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	cat, err := content.Load(cfg.Content)
	if err != nil {
		log.Fatalf("Failed to load journeys: %v", err)
	}

	c := newController(cfg, cat)

	switch cfg.Renderer {
	case config.RendererEbiten:
		e := ebitenRenderer.New()
		renderer.SetRenderer(e)
		renderer.Init()

		// Ebiten needs the main goroutine; the game loop runs beside it
		go mainLoop(c)
		if err := e.Run(); err != nil {
			log.Fatalf("Ebiten renderer stopped: %v", err)
		}
	default:
		renderer.SetRenderer(tui.New())
		renderer.Init()
		mainLoop(c)
	}
}

// mainLoop is the game loop shared by every renderer: fire due timers, draw,
// wait for input, apply it. A notice from the last intent is shown right
// after the screen is cleared so it survives the redraw.
func mainLoop(c *gameplay.Controller) {
	var notice string
	for {
		c.Tick(time.Now())

		renderer.Clear()
		if notice != "" {
			renderer.ShowMessage(renderer.FormatText("%s", notice))
			notice = ""
		}
		renderer.RenderFrame(c.Snapshot())

		intent := renderer.GetInput()
		outcome := gameplay.ProcessIntent(c, intent)
		if outcome.Quit {
			renderer.Quit()
			return
		}
		notice = outcome.Notice
	}
}
