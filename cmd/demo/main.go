package main

import (
	"fmt"
	"os"

	"shape-anim/internal/config"
	"shape-anim/internal/debug"
	"shape-anim/internal/graphics"
	"shape-anim/internal/logger"
	"shape-anim/internal/scene"
)

func main() {
	log := logger.New()

	cfg, err := config.Load(config.ScenePath)
	if err != nil {
		fail(log, err)
	}
	if err := cfg.Validate(); err != nil {
		fail(log, err)
	}
	background, err := config.ParseColor(cfg.Window.Background)
	if err != nil {
		fail(log, err)
	}

	scn, err := scene.New(cfg)
	if err != nil {
		fail(log, err)
	}
	log.Log(fmt.Sprintf("scene ready: %d shapes in %dx%d viewport at %d fps",
		scn.List.Len(), cfg.Window.Width, cfg.Window.Height, cfg.Window.FPS))

	overlay := debug.New()
	overlay.SetShowFPS(cfg.Window.ShowFPS)
	overlay.SetShapeCount(scn.List.Len())

	draw := func() {
		scn.Draw()
		overlay.Draw()
	}
	graphics.Run(graphics.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		FPS:        cfg.Window.FPS,
		Background: background,
	}, scn.Update, draw)

	log.Log("window closed")
}

// fail logs a startup error and exits. There is no retry: a scene that does
// not build is a configuration or programming error.
func fail(log *logger.Logger, err error) {
	log.Log("startup: " + err.Error())
	fmt.Fprintln(os.Stderr, "startup:", err)
	os.Exit(1)
}
