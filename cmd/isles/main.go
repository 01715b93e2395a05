//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"isles/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	worldCfg, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game, err := app.New(worldCfg, cfg.Scale, cfg.Margin, cfg.TPS)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	size := game.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("isles - %s (seed %d)", cfg.Preset, worldCfg.Seed))
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
