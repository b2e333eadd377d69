//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"oatmeal/internal/app"
	"oatmeal/internal/core"
	_ "oatmeal/internal/scenes/flood"
	_ "oatmeal/internal/scenes/life"
	_ "oatmeal/internal/scenes/maze"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Scenes()[cfg.Scene]
	if !ok {
		log.Fatalf("unknown scene %q", cfg.Scene)
	}

	scene := factory(nil)
	scene.Reset(cfg.Seed)

	game := app.New(scene, cfg.Scale, cfg.Seed)
	size := scene.Size()

	ebiten.SetWindowTitle("oatmeal - " + scene.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
