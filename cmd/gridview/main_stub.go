//go:build !ebiten

package main

import (
	"flag"
	"log"
	"os"

	"oatmeal/internal/app"
	"oatmeal/internal/core"
	_ "oatmeal/internal/scenes/flood"
	_ "oatmeal/internal/scenes/life"
	_ "oatmeal/internal/scenes/maze"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Scenes()[cfg.Scene]
	if !ok {
		log.Fatalf("unknown scene %q", cfg.Scene)
	}

	if err := app.RunHeadless(factory(nil), cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
