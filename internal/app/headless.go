package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"oatmeal/internal/core"
	"oatmeal/internal/render"
)

// RunHeadless drives a scene without a window. By default it advances
// the scene cfg.Steps times and writes one final text frame to out. In
// watch mode it paces the steps at cfg.TPS and writes a frame per step.
func RunHeadless(scene core.Scene, cfg *Config, out io.Writer) error {
	scene.Reset(cfg.Seed)

	if !cfg.Watch {
		began := time.Now()
		for i := 0; i < cfg.Steps; i++ {
			scene.Step()
		}
		if err := writeFrame(out, scene, cfg.Glyphs); err != nil {
			return err
		}
		log.Printf("%s: %d steps with seed %d in %s",
			scene.Name(), cfg.Steps, cfg.Seed, time.Since(began).Round(time.Microsecond))
		return nil
	}

	timer := core.NewFixedStep(cfg.TPS)
	done := 0
	for done < cfg.Steps {
		for timer.ShouldStep() && done < cfg.Steps {
			scene.Step()
			done++
			if err := writeFrame(out, scene, cfg.Glyphs); err != nil {
				return err
			}
		}
		time.Sleep(time.Millisecond)
	}
	return nil
}

func writeFrame(out io.Writer, scene core.Scene, glyphs string) error {
	_, err := fmt.Fprintf(out, "%s\n\n", render.Text(scene.Cells(), scene.Size().W, glyphs))
	return err
}
