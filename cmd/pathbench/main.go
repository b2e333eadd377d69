// Command pathbench generates mazes concurrently, solves each one with
// A*, and writes one JSON line per run.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"oatmeal/internal/core"
	"oatmeal/internal/scenes/maze"
	"oatmeal/pkg/geom"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigFastest

type result struct {
	ID        string `json:"id"`
	Seed      int64  `json:"seed"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	PathLen   int    `json:"path_len"`
	Solved    bool   `json:"solved"`
	ElapsedUS int64  `json:"elapsed_us"`
}

func main() {
	width := flag.Int("width", 64, "maze width in tiles")
	height := flag.Int("height", 48, "maze height in tiles")
	count := flag.Int("count", 32, "number of mazes to solve")
	seed := flag.Int64("seed", 42, "seed of the first maze")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent solvers")
	out := flag.String("out", "", "write JSON lines here instead of stdout")
	flag.Parse()

	if *count < 1 {
		log.Fatalf("count %d, want at least 1", *count)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	results := make([]result, *count)

	var g errgroup.Group
	g.SetLimit(*workers)
	start := time.Now()
	for i := 0; i < *count; i++ {
		g.Go(func() error {
			runSeed := *seed + int64(i)
			began := time.Now()
			tiles := maze.Generate(*width, *height, core.NewRNG(runSeed))
			path, ok := maze.Solve(tiles, geom.Pt(0, 0), geom.Pt(*width-1, *height-1))
			results[i] = result{
				ID:        uuid.Must(uuid.NewV7()).String(),
				Seed:      runSeed,
				Width:     *width,
				Height:    *height,
				PathLen:   len(path),
				Solved:    ok,
				ElapsedUS: time.Since(began).Microseconds(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(w)
	solved, longest := 0, 0
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			log.Fatal(err)
		}
		if r.Solved {
			solved++
		}
		if r.PathLen > longest {
			longest = r.PathLen
		}
	}
	log.Printf("solved %d/%d mazes of %dx%d in %s, longest path %d",
		solved, *count, *width, *height, time.Since(start).Round(time.Millisecond), longest)
}
