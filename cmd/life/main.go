//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"lifegrid/internal/app"
	_ "lifegrid/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}
	if closer, ok := sim.(io.Closer); ok {
		defer closer.Close()
	}

	game := app.New(app.NewController(sim, cfg.Seed, cfg.Density), cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
