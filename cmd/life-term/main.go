package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifegrid/internal/app"
	_ "lifegrid/internal/sims/life"
	"lifegrid/internal/term"
	"lifegrid/internal/ui"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	viewer := term.NewViewer(screen, app.NewController(sim, cfg.Seed, cfg.Density), cfg.TPS)
	err = viewer.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("stopped: %s", ui.StatusLine(sim, false))
}
