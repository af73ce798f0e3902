//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"golife/internal/app"
	"golife/pkg/life"
	"golife/pkg/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed, ok := pattern.Seeds()[cfg.Pattern]
	if !ok {
		log.Fatalf("unknown pattern %q, have: %s", cfg.Pattern, strings.Join(pattern.Names(), ", "))
	}

	session := life.NewSession(seed(cfg.Width, cfg.Height, cfg.Seed), cfg.HistoryLimit)
	game := app.New(session, seed, cfg)

	ebiten.SetWindowTitle("golife — " + cfg.Pattern)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
