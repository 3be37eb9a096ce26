package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ammann-chair/config"
	"ammann-chair/generation"
	"ammann-chair/systems"
)

func main() {
	cfg := config.Load()

	flag.IntVar(&cfg.Generations, "n", cfg.Generations, "outer generations")
	flag.IntVar(&cfg.Substitutions, "k", cfg.Substitutions, "substitutions per generation")
	flag.IntVar(&cfg.SmallPruned, "a", cfg.SmallPruned, "small tiles pruned per branch")
	flag.IntVar(&cfg.BigPruned, "b", cfg.BigPruned, "big tiles pruned per branch")
	flag.Float64Var(&cfg.CanvasWidth, "width", cfg.CanvasWidth, "canvas width the prototile is centered on")
	flag.Float64Var(&cfg.CanvasHeight, "height", cfg.CanvasHeight, "canvas height the prototile is centered on")
	flag.IntVar(&cfg.MaxTiles, "max-tiles", cfg.MaxTiles, "abort when a tile list grows past this (0 = no limit)")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "world to screen scale")
	flag.BoolVar(&cfg.Fit, "fit", cfg.Fit, "fit the view to the tiling")
	pngPath := flag.String("png", "", "render to this PNG file and exit")
	jsonPath := flag.String("json", "", "write tile records to this JSON file (- for stdout) and exit")
	stats := flag.Bool("stats", false, "print tile counts and exit")
	flag.Parse()

	status := systems.GetStatusLog()
	status.SetLogger(log.New(os.Stderr, "", log.LstdFlags))

	params := cfg.Params()
	start := time.Now()
	tiles, err := generation.Generate(params)
	if err != nil {
		log.Fatal(err)
	}

	small, big := generation.Census(tiles)
	status.Addf("n=%d k=%d a=%d b=%d: %d tiles (%d small, %d big) in %v",
		params.Generations, params.Substitutions, params.SmallPruned, params.BigPruned,
		len(tiles), small, big, time.Since(start).Round(time.Microsecond))

	windowWidth, windowHeight := config.GetWindowSize()
	scene := newScene(cfg, tiles, windowWidth, windowHeight)

	switch {
	case *stats:
		fmt.Printf("tiles: %d\nsmall: %d\nbig: %d\nbound: %d\n", len(tiles), small, big, params.UpperBound())

	case *jsonPath != "":
		if err := writeFile(*jsonPath, func(w io.Writer) error { return systems.ExportJSON(w, tiles) }); err != nil {
			log.Fatal(err)
		}

	case *pngPath != "":
		err := writeFile(*pngPath, func(w io.Writer) error {
			return systems.ExportPNG(w, scene, windowWidth, windowHeight)
		})
		if err != nil {
			log.Fatal(err)
		}
		status.Addf("wrote %s", *pngPath)

	default:
		viewer, err := NewTilingViewer(scene, status)
		if err != nil {
			log.Fatal(err)
		}

		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle("Ammann Chair Fractal")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		if err := ebiten.RunGame(viewer); err != nil {
			log.Fatal(err)
		}
	}
}

// newScene places the tiling over the prototile outline it grew from
func newScene(cfg *config.Settings, tiles []generation.Tile, width, height int) *systems.Scene {
	boundary := generation.Prototile(cfg.CanvasWidth, cfg.CanvasHeight)

	view := systems.View{OffsetX: cfg.OffsetX, OffsetY: cfg.OffsetY, Scale: cfg.Scale}
	if cfg.Fit {
		view = systems.FitView(append([]generation.Tile{boundary}, tiles...), width, height, config.FitMargin)
	}

	return &systems.Scene{
		Boundary: boundary,
		Tiles:    tiles,
		View:     view,
		Palette:  systems.DefaultPalette(),
	}
}

// writeFile runs write against path, or stdout when path is "-"
func writeFile(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
