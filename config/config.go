package config

import (
	"os"
	"strconv"

	"ammann-chair/generation"
)

// Tiling defaults
const (
	DefaultGenerations   = 3
	DefaultSubstitutions = 5
	DefaultSmallPruned   = 0
	DefaultBigPruned     = 1

	// DefaultMaxTiles stops pathological runs long before they exhaust memory
	DefaultMaxTiles = 500000
)

// Settings holds everything a run needs: the tiling parameters and how to view them
type Settings struct {
	Generations   int
	Substitutions int
	SmallPruned   int
	BigPruned     int

	CanvasWidth  float64
	CanvasHeight float64
	MaxTiles     int

	OffsetX float64
	OffsetY float64
	Scale   float64
	Fit     bool // fit the view to the tiling instead of OffsetX/OffsetY/Scale
}

// Default returns the built-in settings
func Default() *Settings {
	width, height := GetCanvasSize()
	return &Settings{
		Generations:   DefaultGenerations,
		Substitutions: DefaultSubstitutions,
		SmallPruned:   DefaultSmallPruned,
		BigPruned:     DefaultBigPruned,
		CanvasWidth:   width,
		CanvasHeight:  height,
		MaxTiles:      DefaultMaxTiles,
		OffsetX:       ViewOffsetX,
		OffsetY:       ViewOffsetY,
		Scale:         ViewScale,
	}
}

// Load returns the defaults overridden by AMMANN_* environment variables.
// Values that do not parse are ignored.
func Load() *Settings {
	cfg := Default()

	loadInt("AMMANN_GENERATIONS", &cfg.Generations)
	loadInt("AMMANN_SUBSTITUTIONS", &cfg.Substitutions)
	loadInt("AMMANN_SMALL_PRUNED", &cfg.SmallPruned)
	loadInt("AMMANN_BIG_PRUNED", &cfg.BigPruned)
	loadInt("AMMANN_MAX_TILES", &cfg.MaxTiles)
	loadFloat("AMMANN_WIDTH", &cfg.CanvasWidth)
	loadFloat("AMMANN_HEIGHT", &cfg.CanvasHeight)
	loadFloat("AMMANN_SCALE", &cfg.Scale)

	if fit := os.Getenv("AMMANN_FIT"); fit != "" {
		if val, err := strconv.ParseBool(fit); err == nil {
			cfg.Fit = val
		}
	}

	return cfg
}

func loadInt(key string, dst *int) {
	if s := os.Getenv(key); s != "" {
		if val, err := strconv.Atoi(s); err == nil {
			*dst = val
		}
	}
}

func loadFloat(key string, dst *float64) {
	if s := os.Getenv(key); s != "" {
		if val, err := strconv.ParseFloat(s, 64); err == nil {
			*dst = val
		}
	}
}

// Params converts the settings into engine parameters; Generate validates them
func (s *Settings) Params() generation.Params {
	return generation.Params{
		Generations:   s.Generations,
		Substitutions: s.Substitutions,
		SmallPruned:   s.SmallPruned,
		BigPruned:     s.BigPruned,
		Width:         s.CanvasWidth,
		Height:        s.CanvasHeight,
		MaxTiles:      s.MaxTiles,
	}
}
