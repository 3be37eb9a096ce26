package generation

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter is returned for parameters the engine refuses to run with
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrTileLimit is returned when an intermediate tile list outgrows Params.MaxTiles
	ErrTileLimit = errors.New("tile limit exceeded")
)

// Params is the validated configuration of one tiling run.
//
// Each deflation step can double the number of big tiles, so an unpruned run of
// n generations with k substitutions holds at most F(n*k+1) tiles (Fibonacci);
// chairs that land on the same pose are merged, which keeps real runs a little
// below that. Pruning removes a fixed count per branch and does not change the
// growth; keep n*k small or set MaxTiles.
type Params struct {
	Generations   int // n: outer generations
	Substitutions int // k: deflation steps per generation
	SmallPruned   int // a: small tiles dropped per branch
	BigPruned     int // b: big tiles dropped per branch

	Width, Height float64 // canvas the prototile is centered on

	MaxTiles int // ceiling on any intermediate list, 0 disables
}

// Validate checks every field before any work is done
func (p Params) Validate() error {
	counts := []struct {
		name  string
		value int
	}{
		{"generations", p.Generations},
		{"substitutions", p.Substitutions},
		{"small pruned", p.SmallPruned},
		{"big pruned", p.BigPruned},
		{"max tiles", p.MaxTiles},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidParameter, c.name, c.value)
		}
	}

	if !(p.Width > 0) || math.IsInf(p.Width, 1) {
		return fmt.Errorf("%w: width must be positive and finite, got %v", ErrInvalidParameter, p.Width)
	}
	if !(p.Height > 0) || math.IsInf(p.Height, 1) {
		return fmt.Errorf("%w: height must be positive and finite, got %v", ErrInvalidParameter, p.Height)
	}

	return nil
}

// UpperBound returns the tile count of the run with pruning and deduplication
// left out, saturating at math.MaxInt. Real runs never exceed it.
func (p Params) UpperBound() int {
	if p.Generations <= 0 || p.Substitutions <= 0 {
		// The seed is small, and a small tile with no substitution stays put
		return 1
	}

	small, big := 1, 0
	for i := 0; i < p.Generations; i++ {
		for j := 0; j < p.Substitutions; j++ {
			small, big = big, saturatingAdd(small, big)
			if big == math.MaxInt {
				return math.MaxInt
			}
		}
	}
	return saturatingAdd(small, big)
}

func saturatingAdd(x, y int) int {
	if x > math.MaxInt-y {
		return math.MaxInt
	}
	return x + y
}

// ceiling enforces Params.MaxTiles. A nil ceiling or zero max never trips.
type ceiling struct {
	max int
}

func (c *ceiling) check(n int) error {
	if c == nil || c.max <= 0 || n <= c.max {
		return nil
	}
	return fmt.Errorf("%w: %d tiles, ceiling is %d", ErrTileLimit, n, c.max)
}
