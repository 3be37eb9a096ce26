package generation

// Evolve runs n generations over tiles. In each generation every tile is
// substituted on its own and pruned with fresh counters:
//
//	Small: Prune(Deflate([t], k), a, b)
//	Big:   Deflate(Prune(Deflate([t], k-1), a, b), 1)
//
// A big tile already yields small and big children in one step, so its branch
// runs one step short before pruning and one step after, which keeps both
// branches at the same scale after k substitutions. The combined list is
// deduplicated before the next generation.
func Evolve(tiles []Tile, n, k, a, b int) []Tile {
	result, _ := evolve(tiles, n, k, a, b, nil)
	return result
}

// Generate validates p and evolves the prototile of p's canvas. It fails with
// ErrInvalidParameter before doing any work, or with ErrTileLimit as soon as
// an intermediate list grows past p.MaxTiles.
func Generate(p Params) ([]Tile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seed := []Tile{Prototile(p.Width, p.Height)}
	return evolve(seed, p.Generations, p.Substitutions, p.SmallPruned, p.BigPruned, &ceiling{max: p.MaxTiles})
}

func evolve(tiles []Tile, n, k, a, b int, lim *ceiling) ([]Tile, error) {
	for ; n > 0; n-- {
		var next []Tile
		for _, t := range tiles {
			branch, err := substitute(t, k, a, b, lim)
			if err != nil {
				return nil, err
			}

			next = append(next, branch...)
			if err := lim.check(len(next)); err != nil {
				return nil, err
			}
		}
		tiles = Dedupe(next)
	}
	return tiles, nil
}

// substitute runs one generation's branch for a single tile
func substitute(t Tile, k, a, b int, lim *ceiling) ([]Tile, error) {
	seed := []Tile{t}

	if t.Type == Small {
		deflated, err := deflate(seed, k, lim)
		if err != nil {
			return nil, err
		}
		return Prune(deflated, a, b), nil
	}

	deflated, err := deflate(seed, k-1, lim)
	if err != nil {
		return nil, err
	}
	return deflate(Prune(deflated, a, b), 1, lim)
}
