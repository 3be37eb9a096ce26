package generation

// Prune removes the first small Small tiles and the first big Big tiles in
// iteration order, then deduplicates. It is a one-time skip, not a thinning:
// when a count exceeds the tiles available, every tile of that type goes.
func Prune(tiles []Tile, small, big int) []Tile {
	kept := make([]Tile, 0, len(tiles))

	for _, t := range tiles {
		switch t.Type {
		case Small:
			if small > 0 {
				small--
				continue
			}
		case Big:
			if big > 0 {
				big--
				continue
			}
		}
		kept = append(kept, t)
	}

	return Dedupe(kept)
}
