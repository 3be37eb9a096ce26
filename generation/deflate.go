package generation

// Deflate applies the substitution rule to every tile, steps times over.
// Coincident tiles are removed after each step. A non-positive step count
// returns the input unchanged.
func Deflate(tiles []Tile, steps int) []Tile {
	result, _ := deflate(tiles, steps, nil)
	return result
}

func deflate(tiles []Tile, steps int, lim *ceiling) ([]Tile, error) {
	for ; steps > 0; steps-- {
		next := make([]Tile, 0, 2*len(tiles))
		for _, t := range tiles {
			next = t.appendChildren(next)
		}

		tiles = Dedupe(next)
		if err := lim.check(len(tiles)); err != nil {
			return nil, err
		}
	}
	return tiles, nil
}
