package generation

// Dedupe drops every tile that has the same pose as an earlier one, keeping
// first occurrences in their original order. See SamePose.
func Dedupe(tiles []Tile) []Tile {
	seen := make(map[pose]struct{}, len(tiles))
	result := make([]Tile, 0, len(tiles))

	for _, t := range tiles {
		key := t.pose()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, t)
	}

	return result
}
