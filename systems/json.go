package systems

import (
	"encoding/json"
	"io"

	"ammann-chair/generation"
)

// TilingJSON is the JSON representation of a generated tiling
type TilingJSON struct {
	Tiles   []TileJSON  `json:"tiles"`
	Summary SummaryJSON `json:"summary"`
}

// TileJSON is the JSON representation of one tile record
type TileJSON struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
	Size  float64 `json:"size"`
	Sign  int     `json:"sign"`
}

// SummaryJSON is the JSON representation of the tile counts
type SummaryJSON struct {
	TileCount  int `json:"tile_count"`
	SmallCount int `json:"small_count"`
	BigCount   int `json:"big_count"`
}

// TilesToJSON converts tiles into their JSON representation
func TilesToJSON(tiles []generation.Tile) TilingJSON {
	tilesJSON := make([]TileJSON, len(tiles))
	for i, t := range tiles {
		tilesJSON[i] = TileJSON{
			Type:  t.Type.String(),
			X:     t.X,
			Y:     t.Y,
			Angle: t.Angle,
			Size:  t.Size,
			Sign:  t.Sign,
		}
	}

	small, big := generation.Census(tiles)
	return TilingJSON{
		Tiles: tilesJSON,
		Summary: SummaryJSON{
			TileCount:  len(tiles),
			SmallCount: small,
			BigCount:   big,
		},
	}
}

// ExportJSON writes tiles as indented JSON
func ExportJSON(w io.Writer, tiles []generation.Tile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(TilesToJSON(tiles))
}
