package systems

import (
	"image/color"

	"ammann-chair/generation"
)

// Palette holds the colors a scene is drawn with
type Palette struct {
	Background color.RGBA
	Outline    color.RGBA
	Big        color.RGBA
	Small      color.RGBA
}

// DefaultPalette returns orange big chairs and yellow small chairs on white
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{255, 255, 255, 255},
		Outline:    color.RGBA{64, 64, 64, 255},
		Big:        color.RGBA{255, 200, 0, 255},
		Small:      color.RGBA{255, 255, 0, 255},
	}
}

// Fill returns the fill color for a tile type
func (p Palette) Fill(t generation.TileType) color.RGBA {
	if t == generation.Small {
		return p.Small
	}
	return p.Big
}

// Scene is everything a renderer draws: the prototile outline under the tiles
type Scene struct {
	Boundary generation.Tile
	Tiles    []generation.Tile
	View     View
	Palette  Palette
}

// ScreenOutline returns a tile's polygon in screen coordinates
func (s *Scene) ScreenOutline(t generation.Tile) [OutlineLen][2]float32 {
	var pts [OutlineLen][2]float32
	for i, p := range Outline(t) {
		pts[i][0], pts[i][1] = s.View.Apply(p)
	}
	return pts
}
