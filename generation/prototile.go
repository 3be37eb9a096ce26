package generation

// Prototile builds the seed tile for a canvas: a left-handed small chair at the
// canvas center, sized to a fraction of the canvas width.
func Prototile(width, height float64) Tile {
	return Tile{
		Type:  Small,
		X:     width / 2,
		Y:     height / 2,
		Angle: 0,
		Size:  width / 2.5,
		Sign:  -1,
	}
}
