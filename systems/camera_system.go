package systems

import (
	"math"

	"ammann-chair/generation"
)

// View maps world coordinates to screen pixels: screen = offset + scale*world
type View struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// Apply transforms a world point to screen coordinates
func (v View) Apply(p Point) (float32, float32) {
	return float32(v.OffsetX + p.X*v.Scale), float32(v.OffsetY + p.Y*v.Scale)
}

// FitView centers tiles in a width x height viewport, keeping margin pixels
// free on every side. With no tiles it returns the identity view.
func FitView(tiles []generation.Tile, width, height int, margin float64) View {
	lo, hi, ok := Bounds(tiles)
	if !ok {
		return View{Scale: 1}
	}

	spanX := hi.X - lo.X
	spanY := hi.Y - lo.Y
	availX := float64(width) - 2*margin
	availY := float64(height) - 2*margin
	if spanX <= 0 || spanY <= 0 || availX <= 0 || availY <= 0 {
		return View{Scale: 1}
	}

	scale := math.Min(availX/spanX, availY/spanY)
	return View{
		OffsetX: (float64(width)-spanX*scale)/2 - lo.X*scale,
		OffsetY: (float64(height)-spanY*scale)/2 - lo.Y*scale,
		Scale:   scale,
	}
}
