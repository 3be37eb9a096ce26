package systems

import (
	"math"

	"ammann-chair/generation"
)

// Point is a position in world space (y down) or screen space
type Point struct {
	X, Y float64
}

// Chair geometry, measured from the anchor corner of a unit big tile.
// Small tiles use the same shape scaled by 1/√G.
var (
	vertexDist = [5]float64{
		generation.G,
		math.Sqrt(generation.G*generation.G + generation.G),
		math.Sqrt((generation.G+1)*(generation.G+1) + generation.G),
		math.Sqrt((generation.G+1)*(generation.G+1) + (generation.G + 2*generation.G*generation.G + generation.G*generation.G*generation.G)),
		math.Pow(generation.G, 2.5),
	}
	vertexAngle = [5]float64{
		-math.Pi / 2,
		-math.Pi/2 + math.Atan(1/math.Sqrt(generation.G)),
		-math.Pi/2 + math.Atan(math.Sqrt(generation.G)/(generation.G+1)),
		-math.Pi/2 + math.Atan(math.Sqrt(generation.G)),
		0,
	}
	typeScale = map[generation.TileType]float64{
		generation.Big:   1,
		generation.Small: 1 / math.Sqrt(generation.G),
	}
)

// OutlineLen is the number of corners of a chair
const OutlineLen = 6

// Outline returns the corners of a tile's chair polygon in world space,
// starting at the tile's anchor. Sign mirrors the shape, Angle rotates it.
func Outline(t generation.Tile) [OutlineLen]Point {
	var pts [OutlineLen]Point
	pts[0] = Point{t.X, t.Y}

	r := typeScale[t.Type] * t.Size
	sign := float64(t.Sign)
	for i := range vertexDist {
		a := sign*vertexAngle[i] + t.Angle
		pts[i+1] = Point{
			X: t.X + vertexDist[i]*r*math.Cos(a),
			Y: t.Y - vertexDist[i]*r*math.Sin(a),
		}
	}
	return pts
}

// Bounds returns the world-space box enclosing every tile outline.
// ok is false when there are no tiles.
func Bounds(tiles []generation.Tile) (lo, hi Point, ok bool) {
	if len(tiles) == 0 {
		return Point{}, Point{}, false
	}

	lo = Point{math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1)}
	for _, t := range tiles {
		for _, p := range Outline(t) {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi, true
}
