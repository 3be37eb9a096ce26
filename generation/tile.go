package generation

import (
	"math"
)

// TileType identifies which of the two prototile shapes a tile is
type TileType int

const (
	Big TileType = iota
	Small
)

// String returns the shape name
func (t TileType) String() string {
	switch t {
	case Big:
		return "big"
	case Small:
		return "small"
	default:
		return "unknown"
	}
}

// G is the golden ratio, the scale ratio that governs every substitution step
const G = 1.61803398874989484820458683436563811772030917980576286213544862

var (
	sqrtG = math.Sqrt(G)
	g25   = math.Pow(G, 2.5)
)

// Tile is one placed chair. Y grows downward (screen convention).
// Tiles are plain values: every step builds new ones from its inputs.
type Tile struct {
	Type  TileType
	X, Y  float64
	Angle float64 // radians
	Size  float64 // edge length factor
	Sign  int     // chirality, +1 or -1
}

// pose is the part of a tile that takes part in deduplication
type pose struct {
	typ      TileType
	x, y, an float64
}

func (t Tile) pose() pose {
	return pose{typ: t.Type, x: t.X, y: t.Y, an: t.Angle}
}

// SamePose reports whether two tiles are the same tile for deduplication.
// Size and Sign are ignored and coordinates are compared exactly, so tiles reached
// through different substitution paths at the same pose collapse into one.
func SamePose(a, b Tile) bool {
	return a.pose() == b.pose()
}

// appendChildren appends the substitution children of t to dst.
// A small chair becomes a big one in place; a big chair splits into a
// mirrored small chair and a quarter-turned big chair at its far corner.
func (t Tile) appendChildren(dst []Tile) []Tile {
	size := t.Size / sqrtG

	if t.Type == Small {
		return append(dst, Tile{Type: Big, X: t.X, Y: t.Y, Angle: t.Angle, Size: size, Sign: t.Sign})
	}

	cos, sin := math.Cos(t.Angle), math.Sin(t.Angle)
	reach := g25 * t.Size
	inner := reach - G*size

	return append(dst,
		Tile{
			Type:  Small,
			X:     t.X + inner*cos,
			Y:     t.Y - inner*sin,
			Angle: t.Angle - math.Pi,
			Size:  size,
			Sign:  -t.Sign,
		},
		Tile{
			Type:  Big,
			X:     t.X + reach*cos,
			Y:     t.Y - reach*sin,
			Angle: t.Angle - float64(t.Sign)*math.Pi/2,
			Size:  size,
			Sign:  t.Sign,
		},
	)
}

// Census counts the tiles of each type
func Census(tiles []Tile) (small, big int) {
	for _, t := range tiles {
		if t.Type == Small {
			small++
		} else {
			big++
		}
	}
	return small, big
}
