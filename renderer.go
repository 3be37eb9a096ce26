package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ammann-chair/generation"
	"ammann-chair/systems"
)

// Indices are uint16, so a batch is flushed well before 65536 vertices
const maxBatchVertices = 60000

// RenderSystem draws a Scene with ebiten. The tiling never changes between
// frames, so it is painted once into an offscreen canvas and reused.
type RenderSystem struct {
	scene  *systems.Scene
	canvas *ebiten.Image
	white  *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderSystem creates a new rendering system for scene
func NewRenderSystem(scene *systems.Scene) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &RenderSystem{
		scene: scene,
		white: white,
	}
}

func (s *RenderSystem) invalidate() {
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
}

// Draw renders the scene onto screen
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if s.canvas != nil && (s.canvas.Bounds().Dx() != w || s.canvas.Bounds().Dy() != h) {
		s.invalidate()
	}
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(w, h)
		s.paint(s.canvas)
	}

	screen.DrawImage(s.canvas, nil)
}

// paint draws the boundary, then every tile filled, then every tile outlined
func (s *RenderSystem) paint(dst *ebiten.Image) {
	pal := s.scene.Palette
	dst.Fill(pal.Background)

	s.strokeTile(dst, s.scene.Boundary, pal.Outline)

	s.vertices, s.indices = s.vertices[:0], s.indices[:0]
	for _, t := range s.scene.Tiles {
		s.appendFill(t, pal.Fill(t.Type))
		if len(s.vertices) >= maxBatchVertices {
			s.flush(dst)
		}
	}
	s.flush(dst)

	for _, t := range s.scene.Tiles {
		s.strokeTile(dst, t, pal.Outline)
	}
}

func (s *RenderSystem) appendFill(t generation.Tile, c color.RGBA) {
	pts := s.scene.ScreenOutline(t)

	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	start := len(s.vertices)
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices, s.indices)
	for i := start; i < len(s.vertices); i++ {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(c.R) / 255.0
		s.vertices[i].ColorG = float32(c.G) / 255.0
		s.vertices[i].ColorB = float32(c.B) / 255.0
		s.vertices[i].ColorA = float32(c.A) / 255.0
	}
}

func (s *RenderSystem) flush(dst *ebiten.Image) {
	if len(s.indices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleNonZero
	op.AntiAlias = true
	dst.DrawTriangles(s.vertices, s.indices, s.white, op)

	s.vertices, s.indices = s.vertices[:0], s.indices[:0]
}

func (s *RenderSystem) strokeTile(dst *ebiten.Image, t generation.Tile, c color.RGBA) {
	pts := s.scene.ScreenOutline(t)
	for i := range pts {
		j := (i + 1) % len(pts)
		vector.StrokeLine(dst, pts[i][0], pts[i][1], pts[j][0], pts[j][1], 1, c, true)
	}
}
