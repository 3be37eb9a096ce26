package systems

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"ammann-chair/generation"
)

// strokeWidth is the outline width in pixels, matching the window renderer
const strokeWidth = 1.0

// ExportPNG rasterizes scene into a width x height PNG without a window
func ExportPNG(w io.Writer, scene *Scene, width, height int) error {
	img, err := Rasterize(scene, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Rasterize draws scene the same way RenderSystem does, into memory
func Rasterize(scene *Scene, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(scene.Palette.Background), image.Point{}, draw.Src)

	r := &rasterizer{
		z:     vector.NewRasterizer(width, height),
		dst:   img,
		scene: scene,
	}

	r.stroke(scene.Boundary, scene.Palette.Outline)
	for _, t := range scene.Tiles {
		r.fill(t, scene.Palette.Fill(t.Type))
	}
	for _, t := range scene.Tiles {
		r.stroke(t, scene.Palette.Outline)
	}

	return img, nil
}

type rasterizer struct {
	z     *vector.Rasterizer
	dst   *image.RGBA
	scene *Scene
}

func (r *rasterizer) fill(t generation.Tile, c color.RGBA) {
	pts := r.scene.ScreenOutline(t)

	r.reset()
	r.z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		r.z.LineTo(p[0], p[1])
	}
	r.z.ClosePath()
	r.draw(c)
}

// stroke outlines t with one quad per edge. All quads wind the same way,
// so their overlaps at the corners add up instead of cancelling.
func (r *rasterizer) stroke(t generation.Tile, c color.RGBA) {
	pts := r.scene.ScreenOutline(t)

	r.reset()
	for i := range pts {
		j := (i + 1) % len(pts)
		x0, y0 := float64(pts[i][0]), float64(pts[i][1])
		x1, y1 := float64(pts[j][0]), float64(pts[j][1])

		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx := float32(-dy / length * strokeWidth / 2)
		ny := float32(dx / length * strokeWidth / 2)

		r.z.MoveTo(float32(x0)+nx, float32(y0)+ny)
		r.z.LineTo(float32(x1)+nx, float32(y1)+ny)
		r.z.LineTo(float32(x1)-nx, float32(y1)-ny)
		r.z.LineTo(float32(x0)-nx, float32(y0)-ny)
		r.z.ClosePath()
	}
	r.draw(c)
}

func (r *rasterizer) reset() {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *rasterizer) draw(c color.RGBA) {
	r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{})
}
