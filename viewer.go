package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ammann-chair/systems"
)

// hudLines is how many status lines the viewer overlays
const hudLines = 4

// TilingViewer implements ebiten.Game to display a generated tiling.
type TilingViewer struct {
	renderSystem *RenderSystem
	hud          *HUD
	palette      systems.Palette
}

// NewTilingViewer creates a viewer for scene with a HUD fed by status
func NewTilingViewer(scene *systems.Scene, status *systems.StatusLog) (*TilingViewer, error) {
	hud, err := NewHUD(status, hudLines)
	if err != nil {
		return nil, err
	}

	status.Add("F: fullscreen | H: toggle this overlay")

	return &TilingViewer{
		renderSystem: NewRenderSystem(scene),
		hud:          hud,
		palette:      scene.Palette,
	}, nil
}

// Update handles the display toggles
func (v *TilingViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.hud.Toggle()
	}
	return nil
}

// Draw draws the tiling and the overlay
func (v *TilingViewer) Draw(screen *ebiten.Image) {
	v.renderSystem.Draw(screen)
	v.hud.Draw(screen, v.palette.Outline)
}

// Layout implements ebiten.Game's Layout
func (v *TilingViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Use the full window size
	return outsideWidth, outsideHeight
}
