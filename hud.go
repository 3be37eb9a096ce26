package main

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"ammann-chair/systems"
)

const hudLineHeight = 18

// HUD overlays the recent status lines in the top-left corner
type HUD struct {
	face    text.Face
	status  *systems.StatusLog
	lines   int
	visible bool
}

// NewHUD creates a HUD showing the last lines of status
func NewHUD(status *systems.StatusLog, lines int) (*HUD, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}

	return &HUD{
		face:    &text.GoTextFace{Source: source, Size: 14},
		status:  status,
		lines:   lines,
		visible: true,
	}, nil
}

// Toggle shows or hides the HUD
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Draw renders the status lines in c
func (h *HUD) Draw(screen *ebiten.Image, c color.Color) {
	if !h.visible {
		return
	}

	for i, line := range h.status.Recent(h.lines) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, 10+float64(i*hudLineHeight))
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, line, h.face, op)
	}
}
