//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
	baseline     = 11
	charWidth    = 7
)

// HUD paints a translucent status panel over the top-left of the grid.
type HUD struct {
	sim   core.Sim
	lines []string
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Update refreshes the cached text from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.lines = HUDLines(h.sim, paused)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	width := 0
	for _, line := range h.lines {
		width = max(width, len(line)*charWidth)
	}
	width += 2 * panelPadding
	height := len(h.lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, panelPadding+baseline+i*lineHeight, fg)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
