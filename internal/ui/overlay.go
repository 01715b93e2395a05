//go:build ebiten

package ui

import (
	"image/color"

	"isles/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 14
	padding    = 6
)

// Overlay draws the parameter panel and key help on top of the world view.
type Overlay struct {
	lines   []string
	visible bool
	panel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// SetWorld replaces the source of the displayed parameters.
func (o *Overlay) SetWorld(p core.ParameterProvider) {
	o.lines = Lines(p)
	o.panel = nil
}

// Update toggles the panel with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the panel onto the top-left corner of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || len(o.lines) == 0 {
		return
	}
	if o.panel == nil {
		width := 0
		for _, l := range o.lines {
			width = max(width, len(l))
		}
		w := width*7 + 2*padding
		h := len(o.lines)*lineHeight + 2*padding
		o.panel = ebiten.NewImage(w, h)
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, l := range o.lines {
		text.Draw(o.panel, l, basicfont.Face7x13, padding, padding+(i+1)*lineHeight-3, color.White)
	}
	screen.DrawImage(o.panel, &ebiten.DrawImageOptions{})
}
