//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"isles/internal/core"
)

// Painter keeps an RGBA image of a rasterised world and redraws it on demand.
type Painter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	overlay *ebiten.Image
	maskBuf []byte
}

// NewPainter allocates a painter for a grid of size w*h.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h), maskBuf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	p.overlay = ebiten.NewImage(w, h)
	return p
}

// Upload shades g into the painter image. Grids of another size are ignored.
func (p *Painter) Upload(g *core.ByteGrid, s *Shader) {
	if g.W != p.w || g.H != p.h {
		return
	}
	Fill(p.buf, g, s)
	p.img.ReplacePixels(p.buf)
}

// UploadMask replaces the overlay with mask drawn in on.
func (p *Painter) UploadMask(mask []uint8, on color.Color) {
	if len(mask) != p.w*p.h {
		return
	}
	FillMask(p.maskBuf, mask, on)
	p.overlay.ReplacePixels(p.maskBuf)
}

// Blit draws the world image and the overlay onto dst.
func (p *Painter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
	dst.DrawImage(p.overlay, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
