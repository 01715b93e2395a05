// Package render turns rasterised worlds into pixels.
package render

import (
	"image/color"

	"github.com/ojrac/opensimplex-go"

	"isles/internal/core"
	"isles/internal/world"
)

// Palette maps each world cell code to its base colour.
var Palette = []color.RGBA{
	world.CellWater:    {R: 28, G: 64, B: 128, A: 255},
	world.CellLand:     {R: 86, G: 146, B: 72, A: 255},
	world.CellCoast:    {R: 214, G: 198, B: 140, A: 255},
	world.CellMountain: {R: 128, G: 112, B: 96, A: 255},
	world.CellSnow:     {R: 240, G: 240, B: 246, A: 255},
	world.CellRiver:    {R: 64, G: 128, B: 210, A: 255},
	world.CellMouth:    {R: 52, G: 104, B: 184, A: 255},
	world.CellPort:     {R: 176, G: 48, B: 40, A: 255},
}

// noiseScale is the feature size of the shading noise, in cells.
const noiseScale = 6.0

// Shader varies the palette colours with smooth noise so large areas of the
// same cell code do not render flat.
type Shader struct {
	noise    opensimplex.Noise
	Strength float64
}

// NewShader returns a shader whose noise is seeded with seed.
func NewShader(seed int64) *Shader {
	return &Shader{noise: opensimplex.NewNormalized(seed), Strength: 0.12}
}

// Color returns the shaded colour of cell code v at world coordinate c.
// Snow, ports and river cells keep their base colour.
func (s *Shader) Color(c core.Coordinate, v uint8) color.RGBA {
	if int(v) >= len(Palette) {
		v = world.CellWater
	}
	base := Palette[v]
	switch v {
	case world.CellSnow, world.CellPort, world.CellRiver, world.CellMouth:
		return base
	}
	n := s.noise.Eval2(float64(c.X)/noiseScale, float64(c.Y)/noiseScale)
	f := 1 + s.Strength*(2*n-1)
	return color.RGBA{R: scaleComponent(base.R, f), G: scaleComponent(base.G, f), B: scaleComponent(base.B, f), A: base.A}
}

// Fill writes the shaded pixels of g into buf, which must hold 4*W*H bytes.
// A nil shader falls back to the flat palette.
func Fill(buf []byte, g *core.ByteGrid, s *Shader) {
	cells := g.Cells()
	if len(buf) < 4*len(cells) {
		return
	}
	if s == nil {
		fillPaletteRGBA(buf, cells, Palette)
		return
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			putRGBA(buf, i, s.Color(core.C(g.Origin.X+x, g.Origin.Y+y), cells[i]))
		}
	}
}

// FillMask writes on for every non-zero cell of mask and transparency
// elsewhere.
func FillMask(buf []byte, mask []uint8, on color.Color) {
	if len(buf) < 4*len(mask) {
		return
	}
	fillMaskRGBA(buf, mask, on)
}

func scaleComponent(v uint8, f float64) uint8 {
	s := float64(v) * f
	switch {
	case s < 0:
		return 0
	case s > 255:
		return 255
	}
	return uint8(s + 0.5)
}
