package world

import (
	"strings"

	"isles/internal/core"
	"isles/internal/terrain"
)

// Cell codes written by Rasterize.
const (
	CellWater uint8 = iota
	CellLand
	CellCoast
	CellMountain
	CellSnow
	CellRiver
	CellMouth
	CellPort
	CellCount
)

var asciiGlyphs = [CellCount]byte{
	CellWater:    '~',
	CellLand:     '.',
	CellCoast:    ',',
	CellMountain: '^',
	CellSnow:     'A',
	CellRiver:    '=',
	CellMouth:    'o',
	CellPort:     'P',
}

// Rasterize paints the world into a grid covering its bounds plus margin
// cells of water on every side. Ports are drawn on top.
func (w *World) Rasterize(margin int, ports []Port) *core.ByteGrid {
	bounds := w.Bounds()
	if bounds.Empty() {
		bounds = core.Rect{}
	}
	g := core.NewByteGridFor(bounds.Expand(max(margin, 0)))
	for _, lm := range w.Landmasses {
		for _, p := range lm.Points() {
			g.Set(p.At, cellFor(p))
		}
		for i := range lm.Rivers {
			r := &lm.Rivers[i]
			if r.Outcome != terrain.HitWater {
				continue
			}
			g.Set(r.End, CellMouth)
		}
	}
	for _, p := range ports {
		g.Set(p.At, CellPort)
	}
	return g
}

func cellFor(p terrain.Point) uint8 {
	if p.Type == core.LandSnowcapped && p.River == terrain.None {
		return CellSnow
	}
	t, err := p.Tile()
	if err != nil {
		return CellWater
	}
	switch t {
	case terrain.TileLand:
		return CellLand
	case terrain.TileCoast:
		return CellCoast
	case terrain.TileMountain:
		return CellMountain
	case terrain.TileRiver:
		return CellRiver
	}
	return CellWater
}

// RenderASCII draws g one character per cell, one line per row.
func RenderASCII(g *core.ByteGrid) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := cells[g.Index(x, y)]
			if c >= CellCount {
				c = CellWater
			}
			b.WriteByte(asciiGlyphs[c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
