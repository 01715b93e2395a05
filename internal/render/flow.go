package render

import (
	"isles/internal/core"
	"isles/internal/world"
)

// FlowMask marks every river link whose position along its chain is phase
// modulo period, so that advancing phase makes the marks travel downstream.
// The mask has one byte per cell of g.
func FlowMask(w *world.World, g *core.ByteGrid, phase, period int) []uint8 {
	mask := make([]uint8, g.W*g.H)
	if period <= 0 {
		return mask
	}
	phase %= period
	for _, lm := range w.Landmasses {
		for i := range lm.Rivers {
			for n, c := range lm.Rivers[i].Coordinates() {
				if n%period != phase || !g.InBounds(c) {
					continue
				}
				mask[g.Index(c.X-g.Origin.X, c.Y-g.Origin.Y)] = 1
			}
		}
	}
	return mask
}
