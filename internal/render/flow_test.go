package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isles/internal/world"
)

func TestFlowMask(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.Seed = 4
	cfg.Size = 800
	w, err := world.Generate(cfg)
	require.NoError(t, err)
	g := w.Rasterize(1, nil)

	links := 0
	for _, lm := range w.Landmasses {
		for i := range lm.Rivers {
			links += len(lm.Rivers[i].Chain)
		}
	}

	const period = 3
	total := 0
	for phase := 0; phase < period; phase++ {
		mask := FlowMask(w, g, phase, period)
		require.Len(t, mask, g.W*g.H)
		for i, v := range mask {
			if v == 0 {
				continue
			}
			total++
			code := g.Cells()[i]
			assert.Contains(t, []uint8{world.CellRiver, world.CellMouth}, code)
		}
	}
	// Junctions and shared mouths can mark the same cell twice.
	assert.LessOrEqual(t, total, links)
	if links > 0 {
		assert.Positive(t, total)
	}
}

func TestFlowMaskNoPeriod(t *testing.T) {
	w, err := world.Generate(world.DefaultConfig())
	require.NoError(t, err)
	g := w.Rasterize(0, nil)
	for _, v := range FlowMask(w, g, 1, 0) {
		assert.Zero(t, v)
	}
}
