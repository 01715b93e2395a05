package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"isles/internal/core"
	prng "isles/pkg/core"
)

// square returns the n*n block of coordinates with its top-left corner at
// (x0, y0), row by row.
func square(x0, y0, n int) []core.Coordinate {
	out := make([]core.Coordinate, 0, n*n)
	for y := y0; y < y0+n; y++ {
		for x := x0; x < x0+n; x++ {
			out = append(out, core.C(x, y))
		}
	}
	return out
}

// without returns coords minus the given holes.
func without(coords []core.Coordinate, holes ...core.Coordinate) []core.Coordinate {
	out := make([]core.Coordinate, 0, len(coords))
	for _, c := range coords {
		skip := false
		for _, h := range holes {
			if c == h {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}

func newTestLandmass(coords []core.Coordinate) *Landmass {
	return New(0, coords, prng.NewRNG(1))
}

// derived runs the full pipeline on coords with the default tuning.
func derived(t *testing.T, coords []core.Coordinate, seed int64) *Landmass {
	t.Helper()
	lm := newTestLandmass(coords)
	require.NoError(t, Derive(lm, prng.NewRNG(seed), DefaultParams(), nil))
	return lm
}

func pointAt(t *testing.T, lm *Landmass, c core.Coordinate) *Point {
	t.Helper()
	i, ok := lm.Find(c)
	require.True(t, ok, "no point at %v", c)
	return lm.Point(i)
}
