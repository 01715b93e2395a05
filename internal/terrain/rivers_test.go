package terrain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"isles/internal/core"
	prng "isles/pkg/core"
)

// elevated runs every stage before rivers on a 15x15 block.
func elevated(t *testing.T) *Landmass {
	t.Helper()
	lm := newTestLandmass(square(0, 0, 15))
	lm.CoastalPoints()
	_, err := lm.CoastalRings(prng.NewRNG(1))
	require.NoError(t, err)
	require.NoError(t, lm.DistanceToWater())
	require.Len(t, lm.GrowMountains(3, 2), 1)
	lm.DistanceToMountains()
	lm.CalculateElevation()
	return lm
}

func TestRiversAreExclusive(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		lm := derived(t, square(0, 0, 15), seed)
		require.NotEmpty(t, lm.Rivers, "seed %d", seed)
		assert.LessOrEqual(t, len(lm.Rivers), 5)

		owner := map[core.Coordinate]int{}
		for id := range lm.Rivers {
			r := &lm.Rivers[id]
			assert.Equal(t, id, r.ID)
			assert.Equal(t, r.Start, r.Chain[0].At)
			assert.Equal(t, r.End, r.Chain[len(r.Chain)-1].At)

			for _, i := range r.Points {
				p := lm.Point(i)
				_, taken := owner[p.At]
				require.False(t, taken, "seed %d: %v claimed twice", seed, p.At)
				owner[p.At] = id
				assert.Equal(t, id, p.River)
			}

			coords := r.Coordinates()
			distinct := map[core.Coordinate]bool{}
			for _, c := range coords {
				require.False(t, distinct[c], "seed %d: river %d revisits %v", seed, id, c)
				distinct[c] = true
			}

			last := r.Chain[len(r.Chain)-1]
			switch r.Outcome {
			case HitWater:
				assert.Equal(t, None, last.Point)
				assert.False(t, lm.Has(last.At), "mouth lies outside the landmass")
				assert.Equal(t, 0, lm.Point(r.Points[len(r.Points)-1]).DistanceToWater)
				assert.Len(t, r.Chain, len(r.Points)+1)
			case HitRiver:
				require.NotEqual(t, None, last.Point)
				other := lm.Point(last.Point).River
				assert.NotEqual(t, None, other)
				assert.NotEqual(t, id, other)
				assert.Len(t, r.Chain, len(r.Points)+1)
			default:
				t.Fatalf("seed %d: river %d has no outcome", seed, id)
			}
		}
		for _, p := range lm.Points() {
			if p.River != None {
				assert.Equal(t, p.River, owner[p.At])
			}
		}
	}
}

func TestRiverFlowsDownhill(t *testing.T) {
	lm := derived(t, square(0, 0, 15), 3)
	for i := range lm.Rivers {
		r := &lm.Rivers[i]
		for k := 1; k < len(r.Points); k++ {
			prev, cur := lm.Point(r.Points[k-1]), lm.Point(r.Points[k])
			assert.Less(t, cur.Elevation, prev.Elevation)
			assert.Equal(t, 1, prev.At.ManhattanTo(cur.At))
		}
		if r.HasSource {
			assert.Equal(t, core.LandMountain, pointAt(t, lm, r.Source).Type)
			assert.Equal(t, 1, r.Source.ManhattanTo(r.Start))
		}
	}
}

func TestRiverWalkLinks(t *testing.T) {
	lm := derived(t, square(0, 0, 15), 5)
	require.NotEmpty(t, lm.Rivers)
	r := lm.River(0)
	require.NotNil(t, r)
	assert.Nil(t, lm.River(len(lm.Rivers)))

	assert.Equal(t, None, r.Chain[0].Prev)
	assert.Equal(t, None, r.Chain[len(r.Chain)-1].Next)
	visited := 0
	r.Walk(func(l Link) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited, "Walk stops when fn returns false")
}

func TestRiversSkipClaimedStarts(t *testing.T) {
	lm := elevated(t)
	claimed := mapset.New[core.Coordinate]()
	for _, p := range lm.Points() {
		claimed.Put(p.At)
	}
	require.NoError(t, lm.GenerateRivers(prng.NewRNG(1), claimed, RiverParams{Min: 3, Max: 6}))
	assert.Empty(t, lm.Rivers)
}

func TestRiverStepBound(t *testing.T) {
	lm := elevated(t)
	err := lm.GenerateRivers(prng.NewRNG(1), mapset.New[core.Coordinate](), RiverParams{Min: 3, Max: 6, MaxSteps: 1})
	assert.True(t, errors.Is(err, ErrRiverStalled), "got %v", err)
}

func TestNoRiversWithoutMountains(t *testing.T) {
	lm := derived(t, square(0, 0, 9), 1)
	assert.Empty(t, lm.Mountains)
	assert.Empty(t, lm.Rivers)
}
