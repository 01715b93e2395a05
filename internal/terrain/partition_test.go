package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isles/internal/core"
	"isles/internal/spatial"
)

// TestPartitionTwoClusters checks that two blocks far apart end up in two
// components that together cover every point exactly once.
func TestPartitionTwoClusters(t *testing.T) {
	coords := append(square(0, 0, 3), square(100, 100, 3)...)
	idx := spatial.Build(coords)

	comps := Partition(idx, core.Conn8)
	require.Len(t, comps, 2)

	seen := map[core.Coordinate]int{}
	for _, comp := range comps {
		assert.Equal(t, 9, comp.Len())
		for _, c := range comp.All() {
			seen[c]++
			h, ok := comp.Find(c)
			require.True(t, ok)
			assert.Equal(t, c, coords[h], "components keep the source handles")
		}
	}
	assert.Len(t, seen, 18)
	for c, n := range seen {
		assert.Equal(t, 1, n, "coordinate %v", c)
	}
}

// TestPartitionDiagonal shows the difference between the connectivities:
//
//	X .
//	. X
func TestPartitionDiagonal(t *testing.T) {
	idx := spatial.Build([]core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Len(t, Partition(idx, core.Conn8), 1)
	assert.Len(t, Partition(idx, core.Conn4), 2)
}

func TestPartitionEmpty(t *testing.T) {
	assert.Empty(t, Partition(spatial.Build(nil), core.Conn8))
}
