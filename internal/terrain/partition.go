package terrain

import (
	"github.com/zyedidia/generic/mapset"

	"isles/internal/core"
	"isles/internal/spatial"
)

// Partition splits the coordinates of idx into maximal connected components
// under conn. Components are discovered in index order and each one is grown
// a full layer at a time from its first coordinate. Every coordinate ends up in
// exactly one component, and each component index keeps the handles of idx.
//
// Time:   O(n·d), where d = 4 or 8.
// Memory: O(n) for the assigned set and output.
func Partition(idx *spatial.Index, conn core.Connectivity) []*spatial.Index {
	assigned := mapset.New[core.Coordinate]()
	var comps []*spatial.Index

	for _, seed := range idx.All() {
		if assigned.Has(seed) {
			continue
		}
		assigned.Put(seed)
		comp := []core.Coordinate{seed}
		layer := []core.Coordinate{seed}
		for len(layer) > 0 {
			var next []core.Coordinate
			for _, c := range layer {
				for _, n := range c.Neighbors(conn) {
					if assigned.Has(n) || !idx.Has(n) {
						continue
					}
					assigned.Put(n)
					next = append(next, n)
				}
			}
			comp = append(comp, next...)
			layer = next
		}

		handles := make([]int, len(comp))
		for i, c := range comp {
			handles[i], _ = idx.Find(c)
		}
		comps = append(comps, spatial.BuildWithHandles(comp, handles))
	}
	return comps
}
