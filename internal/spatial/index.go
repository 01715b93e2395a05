// Package spatial provides a point-keyed index over integer coordinates.
//
// An Index is built once from a list of coordinates and is read-only
// afterwards; callers that need to add points build a new Index. Each entry
// carries a handle, which by default is the position of the coordinate in the
// build list, so an Index can sit next to an arena slice of richer values.
package spatial

import (
	"cmp"
	"slices"

	"github.com/tidwall/rtree"

	"isles/internal/core"
)

// Index maps coordinates to integer handles and answers exact-point and
// axis-aligned range queries.
type Index struct {
	coords  []core.Coordinate
	handles []int
	lookup  map[core.Coordinate]int // coordinate -> position in coords
	tree    rtree.RTreeG[int]       // positions keyed by their point box
}

// Build indexes coords, using each coordinate's position in the slice as its
// handle. Duplicate coordinates keep the first occurrence.
func Build(coords []core.Coordinate) *Index {
	handles := make([]int, len(coords))
	for i := range handles {
		handles[i] = i
	}
	return BuildWithHandles(coords, handles)
}

// BuildWithHandles indexes coords with explicit handles; handles[i] belongs to
// coords[i]. Duplicate coordinates keep the first occurrence.
func BuildWithHandles(coords []core.Coordinate, handles []int) *Index {
	idx := &Index{
		coords:  make([]core.Coordinate, 0, len(coords)),
		handles: make([]int, 0, len(coords)),
		lookup:  make(map[core.Coordinate]int, len(coords)),
	}
	for i, c := range coords {
		if _, dup := idx.lookup[c]; dup {
			continue
		}
		idx.lookup[c] = len(idx.coords)
		idx.coords = append(idx.coords, c)
		idx.handles = append(idx.handles, handles[i])
	}
	for pos, c := range idx.coords {
		pt := point(c)
		idx.tree.Insert(pt, pt, pos)
	}
	return idx
}

// Len returns the number of indexed coordinates.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.coords)
}

// Find returns the handle stored for c.
func (idx *Index) Find(c core.Coordinate) (int, bool) {
	if idx == nil {
		return 0, false
	}
	pos, ok := idx.lookup[c]
	if !ok {
		return 0, false
	}
	return idx.handles[pos], true
}

// Has reports whether c is indexed.
func (idx *Index) Has(c core.Coordinate) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.lookup[c]
	return ok
}

// All returns every indexed coordinate in build order. The slice is shared and
// must not be modified.
func (idx *Index) All() []core.Coordinate {
	if idx == nil {
		return nil
	}
	return idx.coords
}

// Handles returns every handle in build order. The slice is shared and must
// not be modified.
func (idx *Index) Handles() []int {
	if idx == nil {
		return nil
	}
	return idx.handles
}

// Range returns the handles of all coordinates inside r, ordered by (x, y).
func (idx *Index) Range(r core.Rect) []int {
	if idx.Len() == 0 || r.Empty() {
		return nil
	}
	var found []int
	idx.tree.Search(point(core.C(r.XMin, r.YMin)), point(core.C(r.XMax, r.YMax)),
		func(_, _ [2]float64, pos int) bool {
			found = append(found, pos)
			return true
		})
	slices.SortFunc(found, func(a, b int) int {
		ca, cb := idx.coords[a], idx.coords[b]
		if c := cmp.Compare(ca.X, cb.X); c != 0 {
			return c
		}
		return cmp.Compare(ca.Y, cb.Y)
	})
	out := make([]int, len(found))
	for i, pos := range found {
		out[i] = idx.handles[pos]
	}
	return out
}

// Bounds returns the smallest rectangle containing every indexed coordinate,
// or core.EmptyRect for an empty index.
func (idx *Index) Bounds() core.Rect {
	if idx.Len() == 0 {
		return core.EmptyRect
	}
	lo, hi := idx.tree.Bounds()
	return core.Rect{XMin: int(lo[0]), XMax: int(hi[0]), YMin: int(lo[1]), YMax: int(hi[1])}
}

func point(c core.Coordinate) [2]float64 {
	return [2]float64{float64(c.X), float64(c.Y)}
}
