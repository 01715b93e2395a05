// Package terrain turns a set of land coordinates into classified landmasses.
//
// A Landmass owns its points in a single arena slice; everything else refers
// to points by their arena index. Back-references (point to landmass, point to
// coastal ring, point to river) are integer IDs, never pointers, so a landmass
// has no ownership cycles and can be copied or encoded without special care.
//
// Derived data is produced by a fixed sequence of stages (see Derive). Coastal
// points and coastal rings are cached; any operation that changes the point
// set must call Invalidate, and callers must re-read the caches through their
// accessors after a mutation.
//
// Connectivity: grouping operations (Partition for landmasses, coastal rings
// and mountain regions) use core.Conn8. Neighbour tests and fields (coastal
// detection, softening candidates, distance fields, river steps) use the four
// orthogonal neighbours.
package terrain

import (
	"isles/internal/core"
	"isles/internal/spatial"
	prng "isles/pkg/core"
)

// None marks an unset integer reference or distance.
const None = -1

// Point is one cell of a landmass.
type Point struct {
	At       core.Coordinate
	Landmass int
	Type     core.LandType
	Coastal  bool
	// Ring is the index into the landmass's coastal rings, or None.
	Ring      int
	Elevation float64
	// DistanceToWater is 0 on the coastline and None until computed.
	DistanceToWater int
	// DistanceToMountain is 0 on regular mountain points and None until
	// computed or when no mountain range exists.
	DistanceToMountain int
	// River is the index into the landmass's rivers, or None.
	River int
}

func newPoint(c core.Coordinate, landmass int) Point {
	return Point{
		At:                 c,
		Landmass:           landmass,
		Type:               core.LandLand,
		Ring:               None,
		Elevation:          1.0,
		DistanceToWater:    None,
		DistanceToMountain: None,
		River:              None,
	}
}

// CoastalRing is a connected group of coastal points. Exactly one ring per
// landmass is the beach; the rest are lake shores.
type CoastalRing struct {
	Points []int
	Beach  bool
	// Water is reserved for a linked body of water and is always None.
	Water int
	Color int
}

// MountainRange is a contiguous elevated region split into its peak cells and
// the cells one step below the peak.
type MountainRange struct {
	Regular    []int
	Snowcapped []int
}

// Landmass is one connected component of land together with its derived
// terrain data.
type Landmass struct {
	ID    int
	Color int

	// HighestDistanceToWater is the largest distance written by
	// DistanceToWater, or None before it runs.
	HighestDistanceToWater int

	Mountains []MountainRange
	Rivers    []River

	points []Point
	index  *spatial.Index

	coastal      []int
	coastalIndex *spatial.Index
	hasCoastal   bool

	rings    []CoastalRing
	beach    int
	hasRings bool
}

// New creates a landmass from coords. Duplicate coordinates are dropped. The
// landmass colour is drawn from rng.
func New(id int, coords []core.Coordinate, rng *prng.RNG) *Landmass {
	lm := &Landmass{
		ID:                     id,
		Color:                  rng.IntRange(0, 256),
		HighestDistanceToWater: None,
	}
	lm.setPoints(coords)
	return lm
}

func (lm *Landmass) setPoints(coords []core.Coordinate) {
	idx := spatial.Build(coords)
	lm.points = make([]Point, 0, idx.Len())
	for _, c := range idx.All() {
		lm.points = append(lm.points, newPoint(c, lm.ID))
	}
	lm.index = spatial.Build(idx.All())
}

// Len returns the number of points.
func (lm *Landmass) Len() int { return len(lm.points) }

// Points returns the point arena. Entries may be modified in place but the
// slice must not be resized.
func (lm *Landmass) Points() []Point { return lm.points }

// Point returns the point at arena index i.
func (lm *Landmass) Point(i int) *Point { return &lm.points[i] }

// Index returns the spatial index over the landmass; handles are arena
// indexes.
func (lm *Landmass) Index() *spatial.Index { return lm.index }

// Find returns the arena index of the point at c.
func (lm *Landmass) Find(c core.Coordinate) (int, bool) { return lm.index.Find(c) }

// Has reports whether c is part of the landmass.
func (lm *Landmass) Has(c core.Coordinate) bool { return lm.index.Has(c) }

// Bounds returns the bounding rectangle of the landmass.
func (lm *Landmass) Bounds() core.Rect { return lm.index.Bounds() }

// AddPoints appends land points at every coordinate not already present,
// rebuilds the index and invalidates the caches. It returns how many points
// were added.
func (lm *Landmass) AddPoints(coords []core.Coordinate) int {
	added := 0
	for _, c := range coords {
		if lm.index.Has(c) {
			continue
		}
		lm.points = append(lm.points, newPoint(c, lm.ID))
		added++
	}
	if added == 0 {
		return 0
	}
	all := make([]core.Coordinate, len(lm.points))
	for i, p := range lm.points {
		all[i] = p.At
	}
	lm.index = spatial.Build(all)
	lm.Invalidate()
	return added
}

// Invalidate drops the cached coastal points and coastal rings. It must be
// called after any change to the point set.
func (lm *Landmass) Invalidate() {
	lm.coastal = nil
	lm.coastalIndex = nil
	lm.hasCoastal = false
	lm.rings = nil
	lm.beach = None
	lm.hasRings = false
}

// HasCoastalPoints reports whether the coastal cache is populated.
func (lm *Landmass) HasCoastalPoints() bool { return lm.hasCoastal }

// HasCoastalRings reports whether the ring cache is populated.
func (lm *Landmass) HasCoastalRings() bool { return lm.hasRings }

// River returns the river with the given ID.
func (lm *Landmass) River(id int) *River {
	if id < 0 || id >= len(lm.Rivers) {
		return nil
	}
	return &lm.Rivers[id]
}
