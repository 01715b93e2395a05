// Package growth runs the organic growth simulation that produces the raw
// point set of a world.
//
// Growth starts from a single seed coordinate at the origin and advances as a
// thin shell: each pass only expands from the points added by the previous
// pass. Land passes are interleaved with scaffold passes; scaffold points pad
// the boundary while growing and are pruned before landmasses are identified.
package growth

import (
	"github.com/zyedidia/generic/mapset"

	"isles/internal/core"
	"isles/internal/spatial"
	prng "isles/pkg/core"
)

// Point is a coordinate tagged with the land type it was grown as.
type Point struct {
	At   core.Coordinate
	Type core.LandType
}

// Params tunes the growth simulation.
type Params struct {
	SpreadChance float64
	BurstMin     int
	BurstMax     int
}

// DefaultParams returns the standard growth tuning.
func DefaultParams() Params {
	return Params{SpreadChance: 0.5, BurstMin: 25, BurstMax: 100}
}

// Map holds the grown points and the current frontier.
type Map struct {
	params   Params
	rng      *prng.RNG
	points   []Point
	occupied mapset.Set[core.Coordinate]
	frontier []core.Coordinate
}

// New returns a Map whose frontier is the origin.
func New(rng *prng.RNG, params Params) *Map {
	return &Map{
		params:   params,
		rng:      rng,
		occupied: mapset.New[core.Coordinate](),
		frontier: []core.Coordinate{{}},
	}
}

// Points returns the grown points in the order they were added.
func (m *Map) Points() []Point { return m.points }

// Frontier returns the coordinates the next pass grows from.
func (m *Map) Frontier() []core.Coordinate { return m.frontier }

// Len returns the number of grown points.
func (m *Map) Len() int { return len(m.points) }

// Occupied reports whether c already holds a point.
func (m *Map) Occupied(c core.Coordinate) bool { return m.occupied.Has(c) }

// Grow runs one pass, adding points of the given type around the frontier
// with probability spreadChance each. The first free neighbour of the pass is
// always taken. onAdded, if non-nil, is called for each new point. It returns
// the added coordinates, which become the new frontier.
func (m *Map) Grow(kind core.LandType, spreadChance float64, onAdded func(Point)) []core.Coordinate {
	return m.grow(kind, spreadChance, -1, onAdded)
}

// grow is Grow with an optional cap on the number of points added; limit < 0
// means no cap.
func (m *Map) grow(kind core.LandType, spreadChance float64, limit int, onAdded func(Point)) []core.Coordinate {
	var added []core.Coordinate
	for _, from := range m.frontier {
		adj := from.Adjacent()
		for _, c := range prng.Shuffle(m.rng, adj[:]) {
			if limit >= 0 && len(added) >= limit {
				break
			}
			if m.occupied.Has(c) {
				continue
			}
			if len(added) > 0 && !m.rng.Chance(spreadChance) {
				continue
			}
			p := Point{At: c, Type: kind}
			m.points = append(m.points, p)
			m.occupied.Put(c)
			added = append(added, c)
			if onAdded != nil {
				onAdded(p)
			}
		}
	}
	m.frontier = added
	return added
}

// GrowToSize alternates bursts of land and scaffold growth until size land
// points exist. If a land pass adds nothing the growth has stalled and
// GrowToSize returns early, leaving a smaller world. onAdded only sees land
// points.
func (m *Map) GrowToSize(size int, onAdded func(Point)) {
	count := 0
	for count < size {
		for i := m.rng.IntRange(m.params.BurstMin, m.params.BurstMax); i > 0; i-- {
			if count >= size {
				break
			}
			n := len(m.grow(core.LandLand, m.params.SpreadChance, size-count, onAdded))
			if n == 0 {
				return
			}
			count += n
		}
		for i := m.rng.IntRange(m.params.BurstMin, m.params.BurstMax); i > 0; i-- {
			if count >= size {
				break
			}
			m.grow(core.LandScaffold, m.params.SpreadChance, -1, nil)
		}
	}
}

// Prune removes every scaffold point. The frontier is left untouched.
func (m *Map) Prune() {
	kept := m.points[:0]
	for _, p := range m.points {
		if p.Type == core.LandScaffold {
			m.occupied.Remove(p.At)
			continue
		}
		kept = append(kept, p)
	}
	m.points = kept
}

// Index builds a spatial index over the current points; handles are positions
// in Points.
func (m *Map) Index() *spatial.Index {
	coords := make([]core.Coordinate, len(m.points))
	for i, p := range m.points {
		coords[i] = p.At
	}
	return spatial.Build(coords)
}
