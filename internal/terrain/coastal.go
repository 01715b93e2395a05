package terrain

import (
	"github.com/zyedidia/generic/mapset"

	"isles/internal/core"
	"isles/internal/spatial"
	prng "isles/pkg/core"
)

// CoastalPoints returns the arena indexes of every point with at least one
// orthogonal neighbour outside the landmass, computing and caching them on
// first use. It also refreshes each point's Coastal flag.
func (lm *Landmass) CoastalPoints() []int {
	if lm.hasCoastal {
		return lm.coastal
	}
	var coords []core.Coordinate
	lm.coastal = lm.coastal[:0]
	for i := range lm.points {
		p := &lm.points[i]
		p.Coastal = false
		for _, c := range p.At.Adjacent() {
			if !lm.index.Has(c) {
				p.Coastal = true
				break
			}
		}
		if p.Coastal {
			lm.coastal = append(lm.coastal, i)
			coords = append(coords, p.At)
		}
	}
	lm.coastalIndex = spatial.BuildWithHandles(coords, lm.coastal)
	lm.hasCoastal = true
	return lm.coastal
}

// CoastalIndex returns the spatial index over the coastal points; handles are
// arena indexes.
func (lm *Landmass) CoastalIndex() *spatial.Index {
	lm.CoastalPoints()
	return lm.coastalIndex
}

// CoastalRings groups the coastal points into connected rings, computing and
// caching them on first use. The largest ring is the beach. Every ring point
// is retagged as coast and linked to its ring. Ring colours are drawn from rng
// when the rings are built.
func (lm *Landmass) CoastalRings(rng *prng.RNG) ([]CoastalRing, error) {
	if lm.hasRings {
		return lm.rings, nil
	}
	comps := Partition(lm.CoastalIndex(), core.Conn8)
	if len(comps) == 0 {
		return nil, ErrNoCoastalRings
	}

	rings := make([]CoastalRing, 0, len(comps))
	beach := 0
	for i, comp := range comps {
		rings = append(rings, CoastalRing{
			Points: append([]int(nil), comp.Handles()...),
			Water:  None,
			Color:  rng.IntRange(0, 256),
		})
		if len(rings[i].Points) > len(rings[beach].Points) {
			beach = i
		}
	}
	rings[beach].Beach = true

	for i := range lm.points {
		p := &lm.points[i]
		p.Ring = None
		if p.Type == core.LandCoast {
			p.Type = core.LandLand
		}
	}
	for r, ring := range rings {
		for _, i := range ring.Points {
			lm.points[i].Type = core.LandCoast
			lm.points[i].Ring = r
		}
	}

	lm.rings = rings
	lm.beach = beach
	lm.hasRings = true
	return lm.rings, nil
}

// Rings returns the cached coastal rings, or nil before CoastalRings has run.
func (lm *Landmass) Rings() []CoastalRing {
	if !lm.hasRings {
		return nil
	}
	return lm.rings
}

// Beach returns the primary shoreline. ok is false until CoastalRings has run.
func (lm *Landmass) Beach() (ring *CoastalRing, ok bool) {
	if !lm.hasRings {
		return nil, false
	}
	return &lm.rings[lm.beach], true
}

// Lakes returns every ring other than the beach.
func (lm *Landmass) Lakes() []CoastalRing {
	if !lm.hasRings {
		return nil
	}
	lakes := make([]CoastalRing, 0, len(lm.rings)-1)
	for i, r := range lm.rings {
		if i != lm.beach {
			lakes = append(lakes, r)
		}
	}
	return lakes
}

// Soften fills jagged single-cell inlets. Each water cell orthogonally
// adjacent to the coast becomes land when more than threshold of its eight
// surrounding cells are land. Candidates are judged against the point set as
// it was before the call and added in one batch. It returns the number of
// points added. The caches are always invalidated.
func (lm *Landmass) Soften(rng *prng.RNG, threshold int) int {
	order := append([]int(nil), lm.CoastalPoints()...)
	prng.Shuffle(rng, order)

	judged := mapset.New[core.Coordinate]()
	var accepted []core.Coordinate
	for _, i := range order {
		for _, c := range lm.points[i].At.Adjacent() {
			if lm.index.Has(c) || judged.Has(c) {
				continue
			}
			judged.Put(c)
			land := 0
			for _, r := range c.Ring(1) {
				if lm.index.Has(r) {
					land++
				}
			}
			if land > threshold {
				accepted = append(accepted, c)
			}
		}
	}
	n := lm.AddPoints(accepted)
	lm.Invalidate()
	return n
}
