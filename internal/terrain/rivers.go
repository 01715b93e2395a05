package terrain

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"isles/internal/core"
	prng "isles/pkg/core"
)

// Outcome records how a river walk ended.
type Outcome uint8

const (
	// HitWater means the river reached the coast and ends in a mouth cell
	// outside the landmass.
	HitWater Outcome = iota + 1
	// HitRiver means the river ran into a cell claimed by an earlier river
	// and ends there.
	HitRiver
)

func (o Outcome) String() string {
	switch o {
	case HitWater:
		return "water"
	case HitRiver:
		return "river"
	}
	return "none"
}

// Link is one node of a river's chain. Prev and Next index into the chain
// and are None at the ends.
type Link struct {
	At core.Coordinate
	// Point is the arena index of the cell, or None for the mouth, which
	// lies outside the landmass.
	Point int
	Prev  int
	Next  int
}

// River is a downhill path from a cell next to a mountain range to the water
// or to another river.
type River struct {
	ID    int
	Start core.Coordinate
	End   core.Coordinate
	// Source is a mountain cell next to Start that anchors the head of the
	// river for rendering. It is not part of the river.
	Source    core.Coordinate
	HasSource bool
	Outcome   Outcome
	// Points holds the arena indexes claimed by this river, in flow order.
	Points []int
	// Chain is Points plus the terminal cell (mouth or junction) as a doubly
	// linked list; Chain[0] is the start.
	Chain []Link
}

func (r *River) push(c core.Coordinate, point int) {
	l := Link{At: c, Point: point, Prev: None, Next: None}
	if n := len(r.Chain); n > 0 {
		l.Prev = n - 1
		r.Chain[n-1].Next = n
	}
	r.Chain = append(r.Chain, l)
}

// Walk visits the chain from start to end following Next links until fn
// returns false.
func (r *River) Walk(fn func(Link) bool) {
	if len(r.Chain) == 0 {
		return
	}
	for i := 0; i != None; i = r.Chain[i].Next {
		if !fn(r.Chain[i]) {
			return
		}
	}
}

// Coordinates returns the chain coordinates in flow order.
func (r *River) Coordinates() []core.Coordinate {
	out := make([]core.Coordinate, 0, len(r.Chain))
	r.Walk(func(l Link) bool {
		out = append(out, l.At)
		return true
	})
	return out
}

// RiverParams tunes river generation.
type RiverParams struct {
	// Min and Max bound the number of rivers per mountain range: [Min, Max).
	Min, Max int
	// MaxSteps bounds a single walk. Zero means the landmass size.
	MaxSteps int
}

// GenerateRivers starts a handful of rivers around each mountain range and
// walks each one downhill. claimed holds every cell taken by a river so far;
// walks stop when they reach a claimed cell, so rivers touch but never cross.
// Elevation must already be calculated.
func (lm *Landmass) GenerateRivers(rng *prng.RNG, claimed mapset.Set[core.Coordinate], p RiverParams) error {
	maxSteps := p.MaxSteps
	if maxSteps <= 0 {
		maxSteps = len(lm.points) + 1
	}
	for _, mr := range lm.Mountains {
		starts := lm.riverSources(mr)
		n := min(rng.IntRange(p.Min, p.Max), len(starts))
		prng.Shuffle(rng, starts)
		for _, s := range starts[len(starts)-n:] {
			river, ok, err := lm.walkRiver(rng, claimed, s, maxSteps)
			if err != nil {
				return err
			}
			if ok {
				lm.Rivers = append(lm.Rivers, river)
			}
		}
	}
	return nil
}

// riverSources returns the land cells orthogonally adjacent to the regular
// points of mr, without duplicates, in discovery order.
func (lm *Landmass) riverSources(mr MountainRange) []int {
	seen := mapset.New[core.Coordinate]()
	var out []int
	for _, i := range mr.Regular {
		for _, c := range lm.points[i].At.Adjacent() {
			j, ok := lm.index.Find(c)
			if !ok || lm.points[j].Type != core.LandLand || seen.Has(c) {
				continue
			}
			seen.Put(c)
			out = append(out, j)
		}
	}
	return out
}

// walkRiver follows the steepest descent from start, breaking ties
// uniformly at random. ok is false when start was already claimed.
func (lm *Landmass) walkRiver(rng *prng.RNG, claimed mapset.Set[core.Coordinate], start, maxSteps int) (r River, ok bool, err error) {
	id := len(lm.Rivers)
	r = River{ID: id, Start: lm.points[start].At}
	cur := start
	for steps := 0; ; steps++ {
		if steps > maxSteps {
			return River{}, false, fmt.Errorf("%w: no water within %d steps of %v", ErrRiverStalled, maxSteps, r.Start)
		}
		p := &lm.points[cur]
		if claimed.Has(p.At) {
			if len(r.Chain) == 0 {
				return River{}, false, nil
			}
			r.push(p.At, cur)
			r.Outcome = HitRiver
			break
		}

		claimed.Put(p.At)
		p.River = id
		r.Points = append(r.Points, cur)
		r.push(p.At, cur)
		if len(r.Chain) == 1 {
			r.Source, r.HasSource = prng.Pick(rng, lm.adjacentOfType(p.At, core.LandMountain))
		}

		if p.Elevation == 0 {
			mouth, found := prng.Pick(rng, lm.adjacentWater(p.At))
			if !found {
				return River{}, false, fmt.Errorf("%w: at %v", ErrNoRiverMouth, p.At)
			}
			r.push(mouth, None)
			r.Outcome = HitWater
			break
		}

		next, found := lm.lowestNeighbor(rng, p.At)
		if !found {
			return River{}, false, fmt.Errorf("%w: dead end at %v", ErrRiverStalled, p.At)
		}
		cur = next
	}
	r.End = r.Chain[len(r.Chain)-1].At
	return r, true, nil
}

// lowestNeighbor picks uniformly among the orthogonal neighbours of c that
// share the lowest elevation.
func (lm *Landmass) lowestNeighbor(rng *prng.RNG, c core.Coordinate) (int, bool) {
	var tied []int
	lowest := 0.0
	for _, n := range c.Adjacent() {
		j, ok := lm.index.Find(n)
		if !ok {
			continue
		}
		e := lm.points[j].Elevation
		switch {
		case len(tied) == 0 || e < lowest:
			lowest = e
			tied = append(tied[:0], j)
		case e == lowest:
			tied = append(tied, j)
		}
	}
	return prng.Pick(rng, tied)
}

func (lm *Landmass) adjacentOfType(c core.Coordinate, t core.LandType) []core.Coordinate {
	var out []core.Coordinate
	for _, n := range c.Adjacent() {
		if j, ok := lm.index.Find(n); ok && lm.points[j].Type == t {
			out = append(out, n)
		}
	}
	return out
}

func (lm *Landmass) adjacentWater(c core.Coordinate) []core.Coordinate {
	var out []core.Coordinate
	for _, n := range c.Adjacent() {
		if !lm.index.Has(n) {
			out = append(out, n)
		}
	}
	return out
}
