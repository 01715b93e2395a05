// Package snapshot persists generated worlds.
//
// A Snapshot records the seed and config a world was generated from together
// with the per-point classification. Because generation is deterministic the
// seed alone is enough to rebuild the world; the classification lets Verify
// prove that a rebuild still matches what was saved.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"isles/internal/core"
	"isles/internal/terrain"
	"isles/internal/world"
)

// Version is the current snapshot format.
const Version = 1

var (
	// ErrVersion indicates a snapshot written by an unsupported format.
	ErrVersion = errors.New("snapshot: unsupported version")
	// ErrMismatch indicates a regenerated world differs from the snapshot.
	ErrMismatch = errors.New("snapshot: world mismatch")
)

// Snapshot is the serialisable form of a world.
type Snapshot struct {
	Version    int          `json:"version"`
	Seed       int64        `json:"seed"`
	Config     world.Config `json:"config"`
	Landmasses []Landmass   `json:"landmasses"`
}

// Landmass is the serialisable form of a terrain.Landmass.
type Landmass struct {
	ID     int     `json:"id"`
	Color  int     `json:"color"`
	Points []Point `json:"points"`
	Rivers []River `json:"rivers,omitempty"`
}

// Point is the serialisable form of a terrain.Point. Coordinates use the
// "x,y" encoding.
type Point struct {
	At                 string  `json:"at"`
	Type               string  `json:"type"`
	Coastal            bool    `json:"coastal,omitempty"`
	Ring               int     `json:"ring"`
	Elevation          float64 `json:"elevation"`
	DistanceToWater    int     `json:"dtw"`
	DistanceToMountain int     `json:"dtm"`
	River              int     `json:"river"`
}

// River is the serialisable form of a terrain.River.
type River struct {
	ID      int      `json:"id"`
	Outcome string   `json:"outcome"`
	Chain   []string `json:"chain"`
}

// Take captures w.
func Take(w *world.World) *Snapshot {
	s := &Snapshot{
		Version:    Version,
		Seed:       w.Seed,
		Config:     w.Config,
		Landmasses: make([]Landmass, 0, len(w.Landmasses)),
	}
	for _, lm := range w.Landmasses {
		out := Landmass{ID: lm.ID, Color: lm.Color, Points: make([]Point, 0, lm.Len())}
		for _, p := range lm.Points() {
			out.Points = append(out.Points, Point{
				At:                 p.At.String(),
				Type:               p.Type.String(),
				Coastal:            p.Coastal,
				Ring:               p.Ring,
				Elevation:          p.Elevation,
				DistanceToWater:    p.DistanceToWater,
				DistanceToMountain: p.DistanceToMountain,
				River:              p.River,
			})
		}
		for i := range lm.Rivers {
			r := &lm.Rivers[i]
			chain := make([]string, 0, len(r.Chain))
			for _, c := range r.Coordinates() {
				chain = append(chain, c.String())
			}
			out.Rivers = append(out.Rivers, River{ID: r.ID, Outcome: r.Outcome.String(), Chain: chain})
		}
		s.Landmasses = append(s.Landmasses, out)
	}
	return s
}

// Encode writes s as indented JSON.
func (s *Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// Decode reads a snapshot and checks its version and coordinates.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	for _, lm := range s.Landmasses {
		for _, p := range lm.Points {
			if _, err := core.ParseCoordinate(p.At); err != nil {
				return nil, fmt.Errorf("snapshot: landmass %d: %w", lm.ID, err)
			}
			if _, ok := core.ParseLandType(p.Type); !ok {
				return nil, fmt.Errorf("snapshot: landmass %d: unknown land type %q", lm.ID, p.Type)
			}
		}
		for _, r := range lm.Rivers {
			if _, ok := RiverOutcome(r.Outcome); !ok {
				return nil, fmt.Errorf("snapshot: landmass %d river %d: unknown outcome %q", lm.ID, r.ID, r.Outcome)
			}
		}
	}
	return &s, nil
}

// Restore regenerates the world s was taken from.
func (s *Snapshot) Restore(opts ...world.Option) (*world.World, error) {
	cfg := s.Config
	cfg.Seed = s.Seed
	return world.Generate(cfg, opts...)
}

// Verify regenerates the world from the snapshot's seed and config and
// reports the first difference as ErrMismatch.
func (s *Snapshot) Verify() error {
	w, err := s.Restore()
	if err != nil {
		return err
	}
	return Compare(s, Take(w))
}

// Compare reports the first difference between want and got as ErrMismatch.
func Compare(want, got *Snapshot) error {
	if want.Seed != got.Seed {
		return fmt.Errorf("%w: seed %d, got %d", ErrMismatch, want.Seed, got.Seed)
	}
	if len(want.Landmasses) != len(got.Landmasses) {
		return fmt.Errorf("%w: %d landmasses, got %d", ErrMismatch, len(want.Landmasses), len(got.Landmasses))
	}
	for i := range want.Landmasses {
		a, b := &want.Landmasses[i], &got.Landmasses[i]
		if len(a.Points) != len(b.Points) {
			return fmt.Errorf("%w: landmass %d has %d points, got %d", ErrMismatch, a.ID, len(a.Points), len(b.Points))
		}
		for j := range a.Points {
			if a.Points[j] != b.Points[j] {
				return fmt.Errorf("%w: landmass %d point %s", ErrMismatch, a.ID, a.Points[j].At)
			}
		}
		if len(a.Rivers) != len(b.Rivers) {
			return fmt.Errorf("%w: landmass %d has %d rivers, got %d", ErrMismatch, a.ID, len(a.Rivers), len(b.Rivers))
		}
		for j := range a.Rivers {
			ra, rb := a.Rivers[j], b.Rivers[j]
			if ra.Outcome != rb.Outcome || !slices.Equal(ra.Chain, rb.Chain) {
				return fmt.Errorf("%w: landmass %d river %d", ErrMismatch, a.ID, ra.ID)
			}
		}
	}
	return nil
}

// Count returns the number of points with the given type over all landmasses.
func (s *Snapshot) Count(t core.LandType) int {
	n := 0
	name := t.String()
	for _, lm := range s.Landmasses {
		for _, p := range lm.Points {
			if p.Type == name {
				n++
			}
		}
	}
	return n
}

// RiverOutcome parses a stored outcome name.
func RiverOutcome(name string) (terrain.Outcome, bool) {
	switch name {
	case terrain.HitWater.String():
		return terrain.HitWater, true
	case terrain.HitRiver.String():
		return terrain.HitRiver, true
	}
	return 0, false
}
