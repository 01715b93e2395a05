package world

import (
	"errors"
	"fmt"

	"isles/internal/core"
	"isles/internal/terrain"
	prng "isles/pkg/core"
)

var (
	// ErrNoShore indicates a world with no beach cell a port could use.
	ErrNoShore = errors.New("world: no shore for ports")
	// ErrNoWater indicates a port with no neighbouring water cell.
	ErrNoWater = errors.New("world: no water next to port")
)

// Port is a harbour on a beach cell.
type Port struct {
	At       core.Coordinate
	Landmass int
}

// PlacePorts picks up to n distinct beach cells as ports. Candidates are the
// coast tiles of every landmass's beach ring, so lake shores and river cells
// never get a port. Fewer than n ports are returned when the world has fewer
// candidates.
func (w *World) PlacePorts(rng *prng.RNG, n int) ([]Port, error) {
	var shore []Port
	for _, lm := range w.Landmasses {
		beach, ok := lm.Beach()
		if !ok {
			continue
		}
		for _, i := range beach.Points {
			p := lm.Point(i)
			if t, err := p.Tile(); err != nil || t != terrain.TileCoast {
				continue
			}
			shore = append(shore, Port{At: p.At, Landmass: lm.ID})
		}
	}
	if len(shore) == 0 {
		return nil, ErrNoShore
	}
	prng.Shuffle(rng, shore)
	return shore[:min(n, len(shore))], nil
}

// DefaultPorts places Config.Ports ports with a generator seeded from the
// world seed, so every consumer of the same world sees the same ports.
func (w *World) DefaultPorts() ([]Port, error) {
	return w.PlacePorts(prng.NewRNG(w.Seed), w.Config.Ports)
}

// PlaceShip picks a water cell orthogonally adjacent to port.
func (w *World) PlaceShip(rng *prng.RNG, port Port) (core.Coordinate, error) {
	var water []core.Coordinate
	for _, d := range core.Directions {
		if c := port.At.Offset(d, 1); !w.IsLand(c) {
			water = append(water, c)
		}
	}
	c, ok := prng.Pick(rng, water)
	if !ok {
		return core.Coordinate{}, fmt.Errorf("%w: %v", ErrNoWater, port.At)
	}
	return c, nil
}
