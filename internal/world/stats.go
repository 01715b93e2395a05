package world

import (
	"isles/internal/core"
	"isles/internal/terrain"
)

// Stats summarises a generated world.
type Stats struct {
	Landmasses   int
	Points       int
	Coastal      int
	Lakes        int
	Mountains    int
	Snowcapped   int
	Rivers       int
	RiverCells   int
	HighestPoint int
}

// Stats counts the features of w.
func (w *World) Stats() Stats {
	s := Stats{Landmasses: len(w.Landmasses)}
	for _, lm := range w.Landmasses {
		s.Points += lm.Len()
		s.Coastal += len(lm.CoastalPoints())
		s.Lakes += len(lm.Lakes())
		s.Mountains += len(lm.Mountains)
		s.Rivers += len(lm.Rivers)
		s.HighestPoint = max(s.HighestPoint, lm.HighestDistanceToWater)
		for _, p := range lm.Points() {
			if p.Type == core.LandSnowcapped {
				s.Snowcapped++
			}
			if p.River != terrain.None {
				s.RiverCells++
			}
		}
	}
	return s
}

// Parameters describes the world configuration and its statistics.
func (w *World) Parameters() core.ParameterSnapshot {
	s := w.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Config",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", w.Seed),
				core.IntParam("size", "Size", w.Config.Size),
				core.FloatParam("spread_chance", "Spread chance", w.Config.Growth.SpreadChance),
				core.IntParam("soften_threshold", "Soften threshold", w.Config.Terrain.SoftenThreshold),
				core.IntParam("mountain_threshold", "Mountain threshold", w.Config.Terrain.MountainThreshold),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("landmasses", "Landmasses", s.Landmasses),
				core.IntParam("points", "Points", s.Points),
				core.IntParam("coastal", "Coastal points", s.Coastal),
				core.IntParam("lakes", "Lakes", s.Lakes),
				core.IntParam("mountains", "Mountain ranges", s.Mountains),
				core.IntParam("snowcapped", "Snowcapped peaks", s.Snowcapped),
				core.IntParam("rivers", "Rivers", s.Rivers),
				core.IntParam("river_cells", "River cells", s.RiverCells),
				core.IntParam("highest", "Highest point", s.HighestPoint),
			},
		},
	}}
}
