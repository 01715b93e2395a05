package terrain

import (
	"isles/internal/core"
	"isles/internal/spatial"
)

// GrowMountains forms mountain ranges from the points lying more than
// threshold cells from water. Each connected region of such points whose
// distance spread is at least minSpread becomes a range: its farthest points
// are snowcapped and those one step lower are regular mountain. Flatter
// regions are left as land. Distance to water must already be computed.
func (lm *Landmass) GrowMountains(threshold, minSpread int) []MountainRange {
	lm.Mountains = nil
	for i := range lm.points {
		if t := lm.points[i].Type; t == core.LandMountain || t == core.LandSnowcapped {
			lm.points[i].Type = core.LandLand
		}
	}

	var coords []core.Coordinate
	var handles []int
	for i, p := range lm.points {
		if p.DistanceToWater > threshold {
			coords = append(coords, p.At)
			handles = append(handles, i)
		}
	}
	if len(coords) == 0 {
		return nil
	}

	for _, region := range Partition(spatial.BuildWithHandles(coords, handles), core.Conn8) {
		members := region.Handles()
		lowest, highest := lm.points[members[0]].DistanceToWater, lm.points[members[0]].DistanceToWater
		for _, i := range members {
			d := lm.points[i].DistanceToWater
			lowest = min(lowest, d)
			highest = max(highest, d)
		}
		if highest-lowest < minSpread {
			continue
		}

		var mr MountainRange
		for _, i := range members {
			switch lm.points[i].DistanceToWater {
			case highest:
				lm.points[i].Type = core.LandSnowcapped
				mr.Snowcapped = append(mr.Snowcapped, i)
			case highest - 1:
				lm.points[i].Type = core.LandMountain
				mr.Regular = append(mr.Regular, i)
			}
		}
		lm.Mountains = append(lm.Mountains, mr)
	}
	return lm.Mountains
}
