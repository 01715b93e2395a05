package snapshot

import (
	geojson "github.com/paulmach/go.geojson"

	"isles/internal/core"
	"isles/internal/world"
)

func position(c core.Coordinate) []float64 {
	return []float64{float64(c.X), float64(c.Y)}
}

// GeoJSON exports the vector features of w in grid units: one MultiPoint per
// coastal ring, one LineString per river and one MultiPoint of snowcapped
// peaks per mountain range.
func GeoJSON(w *world.World) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, lm := range w.Landmasses {
		for r, ring := range lm.Rings() {
			coords := make([][]float64, 0, len(ring.Points))
			for _, i := range ring.Points {
				coords = append(coords, position(lm.Point(i).At))
			}
			f := geojson.NewMultiPointFeature(coords...)
			f.SetProperty("kind", "coast")
			f.SetProperty("landmass", lm.ID)
			f.SetProperty("ring", r)
			f.SetProperty("beach", ring.Beach)
			fc.AddFeature(f)
		}
		for i := range lm.Rivers {
			river := &lm.Rivers[i]
			var line [][]float64
			if river.HasSource {
				line = append(line, position(river.Source))
			}
			for _, c := range river.Coordinates() {
				line = append(line, position(c))
			}
			f := geojson.NewLineStringFeature(line)
			f.SetProperty("kind", "river")
			f.SetProperty("landmass", lm.ID)
			f.SetProperty("river", river.ID)
			f.SetProperty("outcome", river.Outcome.String())
			fc.AddFeature(f)
		}
		for m, mr := range lm.Mountains {
			if len(mr.Snowcapped) == 0 {
				continue
			}
			peaks := make([][]float64, 0, len(mr.Snowcapped))
			for _, i := range mr.Snowcapped {
				peaks = append(peaks, position(lm.Point(i).At))
			}
			f := geojson.NewMultiPointFeature(peaks...)
			f.SetProperty("kind", "peaks")
			f.SetProperty("landmass", lm.ID)
			f.SetProperty("range", m)
			f.SetProperty("height", lm.Point(mr.Snowcapped[0]).DistanceToWater)
			fc.AddFeature(f)
		}
	}
	return fc
}
