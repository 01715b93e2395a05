package terrain

import (
	"github.com/zyedidia/generic/mapset"

	"isles/internal/core"
	prng "isles/pkg/core"
)

// Params tunes the derivation pipeline.
type Params struct {
	// SoftenThreshold is the number of land cells out of eight a water cell
	// must exceed to be filled in by Soften.
	SoftenThreshold int
	// MountainThreshold is the distance to water a point must exceed to be
	// considered for a mountain range.
	MountainThreshold int
	// MountainMinSpread is the smallest distance spread a region needs to
	// become a range.
	MountainMinSpread int
	Rivers            RiverParams
}

// DefaultParams returns the standard pipeline tuning.
func DefaultParams() Params {
	return Params{
		SoftenThreshold:   6,
		MountainThreshold: 3,
		MountainMinSpread: 2,
		Rivers:            RiverParams{Min: 3, Max: 6},
	}
}

// Progress receives a human-readable message before each stage runs.
type Progress func(stage Stage, message string)

// Derive runs every stage on lm in order: coastal points, softening, coastal
// rings, distance to water, mountains, distance to mountains, elevation and
// rivers. Each stage reads what the previous ones wrote. The first fatal
// error stops the pipeline and is returned as a *StageError.
func Derive(lm *Landmass, rng *prng.RNG, p Params, progress Progress) error {
	report := func(s Stage, msg string) {
		if progress != nil {
			progress(s, msg)
		}
	}
	fail := func(s Stage, err error) error {
		return &StageError{Stage: s, Landmass: lm.ID, Err: err}
	}

	report(StageCoastalPoints, "Getting coastal points ...")
	lm.CoastalPoints()

	report(StageSoften, "Softening landmass ...")
	lm.Soften(rng, p.SoftenThreshold)

	report(StageCoastalRings, "Getting coastal rings ...")
	if _, err := lm.CoastalRings(rng); err != nil {
		return fail(StageCoastalRings, err)
	}

	report(StageDistanceToWater, "Calculating distance to water ...")
	if err := lm.DistanceToWater(); err != nil {
		return fail(StageDistanceToWater, err)
	}

	report(StageMountains, "Growing mountains ...")
	lm.GrowMountains(p.MountainThreshold, p.MountainMinSpread)

	report(StageDistanceToMountain, "Calculating distance to mountains ...")
	lm.DistanceToMountains()

	report(StageElevation, "Calculating elevation ...")
	lm.CalculateElevation()

	report(StageRivers, "Generating rivers ...")
	if err := lm.GenerateRivers(rng, mapset.New[core.Coordinate](), p.Rivers); err != nil {
		return fail(StageRivers, err)
	}
	return nil
}
