package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the derivation pipeline.
var (
	// ErrNoCoastalPoints indicates distance-to-water was requested before
	// coastal points were computed.
	ErrNoCoastalPoints = errors.New("terrain: coastal points not computed")
	// ErrNoCoastalRings indicates a landmass produced no coastal ring.
	ErrNoCoastalRings = errors.New("terrain: no coastal rings found")
	// ErrRiverStalled indicates a river walk found no next step or ran past
	// its step bound.
	ErrRiverStalled = errors.New("terrain: river walk stalled")
	// ErrNoRiverMouth indicates a river reached the waterline but no
	// neighbouring water cell exists.
	ErrNoRiverMouth = errors.New("terrain: river has no mouth")
	// ErrUnclassifiable indicates a point with no tile representation.
	ErrUnclassifiable = errors.New("terrain: point cannot be classified")
)

// Stage names a step of the derivation pipeline.
type Stage string

const (
	StageCoastalPoints      Stage = "coastal-points"
	StageSoften             Stage = "soften"
	StageCoastalRings       Stage = "coastal-rings"
	StageDistanceToWater    Stage = "distance-to-water"
	StageMountains          Stage = "mountains"
	StageDistanceToMountain Stage = "distance-to-mountain"
	StageElevation          Stage = "elevation"
	StageRivers             Stage = "rivers"
)

// StageError reports the pipeline stage and landmass a fatal error came from.
type StageError struct {
	Stage    Stage
	Landmass int
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("terrain: landmass %d: %s: %v", e.Landmass, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
