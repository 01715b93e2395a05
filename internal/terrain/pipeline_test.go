package terrain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prng "isles/pkg/core"
)

func TestDeriveStageOrder(t *testing.T) {
	lm := newTestLandmass(square(0, 0, 15))
	var stages []Stage
	var messages []string
	err := Derive(lm, prng.NewRNG(2), DefaultParams(), func(s Stage, msg string) {
		stages = append(stages, s)
		messages = append(messages, msg)
	})
	require.NoError(t, err)

	assert.Equal(t, []Stage{
		StageCoastalPoints,
		StageSoften,
		StageCoastalRings,
		StageDistanceToWater,
		StageMountains,
		StageDistanceToMountain,
		StageElevation,
		StageRivers,
	}, stages)
	assert.Equal(t, "Getting coastal points ...", messages[0])
	assert.Equal(t, "Generating rivers ...", messages[len(messages)-1])

	assert.True(t, lm.HasCoastalPoints())
	assert.True(t, lm.HasCoastalRings())
	assert.Equal(t, 7, lm.HighestDistanceToWater)
}

func TestDeriveEmptyLandmass(t *testing.T) {
	err := Derive(newTestLandmass(nil), prng.NewRNG(1), DefaultParams(), nil)
	require.Error(t, err)

	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageCoastalRings, se.Stage)
	assert.Equal(t, 0, se.Landmass)
	assert.True(t, errors.Is(err, ErrNoCoastalRings))
	assert.Contains(t, err.Error(), "coastal-rings")
}

func TestDeriveDeterministic(t *testing.T) {
	coords := append(square(0, 0, 15), square(15, 4, 6)...)
	a := derived(t, without(coords, square(6, 2, 2)...), 11)
	b := derived(t, without(coords, square(6, 2, 2)...), 11)
	assert.Equal(t, a.Points(), b.Points())
	assert.Equal(t, a.Rivers, b.Rivers)
	assert.Equal(t, a.Mountains, b.Mountains)
	assert.Equal(t, a.Rings(), b.Rings())
}
