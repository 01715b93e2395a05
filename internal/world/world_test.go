package world

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isles/internal/core"
	"isles/internal/terrain"
)

func testConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Size = 800
	return cfg
}

func generate(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := Generate(cfg)
	require.NoError(t, err)
	return w
}

func requireSameWorld(t *testing.T, a, b *World) {
	t.Helper()
	require.Len(t, b.Landmasses, len(a.Landmasses))
	for i := range a.Landmasses {
		la, lb := a.Landmasses[i], b.Landmasses[i]
		require.Equal(t, la.Color, lb.Color)
		require.Equal(t, la.Points(), lb.Points(), "landmass %d points", i)
		require.Equal(t, la.Rivers, lb.Rivers, "landmass %d rivers", i)
		require.Equal(t, la.Mountains, lb.Mountains, "landmass %d mountains", i)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 42} {
		requireSameWorld(t, generate(t, testConfig(seed)), generate(t, testConfig(seed)))
	}
}

func TestGenerateIndependentOfWorkers(t *testing.T) {
	cfg := testConfig(7)
	cfg.Growth.SpreadChance = 0.35
	sequential := generate(t, cfg)
	cfg.Workers = 4
	requireSameWorld(t, sequential, generate(t, cfg))
}

func TestGenerateInvariants(t *testing.T) {
	w := generate(t, testConfig(3))
	require.NotEmpty(t, w.Landmasses)

	owner := map[core.Coordinate]int{}
	for _, lm := range w.Landmasses {
		beaches := 0
		for _, r := range lm.Rings() {
			if r.Beach {
				beaches++
			}
		}
		assert.Equal(t, 1, beaches, "landmass %d", lm.ID)

		for _, p := range lm.Points() {
			_, dup := owner[p.At]
			require.False(t, dup, "%v in two landmasses", p.At)
			owner[p.At] = lm.ID
			assert.Equal(t, lm.ID, p.Landmass)
			_, err := p.Tile()
			assert.NoError(t, err)
			if p.Coastal {
				assert.Equal(t, 0, p.DistanceToWater)
			}
		}
	}
	assert.Equal(t, len(owner), w.PointCount())
}

func TestGenerateProgress(t *testing.T) {
	var messages []string
	cfg := testConfig(5)
	_, err := Generate(cfg, WithProgress(func(msg string) { messages = append(messages, msg) }))
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(messages), 6)
	assert.Equal(t, []string{
		"Generating map...",
		"Growing map...",
		"Pruning map...",
		"Loading tree...",
		"Identifying landmasses...",
	}, messages[:5])
	assert.Contains(t, messages, "Generating rivers ...")
	assert.Equal(t, "Done.", messages[len(messages)-1])
}

func TestGenerateLogsStages(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := Generate(testConfig(5), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "stage done")
	assert.Contains(t, buf.String(), "world generated")
}

func TestGenerateLogsEveryStage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w, err := Generate(testConfig(6), WithLogger(logger))
	require.NoError(t, err)
	require.NotEmpty(t, w.Landmasses)

	out := buf.String()
	stages := []terrain.Stage{
		terrain.StageCoastalPoints, terrain.StageSoften, terrain.StageCoastalRings,
		terrain.StageDistanceToWater, terrain.StageMountains, terrain.StageDistanceToMountain,
		terrain.StageElevation, terrain.StageRivers,
	}
	for _, stage := range stages {
		assert.Equal(t, len(w.Landmasses), strings.Count(out, "stage="+string(stage)+" "), "stage %s", stage)
	}
}

func TestGenerateEmpty(t *testing.T) {
	cfg := testConfig(1)
	cfg.Size = 0
	w := generate(t, cfg)
	assert.Empty(t, w.Landmasses)
	assert.True(t, w.Bounds().Empty())
	assert.Zero(t, w.PointCount())
	assert.Empty(t, w.Query(core.RectAround(core.C(0, 0), 10, 10)))
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := testConfig(1)
	cfg.Size = -5
	_, err := Generate(cfg)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestQueryAndAt(t *testing.T) {
	w := generate(t, testConfig(9))
	all := w.Query(w.Bounds())
	assert.Len(t, all, w.PointCount())

	view := core.RectAround(all[0].At, 3, 3)
	for _, p := range w.Query(view) {
		assert.True(t, view.Contains(p.At))
	}

	p, lm, ok := w.At(all[0].At)
	require.True(t, ok)
	assert.Equal(t, all[0].At, p.At)
	assert.Equal(t, p.Landmass, lm.ID)

	outside := core.C(w.Bounds().XMax+1, 0)
	_, _, ok = w.At(outside)
	assert.False(t, ok)
	assert.False(t, w.IsLand(outside))
}

func TestStatsAndParameters(t *testing.T) {
	w := generate(t, testConfig(2))
	s := w.Stats()
	assert.Equal(t, len(w.Landmasses), s.Landmasses)
	assert.Equal(t, w.PointCount(), s.Points)

	rivers := 0
	for _, lm := range w.Landmasses {
		rivers += len(lm.Rivers)
	}
	assert.Equal(t, rivers, s.Rivers)

	p, ok := w.Parameters().Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)
	var _ core.ParameterProvider = w
}

func TestRiverCellsMatchTags(t *testing.T) {
	w := generate(t, testConfig(12))
	for _, lm := range w.Landmasses {
		tagged := 0
		for _, p := range lm.Points() {
			if p.River != terrain.None {
				tagged++
			}
		}
		claimed := 0
		for _, r := range lm.Rivers {
			claimed += len(r.Points)
		}
		assert.Equal(t, claimed, tagged, "landmass %d", lm.ID)
	}
}
