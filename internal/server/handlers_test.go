package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isles/internal/core"
	"isles/internal/snapshot"
	"isles/internal/world"
)

func newTestServer(t *testing.T) (*httptest.Server, *WorldService) {
	t.Helper()
	cfg := world.DefaultConfig()
	cfg.Size = 500
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewWorldService(cfg, 2, logger)
	srv := httptest.NewServer(NewRouter(svc, logger))
	t.Cleanup(srv.Close)
	return srv, svc
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := get(t, srv, "/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestPresets(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := get(t, srv, "/api/presets")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Equal(t, world.PresetNames(), names)
}

func TestGetWorld(t *testing.T) {
	srv, svc := newTestServer(t)
	resp := get(t, srv, "/api/worlds/42/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body WorldResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body.Seed)
	assert.Positive(t, body.Stats.Points)
	assert.NotEmpty(t, body.Ports)
	assert.Equal(t, 1, svc.Cached())

	get(t, srv, "/api/worlds/42/")
	assert.Equal(t, 1, svc.Cached())
}

func TestInvalidSeed(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := get(t, srv, "/api/worlds/abc/")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid seed", body["error"])
}

func TestServiceEvicts(t *testing.T) {
	srv, svc := newTestServer(t)
	for seed := 1; seed <= 3; seed++ {
		resp := get(t, srv, fmt.Sprintf("/api/worlds/%d/", seed))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 2, svc.Cached())
}

func TestGetTiles(t *testing.T) {
	srv, svc := newTestServer(t)
	w, err := svc.World(9)
	require.NoError(t, err)

	resp := get(t, srv, "/api/worlds/9/tiles")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tiles []TileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tiles))
	assert.Len(t, tiles, w.PointCount())

	at := w.Landmasses[0].Point(0).At
	resp = get(t, srv, fmt.Sprintf("/api/worlds/9/tiles?xmin=%d&xmax=%d&ymin=%d&ymax=%d", at.X, at.X, at.Y, at.Y))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tiles = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tiles))
	require.Len(t, tiles, 1)
	assert.Equal(t, at.String(), tiles[0].At)
	assert.Equal(t, w.Landmasses[0].ID, tiles[0].Landmass)

	resp = get(t, srv, "/api/worlds/9/tiles?xmin=-1000&xmax=1000&ymin=-1000&ymax=1000")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetSnapshot(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := get(t, srv, "/api/worlds/5/snapshot")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	s, err := snapshot.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.Seed)
	require.NoError(t, s.Verify())
}

func TestGetGeoJSON(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := get(t, srv, "/api/worlds/6/geojson")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.NotEmpty(t, fc.Features)
}

func TestGetASCII(t *testing.T) {
	srv, svc := newTestServer(t)
	w, err := svc.World(8)
	require.NoError(t, err)

	resp := get(t, srv, "/api/worlds/8/ascii?margin=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	b := w.Bounds()
	rows := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, rows, b.Height()+2)
	assert.Len(t, rows[0], b.Width()+2)
	assert.Contains(t, string(data), "P")
}

func TestGetTilesExtremeBounds(t *testing.T) {
	srv, _ := newTestServer(t)
	cases := map[string]string{
		"full range":    "xmin=-9223372036854775808&xmax=9223372036854775807&ymin=0&ymax=0",
		"wrapping area": "xmin=-4611686018427387904&xmax=4611686018427387904&ymin=0&ymax=1",
		"tall":          "xmin=0&xmax=0&ymin=-70000&ymax=70000",
	}
	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			resp := get(t, srv, "/api/worlds/9/tiles?"+query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestTooLarge(t *testing.T) {
	assert.False(t, tooLarge(core.Rect{XMin: 0, XMax: 255, YMin: 0, YMax: 255}))
	assert.True(t, tooLarge(core.Rect{XMin: 0, XMax: 256, YMin: 0, YMax: 255}))
	assert.False(t, tooLarge(core.EmptyRect))
}
