// Package server exposes generated worlds over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"isles/internal/core"
	"isles/internal/snapshot"
	"isles/internal/world"
)

// MaxTileArea caps the number of cells a single tiles request may cover.
const MaxTileArea = 256 * 256

// NewRouter configures all routes and returns the router.
func NewRouter(ws *WorldService, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &worldHandler{worlds: ws, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{"status": "ok", "cached": ws.Cached()})
		})
		r.Get("/presets", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, world.PresetNames())
		})
		r.Route("/worlds/{seed}", func(r chi.Router) {
			r.Get("/", h.getWorld)
			r.Get("/snapshot", h.getSnapshot)
			r.Get("/geojson", h.getGeoJSON)
			r.Get("/tiles", h.getTiles)
			r.Get("/ascii", h.getASCII)
		})
	})
	return r
}

type worldHandler struct {
	worlds *WorldService
	logger *slog.Logger
}

// WorldResponse summarises a generated world.
type WorldResponse struct {
	Seed   int64       `json:"seed"`
	Bounds core.Rect   `json:"bounds"`
	Stats  world.Stats `json:"stats"`
	Ports  []string    `json:"ports"`
}

// TileResponse is one classified cell of a tiles query.
type TileResponse struct {
	At        string  `json:"at"`
	Tile      string  `json:"tile"`
	Landmass  int     `json:"landmass"`
	Elevation float64 `json:"elevation"`
	River     int     `json:"river"`
}

// load resolves the {seed} parameter, writing an error response on failure.
func (h *worldHandler) load(w http.ResponseWriter, r *http.Request) (*world.World, bool) {
	seed, err := strconv.ParseInt(chi.URLParam(r, "seed"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return nil, false
	}
	wld, err := h.worlds.World(seed)
	if err != nil {
		h.logger.Error("generate world", "seed", seed, "err", err)
		status := http.StatusInternalServerError
		if errors.Is(err, world.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		respondError(w, status, err.Error())
		return nil, false
	}
	return wld, true
}

// getWorld handles GET /api/worlds/{seed}.
func (h *worldHandler) getWorld(w http.ResponseWriter, r *http.Request) {
	wld, ok := h.load(w, r)
	if !ok {
		return
	}
	resp := WorldResponse{Seed: wld.Seed, Bounds: wld.Bounds(), Stats: wld.Stats(), Ports: []string{}}
	ports, err := wld.DefaultPorts()
	if err == nil {
		for _, p := range ports {
			resp.Ports = append(resp.Ports, p.At.String())
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// getSnapshot handles GET /api/worlds/{seed}/snapshot.
func (h *worldHandler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	wld, ok := h.load(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, snapshot.Take(wld))
}

// getGeoJSON handles GET /api/worlds/{seed}/geojson.
func (h *worldHandler) getGeoJSON(w http.ResponseWriter, r *http.Request) {
	wld, ok := h.load(w, r)
	if !ok {
		return
	}
	data, err := snapshot.GeoJSON(wld).MarshalJSON()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// getTiles handles GET /api/worlds/{seed}/tiles?xmin=&xmax=&ymin=&ymax=.
// Missing bounds default to the world bounds.
func (h *worldHandler) getTiles(w http.ResponseWriter, r *http.Request) {
	wld, ok := h.load(w, r)
	if !ok {
		return
	}
	b := wld.Bounds()
	rect := core.Rect{
		XMin: parseIntParam(r, "xmin", b.XMin),
		XMax: parseIntParam(r, "xmax", b.XMax),
		YMin: parseIntParam(r, "ymin", b.YMin),
		YMax: parseIntParam(r, "ymax", b.YMax),
	}
	if tooLarge(rect) {
		respondError(w, http.StatusBadRequest, "Requested area too large")
		return
	}
	tiles := []TileResponse{}
	for _, p := range wld.Query(rect) {
		t, err := p.Tile()
		if err != nil {
			continue
		}
		tiles = append(tiles, TileResponse{
			At:        p.At.String(),
			Tile:      t.String(),
			Landmass:  p.Landmass,
			Elevation: p.Elevation,
			River:     p.River,
		})
	}
	respondJSON(w, http.StatusOK, tiles)
}

// getASCII handles GET /api/worlds/{seed}/ascii.
func (h *worldHandler) getASCII(w http.ResponseWriter, r *http.Request) {
	wld, ok := h.load(w, r)
	if !ok {
		return
	}
	margin := clamp(parseIntParam(r, "margin", 2), 0, 64)
	ports, _ := wld.DefaultPorts()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(world.RenderASCII(wld.Rasterize(margin, ports))))
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "err", err)
	}
}

// respondError writes an error JSON response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func parseIntParam(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// tooLarge reports whether r covers more than MaxTileArea cells. Spans are
// taken in uint64 so extreme bounds cannot wrap around.
func tooLarge(r core.Rect) bool {
	if r.Empty() {
		return false
	}
	dx := uint64(r.XMax) - uint64(r.XMin)
	dy := uint64(r.YMax) - uint64(r.YMin)
	if dx >= MaxTileArea || dy >= MaxTileArea {
		return true
	}
	return (dx+1)*(dy+1) > MaxTileArea
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
