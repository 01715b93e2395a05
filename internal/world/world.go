// Package world generates complete worlds: it grows the raw point set, splits
// it into landmasses and runs the terrain pipeline on each of them.
package world

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"isles/internal/core"
	"isles/internal/growth"
	"isles/internal/terrain"
	prng "isles/pkg/core"
)

// World is the result of one generation run.
type World struct {
	Seed       int64
	Config     Config
	Landmasses []*terrain.Landmass
}

// Option customises a Generate call.
type Option func(*options)

type options struct {
	progress func(string)
	logger   *slog.Logger
	mu       sync.Mutex
}

// WithProgress registers a callback receiving a human-readable message before
// each step. Calls are serialised even when landmasses are derived
// concurrently.
func WithProgress(fn func(message string)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithLogger makes Generate log per-stage timings at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) report(msg string) {
	if o.progress == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress(msg)
}

// stageTimer forwards stage messages and logs how long each stage of one
// landmass took.
type stageTimer struct {
	o        *options
	landmass int
	stage    terrain.Stage
	started  time.Time
}

func (o *options) stageTimer(landmass int) *stageTimer {
	return &stageTimer{o: o, landmass: landmass}
}

// progress is the terrain.Progress of the landmass. Starting a stage closes
// the previous one.
func (st *stageTimer) progress(stage terrain.Stage, msg string) {
	st.finish()
	st.stage, st.started = stage, time.Now()
	st.o.report(msg)
}

// finish logs the running stage, if any.
func (st *stageTimer) finish() {
	if st.stage == "" {
		return
	}
	if st.o.logger != nil {
		st.o.logger.Debug("stage done", "landmass", st.landmass, "stage", string(st.stage), "elapsed", time.Since(st.started))
	}
	st.stage = ""
}

// Generate builds the world described by cfg. The same config always yields
// the same world. A growth stall silently produces a smaller world; any
// pipeline failure aborts generation and is returned wrapped with the seed.
func Generate(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	start := time.Now()
	rng := prng.NewRNG(cfg.Seed)

	o.report("Generating map...")
	gm := growth.New(rng, cfg.Growth)
	o.report("Growing map...")
	gm.GrowToSize(cfg.Size, nil)
	o.report("Pruning map...")
	gm.Prune()
	o.report("Loading tree...")
	idx := gm.Index()

	o.report("Identifying landmasses...")
	comps := terrain.Partition(idx, core.Conn8)
	w := &World{Seed: cfg.Seed, Config: cfg, Landmasses: make([]*terrain.Landmass, len(comps))}
	rngs := make([]*prng.RNG, len(comps))
	for i, comp := range comps {
		rngs[i] = rng.Child()
		w.Landmasses[i] = terrain.New(i, comp.All(), rngs[i])
	}
	if o.logger != nil {
		o.logger.Debug("landmasses identified", "seed", cfg.Seed, "points", idx.Len(), "landmasses", len(comps))
	}

	var g errgroup.Group
	g.SetLimit(max(cfg.Workers, 1))
	for i, lm := range w.Landmasses {
		g.Go(func() error {
			st := o.stageTimer(lm.ID)
			err := terrain.Derive(lm, rngs[i], cfg.Terrain, st.progress)
			st.finish()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("world: seed %d: %w", cfg.Seed, err)
	}

	o.report("Done.")
	if o.logger != nil {
		o.logger.Debug("world generated", "seed", cfg.Seed, "elapsed", time.Since(start))
	}
	return w, nil
}

// Bounds returns the rectangle covering every landmass.
func (w *World) Bounds() core.Rect {
	r := core.EmptyRect
	for _, lm := range w.Landmasses {
		r = r.Union(lm.Bounds())
	}
	return r
}

// At returns the point at c and the landmass it belongs to.
func (w *World) At(c core.Coordinate) (*terrain.Point, *terrain.Landmass, bool) {
	for _, lm := range w.Landmasses {
		if i, ok := lm.Find(c); ok {
			return lm.Point(i), lm, true
		}
	}
	return nil, nil, false
}

// IsLand reports whether c belongs to any landmass.
func (w *World) IsLand(c core.Coordinate) bool {
	_, _, ok := w.At(c)
	return ok
}

// Query returns copies of every point inside r, landmass by landmass, each
// landmass's points ordered by (x, y).
func (w *World) Query(r core.Rect) []terrain.Point {
	var out []terrain.Point
	for _, lm := range w.Landmasses {
		for _, i := range lm.Index().Range(r) {
			out = append(out, *lm.Point(i))
		}
	}
	return out
}

// PointCount returns the number of points over all landmasses.
func (w *World) PointCount() int {
	n := 0
	for _, lm := range w.Landmasses {
		n += lm.Len()
	}
	return n
}
