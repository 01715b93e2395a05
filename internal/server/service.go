package server

import (
	"log/slog"
	"sync"

	"github.com/zyedidia/generic/cache"

	"isles/internal/world"
)

// WorldService generates worlds on demand and keeps the most recently used
// ones in memory.
type WorldService struct {
	base   world.Config
	logger *slog.Logger

	mu     sync.Mutex
	worlds *cache.Cache[int64, *world.World]
}

// NewWorldService returns a service generating worlds from base with the
// seed replaced per request. capacity bounds the number of cached worlds.
func NewWorldService(base world.Config, capacity int, logger *slog.Logger) *WorldService {
	if capacity <= 0 {
		capacity = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WorldService{base: base, logger: logger, worlds: cache.New[int64, *world.World](capacity)}
}

// World returns the world for seed, generating it on a cache miss. Generated
// worlds are never mutated afterwards, so callers may read them concurrently.
func (s *WorldService) World(seed int64) (*world.World, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.worlds.Get(seed); ok {
		return w, nil
	}
	cfg := s.base
	cfg.Seed = seed
	w, err := world.Generate(cfg, world.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	s.worlds.Put(seed, w)
	s.logger.Info("world generated", "seed", seed, "points", w.PointCount(), "cached", s.worlds.Size())
	return w, nil
}

// Cached returns the number of worlds held in memory.
func (s *WorldService) Cached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.worlds.Size()
}
