package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"isles/internal/server"
	"isles/internal/world"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	preset := flag.String("preset", "island", "world preset used for every seed")
	capacity := flag.Int("cache", 16, "generated worlds kept in memory")
	workers := flag.Int("workers", 4, "landmasses derived concurrently per world")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	factory, ok := world.Presets()[*preset]
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}
	cfg := factory(nil)
	cfg.Workers = *workers
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	svc := server.NewWorldService(cfg, *capacity, logger)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.NewRouter(svc, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "preset", *preset)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
