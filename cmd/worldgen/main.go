package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"isles/internal/snapshot"
	"isles/internal/world"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := world.DefaultConfig()
	preset := flag.String("preset", "island", "world preset ("+strings.Join(world.PresetNames(), ", ")+")")
	ascii := flag.Bool("ascii", true, "print an ASCII preview of the world")
	margin := flag.Int("margin", 2, "water cells printed around the preview")
	progress := flag.Bool("progress", false, "print progress messages")
	verbose := flag.Bool("v", false, "log stage timings")
	out := flag.String("out", "", "write a JSON snapshot to this file")
	geo := flag.String("geojson", "", "write GeoJSON features to this file")
	verify := flag.String("verify", "", "regenerate the world saved in this snapshot and compare")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *verify != "" {
		runVerify(*verify, logger)
		return
	}

	factory, ok := world.Presets()[*preset]
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}
	settings := map[string]string{}
	for _, kv := range overrides {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			log.Fatalf("malformed override %q", kv)
		}
		settings[key] = value
	}
	flag.Visit(func(f *flag.Flag) {
		settings[f.Name] = f.Value.String()
	})
	cfg = factory(settings)

	opts := []world.Option{world.WithLogger(logger)}
	if *progress {
		opts = append(opts, world.WithProgress(func(msg string) { fmt.Println(msg) }))
	}
	w, err := world.Generate(cfg, opts...)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	ports, err := w.DefaultPorts()
	if err != nil {
		logger.Warn("no ports placed", "err", err)
	}
	if *ascii {
		fmt.Print(world.RenderASCII(w.Rasterize(*margin, ports)))
	}
	for _, line := range w.Parameters().Lines() {
		fmt.Println(line)
	}

	if *out != "" {
		if err := writeSnapshot(*out, w); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		logger.Info("snapshot written", "path", *out)
	}
	if *geo != "" {
		data, err := snapshot.GeoJSON(w).MarshalJSON()
		if err != nil {
			log.Fatalf("geojson: %v", err)
		}
		if err := os.WriteFile(*geo, data, 0o644); err != nil {
			log.Fatalf("geojson: %v", err)
		}
		logger.Info("geojson written", "path", *geo)
	}
}

func writeSnapshot(path string, w *world.World) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := snapshot.Take(w).Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runVerify(path string, logger *slog.Logger) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	defer f.Close()
	s, err := snapshot.Decode(f)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	if err := s.Verify(); err != nil {
		log.Fatalf("verify: %v", err)
	}
	logger.Info("snapshot matches", "path", path, "seed", s.Seed)
}
