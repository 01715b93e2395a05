package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

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

type sweepResult struct {
	seed  int64
	stats world.Stats
	err   error
}

// score ranks worlds by how much terrain variety they carry.
func (r sweepResult) score() int {
	return r.stats.Mountains*100 + r.stats.Rivers*10 + r.stats.Lakes*5 + r.stats.HighestPoint
}

func (r sweepResult) String() string {
	s := r.stats
	return fmt.Sprintf("seed=%d landmasses=%d points=%d lakes=%d ranges=%d peaks=%d rivers=%d riverCells=%d highest=%d",
		r.seed, s.Landmasses, s.Points, s.Lakes, s.Mountains, s.Snowcapped, s.Rivers, s.RiverCells, s.HighestPoint)
}

func main() {
	from := flag.Int64("from", 0, "first seed")
	count := flag.Int("count", 64, "number of seeds to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	preset := flag.String("preset", "island", "world preset")
	top := flag.Int("top", 5, "results to print")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	factory, ok := world.Presets()[*preset]
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}
	settings := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		settings[parts[0]] = parts[1]
	}
	baseCfg := factory(settings)
	if err := baseCfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	fmt.Printf("Sweeping %d seeds from %d (%d workers, preset %s)\n", *count, *from, *workers, *preset)

	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(baseCfg, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *count; i++ {
			jobs <- *from + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	failures := 0
	for res := range results {
		if res.err != nil {
			failures++
			fmt.Printf("seed %d failed: %v\n", res.seed, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score() != all[j].score() {
			return all[i].score() > all[j].score()
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s, %d failures):\n", min(*top, len(all)), elapsed.Round(time.Millisecond), failures)
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) score=%d %s\n", i+1, all[i].score(), all[i])
	}
}

func runSeed(base world.Config, seed int64) sweepResult {
	cfg := base
	cfg.Seed = seed
	cfg.Workers = 1
	w, err := world.Generate(cfg)
	if err != nil {
		return sweepResult{seed: seed, err: err}
	}
	return sweepResult{seed: seed, stats: w.Stats()}
}
