package world

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"isles/internal/growth"
	"isles/internal/terrain"
)

// ErrInvalidConfig indicates a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("world: invalid config")

// Config controls world generation.
type Config struct {
	// Size is the number of land points to grow before pruning.
	Size int
	Seed int64
	// Workers bounds how many landmasses are derived concurrently. Values
	// below 2 derive them one after another. The result does not depend on
	// the worker count.
	Workers int
	// Ports is the number of ports PlacePorts picks by default.
	Ports int

	Growth  growth.Params
	Terrain terrain.Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:    1000,
		Seed:    0,
		Workers: 1,
		Ports:   5,
		Growth:  growth.DefaultParams(),
		Terrain: terrain.DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns c with the values present in cfg overriding its fields.
// Unparseable or out-of-range values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["ports"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Ports = parsed
		}
	}
	if v, ok := cfg["spread_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Growth.SpreadChance = parsed
		}
	}
	if v, ok := cfg["burst_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Growth.BurstMin = parsed
		}
	}
	if v, ok := cfg["burst_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Growth.BurstMax = parsed
		}
	}
	if c.Growth.BurstMax <= c.Growth.BurstMin {
		c.Growth.BurstMax = c.Growth.BurstMin + 1
	}
	if v, ok := cfg["soften_threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 8 {
			c.Terrain.SoftenThreshold = parsed
		}
	}
	if v, ok := cfg["mountain_threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.MountainThreshold = parsed
		}
	}
	if v, ok := cfg["mountain_min_spread"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.MountainMinSpread = parsed
		}
	}
	if v, ok := cfg["rivers_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.Rivers.Min = parsed
		}
	}
	if v, ok := cfg["rivers_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.Rivers.Max = parsed
		}
	}
	if c.Terrain.Rivers.Max < c.Terrain.Rivers.Min {
		c.Terrain.Rivers.Max = c.Terrain.Rivers.Min
	}
	if v, ok := cfg["river_max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.Rivers.MaxSteps = parsed
		}
	}
	return c
}

// Validate reports the first out-of-range value as ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return fmt.Errorf("%w: size %d is negative", ErrInvalidConfig, c.Size)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	case c.Ports < 0:
		return fmt.Errorf("%w: ports %d is negative", ErrInvalidConfig, c.Ports)
	case c.Growth.SpreadChance < 0 || c.Growth.SpreadChance > 1:
		return fmt.Errorf("%w: spread chance %.2f outside [0,1]", ErrInvalidConfig, c.Growth.SpreadChance)
	case c.Growth.BurstMin < 1 || c.Growth.BurstMax <= c.Growth.BurstMin:
		return fmt.Errorf("%w: burst range [%d,%d) is empty", ErrInvalidConfig, c.Growth.BurstMin, c.Growth.BurstMax)
	case c.Terrain.SoftenThreshold < 0 || c.Terrain.SoftenThreshold > 8:
		return fmt.Errorf("%w: soften threshold %d outside [0,8]", ErrInvalidConfig, c.Terrain.SoftenThreshold)
	case c.Terrain.MountainThreshold < 0 || c.Terrain.MountainMinSpread < 0:
		return fmt.Errorf("%w: mountain threshold %d, spread %d", ErrInvalidConfig, c.Terrain.MountainThreshold, c.Terrain.MountainMinSpread)
	case c.Terrain.Rivers.Min < 0 || c.Terrain.Rivers.Max < c.Terrain.Rivers.Min:
		return fmt.Errorf("%w: river range [%d,%d)", ErrInvalidConfig, c.Terrain.Rivers.Min, c.Terrain.Rivers.Max)
	case c.Terrain.Rivers.MaxSteps < 0:
		return fmt.Errorf("%w: river max steps %d is negative", ErrInvalidConfig, c.Terrain.Rivers.MaxSteps)
	}
	return nil
}

// Bind attaches the most common settings to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "number of land points to grow")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for world generation")
	fs.IntVar(&c.Workers, "workers", c.Workers, "landmasses derived concurrently")
	fs.IntVar(&c.Ports, "ports", c.Ports, "ports to place on the beaches")
}
