package app

import (
	"flag"
	"fmt"

	"isles/internal/world"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset string
	Scale  int
	TPS    int
	Margin int
	World  world.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "island", Scale: 4, TPS: 12, Margin: 4, World: world.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "world preset to start from")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "river animation ticks per second")
	fs.IntVar(&c.Margin, "margin", c.Margin, "water cells drawn around the world")
	c.World.Bind(fs)
}

// Resolve applies the preset and then the flags set explicitly on fs, which
// must already be parsed.
func (c *Config) Resolve(fs *flag.FlagSet) (world.Config, error) {
	factory, ok := world.Presets()[c.Preset]
	if !ok {
		return world.Config{}, fmt.Errorf("app: unknown preset %q", c.Preset)
	}
	overrides := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		overrides[f.Name] = f.Value.String()
	})
	cfg := factory(overrides)
	return cfg, cfg.Validate()
}
