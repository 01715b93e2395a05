package world

import "sort"

// Factory builds a Config, applying the given overrides on top of a preset.
type Factory func(overrides map[string]string) Config

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available presets.
func Presets() map[string]Factory {
	return presets
}

// PresetNames lists the registered presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("island", FromMap)
	Register("islet", func(cfg map[string]string) Config {
		c := DefaultConfig()
		c.Size = 200
		c.Ports = 2
		return c.Apply(cfg)
	})
	Register("continent", func(cfg map[string]string) Config {
		c := DefaultConfig()
		c.Size = 6000
		c.Ports = 8
		return c.Apply(cfg)
	})
	Register("archipelago", func(cfg map[string]string) Config {
		c := DefaultConfig()
		c.Size = 3000
		c.Growth.SpreadChance = 0.35
		c.Growth.BurstMin = 10
		c.Growth.BurstMax = 40
		return c.Apply(cfg)
	})
}
