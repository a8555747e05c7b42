package config

import "sort"

var Presets = map[string]*Config{
	"canonical": {
		Mode: "energy", Steps: 1000,
		Bodies: []string{
			"<x=1, y=-4, z=3>",
			"<x=-14, y=9, z=-4>",
			"<x=-4, y=-6, z=7>",
			"<x=6, y=-9, z=-11>",
		},
	},
	"example1": {
		Mode: "energy", Steps: 10,
		Bodies: []string{
			"<x=-1, y=0, z=2>",
			"<x=2, y=-10, z=-7>",
			"<x=4, y=-8, z=8>",
			"<x=3, y=5, z=-1>",
		},
	},
	"example2": {
		Mode: "energy", Steps: 100,
		Bodies: []string{
			"<x=-8, y=-10, z=0>",
			"<x=5, y=5, z=10>",
			"<x=2, y=-7, z=3>",
			"<x=9, y=-8, z=-3>",
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Bodies = append([]string(nil), p.Bodies...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
