package config

import "sort"

// Presets are ready-made configurations for the CLI.
var Presets = map[string]*Config{
	// The classic demo: optical pulse radiating through a 10 micron box.
	"optical": DefaultConfig(),

	// Unit-scale domain, handy for eyeballing the scheme at c = 1.
	"unit": {
		Lx: 1.0, Ly: 1.0, Dx: 0.0125, Dy: 0.0125,
		WaveSpeed: 1.0, Steps: 400,
		Source: SourceConfig{
			I: 40, J: 40, Amplitude: 1.0,
			Width: 0.12, Wavelength: 0.25, Onset: 0.03,
		},
	},

	// A short sharp burst that dies out quickly, leaving the absorbing
	// edges visible.
	"burst": {
		Lx: 1.0, Ly: 1.0, Dx: 0.02, Dy: 0.02,
		WaveSpeed: 1.0, Steps: 250,
		Source: SourceConfig{
			I: 25, J: 25, Amplitude: 1.5,
			Width: 0.04, Wavelength: 0.2, Onset: 0.02,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
