package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults describe a 10 micron square vacuum domain driven by an optical
// pulse, small enough to animate in a terminal.
const (
	DefaultLx         = 10e-6
	DefaultLy         = 10e-6
	DefaultDx         = 0.12e-6
	DefaultDy         = 0.12e-6
	DefaultWaveSpeed  = 299792458.0
	DefaultSteps      = 150
	DefaultAmplitude  = 1.0
	DefaultWidth      = 18.0e-15
	DefaultWavelength = 1.0e-6
	DefaultOnset      = 4.0e-15
)

type Config struct {
	Lx        float64      `yaml:"lx"`
	Ly        float64      `yaml:"ly"`
	Dx        float64      `yaml:"dx"`
	Dy        float64      `yaml:"dy"`
	WaveSpeed float64      `yaml:"wave_speed"`
	Steps     int          `yaml:"steps"`
	Source    SourceConfig `yaml:"source"`
}

type SourceConfig struct {
	I          int     `yaml:"i"`
	J          int     `yaml:"j"`
	Amplitude  float64 `yaml:"amplitude"`
	Width      float64 `yaml:"width"`
	Wavelength float64 `yaml:"wavelength"`
	Onset      float64 `yaml:"onset"`
}

func DefaultConfig() *Config {
	return &Config{
		Lx:        DefaultLx,
		Ly:        DefaultLy,
		Dx:        DefaultDx,
		Dy:        DefaultDy,
		WaveSpeed: DefaultWaveSpeed,
		Steps:     DefaultSteps,
		Source: SourceConfig{
			I:          50,
			J:          50,
			Amplitude:  DefaultAmplitude,
			Width:      DefaultWidth,
			Wavelength: DefaultWavelength,
			Onset:      DefaultOnset,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Nx is the node count along x: floor(Lx/dx) + 1.
func (c *Config) Nx() int { return int(c.Lx/c.Dx) + 1 }

// Ny is the node count along y: floor(Ly/dy) + 1.
func (c *Config) Ny() int { return int(c.Ly/c.Dy) + 1 }

// Validate rejects configurations the kernel cannot run. These are fatal
// at startup; the step loop assumes a valid configuration.
func (c *Config) Validate() error {
	if c.Lx <= 0 || c.Ly <= 0 {
		return fmt.Errorf("config: domain lengths must be positive, got %g x %g", c.Lx, c.Ly)
	}
	if c.Dx <= 0 || c.Dy <= 0 {
		return fmt.Errorf("config: grid spacings must be positive, got %g x %g", c.Dx, c.Dy)
	}
	if c.WaveSpeed <= 0 {
		return fmt.Errorf("config: wave speed must be positive, got %g", c.WaveSpeed)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("config: step count must be positive, got %d", c.Steps)
	}
	nx, ny := c.Nx(), c.Ny()
	if nx < 3 || ny < 3 {
		return fmt.Errorf("config: grid too small (%dx%d), need at least 3 nodes per axis", nx, ny)
	}
	if c.Source.I <= 0 || c.Source.I >= nx-1 || c.Source.J <= 0 || c.Source.J >= ny-1 {
		return fmt.Errorf("config: source (%d,%d) must lie strictly inside the %dx%d interior",
			c.Source.I, c.Source.J, nx, ny)
	}
	if c.Source.Width <= 0 || c.Source.Wavelength <= 0 {
		return fmt.Errorf("config: pulse width and wavelength must be positive")
	}
	return nil
}
