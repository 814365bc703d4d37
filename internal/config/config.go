package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.001
	DefaultDuration = 10.0
	DefaultG        = 1.0
	DefaultEpsilon  = 0.01
	DefaultTheta    = 0.5
	DefaultBodies   = 20
)

// Config selects the force model, the integrator, the scenario, and
// their numeric parameters for one run.
type Config struct {
	Force      string  `yaml:"force"`
	Integrator string  `yaml:"integrator"`
	Scenario   string  `yaml:"scenario"`
	Dt         float64 `yaml:"dt"`
	Duration   float64 `yaml:"duration"`
	G          float64 `yaml:"g"`
	Epsilon    float64 `yaml:"epsilon"`
	Theta      float64 `yaml:"theta"`
	Bodies     int     `yaml:"bodies"`
	Seed       int64   `yaml:"seed"`
	Sample     int     `yaml:"sample"`
}

func DefaultConfig() *Config {
	return &Config{
		Force:      "direct",
		Integrator: "leapfrog",
		Scenario:   "figure-eight",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		G:          DefaultG,
		Epsilon:    DefaultEpsilon,
		Theta:      DefaultTheta,
		Bodies:     DefaultBodies,
		Sample:     10,
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
	if err := cfg.Validate(); err != nil {
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

// Validate rejects bad parameters at configuration time, before they
// can reach a step.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %g", c.Duration)
	}
	if c.G <= 0 {
		return fmt.Errorf("config: g must be positive, got %g", c.G)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("config: epsilon must be non-negative, got %g", c.Epsilon)
	}
	if c.Theta < 0 {
		return fmt.Errorf("config: theta must be non-negative, got %g", c.Theta)
	}
	if c.Bodies < 0 {
		return fmt.Errorf("config: bodies must be non-negative, got %d", c.Bodies)
	}
	return nil
}
