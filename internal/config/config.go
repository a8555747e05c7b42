package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/sim"
	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMode  = "energy"
	DefaultSteps = sim.DefaultSteps
)

type Config struct {
	Mode     string   `yaml:"mode"`
	Steps    int64    `yaml:"steps"`
	MaxSteps int64    `yaml:"max_steps"`
	Timeout  string   `yaml:"timeout,omitempty"`
	Input    string   `yaml:"input,omitempty"`
	Bodies   []string `yaml:"bodies,omitempty"`
	Record   bool     `yaml:"record,omitempty"`
}

// gcfgFile mirrors Config for INI-style files with a [simulation] section.
// gcfg names cannot contain underscores, so max_steps is spelled max-steps.
type gcfgFile struct {
	Simulation struct {
		Mode     string
		Steps    int64
		MaxSteps int64 `gcfg:"max-steps"`
		Timeout  string
		Input    string
		Body     []string
		Record   bool
	}
}

func DefaultConfig() *Config {
	return &Config{
		Mode:  DefaultMode,
		Steps: DefaultSteps,
	}
}

// Load reads a yaml file, or a gcfg file when the extension is .gcfg,
// .ini or .cfg. A relative input path is taken relative to the file.
func Load(path string) (*Config, error) {
	var cfg *Config
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gcfg", ".ini", ".cfg":
		cfg, err = loadGcfg(path)
	default:
		cfg, err = loadYAML(path)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Input != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(filepath.Dir(path), cfg.Input)
	}
	return cfg, nil
}

func loadYAML(path string) (*Config, error) {
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

func loadGcfg(path string) (*Config, error) {
	var f gcfgFile
	f.Simulation.Mode = DefaultMode
	f.Simulation.Steps = DefaultSteps
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return nil, err
	}
	s := f.Simulation
	return &Config{
		Mode:     s.Mode,
		Steps:    s.Steps,
		MaxSteps: s.MaxSteps,
		Timeout:  s.Timeout,
		Input:    s.Input,
		Bodies:   s.Body,
		Record:   s.Record,
	}, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := sim.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", dynamo.ErrInvalidConfig, c.Steps)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must be non-negative, got %d", dynamo.ErrInvalidConfig, c.MaxSteps)
	}
	if _, err := c.timeout(); err != nil {
		return err
	}
	return nil
}

func (c *Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %v", dynamo.ErrInvalidConfig, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: timeout must be non-negative, got %s", dynamo.ErrInvalidConfig, d)
	}
	return d, nil
}

// SimConfig converts the file settings into a run configuration.
func (c *Config) SimConfig() (sim.Config, error) {
	if err := c.Validate(); err != nil {
		return sim.Config{}, err
	}
	mode, _ := sim.ParseMode(c.Mode)
	timeout, _ := c.timeout()
	return sim.Config{
		Mode:       mode,
		Steps:      c.Steps,
		MaxSteps:   c.MaxSteps,
		Timeout:    timeout,
		Record:     c.Record,
		CheckEvery: sim.DefaultCheckEvery,
	}, nil
}

// InitialState returns the inline bodies if any, otherwise reads Input.
func (c *Config) InitialState() (dynamo.State, error) {
	if len(c.Bodies) > 0 {
		return ParseBodyList(c.Bodies)
	}
	if c.Input != "" {
		return LoadBodies(c.Input)
	}
	return nil, fmt.Errorf("%w: config names neither bodies nor an input file", dynamo.ErrInputUnavailable)
}
