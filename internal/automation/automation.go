package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/san-kum/moonsim/internal/config"
	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/physics"
	"github.com/san-kum/moonsim/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario is a batch of independent runs.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Runs        []ScenarioRun `yaml:"runs"`
}

// ScenarioRun describes one run. Bodies come from Bodies, then Input, then
// Preset; explicit fields override the preset's settings. Steps and MaxSteps
// are pointers so that an explicit zero is kept.
type ScenarioRun struct {
	Name     string   `yaml:"name"`
	Preset   string   `yaml:"preset,omitempty"`
	Input    string   `yaml:"input,omitempty"`
	Bodies   []string `yaml:"bodies,omitempty"`
	Mode     string   `yaml:"mode,omitempty"`
	Steps    *int64   `yaml:"steps,omitempty"`
	MaxSteps *int64   `yaml:"max_steps,omitempty"`
	Timeout  string   `yaml:"timeout,omitempty"`
}

// RunResult holds one run's outcome. Mode is the requested mode name and is
// set even when the run could not be resolved.
type RunResult struct {
	Name   string
	Mode   string
	Config sim.Config
	Result *sim.Result
	Err    error
}

// LoadScenario reads a scenario file. Relative input paths are taken
// relative to the file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i := range scenario.Runs {
		in := scenario.Runs[i].Input
		if in != "" && !filepath.IsAbs(in) {
			scenario.Runs[i].Input = filepath.Join(dir, in)
		}
	}
	return &scenario, nil
}

// Resolve merges the run onto its preset, or the defaults when none is named.
func (r ScenarioRun) Resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if r.Preset != "" {
		cfg = config.GetPreset(r.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %q", dynamo.ErrInvalidConfig, r.Preset)
		}
	}
	if len(r.Bodies) > 0 {
		cfg.Bodies = r.Bodies
		cfg.Input = ""
	} else if r.Input != "" {
		cfg.Bodies = nil
		cfg.Input = r.Input
	}
	if r.Mode != "" {
		cfg.Mode = r.Mode
	}
	if r.Steps != nil {
		cfg.Steps = *r.Steps
	}
	if r.MaxSteps != nil {
		cfg.MaxSteps = *r.MaxSteps
	}
	if r.Timeout != "" {
		cfg.Timeout = r.Timeout
	}
	return cfg, cfg.Validate()
}

// RunScenario executes every run on at most workers goroutines. Results keep
// declaration order; a failing run does not stop the others.
func RunScenario(ctx context.Context, scenario *Scenario, workers int) []RunResult {
	results := make([]RunResult, len(scenario.Runs))
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = execute(ctx, scenario.Runs[idx])
			}
		}()
	}

	for i := range scenario.Runs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func execute(ctx context.Context, run ScenarioRun) RunResult {
	out := RunResult{Name: run.Name, Mode: run.Mode}

	cfg, err := run.Resolve()
	if err != nil {
		out.Err = err
		return out
	}
	out.Mode = cfg.Mode
	x0, err := cfg.InitialState()
	if err != nil {
		out.Err = err
		return out
	}
	out.Config, err = cfg.SimConfig()
	if err != nil {
		out.Err = err
		return out
	}

	out.Result, out.Err = sim.New(physics.NewMoons()).Run(ctx, x0, out.Config)
	return out
}

// Failed counts the runs that returned an error.
func Failed(results []RunResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
