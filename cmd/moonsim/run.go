package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/moonsim/internal/config"
	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/metrics"
	"github.com/san-kum/moonsim/internal/physics"
	"github.com/san-kum/moonsim/internal/sim"
	"github.com/san-kum/moonsim/internal/storage"
	"github.com/san-kum/moonsim/internal/viz"
	"github.com/spf13/cobra"
)

// resolveConfig layers the run settings: preset, then config file, then
// positional input and explicit flags.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	source := ""

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg, source = p, preset
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		if len(fileCfg.Bodies) == 0 && fileCfg.Input == "" {
			fileCfg.Bodies, fileCfg.Input = cfg.Bodies, cfg.Input
		}
		cfg, source = fileCfg, configFile
	}

	if len(args) > 0 {
		cfg.Input, cfg.Bodies = args[0], nil
		source = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout.String()
	}

	if len(cfg.Bodies) == 0 && cfg.Input == "" {
		return nil, "", fmt.Errorf("%w: give an input file, --config or --preset", dynamo.ErrInputUnavailable)
	}
	return cfg, source, cfg.Validate()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, source, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	x0, err := cfg.InitialState()
	if err != nil {
		return err
	}
	simCfg, err := cfg.SimConfig()
	if err != nil {
		return err
	}
	if save {
		simCfg.Record = true
	}

	moons := physics.NewMoons()
	s := sim.New(moons)
	for _, m := range metrics.Defaults(moons) {
		s.AddMetric(m)
	}
	if verbose {
		fmt.Fprintf(out, "step 0:\n%s\n", viz.FormatState(x0))
		s.AddObserver(&recurrencePrinter{w: out})
	}

	fmt.Fprintf(out, "running %s simulation...\n", simCfg.Mode)
	start := time.Now()

	result, runErr := s.Run(cmd.Context(), x0, simCfg)
	if result == nil {
		return runErr
	}
	fmt.Fprintf(out, "completed in %v\n\n", time.Since(start))

	switch simCfg.Mode {
	case sim.ModePeriod:
		fmt.Fprintln(out, viz.RenderPeriodReport(result))
	default:
		fmt.Fprintln(out, viz.RenderEnergyReport(result))
	}
	if runErr != nil {
		return runErr
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		bodies := make([]string, len(x0))
		for i, b := range x0 {
			bodies[i] = config.FormatBody(b)
		}
		runID, err := st.Save(storage.NewMetadata(source, bodies, simCfg, result), result)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}
	return nil
}

// recurrencePrinter prints the system whenever an axis returns to its start.
type recurrencePrinter struct {
	w io.Writer
}

func (p *recurrencePrinter) OnStep(dynamo.State, int64) {}

func (p *recurrencePrinter) OnRecurrence(a dynamo.Axis, step int64, x dynamo.State) {
	fmt.Fprintf(p.w, "axis %s recurred at step %d:\n%s\n", a, step, viz.FormatState(x))
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(out, "  %-10s %s, %d steps\n", name, p.Mode, p.Steps)
		fmt.Fprintf(out, "  %-10s %s\n", "", strings.Join(p.Bodies, " "))
	}
	return nil
}
