package main

import (
	"fmt"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/moonsim/internal/automation"
	"github.com/san-kum/moonsim/internal/config"
	"github.com/san-kum/moonsim/internal/cycle"
	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/physics"
	"github.com/san-kum/moonsim/internal/sim"
	"github.com/san-kum/moonsim/internal/viz"
	"github.com/spf13/cobra"
)

// initialBodies reads the positional input, or the preset when none is given.
func initialBodies(args []string, preset string) (dynamo.State, string, error) {
	if len(args) > 0 {
		x0, err := config.LoadBodies(args[0])
		return x0, args[0], err
	}
	if preset == "" {
		return nil, "", fmt.Errorf("%w: give an input file or --preset", dynamo.ErrInputUnavailable)
	}
	p := config.GetPreset(preset)
	if p == nil {
		return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	x0, err := p.InitialState()
	return x0, preset, err
}

func runLive(cmd *cobra.Command, args []string) error {
	x0, name, err := initialBodies(args, livePreset)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(x0, name), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "running scenario %s (%d runs)...\n\n", sc.Name, len(sc.Runs))
	results := automation.RunScenario(cmd.Context(), sc, workers)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODE\tSTEPS\tRESULT")
	for _, r := range results {
		switch {
		case r.Err != nil:
			mode := r.Mode
			if mode == "" {
				mode = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t-\terror: %v\n", r.Name, mode, r.Err)
		case r.Config.Mode == sim.ModePeriod:
			fmt.Fprintf(w, "%s\t%s\t%d\tperiod=%d\n", r.Name, r.Config.Mode, r.Result.StepsTaken, r.Result.Period)
		default:
			fmt.Fprintf(w, "%s\t%s\t%d\tenergy=%d\n", r.Name, r.Config.Mode, r.Result.StepsTaken, r.Result.Energy)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if n := automation.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d runs failed", n, len(results))
	}
	return nil
}

// verifyPeriod compares the per-axis period with a search over full states.
// Both must agree, and the first repeated state must be the initial one.
func verifyPeriod(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	x0, name, err := initialBodies(args, preset)
	if err != nil {
		return err
	}

	moons := physics.NewMoons()
	cfg := sim.Config{Mode: sim.ModePeriod, MaxSteps: verifyMaxSteps}
	fmt.Fprintf(out, "verifying %s...\n", name)

	result, err := sim.New(moons).Run(cmd.Context(), x0, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "per-axis periods: %v, combined: %d\n", result.Periods, result.Period)

	rec, err := cycle.NaivePeriod(moons, x0, verifyMaxSteps)
	if err != nil {
		return fmt.Errorf("full-state search: %w", err)
	}
	fmt.Fprintf(out, "full-state search: step %d repeats step %d\n", rec.Step, rec.FirstSeen)

	if rec.FirstSeen != 0 {
		return fmt.Errorf("first repeated state is step %d, not the initial state", rec.FirstSeen)
	}
	if rec.Period != result.Period {
		return fmt.Errorf("period mismatch: per-axis %d, full-state %d", result.Period, rec.Period)
	}
	fmt.Fprintln(out, "ok")
	return nil
}
