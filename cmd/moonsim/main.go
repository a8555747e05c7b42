package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	mode       string
	steps      int64
	maxSteps   int64
	timeout    time.Duration
	preset     string
	configFile string
	save       bool
	verbose    bool
	// plot and phase selection
	body     int
	axisName string
	// scenario
	workers int
	// export-svg
	planeName string
	// live and verify
	livePreset     string
	verifyMaxSteps int64
)

// main registers the moonsim commands and exits with status 1 when a command
// returns an error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "moonsim",
		Short:        "integer moon simulation: energy and recurrence period",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".moonsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [input]",
		Short: "run simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&mode, "mode", "energy", "energy or period")
	runCmd.Flags().Int64Var(&steps, "steps", 1000, "ticks of an energy run")
	runCmd.Flags().Int64Var(&maxSteps, "max-steps", 0, "bound on a period run (0 = none)")
	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "wall time bound (0 = none)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or gcfg)")
	runCmd.Flags().BoolVar(&save, "save", false, "record the trajectory under the data directory")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the start state and each axis recurrence")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot position and velocity of one body on one axis",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&body, "body", 0, "body index")
	plotCmd.Flags().StringVar(&axisName, "axis", "x", "axis (x, y or z)")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase portrait (position vs velocity) of one body on one axis",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&body, "body", 0, "body index")
	phaseCmd.Flags().StringVar(&axisName, "axis", "x", "axis (x, y or z)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw the orbits of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&planeName, "plane", "xy", "projection plane (two axes)")

	liveCmd := &cobra.Command{
		Use:   "live [input]",
		Short: "run simulation with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&livePreset, "preset", "canonical", "preset used when no input is given")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a batch of simulations from a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (0 = one per cpu)")

	verifyCmd := &cobra.Command{
		Use:   "verify [input]",
		Short: "check the per-axis period against a full-state search",
		Args:  cobra.MaximumNArgs(1),
		RunE:  verifyPeriod,
	}
	verifyCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	verifyCmd.Flags().Int64Var(&verifyMaxSteps, "max-steps", 1_000_000, "bound on both searches")

	rootCmd.AddCommand(runCmd, presetsCmd, listCmd, plotCmd, phaseCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, liveCmd, scenarioCmd, verifyCmd)
	return rootCmd
}
