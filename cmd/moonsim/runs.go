package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/moonsim/internal/analysis"
	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/export"
	"github.com/san-kum/moonsim/internal/storage"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tSOURCE\tTIME\tSTEPS\tRESULT")

	for _, run := range runs {
		res := fmt.Sprintf("energy=%d", run.Energy)
		if run.Mode == "period" {
			res = fmt.Sprintf("period=%d", run.Period)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Mode,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.StepsTaken,
			res,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []dynamo.State, []int64, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}
	states, stepIdx, err := st.LoadStates(runID)
	if err != nil {
		return nil, nil, nil, err
	}
	return meta, states, stepIdx, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	a, err := dynamo.ParseAxis(axisName)
	if err != nil {
		return err
	}

	meta, states, _, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(states) < 2 {
		return fmt.Errorf("no data to plot")
	}

	pos, err := analysis.AxisSeries(states, body, a, false)
	if err != nil {
		return err
	}
	vel, err := analysis.AxisSeries(states, body, a, true)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "mode: %s\n", meta.Mode)
	fmt.Fprintf(out, "samples: %d\n\n", len(states))

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{pos, fmt.Sprintf("body %d position (%s)", body, a)},
		{vel, fmt.Sprintf("body %d velocity (%s)", body, a)},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	a, err := dynamo.ParseAxis(axisName)
	if err != nil {
		return err
	}

	meta, states, _, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	portrait, err := analysis.GeneratePhasePortrait(states, body, a)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "phase portrait: %s\n", meta.ID)
	fmt.Fprintf(out, "body %d, axis %s: position →, velocity ↑\n\n", body, a)
	fmt.Fprint(out, analysis.PhasePortraitToASCII(portrait, 70, 20))
	fmt.Fprintln(out, "\nLegend: o = start, • = visited")
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, states, stepIdx, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(cmd.OutOrStdout(), *meta, states, stepIdx)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, states, stepIdx, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.ExportCSV(cmd.OutOrStdout(), states, stepIdx)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	plane, err := export.ParsePlane(planeName)
	if err != nil {
		return err
	}
	_, states, _, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return export.OrbitsSVG(cmd.OutOrStdout(), states, plane, 800, 600)
}
