package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/sim"
)

// FormatState prints one line per body.
func FormatState(x dynamo.State) string {
	var sb strings.Builder
	for _, b := range x {
		sb.WriteString(b.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderEnergyReport summarises an energy run with a per-body breakdown.
func RenderEnergyReport(r *sim.Result) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("ENERGY") + "\n\n")
	s.WriteString(row("Steps", grouped(r.StepsTaken)))
	s.WriteString(row("Total energy", grouped(r.Energy)))

	if len(r.Final) > 0 {
		s.WriteString("\n")
		s.WriteString(subtleStyle.Render(fmt.Sprintf("%-6s %10s %10s %12s", "body", "pot", "kin", "total")) + "\n")
		for i, b := range r.Final {
			s.WriteString(fmt.Sprintf("%-6d %10s %10s %12s\n", i,
				grouped(b.PotentialEnergy()), grouped(b.KineticEnergy()), grouped(b.TotalEnergy())))
		}
	}

	if len(r.Metrics) > 0 {
		s.WriteString("\n")
		s.WriteString(renderMetrics(r.Metrics))
	}
	return panelStyle.Render(strings.TrimRight(s.String(), "\n"))
}

// RenderPeriodReport lists each axis period and the combined period. Axes
// not found yet are shown as pending.
func RenderPeriodReport(r *sim.Result) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("PERIOD") + "\n\n")
	for _, a := range dynamo.Axes {
		label := "Axis " + a.String()
		if p := r.Periods[a]; p > 0 {
			s.WriteString(labelStyle.Render(label) + foundStyle.Render(grouped(p)) + "\n")
		} else {
			s.WriteString(labelStyle.Render(label) + pendingStyle.Render("not found") + "\n")
		}
	}
	s.WriteString(row("Steps run", grouped(r.StepsTaken)))
	if r.Period > 0 {
		s.WriteString("\n" + row("Period", grouped(r.Period)))
	}
	return panelStyle.Render(strings.TrimRight(s.String(), "\n"))
}

func renderMetrics(metrics map[string]int64) string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	var s strings.Builder
	for _, name := range names {
		s.WriteString(row(name, grouped(metrics[name])))
	}
	return s.String()
}
