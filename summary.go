package trailtrainer

import (
	"fmt"
	"strings"
)

// BuildSummary turns an evaluation into a compact console summary. The HTML
// report is the primary artifact; this is what the CLI prints alongside it.
func BuildSummary(e *Evaluation) string {
	if e == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Week %d | Phase: %s\n", e.PlanWeek, e.Phase.Name)
	fmt.Fprintf(
		&b,
		"Race countdown: %d days (%.0f weeks)\n",
		e.Countdown.Days,
		e.Countdown.Weeks,
	)
	fmt.Fprintf(
		&b,
		"Recovery: %s (%d days / %.1f weeks since marathon, %d runs %.1f km since)\n",
		e.Recovery.Status,
		e.Recovery.DaysSince,
		e.Recovery.WeeksSince,
		e.Recovery.Runs,
		e.Recovery.DistanceKm,
	)
	fmt.Fprintf(
		&b,
		"Last 4 weeks: %.1f km | +%.0f m | %d runs | avg %.1f km/run\n",
		e.FourWeek.DistanceKm,
		e.FourWeek.ElevationM,
		e.FourWeek.Runs,
		e.FourWeek.AvgRunKm,
	)
	fmt.Fprintf(
		&b,
		"Weekly average: %.1f km | +%.0f m\n",
		e.FourWeek.WeeklyDistanceKm,
		e.FourWeek.WeeklyElevationM,
	)
	fmt.Fprintf(
		&b,
		"Week vs plan: distance %.1f/%.0f km (%.0f%%) | elevation %.0f/%.0f m (%.0f%%) | runs %d/%d (%.0f%%)\n",
		e.LastWeek.DistanceKm,
		e.Plan.Target.DistanceKm,
		e.Plan.DistancePct,
		e.LastWeek.ElevationM,
		e.Plan.Target.ElevationM,
		e.Plan.ElevationPct,
		e.LastWeek.Runs,
		e.Plan.Target.Runs,
		e.Plan.RunsPct,
	)
	fmt.Fprintf(&b, "Assessment: %s\n", e.Plan.Assessment)

	if e.Load.Status == LoadUnavailable {
		b.WriteString("Training load: N/A (no aerobic training effect data)\n")
	} else {
		fmt.Fprintf(
			&b,
			"Training load: %s (TE %.1f over last 10 runs)\n",
			e.Load.Status,
			*e.Load.AvgTrainingEffect,
		)
	}
	if e.Load.AvgHR != nil {
		fmt.Fprintf(&b, "Avg HR (last 10 runs): %.0f bpm\n", *e.Load.AvgHR)
	}
	fmt.Fprintf(
		&b,
		"Next week target: %.0f km, %.0f m, %d runs\n",
		e.NextTarget.DistanceKm,
		e.NextTarget.ElevationM,
		e.NextTarget.Runs,
	)

	return strings.TrimSpace(b.String())
}
