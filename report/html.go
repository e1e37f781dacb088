package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"time"

	trailtrainer "github.com/lucasjlepore/trail-trainer"
)

// Meta carries the presentation-only inputs of the report: race identity,
// plan length and the generation timestamp for the footer.
type Meta struct {
	RaceName     string
	PlanWeeks    int
	MarathonDate time.Time
	MarathonTime string
	GeneratedAt  time.Time
}

// Render produces the self-contained HTML report for an evaluation.
func Render(e *trailtrainer.Evaluation, meta Meta) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("evaluation is required")
	}

	labels := make([]string, 0, len(e.Weekly))
	distances := make([]float64, 0, len(e.Weekly))
	elevations := make([]float64, 0, len(e.Weekly))
	for _, w := range e.Weekly {
		labels = append(labels, w.Label)
		distances = append(distances, round1(w.DistanceKm))
		elevations = append(elevations, round1(w.AscentM))
	}

	labelsJS, err := jsArray(labels)
	if err != nil {
		return nil, err
	}
	distancesJS, err := jsArray(distances)
	if err != nil {
		return nil, err
	}
	elevationsJS, err := jsArray(elevations)
	if err != nil {
		return nil, err
	}

	data := page{
		Meta:            meta,
		E:               e,
		RecoveryClass:   badgeClass(e.Recovery.Severity),
		AssessmentClass: badgeClass(e.Plan.Severity),
		AssessmentIcon:  assessmentIcon(e.Plan.Severity),
		LoadClass:       badgeClass(e.Load.Severity),
		DistanceBar:     barWidth(e.Plan.DistancePct),
		ElevationBar:    barWidth(e.Plan.ElevationPct),
		RunsBar:         barWidth(e.Plan.RunsPct),
		AvgHR:           formatOptional(e.Load.AvgHR, "%.0f"),
		AvgMaxHR:        formatOptional(e.Load.AvgMaxHR, "%.0f"),
		AvgTE:           formatOptional(e.Load.AvgTrainingEffect, "%.1f"),
		ChartLabels:     labelsJS,
		ChartDistances:  distancesJS,
		ChartElevations: elevationsJS,
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute report template: %w", err)
	}
	return buf.Bytes(), nil
}

type page struct {
	Meta Meta
	E    *trailtrainer.Evaluation

	RecoveryClass   string
	AssessmentClass string
	AssessmentIcon  string
	LoadClass       string

	DistanceBar  float64
	ElevationBar float64
	RunsBar      float64

	AvgHR    string
	AvgMaxHR string
	AvgTE    string

	ChartLabels     template.JS
	ChartDistances  template.JS
	ChartElevations template.JS
}

// badgeClass maps a severity band to the stylesheet's badge/alert classes.
func badgeClass(s trailtrainer.Severity) string {
	switch s {
	case trailtrainer.SeverityNormal:
		return "success"
	case trailtrainer.SeverityCaution:
		return "warning"
	case trailtrainer.SeveritySevere:
		return "danger"
	default:
		return "secondary"
	}
}

func assessmentIcon(s trailtrainer.Severity) string {
	switch s {
	case trailtrainer.SeverityNormal:
		return "✓"
	case trailtrainer.SeverityCaution:
		return "△"
	default:
		return "⚠"
	}
}

// barWidth caps the displayed progress-bar width at 100%. The stored
// percentage itself stays unclamped.
func barWidth(pct float64) float64 {
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func formatOptional(v *float64, format string) string {
	if v == nil {
		return "–"
	}
	return fmt.Sprintf(format, *v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func jsArray(v any) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal chart data: %w", err)
	}
	return template.JS(data), nil
}
