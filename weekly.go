package trailtrainer

import (
	"sort"
	"time"

	"github.com/lucasjlepore/trail-trainer/garmin"
)

// WeekSummary aggregates all activities whose date falls in the same
// calendar week (Monday start). AvgHR is nil when no activity in the week
// carried a heart-rate value.
type WeekSummary struct {
	Start          time.Time `json:"week_start"`
	End            time.Time `json:"week_end"`
	Label          string    `json:"label"`
	DistanceKm     float64   `json:"distance_km"`
	AscentM        float64   `json:"ascent_m"`
	DurationMin    float64   `json:"duration_min"`
	Runs           int       `json:"runs"`
	AvgHR          *float64  `json:"avg_hr_bpm,omitempty"`
	TrainingEffect float64   `json:"aerobic_te_sum"`
}

// WeeklyTotals buckets the activities of the last lookbackWeeks*7 days
// (relative to the most recent activity date) by calendar week. Buckets are
// returned in chronological order; weeks without activities are omitted.
// Input row order does not affect the result.
func WeeklyTotals(activities []garmin.Activity, lookbackWeeks int) []WeekSummary {
	if len(activities) == 0 || lookbackWeeks <= 0 {
		return nil
	}

	maxDate := activities[0].Date
	for _, a := range activities[1:] {
		if a.Date.After(maxDate) {
			maxDate = a.Date
		}
	}
	cutoff := maxDate.AddDate(0, 0, -lookbackWeeks*7)

	type accum struct {
		summary WeekSummary
		hrSum   float64
		hrCount int
	}
	buckets := make(map[time.Time]*accum)
	for _, a := range activities {
		if a.Date.Before(cutoff) {
			continue
		}
		start := weekStart(a.Date)
		b, ok := buckets[start]
		if !ok {
			end := start.AddDate(0, 0, 6)
			b = &accum{summary: WeekSummary{
				Start: start,
				End:   end,
				Label: start.Format("2006-01-02") + "/" + end.Format("2006-01-02"),
			}}
			buckets[start] = b
		}
		b.summary.DistanceKm += a.DistanceKm
		b.summary.AscentM += a.AscentM
		b.summary.DurationMin += a.DurationMin
		b.summary.Runs++
		if a.AvgHR != nil {
			b.hrSum += *a.AvgHR
			b.hrCount++
		}
		if a.TrainingEffect != nil {
			b.summary.TrainingEffect += *a.TrainingEffect
		}
	}

	starts := make([]time.Time, 0, len(buckets))
	for start := range buckets {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	out := make([]WeekSummary, 0, len(starts))
	for _, start := range starts {
		b := buckets[start]
		if b.hrCount > 0 {
			avg := b.hrSum / float64(b.hrCount)
			b.summary.AvgHR = &avg
		}
		out = append(out, b.summary)
	}
	return out
}

// weekStart truncates a timestamp to midnight of its week's Monday.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
