package garmin

import "time"

// Column names of the Garmin Connect activity export. These are a
// compatibility contract with the upstream CSV format and must match the
// export bit-for-bit.
const (
	ColDate         = "Date"
	ColActivityType = "Activity Type"
	ColDistance     = "Distance"
	ColCalories     = "Calories"
	ColTime         = "Time"
	ColAvgHR        = "Avg HR"
	ColMaxHR        = "Max HR"
	ColTotalAscent  = "Total Ascent"
	ColTotalDescent = "Total Descent"
	ColAerobicTE    = "Aerobic TE"
)

// TypeRunning is the activity type label Garmin assigns to runs.
const TypeRunning = "Running"

// Activity is one normalized activity row. Distances are kilometers,
// elevation is meters, duration is minutes. Optional metrics stay nil when
// the export carries no value so that downstream classification can tell
// "no data" apart from a measured zero.
type Activity struct {
	Date           time.Time `json:"date"`
	Type           string    `json:"activity_type"`
	DistanceKm     float64   `json:"distance_km"`
	Calories       float64   `json:"calories"`
	DurationMin    float64   `json:"duration_min"`
	AscentM        float64   `json:"total_ascent_m"`
	DescentM       float64   `json:"total_descent_m"`
	AvgHR          *float64  `json:"avg_hr_bpm,omitempty"`
	MaxHR          *float64  `json:"max_hr_bpm,omitempty"`
	TrainingEffect *float64  `json:"aerobic_te,omitempty"`
}

// Filter returns, in original order, the activities whose type equals
// activityType. The input is not mutated.
func Filter(activities []Activity, activityType string) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if a.Type == activityType {
			out = append(out, a)
		}
	}
	return out
}
