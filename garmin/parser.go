package garmin

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

var requiredColumns = []string{
	ColDate,
	ColActivityType,
	ColDistance,
	ColCalories,
	ColTime,
	ColTotalAscent,
	ColTotalDescent,
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoadCSV reads a Garmin Connect activity export and returns the normalized
// record set, sorted by date ascending.
func LoadCSV(path string) ([]Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open activity export: %w", err)
	}
	defer f.Close()

	activities, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return activities, nil
}

// ParseCSV parses the export from r. A missing required column or a required
// field that cannot be coerced to a number is a fatal error; optional columns
// (Avg HR, Max HR, Aerobic TE) degrade to nil per row instead.
func ParseCSV(r io.Reader) ([]Activity, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("required column %q missing from export", name)
		}
	}

	activities := make([]Activity, 0, 256)
	rowNum := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum+1, err)
		}
		rowNum++

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		date, err := parseDate(field(ColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		distance, err := parseGroupedFloat(field(ColDistance))
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", rowNum, ColDistance, err)
		}
		calories, err := parseGroupedFloat(field(ColCalories))
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", rowNum, ColCalories, err)
		}

		activities = append(activities, Activity{
			Date:           date,
			Type:           field(ColActivityType),
			DistanceKm:     distance,
			Calories:       calories,
			DurationMin:    durationMinutes(field(ColTime)),
			AscentM:        lenientFloat(field(ColTotalAscent)),
			DescentM:       lenientFloat(field(ColTotalDescent)),
			AvgHR:          optionalFloat(field(ColAvgHR)),
			MaxHR:          optionalFloat(field(ColMaxHR)),
			TrainingEffect: optionalFloat(field(ColAerobicTE)),
		})
	}

	SortByDate(activities)
	return activities, nil
}

// SortByDate orders activities by date ascending. The sort is stable so that
// rows sharing a date keep their export order, which the most-recent-N
// windows depend on.
func SortByDate(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date.Before(activities[j].Date)
	})
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("column %q is empty", ColDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %q: cannot parse %q as a date", ColDate, raw)
}

// parseGroupedFloat strips thousands-separator commas before parsing. An
// empty cell coerces to 0; non-numeric text is an error.
func parseGroupedFloat(raw string) (float64, error) {
	if raw == "" || raw == "--" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a number", raw)
	}
	return v, nil
}

// lenientFloat coerces the elevation columns, where missing or non-numeric
// entries mean "no barometer data" and become 0 rather than an error.
func lenientFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func optionalFloat(raw string) *float64 {
	if raw == "" || raw == "--" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}

// durationMinutes converts the export's H:MM:SS or MM:SS time strings to
// float minutes. The conversion is lossy on purpose: an empty or unparseable
// value becomes 0, indistinguishable from a zero-length activity.
func durationMinutes(raw string) float64 {
	parts := strings.Split(raw, ":")
	switch len(parts) {
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		s, err3 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0
		}
		return float64(h)*60 + float64(m) + s/60
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		s, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0
		}
		return float64(m) + s/60
	default:
		return 0
	}
}
