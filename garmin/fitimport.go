package garmin

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tormoder/fit"
)

// LoadFIT decodes a single activity FIT file into one Activity record using
// the first session message. Units are converted to the export's conventions
// (kilometers, minutes, meters).
func LoadFIT(path string) (Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return Activity{}, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return Activity{}, fmt.Errorf("decode FIT file: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return Activity{}, fmt.Errorf("activity FIT expected: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return Activity{}, fmt.Errorf("activity file has no session message")
	}

	session := activity.Sessions[0]
	act := Activity{
		Type:        activityTypeForSport(session.Sport),
		DistanceKm:  safePositive(session.GetTotalDistanceScaled()) / 1000.0,
		DurationMin: safePositive(session.GetTotalTimerTimeScaled()) / 60.0,
		Calories:    float64(validUint16(session.TotalCalories)),
		AscentM:     float64(validUint16(session.TotalAscent)),
		DescentM:    float64(validUint16(session.TotalDescent)),
	}

	act.Date = session.StartTime
	if act.Date.IsZero() || fit.IsBaseTime(act.Date) {
		act.Date = session.Timestamp
	}
	if act.Date.IsZero() || fit.IsBaseTime(act.Date) {
		return Activity{}, fmt.Errorf("session has no usable start time")
	}

	if hr := validUint8(session.AvgHeartRate); hr > 0 {
		v := float64(hr)
		act.AvgHR = &v
	}
	if hr := validUint8(session.MaxHeartRate); hr > 0 {
		v := float64(hr)
		act.MaxHR = &v
	}
	if te := session.GetTotalTrainingEffectScaled(); isFinite(te) && te > 0 {
		act.TrainingEffect = &te
	}

	return act, nil
}

// LoadFITDir decodes every .fit file directly under dir and returns the
// resulting activities sorted by date ascending. Files that fail to decode
// abort the load, matching the fatal-load-error contract of the CSV path.
func LoadFITDir(dir string) ([]Activity, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read FIT directory: %w", err)
	}

	activities := make([]Activity, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".fit") {
			continue
		}
		act, err := LoadFIT(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		activities = append(activities, act)
	}

	SortByDate(activities)
	return activities, nil
}

func activityTypeForSport(s fit.Sport) string {
	switch s {
	case fit.SportRunning:
		return TypeRunning
	case fit.SportCycling:
		return "Cycling"
	case fit.SportHiking:
		return "Hiking"
	case fit.SportWalking:
		return "Walking"
	default:
		return fmt.Sprint(s)
	}
}

func validUint8(v uint8) uint8 {
	if v == math.MaxUint8 {
		return 0
	}
	return v
}

func validUint16(v uint16) uint16 {
	if v == math.MaxUint16 {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func safePositive(v float64) float64 {
	if !isFinite(v) || v <= 0 {
		return 0
	}
	return v
}
