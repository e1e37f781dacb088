package garmin

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tormoder/fit"
)

func TestLoadFITConvertsSession(t *testing.T) {
	start := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)
	path := writeTestFIT(t, t.TempDir(), "run.fit", start)

	act, err := LoadFIT(path)
	if err != nil {
		t.Fatalf("LoadFIT error: %v", err)
	}

	if act.Type != TypeRunning {
		t.Fatalf("unexpected activity type: %q", act.Type)
	}
	if !act.Date.Equal(start) {
		t.Fatalf("unexpected date: %v", act.Date)
	}
	if math.Abs(act.DistanceKm-10.12) > 0.001 {
		t.Fatalf("expected 10.12 km, got %v", act.DistanceKm)
	}
	if math.Abs(act.DurationMin-60) > 0.001 {
		t.Fatalf("expected 60 minutes, got %v", act.DurationMin)
	}
	if act.AscentM != 180 || act.DescentM != 175 {
		t.Fatalf("unexpected elevation: +%v/-%v", act.AscentM, act.DescentM)
	}
	if act.AvgHR == nil || *act.AvgHR != 148 {
		t.Fatalf("expected avg HR 148, got %v", act.AvgHR)
	}
	if act.MaxHR == nil || *act.MaxHR != 172 {
		t.Fatalf("expected max HR 172, got %v", act.MaxHR)
	}
	if act.TrainingEffect == nil || math.Abs(*act.TrainingEffect-3.3) > 0.001 {
		t.Fatalf("expected training effect 3.3, got %v", act.TrainingEffect)
	}
}

func TestLoadFITDirSortsByDate(t *testing.T) {
	dir := t.TempDir()
	later := time.Date(2026, 2, 22, 9, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 2, 18, 7, 30, 0, 0, time.UTC)
	writeTestFIT(t, dir, "b.fit", later)
	writeTestFIT(t, dir, "a.fit", earlier)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	activities, err := LoadFITDir(dir)
	if err != nil {
		t.Fatalf("LoadFITDir error: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if !activities[0].Date.Equal(earlier) || !activities[1].Date.Equal(later) {
		t.Fatalf("activities not sorted by date: %v, %v", activities[0].Date, activities[1].Date)
	}
}

func writeTestFIT(t *testing.T, dir, name string, start time.Time) string {
	t.Helper()

	header := fit.NewHeader(fit.V20, true)
	file, err := fit.NewFile(fit.FileTypeActivity, header)
	if err != nil {
		t.Fatalf("new fit file: %v", err)
	}
	activity, err := file.Activity()
	if err != nil {
		t.Fatalf("activity accessor: %v", err)
	}

	event := fit.NewEventMsg()
	event.Timestamp = start
	event.Event = fit.EventTimer
	event.EventType = fit.EventTypeStart
	activity.Events = append(activity.Events, event)

	record := fit.NewRecordMsg()
	record.Timestamp = start.Add(30 * time.Second)
	record.HeartRate = 140
	activity.Records = append(activity.Records, record)

	session := fit.NewSessionMsg()
	session.StartTime = start
	session.Timestamp = start.Add(time.Hour)
	session.Sport = fit.SportRunning
	session.TotalDistance = 1012000 // 10.12 km, centimeter scale
	session.TotalTimerTime = 3600000
	session.TotalCalories = 650
	session.TotalAscent = 180
	session.TotalDescent = 175
	session.AvgHeartRate = 148
	session.MaxHeartRate = 172
	session.TotalTrainingEffect = 33
	activity.Sessions = append(activity.Sessions, session)

	var buf bytes.Buffer
	if err := fit.Encode(&buf, file, binary.LittleEndian); err != nil {
		t.Fatalf("encode fit: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fit file: %v", err)
	}
	return path
}
