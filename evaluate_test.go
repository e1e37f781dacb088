package trailtrainer

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/lucasjlepore/trail-trainer/garmin"
)

var (
	testMarathon = time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	testRace     = time.Date(2026, 4, 26, 0, 0, 0, 0, time.UTC)
	testNow      = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
)

func testRun(t *testing.T, day string, km, ascent float64) garmin.Activity {
	t.Helper()
	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("bad test date %q: %v", day, err)
	}
	return garmin.Activity{
		Date:       date,
		Type:       garmin.TypeRunning,
		DistanceKm: km,
		AscentM:    ascent,
	}
}

func withTE(a garmin.Activity, te float64) garmin.Activity {
	a.TrainingEffect = &te
	return a
}

func withHR(a garmin.Activity, avg, max float64) garmin.Activity {
	a.AvgHR = &avg
	a.MaxHR = &max
	return a
}

func TestEvaluateOnTrackScenario(t *testing.T) {
	// 4 runs inside the last 7 days: 40 km and 300 m total against the
	// week 1 target of 35 km / 200 m / 4 runs.
	activities := []garmin.Activity{
		testRun(t, "2026-01-04", 10, 75),
		testRun(t, "2026-01-06", 10, 75),
		testRun(t, "2026-01-08", 10, 75),
		testRun(t, "2026-01-10", 10, 75),
	}

	eval, err := Evaluate(activities, Config{
		PlanWeek:     1,
		Now:          testNow,
		MarathonDate: testMarathon,
		RaceDate:     testRace,
	})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	if math.Abs(eval.Plan.DistancePct-114.2857) > 0.001 {
		t.Fatalf("distance pct = %v, want ~114.29", eval.Plan.DistancePct)
	}
	if eval.Plan.ElevationPct != 150 {
		t.Fatalf("elevation pct = %v, want 150", eval.Plan.ElevationPct)
	}
	if eval.Plan.RunsPct != 100 {
		t.Fatalf("runs pct = %v, want 100", eval.Plan.RunsPct)
	}
	if eval.Plan.Assessment != AdherenceOnTrack {
		t.Fatalf("assessment = %q, want %q", eval.Plan.Assessment, AdherenceOnTrack)
	}
	if eval.Plan.Severity != SeverityNormal {
		t.Fatalf("severity = %q, want %q", eval.Plan.Severity, SeverityNormal)
	}

	// All 4 runs also fall in the 28-day window; the weekly average always
	// divides by 4.
	if eval.FourWeek.DistanceKm != 40 || eval.FourWeek.Runs != 4 {
		t.Fatalf("four week stats = %+v", eval.FourWeek)
	}
	if eval.FourWeek.WeeklyDistanceKm != 10 {
		t.Fatalf("weekly distance = %v, want 10", eval.FourWeek.WeeklyDistanceKm)
	}
	if eval.FourWeek.WeeklyElevationM != 75 {
		t.Fatalf("weekly elevation = %v, want 75", eval.FourWeek.WeeklyElevationM)
	}
	if eval.FourWeek.AvgRunKm != 10 {
		t.Fatalf("avg run = %v, want 10", eval.FourWeek.AvgRunKm)
	}

	if eval.Phase.Name != "BASE BUILDING" {
		t.Fatalf("phase = %q", eval.Phase.Name)
	}
	if eval.NextTarget != TargetForWeek(2) {
		t.Fatalf("next target = %+v", eval.NextTarget)
	}
}

func TestAdherenceBoundaries(t *testing.T) {
	target := PlanTarget{DistanceKm: 100, ElevationM: 100, Runs: 4}
	cases := []struct {
		distance  float64
		elevation float64
		want      string
	}{
		{90, 80, AdherenceOnTrack}, // both thresholds are closed
		{89.9, 80, AdherenceSlightlyBehind},
		{90, 79.9, AdherenceSlightlyBehind},
		{75, 0, AdherenceSlightlyBehind}, // distance check is closed at 75
		{74.9, 200, AdherenceBehindTarget},
	}
	for _, tc := range cases {
		pc := comparePlan(WindowTotals{DistanceKm: tc.distance, ElevationM: tc.elevation, Runs: 4}, target)
		if pc.Assessment != tc.want {
			t.Fatalf("comparePlan(%v km, %v m) = %q, want %q", tc.distance, tc.elevation, pc.Assessment, tc.want)
		}
	}
}

func TestZeroTargetPercentage(t *testing.T) {
	pc := comparePlan(WindowTotals{DistanceKm: 10, ElevationM: 100, Runs: 2}, PlanTarget{})
	if pc.DistancePct != 0 || pc.ElevationPct != 0 || pc.RunsPct != 0 {
		t.Fatalf("zero targets must yield 0%%, got %+v", pc)
	}
}

func TestRecoveryBoundaries(t *testing.T) {
	cases := []struct {
		daysAfter int
		want      string
		severity  Severity
	}{
		{13, RecoveryEarly, SeverityCaution},
		{14, RecoveryPhase, SeverityCaution}, // exactly 2.0 weeks
		{27, RecoveryPhase, SeverityCaution},
		{28, RecoveryRecovered, SeverityNormal},
	}
	for _, tc := range cases {
		maxDate := testMarathon.AddDate(0, 0, tc.daysAfter)
		rs := recoveryStatus(nil, maxDate, testMarathon)
		if rs.Status != tc.want || rs.Severity != tc.severity {
			t.Fatalf("recovery at +%dd = %q/%q, want %q/%q", tc.daysAfter, rs.Status, rs.Severity, tc.want, tc.severity)
		}
	}
}

func TestRecoveryPostMarathonStats(t *testing.T) {
	runs := []garmin.Activity{
		testRun(t, "2025-10-01", 20, 100), // before the marathon
		testRun(t, "2025-10-20", 8, 50),
		testRun(t, "2025-10-25", 12, 80),
	}
	rs := recoveryStatus(runs, runs[2].Date, testMarathon)
	if rs.Runs != 2 {
		t.Fatalf("post-marathon runs = %d, want 2", rs.Runs)
	}
	if rs.DistanceKm != 20 || rs.AvgRunKm != 10 {
		t.Fatalf("post-marathon distance = %v avg %v", rs.DistanceKm, rs.AvgRunKm)
	}
}

func TestLoadStatusUnavailableWithoutTE(t *testing.T) {
	activities := []garmin.Activity{
		testRun(t, "2026-01-08", 10, 50),
		testRun(t, "2026-01-10", 10, 50),
	}
	eval, err := Evaluate(activities, Config{
		PlanWeek:     1,
		Now:          testNow,
		MarathonDate: testMarathon,
		RaceDate:     testRace,
	})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if eval.Load.Status != LoadUnavailable {
		t.Fatalf("load status = %q, want %q", eval.Load.Status, LoadUnavailable)
	}
	if eval.Load.Severity != SeverityNeutral {
		t.Fatalf("load severity = %q, want %q", eval.Load.Severity, SeverityNeutral)
	}
	if eval.Load.AvgTrainingEffect != nil || eval.Load.AvgHR != nil {
		t.Fatal("expected nil sentinels for wholly absent metrics")
	}
}

func TestLoadStatusClassification(t *testing.T) {
	cases := []struct {
		te       float64
		want     string
		severity Severity
	}{
		{4.5, LoadHigh, SeveritySevere},
		{3.5, LoadModerate, SeverityNormal},
		{3.0, LoadLow, SeverityCaution}, // boundary is strict
		{2.0, LoadLow, SeverityCaution},
	}
	for _, tc := range cases {
		runs := []garmin.Activity{
			withTE(testRun(t, "2026-01-09", 10, 50), tc.te),
			withTE(testRun(t, "2026-01-10", 10, 50), tc.te),
		}
		ls := loadStatus(runs)
		if ls.Status != tc.want || ls.Severity != tc.severity {
			t.Fatalf("loadStatus(TE %v) = %q/%q, want %q/%q", tc.te, ls.Status, ls.Severity, tc.want, tc.severity)
		}
	}
}

func TestLoadStatusWindowIsLastTen(t *testing.T) {
	// Two old high-TE runs followed by ten low-TE runs: only the last ten
	// count, so the status must come out LOW.
	runs := []garmin.Activity{
		withTE(testRun(t, "2025-12-01", 10, 50), 5.0),
		withTE(testRun(t, "2025-12-02", 10, 50), 5.0),
	}
	for day := 1; day <= 10; day++ {
		date := time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		runs = append(runs, withTE(testRun(t, date, 10, 50), 2.0))
	}

	ls := loadStatus(runs)
	if ls.Status != LoadLow {
		t.Fatalf("load status = %q, want %q", ls.Status, LoadLow)
	}
	if *ls.AvgTrainingEffect != 2.0 {
		t.Fatalf("avg TE = %v, want 2.0", *ls.AvgTrainingEffect)
	}
}

func TestLoadStatusAveragesHR(t *testing.T) {
	runs := []garmin.Activity{
		withHR(withTE(testRun(t, "2026-01-09", 10, 50), 3.2), 140, 170),
		withHR(withTE(testRun(t, "2026-01-10", 10, 50), 3.2), 150, 180),
		testRun(t, "2026-01-10", 5, 20), // no HR; skipped from the mean
	}
	ls := loadStatus(runs)
	if ls.AvgHR == nil || *ls.AvgHR != 145 {
		t.Fatalf("avg HR = %v, want 145", ls.AvgHR)
	}
	if ls.AvgMaxHR == nil || *ls.AvgMaxHR != 175 {
		t.Fatalf("avg max HR = %v, want 175", ls.AvgMaxHR)
	}
}

func TestRaceCountdownFloorsDays(t *testing.T) {
	now := time.Date(2026, 4, 16, 18, 0, 0, 0, time.UTC)
	rc := raceCountdown(testRace, now)
	if rc.Days != 9 {
		t.Fatalf("days to race = %d, want 9", rc.Days)
	}
	if math.Abs(rc.Weeks-9.0/7.0) > 1e-9 {
		t.Fatalf("weeks to race = %v", rc.Weeks)
	}
}

func TestEvaluateRequiresMatchingActivities(t *testing.T) {
	activities := []garmin.Activity{
		{Date: testNow, Type: "Cycling", DistanceKm: 30},
	}
	if _, err := Evaluate(activities, Config{PlanWeek: 1, Now: testNow, MarathonDate: testMarathon, RaceDate: testRace}); err == nil {
		t.Fatal("expected error when no activities match the requested type")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	activities := []garmin.Activity{
		withHR(withTE(testRun(t, "2026-01-04", 10, 75), 3.1), 145, 170),
		withHR(withTE(testRun(t, "2026-01-06", 10, 75), 3.4), 148, 173),
		testRun(t, "2026-01-08", 10, 75),
		testRun(t, "2026-01-10", 10, 75),
	}
	cfg := Config{PlanWeek: 3, Now: testNow, MarathonDate: testMarathon, RaceDate: testRace}

	first, err := Evaluate(activities, cfg)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	second, err := Evaluate(activities, cfg)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated evaluation of unchanged input differs")
	}
}
