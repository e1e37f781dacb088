package trailtrainer

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasjlepore/trail-trainer/garmin"
)

const chartLookbackWeeks = 8

// Severity is the band a classified status falls into. The renderer maps it
// to a visual treatment; the evaluator only decides the band.
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityCaution Severity = "caution"
	SeveritySevere  Severity = "severe"
	SeverityNeutral Severity = "neutral"
)

// Recovery status labels.
const (
	RecoveryEarly     = "EARLY RECOVERY"
	RecoveryPhase     = "RECOVERY PHASE"
	RecoveryRecovered = "RECOVERED"
)

// Plan adherence labels.
const (
	AdherenceOnTrack        = "ON TRACK"
	AdherenceSlightlyBehind = "SLIGHTLY BEHIND"
	AdherenceBehindTarget   = "BEHIND TARGET"
)

// Training load labels.
const (
	LoadHigh        = "HIGH LOAD"
	LoadModerate    = "MODERATE LOAD"
	LoadLow         = "LOW LOAD"
	LoadUnavailable = "N/A"
)

// Config carries the evaluator's explicit inputs. Now is passed in rather
// than read from the wall clock so Evaluate stays a pure function.
type Config struct {
	PlanWeek     int
	ActivityType string
	Now          time.Time
	MarathonDate time.Time
	RaceDate     time.Time
}

// RecoveryStatus describes training since the reference marathon.
type RecoveryStatus struct {
	DaysSince  int      `json:"days_since_marathon"`
	WeeksSince float64  `json:"weeks_since_marathon"`
	Runs       int      `json:"post_marathon_runs"`
	DistanceKm float64  `json:"post_marathon_distance_km"`
	AvgRunKm   float64  `json:"post_marathon_avg_km"`
	Status     string   `json:"status"`
	Severity   Severity `json:"severity"`
}

// TrailingStats summarizes the trailing 28-day window. The weekly averages
// always divide by 4, regardless of how many whole weeks hold data; the
// original scenario data assumed that convention.
type TrailingStats struct {
	DistanceKm       float64 `json:"distance_km"`
	ElevationM       float64 `json:"elevation_m"`
	Runs             int     `json:"runs"`
	AvgRunKm         float64 `json:"avg_run_km"`
	WeeklyDistanceKm float64 `json:"weekly_distance_km"`
	WeeklyElevationM float64 `json:"weekly_elevation_m"`
}

// WindowTotals holds the trailing-7-day totals compared against the plan.
type WindowTotals struct {
	DistanceKm float64 `json:"distance_km"`
	ElevationM float64 `json:"elevation_m"`
	Runs       int     `json:"runs"`
}

// PlanComparison holds actual-vs-target percentages and the adherence call.
// Percentages are stored unclamped; only the renderer caps bar widths.
type PlanComparison struct {
	Target       PlanTarget `json:"target"`
	DistancePct  float64    `json:"distance_pct"`
	ElevationPct float64    `json:"elevation_pct"`
	RunsPct      float64    `json:"runs_pct"`
	Assessment   string     `json:"assessment"`
	Severity     Severity   `json:"severity"`
}

// LoadStatus summarizes heart rate and aerobic training effect over the ten
// most recent runs. Fields stay nil when the export carried no data, which
// is what pushes Status to N/A instead of a fabricated LOW LOAD.
type LoadStatus struct {
	AvgHR             *float64 `json:"avg_hr_bpm,omitempty"`
	AvgMaxHR          *float64 `json:"avg_max_hr_bpm,omitempty"`
	AvgTrainingEffect *float64 `json:"avg_aerobic_te,omitempty"`
	Status            string   `json:"status"`
	Severity          Severity `json:"severity"`
}

// RaceCountdown is time remaining until race day.
type RaceCountdown struct {
	Days  int     `json:"days"`
	Weeks float64 `json:"weeks"`
}

// Evaluation is the full set of derived values handed to the renderer.
type Evaluation struct {
	PlanWeek   int            `json:"plan_week"`
	Phase      Phase          `json:"phase"`
	Recovery   RecoveryStatus `json:"recovery"`
	FourWeek   TrailingStats  `json:"four_week"`
	LastWeek   WindowTotals   `json:"last_week"`
	Plan       PlanComparison `json:"plan"`
	Load       LoadStatus     `json:"load"`
	Countdown  RaceCountdown  `json:"countdown"`
	Weekly     []WeekSummary  `json:"weekly"`
	NextTarget PlanTarget     `json:"next_target"`
}

// Evaluate runs the full aggregation pass over the normalized record set and
// classifies the results. It is a pure function of its inputs: calling it
// twice on the same data yields identical results.
func Evaluate(activities []garmin.Activity, cfg Config) (*Evaluation, error) {
	if cfg.PlanWeek < 1 {
		cfg.PlanWeek = 1
	}
	activityType := cfg.ActivityType
	if activityType == "" {
		activityType = garmin.TypeRunning
	}

	runs := garmin.Filter(activities, activityType)
	if len(runs) == 0 {
		return nil, fmt.Errorf("no %q activities in the export", activityType)
	}
	maxDate := runs[len(runs)-1].Date
	for _, a := range runs {
		if a.Date.After(maxDate) {
			maxDate = a.Date
		}
	}

	eval := &Evaluation{
		PlanWeek:   cfg.PlanWeek,
		Phase:      PhaseForWeek(cfg.PlanWeek),
		Recovery:   recoveryStatus(runs, maxDate, cfg.MarathonDate),
		FourWeek:   trailingFourWeeks(runs, maxDate),
		LastWeek:   lastSevenDays(runs, maxDate),
		Load:       loadStatus(runs),
		Countdown:  raceCountdown(cfg.RaceDate, cfg.Now),
		Weekly:     WeeklyTotals(runs, chartLookbackWeeks),
		NextTarget: TargetForWeek(cfg.PlanWeek + 1),
	}
	eval.Plan = comparePlan(eval.LastWeek, TargetForWeek(cfg.PlanWeek))

	return eval, nil
}

func recoveryStatus(runs []garmin.Activity, maxDate, marathonDate time.Time) RecoveryStatus {
	rs := RecoveryStatus{
		DaysSince: int(math.Floor(maxDate.Sub(marathonDate).Hours() / 24)),
	}
	rs.WeeksSince = float64(rs.DaysSince) / 7

	for _, a := range runs {
		if a.Date.After(marathonDate) {
			rs.Runs++
			rs.DistanceKm += a.DistanceKm
		}
	}
	if rs.Runs > 0 {
		rs.AvgRunKm = rs.DistanceKm / float64(rs.Runs)
	}

	switch {
	case rs.WeeksSince < 2:
		rs.Status = RecoveryEarly
		rs.Severity = SeverityCaution
	case rs.WeeksSince < 4:
		rs.Status = RecoveryPhase
		rs.Severity = SeverityCaution
	default:
		rs.Status = RecoveryRecovered
		rs.Severity = SeverityNormal
	}
	return rs
}

func trailingFourWeeks(runs []garmin.Activity, maxDate time.Time) TrailingStats {
	cutoff := maxDate.AddDate(0, 0, -28)
	ts := TrailingStats{}
	for _, a := range runs {
		if a.Date.Before(cutoff) {
			continue
		}
		ts.DistanceKm += a.DistanceKm
		ts.ElevationM += a.AscentM
		ts.Runs++
	}
	if ts.Runs > 0 {
		ts.AvgRunKm = ts.DistanceKm / float64(ts.Runs)
	}
	ts.WeeklyDistanceKm = ts.DistanceKm / 4
	ts.WeeklyElevationM = ts.ElevationM / 4
	return ts
}

func lastSevenDays(runs []garmin.Activity, maxDate time.Time) WindowTotals {
	start := maxDate.AddDate(0, 0, -7)
	wt := WindowTotals{}
	for _, a := range runs {
		if a.Date.Before(start) || a.Date.After(maxDate) {
			continue
		}
		wt.DistanceKm += a.DistanceKm
		wt.ElevationM += a.AscentM
		wt.Runs++
	}
	return wt
}

func comparePlan(actual WindowTotals, target PlanTarget) PlanComparison {
	pc := PlanComparison{
		Target:       target,
		DistancePct:  pctOfTarget(actual.DistanceKm, target.DistanceKm),
		ElevationPct: pctOfTarget(actual.ElevationM, target.ElevationM),
		RunsPct:      pctOfTarget(float64(actual.Runs), float64(target.Runs)),
	}

	switch {
	case pc.DistancePct >= 90 && pc.ElevationPct >= 80:
		pc.Assessment = AdherenceOnTrack
		pc.Severity = SeverityNormal
	case pc.DistancePct >= 75:
		pc.Assessment = AdherenceSlightlyBehind
		pc.Severity = SeverityCaution
	default:
		pc.Assessment = AdherenceBehindTarget
		pc.Severity = SeveritySevere
	}
	return pc
}

func pctOfTarget(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return actual / target * 100
}

// loadStatus averages the ten most recent runs in sort order. Records
// missing a metric are skipped from that metric's mean; a window with no
// aerobic training effect data at all yields an N/A status.
func loadStatus(runs []garmin.Activity) LoadStatus {
	window := runs
	if len(window) > 10 {
		window = window[len(window)-10:]
	}

	ls := LoadStatus{
		AvgHR:             meanOf(window, func(a garmin.Activity) *float64 { return a.AvgHR }),
		AvgMaxHR:          meanOf(window, func(a garmin.Activity) *float64 { return a.MaxHR }),
		AvgTrainingEffect: meanOf(window, func(a garmin.Activity) *float64 { return a.TrainingEffect }),
	}

	if ls.AvgTrainingEffect == nil {
		ls.Status = LoadUnavailable
		ls.Severity = SeverityNeutral
		return ls
	}
	switch te := *ls.AvgTrainingEffect; {
	case te > 4.0:
		ls.Status = LoadHigh
		ls.Severity = SeveritySevere
	case te > 3.0:
		ls.Status = LoadModerate
		ls.Severity = SeverityNormal
	default:
		ls.Status = LoadLow
		ls.Severity = SeverityCaution
	}
	return ls
}

func meanOf(window []garmin.Activity, metric func(garmin.Activity) *float64) *float64 {
	sum := 0.0
	count := 0
	for _, a := range window {
		if v := metric(a); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}

func raceCountdown(raceDate, now time.Time) RaceCountdown {
	rc := RaceCountdown{
		Days: int(math.Floor(raceDate.Sub(now).Hours() / 24)),
	}
	rc.Weeks = float64(rc.Days) / 7
	return rc
}
