package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	trailtrainer "github.com/lucasjlepore/trail-trainer"
	"github.com/lucasjlepore/trail-trainer/garmin"
	"github.com/lucasjlepore/trail-trainer/report"
)

// Run executes one full report pass: load, normalize, evaluate, render,
// write. There is no partial-success mode; either the whole run completes or
// it aborts with an error.
func Run(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.CSVPath) == "" && strings.TrimSpace(opts.FITDir) == "" {
		return nil, fmt.Errorf("an activity export (CSV) or a FIT directory is required")
	}
	if opts.PlanWeek < 1 {
		opts.PlanWeek = 1
	}
	outPath := opts.OutPath
	if strings.TrimSpace(outPath) == "" {
		outPath = "training_report.html"
	}
	exportFormat := strings.ToLower(strings.TrimSpace(opts.ExportFormat))
	if exportFormat != "" && exportFormat != "csv" && exportFormat != "parquet" {
		return nil, fmt.Errorf("unsupported export format %q (expected parquet|csv)", exportFormat)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	raceCfg := DefaultRaceConfig()
	if opts.RaceConfigPath != "" {
		var err error
		raceCfg, err = LoadRaceConfig(opts.RaceConfigPath)
		if err != nil {
			return nil, err
		}
	}
	raceDate, marathonDate, err := raceCfg.Dates()
	if err != nil {
		return nil, err
	}

	activities, err := loadActivities(opts)
	if err != nil {
		return nil, err
	}
	logrus.WithField("activities", len(activities)).Info("activity export loaded")

	eval, err := trailtrainer.Evaluate(activities, trailtrainer.Config{
		PlanWeek:     opts.PlanWeek,
		ActivityType: opts.ActivityType,
		Now:          now,
		MarathonDate: marathonDate,
		RaceDate:     raceDate,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate training data: %w", err)
	}
	if eval.Load.Status == trailtrainer.LoadUnavailable {
		logrus.Warn("no aerobic training effect data; load status degraded to N/A")
	}

	html, err := report.Render(eval, report.Meta{
		RaceName:     raceCfg.Name,
		PlanWeeks:    raceCfg.PlanWeeks,
		MarathonDate: marathonDate,
		MarathonTime: raceCfg.MarathonTime,
		GeneratedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(outPath, html, 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	result := &Result{
		ReportPath:    outPath,
		ActivityCount: len(activities),
		EvaluatedRuns: eval.FourWeek.Runs,
		Assessment:    eval.Plan.Assessment,
		Summary:       trailtrainer.BuildSummary(eval),
	}

	if exportFormat != "" {
		exportPath := exportPathFor(outPath, exportFormat)
		switch exportFormat {
		case "csv":
			err = writeActivitiesCSV(exportPath, activities)
		case "parquet":
			err = writeActivitiesParquet(exportPath, activities)
		}
		if err != nil {
			return nil, fmt.Errorf("write normalized activities: %w", err)
		}
		result.ExportPath = exportPath
		logrus.WithField("path", exportPath).Info("normalized activities exported")
	}

	return result, nil
}

func loadActivities(opts Options) ([]garmin.Activity, error) {
	var activities []garmin.Activity
	if opts.CSVPath != "" {
		fromCSV, err := garmin.LoadCSV(opts.CSVPath)
		if err != nil {
			return nil, err
		}
		activities = append(activities, fromCSV...)
	}
	if opts.FITDir != "" {
		fromFIT, err := garmin.LoadFITDir(opts.FITDir)
		if err != nil {
			return nil, err
		}
		activities = append(activities, fromFIT...)
	}
	// Merging two sources can interleave dates; re-sort so every window
	// computation sees date-ascending order.
	garmin.SortByDate(activities)
	return activities, nil
}

func exportPathFor(reportPath, format string) string {
	dir := filepath.Dir(reportPath)
	return filepath.Join(dir, "canonical_activities."+format)
}
