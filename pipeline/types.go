package pipeline

import "time"

// Options configures one report run.
type Options struct {
	// CSVPath points at a Garmin Connect activity export. At least one of
	// CSVPath and FITDir is required; when both are set the record sets are
	// merged.
	CSVPath string
	// FITDir is a directory of raw .fit activity files to ingest.
	FITDir string
	// PlanWeek is the current week of the training plan (1 when unset).
	PlanWeek int
	// OutPath is where the HTML report is written.
	OutPath string
	// RaceConfigPath optionally points at a TOML file overriding the
	// built-in race constants.
	RaceConfigPath string
	// ActivityType selects which activities are evaluated ("Running" when
	// unset).
	ActivityType string
	// ExportFormat, when "csv" or "parquet", also writes the normalized
	// activity table next to the report.
	ExportFormat string
	// Now is the report's reference time; zero means the wall clock.
	Now time.Time
}

// Result returns generated artifacts and the headline classification.
type Result struct {
	ReportPath    string `json:"report_path"`
	ExportPath    string `json:"export_path,omitempty"`
	ActivityCount int    `json:"activity_count"`
	EvaluatedRuns int    `json:"evaluated_runs"`
	Assessment    string `json:"assessment"`
	Summary       string `json:"summary"`
}
