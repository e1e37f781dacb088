package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lucasjlepore/trail-trainer/pipeline"
)

func main() {
	var (
		csvPath  = flag.String("csv", "", "Path to Garmin Connect activity export (CSV)")
		fitDir   = flag.String("fit-dir", "", "Directory of raw .fit activity files to ingest")
		week     = flag.Int("week", 1, "Current week of the training plan")
		outPath  = flag.String("out", "training_report.html", "Output path for the HTML report")
		racePath = flag.String("race", "", "Optional race config TOML overriding the built-in race")
		export   = flag.String("export", "", "Also export normalized activities: parquet|csv")
		openRep  = flag.Bool("open", false, "Open the generated report in the default browser")
		verbose  = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --csv Activities.csv [--week 5] [--out report.html]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if strings.TrimSpace(*csvPath) == "" && strings.TrimSpace(*fitDir) == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *csvPath != "" {
		if _, err := os.Stat(*csvPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", *csvPath)
			os.Exit(1)
		}
	}

	logrus.Info("analyzing training data")
	result, err := pipeline.Run(pipeline.Options{
		CSVPath:        *csvPath,
		FITDir:         *fitDir,
		PlanWeek:       *week,
		OutPath:        *outPath,
		RaceConfigPath: *racePath,
		ExportFormat:   *export,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "training_report failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.Summary)
	fmt.Println()
	fmt.Printf("Report generated: %s\n", result.ReportPath)
	if result.ExportPath != "" {
		fmt.Printf("Normalized activities: %s\n", result.ExportPath)
	}

	if *openRep {
		if err := openBrowser(result.ReportPath); err != nil {
			logrus.WithError(err).Warn("could not open browser")
		}
	}
}

func openBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	url := "file://" + abs
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
