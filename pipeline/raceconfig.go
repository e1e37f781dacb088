package pipeline

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// RaceConfig names the goal race and the reference marathon. The training
// plan itself is fixed in code; only these constants can be overridden from
// a TOML file.
type RaceConfig struct {
	Name         string `toml:"name"`
	RaceDate     string `toml:"race_date"`
	MarathonDate string `toml:"marathon_date"`
	MarathonTime string `toml:"marathon_time"`
	PlanWeeks    int    `toml:"plan_weeks"`
}

// DefaultRaceConfig returns the built-in race constants.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Name:         "Österlen Spring Trail 60km",
		RaceDate:     "2026-04-26",
		MarathonDate: "2025-10-12",
		MarathonTime: "4:10:00",
		PlanWeeks:    22,
	}
}

// LoadRaceConfig decodes a TOML file over the defaults, so a file only has
// to name the keys it changes.
func LoadRaceConfig(path string) (RaceConfig, error) {
	cfg := DefaultRaceConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RaceConfig{}, fmt.Errorf("decode race config: %w", err)
	}
	if _, _, err := cfg.Dates(); err != nil {
		return RaceConfig{}, err
	}
	if cfg.PlanWeeks < 1 {
		return RaceConfig{}, fmt.Errorf("race config: plan_weeks must be positive")
	}
	return cfg, nil
}

// Dates parses the configured race and marathon dates.
func (c RaceConfig) Dates() (race, marathon time.Time, err error) {
	race, err = time.Parse("2006-01-02", c.RaceDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("race config: race_date: %w", err)
	}
	marathon, err = time.Parse("2006-01-02", c.MarathonDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("race config: marathon_date: %w", err)
	}
	return race, marathon, nil
}
