package pipeline

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lucasjlepore/trail-trainer/garmin"
)

var exportHeader = []string{
	"date", "activity_type", "distance_km", "duration_min", "calories",
	"total_ascent_m", "total_descent_m", "avg_hr_bpm", "max_hr_bpm", "aerobic_te",
}

func writeActivitiesCSV(path string, activities []garmin.Activity) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, a := range activities {
		row := []string{
			a.Date.Format(time.RFC3339),
			a.Type,
			formatFloat(a.DistanceKm),
			formatFloat(a.DurationMin),
			formatFloat(a.Calories),
			formatFloat(a.AscentM),
			formatFloat(a.DescentM),
			formatFloatPtr(a.AvgHR),
			formatFloatPtr(a.MaxHR),
			formatFloatPtr(a.TrainingEffect),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type activityParquetRow struct {
	Date          string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ActivityType  string  `parquet:"name=activity_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	DistanceKm    float64 `parquet:"name=distance_km, type=DOUBLE"`
	DurationMin   float64 `parquet:"name=duration_min, type=DOUBLE"`
	Calories      float64 `parquet:"name=calories, type=DOUBLE"`
	TotalAscentM  float64 `parquet:"name=total_ascent_m, type=DOUBLE"`
	TotalDescentM float64 `parquet:"name=total_descent_m, type=DOUBLE"`
	AvgHRBPM      float64 `parquet:"name=avg_hr_bpm, type=DOUBLE"`
	MaxHRBPM      float64 `parquet:"name=max_hr_bpm, type=DOUBLE"`
	AerobicTE     float64 `parquet:"name=aerobic_te, type=DOUBLE"`
}

func writeActivitiesParquet(path string, activities []garmin.Activity) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(activityParquetRow), 4)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, a := range activities {
		row := activityParquetRow{
			Date:          a.Date.Format(time.RFC3339),
			ActivityType:  a.Type,
			DistanceKm:    a.DistanceKm,
			DurationMin:   a.DurationMin,
			Calories:      a.Calories,
			TotalAscentM:  a.AscentM,
			TotalDescentM: a.DescentM,
			AvgHRBPM:      valueOrNaN(a.AvgHR),
			MaxHRBPM:      valueOrNaN(a.MaxHR),
			AerobicTE:     valueOrNaN(a.TrainingEffect),
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
