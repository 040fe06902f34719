package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/UnknownOlympus/planimeter/internal/models"
)

// csvHeader matches the BenchmarkRecord fields one-to-one.
var csvHeader = []string{
	"vertex_count",
	"area_exact",
	"area_shoelace",
	"area_monte_carlo",
	"relative_error",
	"time_exact",
	"time_shoelace",
	"time_monte_carlo",
	"iterations_used",
}

// WriteCSV dumps the benchmark records to path, one row per polygon size,
// in the order they were produced. Durations are written in seconds and
// floats keep full precision, so the in-memory results can be re-derived
// from the file without loss.
func WriteCSV(path string, records []models.BenchmarkRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err = writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.VertexCount),
			formatFloat(record.AreaExact),
			formatFloat(record.AreaShoelace),
			formatFloat(record.AreaMonteCarlo),
			formatFloat(record.RelativeError),
			formatFloat(record.TimeExact.Seconds()),
			formatFloat(record.TimeShoelace.Seconds()),
			formatFloat(record.TimeMonteCarlo.Seconds()),
			strconv.Itoa(record.IterationsUsed),
		}
		if err = writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %d vertices: %w", record.VertexCount, err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush results file: %w", err)
	}

	return nil
}

// formatFloat renders a float with the shortest representation that
// round-trips exactly.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
