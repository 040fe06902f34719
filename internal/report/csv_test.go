package report_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/planimeter/internal/models"
	"github.com/UnknownOlympus/planimeter/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []models.BenchmarkRecord {
	return []models.BenchmarkRecord{
		{
			VertexCount:    10,
			AreaExact:      291.4378259173912,
			AreaShoelace:   291.43782591739125,
			AreaMonteCarlo: 290.11,
			RelativeError:  0.004556,
			TimeExact:      1530 * time.Nanosecond,
			TimeShoelace:   820 * time.Nanosecond,
			TimeMonteCarlo: 4 * time.Millisecond,
			IterationsUsed: 15000,
		},
		{
			VertexCount:    50,
			AreaExact:      305.2,
			AreaShoelace:   305.2,
			AreaMonteCarlo: 309.9,
			RelativeError:  0.0154,
			TimeExact:      2100 * time.Nanosecond,
			TimeShoelace:   1400 * time.Nanosecond,
			TimeMonteCarlo: 420 * time.Millisecond,
			IterationsUsed: 1000000,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "results.csv")

	records := sampleRecords()
	require.NoError(t, report.WriteCSV(path, records))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)

	assert.Equal(t, []string{
		"vertex_count", "area_exact", "area_shoelace", "area_monte_carlo",
		"relative_error", "time_exact", "time_shoelace", "time_monte_carlo",
		"iterations_used",
	}, rows[0])

	for i, record := range records {
		row := rows[i+1]

		vertexCount, err := strconv.Atoi(row[0])
		require.NoError(t, err)
		assert.Equal(t, record.VertexCount, vertexCount)

		// Floats must round-trip exactly so the table can be re-derived
		// from the in-memory results without loss.
		areaExact, err := strconv.ParseFloat(row[1], 64)
		require.NoError(t, err)
		assert.Equal(t, record.AreaExact, areaExact)

		areaShoelace, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		assert.Equal(t, record.AreaShoelace, areaShoelace)

		timeExact, err := strconv.ParseFloat(row[5], 64)
		require.NoError(t, err)
		assert.Equal(t, record.TimeExact.Seconds(), timeExact)

		iterations, err := strconv.Atoi(row[8])
		require.NoError(t, err)
		assert.Equal(t, record.IterationsUsed, iterations)
	}
}

func TestWriteCSV_EmptyRecords(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "empty.csv")

	require.NoError(t, report.WriteCSV(path, nil))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestWriteCSV_BadPath(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "missing", "results.csv")

	err := report.WriteCSV(path, sampleRecords())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create results file")
}
