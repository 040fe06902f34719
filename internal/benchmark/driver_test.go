package benchmark_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/UnknownOlympus/planimeter/internal/benchmark"
	"github.com/UnknownOlympus/planimeter/internal/geometry"
	"github.com/UnknownOlympus/planimeter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDriver builds a driver with a silent logger, a private metric
// registry, and a fixed seed.
func newTestDriver(seed uint64, opts benchmark.Options) *benchmark.Driver {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	rng := rand.New(rand.NewPCG(seed, seed+1))
	return benchmark.NewDriver(logger, appMetrics, rng, opts)
}

func TestDriver_Run_EndToEnd(t *testing.T) {
	driver := newTestDriver(21, benchmark.DefaultOptions())
	vertexCounts := []int{10, 50, 100}

	records, err := driver.Run(context.Background(), vertexCounts)
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, record := range records {
		assert.Equal(t, vertexCounts[i], record.VertexCount)

		assert.Positive(t, record.AreaExact)
		assert.InEpsilon(t, record.AreaExact, record.AreaShoelace, 1e-9)
		assert.Positive(t, record.AreaMonteCarlo)

		assert.GreaterOrEqual(t, record.IterationsUsed, 10000)
		assert.LessOrEqual(t, record.IterationsUsed, 1000000)
		if record.RelativeError >= 0.01 {
			assert.Equal(t, 1000000, record.IterationsUsed, "cap must have been reached when the target error was not")
		}

		assert.Positive(t, record.TimeMonteCarlo)
	}
}

func TestDriver_Run_InvalidVertexCount(t *testing.T) {
	driver := newTestDriver(1, benchmark.DefaultOptions())

	records, err := driver.Run(context.Background(), []int{10, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrInvalidPolygon)
	assert.Nil(t, records)
}

func TestDriver_Run_CanceledContext(t *testing.T) {
	driver := newTestDriver(1, benchmark.DefaultOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := driver.Run(ctx, []int{10})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, records)
}

func TestDriver_Run_MetricsRecorded(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)
	rng := rand.New(rand.NewPCG(5, 6))
	driver := benchmark.NewDriver(logger, appMetrics, rng, benchmark.DefaultOptions())

	_, err := driver.Run(context.Background(), []int{10})
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["planimeter_polygons_generated_total"])
	assert.True(t, names["planimeter_monte_carlo_samples_total"])
	assert.True(t, names["planimeter_refinement_rounds_total"])
	assert.True(t, names["planimeter_method_duration_seconds"])
}
