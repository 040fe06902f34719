package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/UnknownOlympus/planimeter/internal/geometry"
	"github.com/UnknownOlympus/planimeter/internal/metrics"
	"github.com/UnknownOlympus/planimeter/internal/models"
	"github.com/paulmach/orb"
)

// Options control polygon generation and the Monte Carlo refinement loop.
type Options struct {
	Radius         float64 // Radius is the nominal polygon radius before perturbation.
	InitialSamples int     // InitialSamples is the sample count the refinement starts from.
	MaxSamples     int     // MaxSamples caps the sample count; growth is clamped to it.
	TargetError    float64 // TargetError is the relative error at which refinement stops.
	GrowthFactor   float64 // GrowthFactor multiplies the sample count between rounds. Must be greater than 1.
}

// DefaultOptions returns the reference parameters of the benchmark:
// radius 10, samples growing from 10,000 to at most 1,000,000 by a factor
// of 1.5, stopping at 1% relative error.
func DefaultOptions() Options {
	return Options{
		Radius:         10,
		InitialSamples: 10000,
		MaxSamples:     1000000,
		TargetError:    0.01,
		GrowthFactor:   1.5,
	}
}

// Driver benchmarks the three area methods against each other, one
// polygon per requested vertex count, strictly in the order the counts
// are supplied.
type Driver struct {
	log     *slog.Logger     // Logger for benchmark progress
	metrics *metrics.Metrics // Metrics for instrumenting the pipeline
	rng     *rand.Rand       // Randomness source for generation and sampling
	opts    Options          // Generation and refinement parameters
}

// NewDriver creates a new benchmark driver. The randomness source is
// injected so tests can run with fixed seeds; the default entry point
// seeds it from the wall clock.
func NewDriver(log *slog.Logger, appMetrics *metrics.Metrics, rng *rand.Rand, opts Options) *Driver {
	return &Driver{
		log:     log,
		metrics: appMetrics,
		rng:     rng,
		opts:    opts,
	}
}

// Run benchmarks one polygon per vertex count and returns the records in
// input order. A generation failure or context cancellation aborts the
// whole run; there is no partial-result recovery across sizes.
func (d *Driver) Run(ctx context.Context, vertexCounts []int) ([]models.BenchmarkRecord, error) {
	records := make([]models.BenchmarkRecord, 0, len(vertexCounts))

	for _, count := range vertexCounts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("benchmark interrupted: %w", err)
		}

		record, err := d.benchmarkOne(ctx, count)
		if err != nil {
			return nil, fmt.Errorf("benchmark for %d vertices: %w", count, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// benchmarkOne generates a polygon, times the exact and Shoelace methods
// once each, runs the adaptive Monte Carlo refinement, and times one
// extra Monte Carlo run at the accepted sample count.
func (d *Driver) benchmarkOne(ctx context.Context, vertexCount int) (models.BenchmarkRecord, error) {
	ring, err := geometry.Generate(d.rng, vertexCount, d.opts.Radius)
	if err != nil {
		return models.BenchmarkRecord{}, err
	}
	d.metrics.PolygonsGenerated.Inc()

	vertices := geometry.Vertices(ring)

	var areaExact float64
	timeExact := measure(func() { areaExact = geometry.ExactArea(ring) })
	d.metrics.MethodSeconds.WithLabelValues("exact").Observe(timeExact.Seconds())

	var areaShoelace float64
	timeShoelace := measure(func() { areaShoelace = geometry.ShoelaceArea(vertices) })
	d.metrics.MethodSeconds.WithLabelValues("shoelace").Observe(timeShoelace.Seconds())

	areaMonteCarlo, relativeError, samples := d.refine(ring, areaExact)

	// The timing run repeats the sampling at the accepted sample count and
	// discards its estimate: the reported value stays the one the
	// refinement converged on, the timing reflects a single full run.
	timeMonteCarlo := measure(func() { geometry.MonteCarloArea(d.rng, ring, samples) })
	d.metrics.MethodSeconds.WithLabelValues("monte_carlo").Observe(timeMonteCarlo.Seconds())

	d.log.InfoContext(ctx, "Benchmarked polygon",
		"vertices", vertexCount,
		"area_exact", areaExact,
		"error_mc", relativeError,
		"samples", samples,
	)

	return models.BenchmarkRecord{
		VertexCount:    vertexCount,
		AreaExact:      areaExact,
		AreaShoelace:   areaShoelace,
		AreaMonteCarlo: areaMonteCarlo,
		RelativeError:  relativeError,
		TimeExact:      timeExact,
		TimeShoelace:   timeShoelace,
		TimeMonteCarlo: timeMonteCarlo,
		IterationsUsed: samples,
	}, nil
}

// refine grows the Monte Carlo sample count until the estimate lands
// within the target relative error or the cap is reached. Every round
// draws a fresh independent estimate, so the observed error can
// transiently increase; only the expected error shrinks with the sample
// count. A zero exact area would make the relative error undefined, so
// the loop accepts the first estimate immediately in that case (the
// generator's positive-area validation makes it unreachable in the
// normal pipeline).
func (d *Driver) refine(ring orb.Ring, areaExact float64) (area, relativeError float64, samples int) {
	samples = d.opts.InitialSamples

	for {
		area = geometry.MonteCarloArea(d.rng, ring, samples)
		d.metrics.SamplesDrawn.Add(float64(samples))
		d.metrics.RefinementRounds.Inc()

		if areaExact == 0 {
			return area, 0, samples
		}

		relativeError = math.Abs((area - areaExact) / areaExact)
		if relativeError < d.opts.TargetError || samples >= d.opts.MaxSamples {
			return area, relativeError, samples
		}

		next := int(float64(samples) * d.opts.GrowthFactor)
		if next <= samples {
			// Flooring can stall small sample counts (int(1 * 1.5) == 1);
			// force progress so the loop always reaches the cap.
			next = samples + 1
		}
		if next > d.opts.MaxSamples {
			next = d.opts.MaxSamples
		}
		samples = next
	}
}

// measure times a single invocation of fn.
func measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
