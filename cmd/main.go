package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/planimeter/internal/benchmark"
	"github.com/UnknownOlympus/planimeter/internal/config"
	"github.com/UnknownOlympus/planimeter/internal/metrics"
	"github.com/UnknownOlympus/planimeter/internal/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is
	// received, so a long refinement run can be aborted cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry so only pipeline metrics are gathered.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Wall-clock seed keeps runs non-reproducible by default; tests inject
	// fixed seeds instead.
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>32))

	driver := benchmark.NewDriver(logger, appMetrics, rng, benchmark.Options{
		Radius:         cfg.Radius,
		InitialSamples: cfg.Sampling.InitialSamples,
		MaxSamples:     cfg.Sampling.MaxSamples,
		TargetError:    cfg.Sampling.TargetError,
		GrowthFactor:   cfg.Sampling.GrowthFactor,
	})

	logger.InfoContext(ctx, "Benchmark started", "vertex_counts", cfg.VertexCounts, "radius", cfg.Radius)

	records, err := driver.Run(ctx, cfg.VertexCounts)
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}

	if err = report.WriteCSV(cfg.Output.CSVPath, records); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
	logger.InfoContext(ctx, "Results saved", "path", cfg.Output.CSVPath)

	if err = report.PlotExecutionTimes(cfg.Output.TimesPlotPath, records); err != nil {
		log.Fatalf("Failed to plot execution times: %v", err)
	}
	if err = report.PlotErrorVsIterations(cfg.Output.ErrorPlotPath, records); err != nil {
		log.Fatalf("Failed to plot Monte Carlo error: %v", err)
	}
	logger.InfoContext(ctx, "Plots saved", "times", cfg.Output.TimesPlotPath, "errors", cfg.Output.ErrorPlotPath)

	logMetricsSummary(ctx, logger, reg)
	logger.InfoContext(ctx, "Benchmark finished.")
}

// logMetricsSummary gathers the registry and logs the counter totals.
// The pipeline has no network surface, so the metrics are reported here
// instead of being served over HTTP.
func logMetricsSummary(ctx context.Context, logger *slog.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to gather metrics", "error", err)
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if counter := metric.GetCounter(); counter != nil {
				logger.InfoContext(ctx, "Metric", "name", family.GetName(), "value", counter.GetValue())
			}
		}
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return logger
}
