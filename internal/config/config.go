package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the polygon area benchmark.
// It includes the environment, the polygon sizes to benchmark, the
// nominal polygon radius, the Monte Carlo refinement parameters, and the
// paths of the output artifacts.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod), controls logging.
// - VertexCounts: The polygon sizes to benchmark, in order.
// - Radius: The nominal polygon radius before random perturbation.
// - Sampling: Parameters of the adaptive Monte Carlo refinement loop.
// - Output: Paths of the CSV table and the two plot files.
type Config struct {
	Env          string         // Env is the current environment: local, dev, prod.
	VertexCounts []int          // VertexCounts are the polygon sizes to benchmark.
	Radius       float64        // Radius is the nominal polygon radius.
	Sampling     SamplingConfig // Sampling holds the Monte Carlo refinement parameters.
	Output       OutputConfig   // Output holds the paths of the produced artifacts.
}

// SamplingConfig struct holds the parameters of the adaptive Monte Carlo
// refinement loop.
type SamplingConfig struct {
	InitialSamples int     // InitialSamples is the sample count the refinement starts from.
	MaxSamples     int     // MaxSamples caps the sample count growth.
	TargetError    float64 // TargetError is the relative error at which refinement stops.
	GrowthFactor   float64 // GrowthFactor multiplies the sample count between rounds.
}

// OutputConfig struct holds the paths of the output artifacts.
type OutputConfig struct {
	CSVPath       string // CSVPath is where the benchmark table is written.
	TimesPlotPath string // TimesPlotPath is where the execution time chart is written.
	ErrorPlotPath string // ErrorPlotPath is where the error vs iterations chart is written.
}

// MustLoad loads the configuration from environment variables (optionally
// preloaded from a .env file) and returns a Config struct. It panics on
// malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	counts, err := parseVertexCounts(setDefaultEnv("PLANIMETER_VERTEX_COUNTS", "10,50,100"))
	if err != nil {
		panic("failed to parse vertex counts from configuration, must be positive integers")
	}

	radius, err := strconv.ParseFloat(setDefaultEnv("PLANIMETER_RADIUS", "10"), 64)
	if err != nil || radius <= 0 {
		panic("failed to parse radius from configuration, must be a positive number")
	}

	initialSamples, err := strconv.Atoi(setDefaultEnv("PLANIMETER_INITIAL_SAMPLES", "10000"))
	if err != nil || initialSamples <= 0 {
		panic("failed to parse initial samples from configuration, must be a positive integer")
	}

	maxSamples, err := strconv.Atoi(setDefaultEnv("PLANIMETER_MAX_SAMPLES", "1000000"))
	if err != nil || maxSamples < initialSamples {
		panic("failed to parse max samples from configuration, must not be below initial samples")
	}

	targetError, err := strconv.ParseFloat(setDefaultEnv("PLANIMETER_TARGET_ERROR", "0.01"), 64)
	if err != nil || targetError <= 0 {
		panic("failed to parse target error from configuration, must be a positive number")
	}

	growthFactor, err := strconv.ParseFloat(setDefaultEnv("PLANIMETER_GROWTH_FACTOR", "1.5"), 64)
	if err != nil || growthFactor <= 1 {
		panic("failed to parse growth factor from configuration, must be greater than one")
	}

	return &Config{
		Env:          setDefaultEnv("PLANIMETER_ENV", "production"),
		VertexCounts: counts,
		Radius:       radius,
		Sampling: SamplingConfig{
			InitialSamples: initialSamples,
			MaxSamples:     maxSamples,
			TargetError:    targetError,
			GrowthFactor:   growthFactor,
		},
		Output: OutputConfig{
			CSVPath:       setDefaultEnv("PLANIMETER_CSV_PATH", "polygon_benchmark_results.csv"),
			TimesPlotPath: setDefaultEnv("PLANIMETER_TIMES_PLOT_PATH", "execution_times.png"),
			ErrorPlotPath: setDefaultEnv("PLANIMETER_ERROR_PLOT_PATH", "monte_carlo_error.png"),
		},
	}
}

// parseVertexCounts parses a comma-separated list of positive integers.
func parseVertexCounts(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	counts := make([]int, 0, len(parts))
	for _, part := range parts {
		count, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if count <= 0 {
			return nil, strconv.ErrRange
		}
		counts = append(counts, count)
	}
	return counts, nil
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
