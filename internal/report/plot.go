package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/UnknownOlympus/planimeter/internal/models"
)

// errorFloor keeps zero relative errors representable on the log axis.
const errorFloor = 1e-12

// plotWidth and plotHeight size the saved charts.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// PlotExecutionTimes renders the execution time of the three methods
// against the vertex count and saves the chart to path. The image format
// is derived from the file extension.
func PlotExecutionTimes(path string, records []models.BenchmarkRecord) error {
	plt := plot.New()
	plt.Title.Text = "Execution Time vs Number of Vertices"
	plt.X.Label.Text = "Number of Vertices"
	plt.Y.Label.Text = "Execution Time (seconds)"
	plt.Add(plotter.NewGrid())

	exact := make(plotter.XYs, len(records))
	shoelace := make(plotter.XYs, len(records))
	monteCarlo := make(plotter.XYs, len(records))
	for i, record := range records {
		count := float64(record.VertexCount)
		exact[i] = plotter.XY{X: count, Y: record.TimeExact.Seconds()}
		shoelace[i] = plotter.XY{X: count, Y: record.TimeShoelace.Seconds()}
		monteCarlo[i] = plotter.XY{X: count, Y: record.TimeMonteCarlo.Seconds()}
	}

	err := plotutil.AddLinePoints(plt, "Exact", exact, "Shoelace", shoelace, "Monte Carlo", monteCarlo)
	if err != nil {
		return fmt.Errorf("failed to add execution time series: %w", err)
	}

	if err = plt.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("failed to save execution time plot: %w", err)
	}

	return nil
}

// PlotErrorVsIterations renders the Monte Carlo relative error against
// the accepted sample count on log-log axes and saves the chart to path.
func PlotErrorVsIterations(path string, records []models.BenchmarkRecord) error {
	plt := plot.New()
	plt.Title.Text = "Error vs Monte Carlo Iterations"
	plt.X.Label.Text = "Monte Carlo Iterations"
	plt.Y.Label.Text = "Relative Error"
	plt.X.Scale = plot.LogScale{}
	plt.Y.Scale = plot.LogScale{}
	plt.X.Tick.Marker = plot.LogTicks{Prec: -1}
	plt.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	plt.Add(plotter.NewGrid())

	points := make(plotter.XYs, len(records))
	for i, record := range records {
		relativeError := record.RelativeError
		if relativeError < errorFloor {
			relativeError = errorFloor
		}
		points[i] = plotter.XY{X: float64(record.IterationsUsed), Y: relativeError}
	}

	if err := plotutil.AddLinePoints(plt, points); err != nil {
		return fmt.Errorf("failed to add error series: %w", err)
	}

	if err := plt.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("failed to save error plot: %w", err)
	}

	return nil
}
