package models

import "time"

// BenchmarkRecord holds the measurements for one benchmarked polygon size.
// Records are immutable after the driver produces them and map one-to-one
// onto rows of the exported CSV table.
type BenchmarkRecord struct {
	VertexCount    int           // VertexCount is the number of polygon vertices requested.
	AreaExact      float64       // AreaExact is the area computed by the geometry library (ground truth).
	AreaShoelace   float64       // AreaShoelace is the area computed by the Shoelace formula.
	AreaMonteCarlo float64       // AreaMonteCarlo is the accepted Monte Carlo estimate.
	RelativeError  float64       // RelativeError is abs((AreaMonteCarlo - AreaExact) / AreaExact).
	TimeExact      time.Duration // TimeExact is the execution time of the exact method.
	TimeShoelace   time.Duration // TimeShoelace is the execution time of the Shoelace method.
	TimeMonteCarlo time.Duration // TimeMonteCarlo is the execution time of one Monte Carlo run at IterationsUsed samples.
	IterationsUsed int           // IterationsUsed is the sample count the refinement loop settled on.
}
