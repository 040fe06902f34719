package geometry

import (
	"math"
	"math/rand/v2"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ExactArea returns the polygon area computed by the planar geometry
// library. It is treated as ground truth when computing the relative
// error of the Monte Carlo estimate.
func ExactArea(ring orb.Ring) float64 {
	return math.Abs(planar.Area(ring))
}

// ShoelaceArea computes the polygon area with the Shoelace formula over
// the ordered vertex sequence. Indexing wraps around, so the sequence may
// be given open or closed; the sign of the accumulated sum encodes the
// winding direction and is discarded. Degenerate input (collinear or
// duplicate vertices) yields 0 rather than an error.
func ShoelaceArea(vertices []orb.Point) float64 {
	count := len(vertices)
	if count < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < count; i++ {
		current := vertices[i]
		next := vertices[(i+1)%count]
		sum += current.X()*next.Y() - next.X()*current.Y()
	}

	return math.Abs(sum) / 2
}

// MonteCarloArea estimates the polygon area by drawing sampleCount points
// uniformly within the bounding box and counting how many land inside the
// ring. Points exactly on the boundary count as inside (the containment
// predicate's semantics); the boundary has measure zero, so this does not
// affect the estimator. The result is a random variable whose standard
// error shrinks as 1/sqrt(sampleCount).
func MonteCarloArea(rng *rand.Rand, ring orb.Ring, sampleCount int) float64 {
	if sampleCount <= 0 {
		return 0
	}

	bound := ring.Bound()
	inside := 0
	for i := 0; i < sampleCount; i++ {
		point := orb.Point{
			uniform(rng, bound.Min.X(), bound.Max.X()),
			uniform(rng, bound.Min.Y(), bound.Max.Y()),
		}
		if planar.RingContains(ring, point) {
			inside++
		}
	}

	boxArea := (bound.Max.X() - bound.Min.X()) * (bound.Max.Y() - bound.Min.Y())
	return boxArea * float64(inside) / float64(sampleCount)
}

// uniform draws a value uniformly from [low, high).
func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}
