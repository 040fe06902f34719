package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/paulmach/orb"
)

// ErrInvalidPolygon is returned when the generator cannot produce a valid
// simple polygon for the requested parameters.
var ErrInvalidPolygon = errors.New("generated polygon is invalid or self-intersecting")

const (
	// minVertexCount is the smallest polygon the generator accepts.
	minVertexCount = 3
	// minRadialFactor bounds the random perturbation of each vertex
	// distance from below; the factor is drawn uniformly from
	// [minRadialFactor, 1].
	minRadialFactor = 0.8
)

// Generate produces a random simple polygon with vertexCount vertices
// placed around the origin at the given nominal radius.
//
// Vertices are placed at evenly spaced angles with the distance from the
// origin perturbed by an independent uniform factor in [0.8, 1], then
// re-sorted by angle around the centroid. The angular re-sort guards
// against the radial perturbation producing a self-crossing ordering, but
// it is a heuristic, so the result is validated explicitly: the polygon
// must be simple and have positive area, otherwise ErrInvalidPolygon is
// returned.
//
// The returned ring is closed (the first point is repeated at the end)
// and must not be mutated afterwards.
func Generate(rng *rand.Rand, vertexCount int, radius float64) (orb.Ring, error) {
	if vertexCount < minVertexCount {
		return nil, fmt.Errorf("%w: vertex count %d is below %d", ErrInvalidPolygon, vertexCount, minVertexCount)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %v is not positive", ErrInvalidPolygon, radius)
	}

	vertices := make([]orb.Point, vertexCount)
	for i := range vertices {
		angle := 2 * math.Pi * float64(i) / float64(vertexCount)
		distance := uniform(rng, minRadialFactor, 1) * radius
		vertices[i] = orb.Point{math.Cos(angle) * distance, math.Sin(angle) * distance}
	}

	center := centroid(vertices)
	sort.Slice(vertices, func(i, j int) bool {
		return angleFrom(center, vertices[i]) < angleFrom(center, vertices[j])
	})

	if !isSimple(vertices) {
		return nil, fmt.Errorf("%w: edges cross after centroid sort", ErrInvalidPolygon)
	}

	ring := make(orb.Ring, 0, vertexCount+1)
	ring = append(ring, vertices...)
	ring = append(ring, vertices[0])

	if ExactArea(ring) <= 0 {
		return nil, fmt.Errorf("%w: area is not positive", ErrInvalidPolygon)
	}

	return ring, nil
}

// Vertices returns the open vertex sequence of a ring, dropping the
// duplicated closing point if present.
func Vertices(ring orb.Ring) []orb.Point {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

// centroid is the arithmetic mean of the vertex coordinates.
func centroid(vertices []orb.Point) orb.Point {
	var sumX, sumY float64
	for _, vertex := range vertices {
		sumX += vertex.X()
		sumY += vertex.Y()
	}
	count := float64(len(vertices))
	return orb.Point{sumX / count, sumY / count}
}

// angleFrom returns the angle of the vector from center to point.
func angleFrom(center, point orb.Point) float64 {
	return math.Atan2(point.Y()-center.Y(), point.X()-center.X())
}

// isSimple reports whether the open vertex sequence forms a polygon whose
// non-adjacent edges never properly cross. Adjacent edges share a vertex
// and are skipped.
func isSimple(vertices []orb.Point) bool {
	count := len(vertices)
	for i := 0; i < count; i++ {
		firstStart := vertices[i]
		firstEnd := vertices[(i+1)%count]
		for j := i + 1; j < count; j++ {
			if j == i+1 || (i == 0 && j == count-1) {
				continue
			}
			if segmentsCross(firstStart, firstEnd, vertices[j], vertices[(j+1)%count]) {
				return false
			}
		}
	}
	return true
}

// segmentsCross reports whether segments p1-p2 and q1-q2 properly
// intersect, i.e. each segment's endpoints lie strictly on opposite sides
// of the other segment's line. Collinear overlaps and edges touching at a
// vertex are not detected; with continuously distributed random vertices
// these configurations have probability zero, and the positive-area check
// catches the fully collinear case.
func segmentsCross(p1, p2, q1, q2 orb.Point) bool {
	d1 := crossProduct(q1, q2, p1)
	d2 := crossProduct(q1, q2, p2)
	d3 := crossProduct(p1, p2, q1)
	d4 := crossProduct(p1, p2, q2)
	return d1*d2 < 0 && d3*d4 < 0
}

// crossProduct returns the z component of (b-a) x (c-a).
func crossProduct(a, b, c orb.Point) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}
