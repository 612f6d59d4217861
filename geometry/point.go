// Package geometry holds the plane-coordinate primitives shared by the
// cost model, the solver's callers, and the I/O layer.
package geometry

import "math"

// Point is a well or a house in the plane.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Round2 rounds v to two decimal places, matching the input/output file
// format's precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
