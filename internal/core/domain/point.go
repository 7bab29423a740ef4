package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a position in 3D Cartesian space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the point as a gonum vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Distance returns the Euclidean distance between p and q, computed as
// sqrt(dx²+dy²+dz²). Non-finite coordinates produce non-finite results.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(r3.Norm2(r3.Sub(p.Vec(), q.Vec())))
}

// String formats the point with two decimals per axis.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}
