// Package shape models points and three solids in 3D space (sphere,
// axis-aligned cube, z-aligned cylinder) and answers containment and
// intersection questions between them.
//
// Every type is an immutable value: no method mutates its receiver or its
// arguments, so values can be shared freely.
package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance is the per-axis threshold used by Point.Equals
const Tolerance = 1.0e-6

// Point is a coordinate in 3D space
type Point struct {
	mgl64.Vec3
}

// NewPoint creates a point from its coordinates
func NewPoint(x, y, z float64) Point {
	return Point{mgl64.Vec3{x, y, z}}
}

// Distance returns the Euclidean distance to other.
// Axis differences are combined with math.Hypot to avoid premature overflow.
func (p Point) Distance(other Point) float64 {
	d := p.Sub(other.Vec3)
	return math.Hypot(math.Hypot(d.X(), d.Y()), d.Z())
}

// horizontalDistance is the distance between the projections of p and other
// on the x-y plane.
func (p Point) horizontalDistance(other Point) float64 {
	return math.Hypot(p.X()-other.X(), p.Y()-other.Y())
}

// Equals reports whether p and other differ by less than Tolerance on every axis.
// This is a box test: it is not the same as Distance(other) < Tolerance.
func (p Point) Equals(other Point) bool {
	return math.Abs(p.X()-other.X()) < Tolerance &&
		math.Abs(p.Y()-other.Y()) < Tolerance &&
		math.Abs(p.Z()-other.Z()) < Tolerance
}

// String formats the point as (x, y, z) with one decimal per coordinate
func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z())
}
