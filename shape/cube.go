package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cube represents a cube whose faces are parallel to the x-y, y-z and x-z planes
type Cube struct {
	Center Point
	Side   float64
}

// NewCube creates a cube centered on (x, y, z).
// The side is not validated, see Validate.
func NewCube(x, y, z, side float64) Cube {
	return Cube{Center: NewPoint(x, y, z), Side: side}
}

// Validate reports an error wrapping ErrInvalidDimension for a non-positive side
func (c Cube) Validate() error {
	if err := checkCenter("cube", c.Center); err != nil {
		return err
	}
	return checkDimension("cube", "side", c.Side)
}

// Area returns the total surface area of the six faces
func (c Cube) Area() float64 {
	return 6 * c.Side * c.Side
}

// Volume returns side³
func (c Cube) Volume() float64 {
	return c.Side * c.Side * c.Side
}

func (c Cube) halfSide() float64 {
	return c.Side / 2
}

// Bounds returns the box occupied by the cube
func (c Cube) Bounds() AABB {
	h := c.halfSide()
	return boundsAround(c.Center, mgl64.Vec3{h, h, h})
}

// Corners returns the eight vertices of the cube
func (c Cube) Corners() [8]Point {
	h := c.halfSide()
	x, y, z := c.Center.X(), c.Center.Y(), c.Center.Z()

	return [8]Point{
		NewPoint(x+h, y+h, z+h),
		NewPoint(x-h, y+h, z+h),
		NewPoint(x+h, y-h, z+h),
		NewPoint(x-h, y-h, z+h),
		NewPoint(x+h, y+h, z-h),
		NewPoint(x-h, y+h, z-h),
		NewPoint(x+h, y-h, z-h),
		NewPoint(x-h, y-h, z-h),
	}
}

// ContainsPoint reports whether p is strictly inside the cube
func (c Cube) ContainsPoint(p Point) bool {
	h := c.halfSide()
	return math.Abs(p.X()-c.Center.X()) < h &&
		math.Abs(p.Y()-c.Center.Y()) < h &&
		math.Abs(p.Z()-c.Center.Z()) < h
}

// ContainsSphere reports whether the bounding box of s is strictly inside the cube.
// This compares extents axis by axis.
func (c Cube) ContainsSphere(s Sphere) bool {
	return c.Bounds().StrictlyContains(s.Bounds())
}

// ContainsCube reports whether other is strictly inside c
func (c Cube) ContainsCube(other Cube) bool {
	return c.Bounds().StrictlyContains(other.Bounds())
}

// ContainsCylinder reports whether the bounding box of cyl is strictly inside the cube
func (c Cube) ContainsCylinder(cyl Cylinder) bool {
	return c.Bounds().StrictlyContains(cyl.Bounds())
}

// IntersectsCube reports whether c and other overlap without one being
// strictly inside the other.
func (c Cube) IntersectsCube(other Cube) bool {
	if c.ContainsCube(other) || other.ContainsCube(c) {
		return false
	}

	reach := (c.Side + other.Side) / 2
	d := other.Center.Sub(c.Center.Vec3)

	return math.Abs(d.X()) < reach &&
		math.Abs(d.Y()) < reach &&
		math.Abs(d.Z()) < reach
}

// IntersectionVolume returns the volume shared by c and other, or 0 when
// IntersectsCube is false. Each axis contributes (s1+s2)/2 - |Δ|, which
// overstates the overlap when one extent lies inside the other on that axis.
func (c Cube) IntersectionVolume(other Cube) float64 {
	if !c.IntersectsCube(other) {
		return 0
	}

	reach := (c.Side + other.Side) / 2
	d := other.Center.Sub(c.Center.Vec3)

	return (reach - math.Abs(d.X())) *
		(reach - math.Abs(d.Y())) *
		(reach - math.Abs(d.Z()))
}

// InscribeSphere returns the largest sphere inside the cube, tangent to its six faces
func (c Cube) InscribeSphere() Sphere {
	return Sphere{Center: c.Center, Radius: c.halfSide()}
}

// String formats the cube as "Center: (x, y, z), Side: s"
func (c Cube) String() string {
	return fmt.Sprintf("Center: %s, Side: %.1f", c.Center, c.Side)
}
