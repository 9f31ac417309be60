package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cylinder represents a right circular cylinder whose main axis is parallel
// to the z-axis. Height is measured along that axis and centered on Center.
type Cylinder struct {
	Center Point
	Radius float64
	Height float64
}

// NewCylinder creates a cylinder centered on (x, y, z).
// Radius and height are not validated, see Validate.
func NewCylinder(x, y, z, radius, height float64) Cylinder {
	return Cylinder{Center: NewPoint(x, y, z), Radius: radius, Height: height}
}

// Validate reports an error wrapping ErrInvalidDimension for a non-positive
// radius or height.
func (c Cylinder) Validate() error {
	if err := checkCenter("cylinder", c.Center); err != nil {
		return err
	}
	if err := checkDimension("cylinder", "radius", c.Radius); err != nil {
		return err
	}
	return checkDimension("cylinder", "height", c.Height)
}

// Area returns the lateral surface plus both caps
func (c Cylinder) Area() float64 {
	return 2*math.Pi*c.Radius*c.Height + 2*math.Pi*c.Radius*c.Radius
}

// Volume returns πr²h
func (c Cylinder) Volume() float64 {
	return math.Pi * c.Radius * c.Radius * c.Height
}

// Bounds returns the axis-aligned box enclosing the cylinder
func (c Cylinder) Bounds() AABB {
	return boundsAround(c.Center, mgl64.Vec3{c.Radius, c.Radius, c.Height / 2})
}

func (c Cylinder) top() float64    { return c.Center.Z() + c.Height/2 }
func (c Cylinder) bottom() float64 { return c.Center.Z() - c.Height/2 }

// ContainsPoint reports whether p is strictly inside the cylinder
func (c Cylinder) ContainsPoint(p Point) bool {
	withinXY := c.Center.horizontalDistance(p) < c.Radius
	withinZ := math.Abs(c.Center.Z()-p.Z()) < c.Height/2
	return withinXY && withinZ
}

// ContainsSphere reports whether s is strictly inside the cylinder
func (c Cylinder) ContainsSphere(s Sphere) bool {
	withinZ := s.Center.Z()+s.Radius < c.top() && s.Center.Z()-s.Radius > c.bottom()
	withinXY := c.Center.horizontalDistance(s.Center)+s.Radius < c.Radius
	return withinZ && withinXY
}

// ContainsCube reports whether all eight corners of cube are strictly inside the cylinder
func (c Cylinder) ContainsCube(cube Cube) bool {
	for _, corner := range cube.Corners() {
		if !c.ContainsPoint(corner) {
			return false
		}
	}
	return true
}

// ContainsCylinder reports whether other is strictly inside c
func (c Cylinder) ContainsCylinder(other Cylinder) bool {
	withinZ := other.top() < c.top() && other.bottom() > c.bottom()
	withinXY := c.Center.horizontalDistance(other.Center)+other.Radius < c.Radius
	return withinZ && withinXY
}

// IntersectsCylinder reports whether c and other overlap without one being
// strictly inside the other.
func (c Cylinder) IntersectsCylinder(other Cylinder) bool {
	if c.ContainsCylinder(other) || other.ContainsCylinder(c) {
		return false
	}
	withinZ := math.Abs(c.Center.Z()-other.Center.Z()) < (c.Height+other.Height)/2
	withinXY := c.Center.horizontalDistance(other.Center) < c.Radius+other.Radius
	return withinZ && withinXY
}

// String formats the cylinder as "Center: (x, y, z), Radius: r, Height: h"
func (c Cylinder) String() string {
	return fmt.Sprintf("Center: %s, Radius: %.1f, Height: %.1f", c.Center, c.Radius, c.Height)
}
