package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sphere represents a solid ball defined by its center and radius
type Sphere struct {
	Center Point
	Radius float64
}

// NewSphere creates a sphere centered on (x, y, z).
// The radius is not validated, see Validate.
func NewSphere(x, y, z, radius float64) Sphere {
	return Sphere{Center: NewPoint(x, y, z), Radius: radius}
}

// Validate reports an error wrapping ErrInvalidDimension for a non-positive radius
func (s Sphere) Validate() error {
	if err := checkCenter("sphere", s.Center); err != nil {
		return err
	}
	return checkDimension("sphere", "radius", s.Radius)
}

// Area returns the surface area 4πr²
func (s Sphere) Area() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Volume returns (4/3)πr³
func (s Sphere) Volume() float64 {
	return (4.0 / 3.0) * math.Pi * math.Pow(s.Radius, 3)
}

// Bounds returns the axis-aligned box enclosing the sphere
func (s Sphere) Bounds() AABB {
	return boundsAround(s.Center, mgl64.Vec3{s.Radius, s.Radius, s.Radius})
}

// ContainsPoint reports whether p is strictly inside the sphere
func (s Sphere) ContainsPoint(p Point) bool {
	return p.Distance(s.Center) < s.Radius
}

// ContainsSphere reports whether other is strictly inside s
func (s Sphere) ContainsSphere(other Sphere) bool {
	return other.Center.Distance(s.Center)+other.Radius < s.Radius
}

// ContainsCube reports whether the eight corners of c are strictly inside s.
// The sphere is convex, so this is enough for the whole cube.
func (s Sphere) ContainsCube(c Cube) bool {
	for _, corner := range c.Corners() {
		if corner.Distance(s.Center) >= s.Radius {
			return false
		}
	}
	return true
}

// ContainsCylinder reports whether c is strictly inside s.
// Both caps must fall within the sphere's z range, and the cylinder's disc
// must fit inside the sphere's cross-section at each cap.
func (s Sphere) ContainsCylinder(c Cylinder) bool {
	top := c.Center.Z() + c.Height/2
	bottom := c.Center.Z() - c.Height/2
	if top > s.Center.Z()+s.Radius || bottom < s.Center.Z()-s.Radius {
		return false
	}

	topRadius := s.crossSectionRadius(top)
	bottomRadius := s.crossSectionRadius(bottom)

	return s.Center.horizontalDistance(c.Center)+c.Radius < math.Min(topRadius, bottomRadius)
}

// crossSectionRadius is the radius of the circle cut by the plane at height z
func (s Sphere) crossSectionRadius(z float64) float64 {
	dz := z - s.Center.Z()
	return math.Sqrt(s.Radius*s.Radius - dz*dz)
}

// IntersectsSphere reports whether the surfaces of s and other meet.
// Spheres nested strictly inside one another do not intersect; tangent spheres do.
func (s Sphere) IntersectsSphere(other Sphere) bool {
	if s.ContainsSphere(other) || other.ContainsSphere(s) {
		return false
	}
	return other.Center.Distance(s.Center) <= s.Radius+other.Radius
}

// IntersectsCube reports whether c intersects s without being strictly inside it.
// Only corners are tested: a cube crossed by the sphere through one of its
// faces, with every corner outside, is reported as not intersecting.
func (s Sphere) IntersectsCube(c Cube) bool {
	if s.ContainsCube(c) {
		return false
	}
	for _, corner := range c.Corners() {
		if corner.Distance(s.Center) <= s.Radius {
			return true
		}
	}
	return false
}

// CircumscribeCube returns the largest cube whose corners all lie on s
func (s Sphere) CircumscribeCube() Cube {
	return Cube{Center: s.Center, Side: 2 * s.Radius / math.Sqrt(3)}
}

// String formats the sphere as "Center: (x, y, z), Radius: r"
func (s Sphere) String() string {
	return fmt.Sprintf("Center: %s, Radius: %.1f", s.Center, s.Radius)
}
