package shape

import "github.com/go-gl/mathgl/mgl64"

// Convex is a solid queried through its support function, as the
// overlap test in package gjk needs.
type Convex interface {
	// Support returns the point of the solid furthest along direction
	Support(direction mgl64.Vec3) mgl64.Vec3
	// Centroid returns the center of the solid
	Centroid() mgl64.Vec3
}

var (
	_ Convex = Sphere{}
	_ Convex = Cube{}
	_ Convex = Cylinder{}
)

// directionEpsilon is the squared length under which a direction is treated as zero
const directionEpsilon = 1e-16

// Support returns the point of the sphere surface furthest along direction.
// A zero direction picks the point on the +x axis.
func (s Sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if direction.LenSqr() < directionEpsilon {
		return s.Center.Add(mgl64.Vec3{s.Radius, 0, 0})
	}
	return s.Center.Add(direction.Normalize().Mul(s.Radius))
}

func (s Sphere) Centroid() mgl64.Vec3 { return s.Center.Vec3 }

// Support returns the corner of the cube furthest along direction
func (c Cube) Support(direction mgl64.Vec3) mgl64.Vec3 {
	h := c.halfSide()
	hx, hy, hz := h, h, h

	if direction.X() < 0 {
		hx = -hx
	}
	if direction.Y() < 0 {
		hy = -hy
	}
	if direction.Z() < 0 {
		hz = -hz
	}

	return c.Center.Add(mgl64.Vec3{hx, hy, hz})
}

func (c Cube) Centroid() mgl64.Vec3 { return c.Center.Vec3 }

// Support returns the point of the cylinder furthest along direction:
// the support of the cap disc, on the top cap unless direction points down.
func (c Cylinder) Support(direction mgl64.Vec3) mgl64.Vec3 {
	p := c.Center.Vec3

	horizontal := mgl64.Vec2{direction.X(), direction.Y()}
	if horizontal.LenSqr() >= directionEpsilon {
		rim := horizontal.Normalize().Mul(c.Radius)
		p = p.Add(mgl64.Vec3{rim.X(), rim.Y(), 0})
	}

	if direction.Z() < 0 {
		p[2] = c.bottom()
	} else {
		p[2] = c.top()
	}
	return p
}

func (c Cylinder) Centroid() mgl64.Vec3 { return c.Center.Vec3 }
