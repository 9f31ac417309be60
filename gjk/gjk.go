// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) overlap test.
//
// Two convex solids overlap when their Minkowski difference A - B contains
// the origin. GJK grows a simplex of support points of that difference
// toward the origin and stops as soon as the simplex encloses it, or as
// soon as a support point proves the origin is out of reach.
//
// Only the support function of each solid is queried, so any shape.Convex
// works: spheres, cubes and cylinders mix freely.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"sync"

	"github.com/akmonengine/solids/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxIterations bounds the refinement loop. Curved solids never produce
// the same support point twice, so the loop needs a hard stop.
const MaxIterations = 32

// Simplex holds 1 to 4 points of the Minkowski difference.
// Points[Count-1] is always the most recent support point.
type Simplex struct {
	Points [4]mgl64.Vec3
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// MinkowskiSupport returns the point of A - B furthest along direction:
// support(A, direction) - support(B, -direction).
func MinkowskiSupport(a, b shape.Convex, direction mgl64.Vec3) mgl64.Vec3 {
	return a.Support(direction).Sub(b.Support(direction.Mul(-1)))
}

// Overlaps reports whether a and b share at least one point, using a
// pooled simplex. Solids that only touch may go either way.
func Overlaps(a, b shape.Convex) bool {
	simplex := SimplexPool.Get().(*Simplex)
	defer SimplexPool.Put(simplex)

	simplex.Reset()
	return GJK(a, b, simplex)
}

// GJK reports whether the convex solids a and b overlap.
//
// The search starts along the line joining the two centroids. simplex is
// rebuilt in place; on overlap it ends as the tetrahedron around the origin.
func GJK(a, b shape.Convex, simplex *Simplex) bool {
	direction := b.Centroid().Sub(a.Centroid())
	if direction.LenSqr() < 1e-8 {
		direction = mgl64.Vec3{1, 0, 0}
	}

	simplex.Points[0] = MinkowskiSupport(a, b, direction)
	simplex.Count = 1

	direction = simplex.Points[0].Mul(-1)
	if direction.LenSqr() < 1e-16 {
		// the first support point is the origin itself
		return true
	}

	for i := 0; i < MaxIterations; i++ {
		newPoint := MinkowskiSupport(a, b, direction)

		// the furthest point along direction does not pass the origin:
		// a separating plane exists
		if newPoint.Dot(direction) <= 0 {
			return false
		}

		simplex.Points[simplex.Count] = newPoint
		simplex.Count++

		if containsOrigin(simplex, &direction) {
			return true
		}
	}

	return false
}

// containsOrigin reduces the simplex to its feature closest to the origin
// and points direction at the origin from there. Only a tetrahedron can
// enclose the origin.
func containsOrigin(simplex *Simplex, direction *mgl64.Vec3) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	case 4:
		return tetrahedron(simplex, direction)
	}
	return false
}

// line handles the segment AB, A being the newest point.
// It returns true only when the origin lies on the segment.
func line(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	if ab.LenSqr() < 1e-8 {
		if ao.LenSqr() < 1e-8 {
			return true
		}
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	// origin behind A: keep A alone
	if ab.Dot(ao) <= 0 {
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	abPerp := ab.Cross(ao).Cross(ab)
	if abPerp.LenSqr() < 1e-8 {
		return true
	}

	*direction = abPerp
	return false
}

// triangle handles ABC, A being the newest point. Collinear points fall
// back to the segment AB.
func triangle(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	if abc.LenSqr() < 1e-10 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		return line(simplex, direction)
	}

	// beyond edge AB
	if ab.Cross(abc).Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	// beyond edge AC
	if abc.Cross(ac).Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	if abc.Dot(ao) > 0 {
		*direction = abc
	} else {
		// below the face: flip the winding so the normal faces the origin
		simplex.Points[0] = a
		simplex.Points[1] = c
		simplex.Points[2] = b
		simplex.Count = 3
		*direction = abc.Mul(-1)
	}

	return false
}

// tetrahedron handles ABCD, A being the newest point. Each face normal is
// oriented away from the opposite vertex; the origin is enclosed when it
// lies behind all three faces that touch A.
func tetrahedron(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[3]
	b := simplex.Points[2]
	c := simplex.Points[1]
	d := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}
	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}
	adb := ad.Cross(ab)
	if adb.Dot(ac) > 0 {
		adb = adb.Mul(-1)
	}

	if abc.LenSqr() < 1e-10 || acd.LenSqr() < 1e-10 || adb.LenSqr() < 1e-10 {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	switch {
	case abc.Dot(ao) > 0:
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
	case acd.Dot(ao) > 0:
		simplex.Points[0] = d
		simplex.Points[1] = c
		simplex.Points[2] = a
	case adb.Dot(ao) > 0:
		simplex.Points[0] = b
		simplex.Points[1] = d
		simplex.Points[2] = a
	default:
		return true
	}

	simplex.Count = 3
	return triangle(simplex, direction)
}
