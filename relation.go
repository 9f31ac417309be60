package solids

import (
	"github.com/akmonengine/solids/gjk"
	"github.com/akmonengine/solids/shape"
)

// Relation describes how two bodies of a scene relate to each other
type Relation struct {
	BodyA *Body
	BodyB *Body

	AContainsB bool
	BContainsA bool
	Intersects bool
	// Volume shared by two intersecting cubes, zero for any other pair
	Volume float64
}

// Relate runs the pairwise predicates on two bodies
func Relate(a, b *Body) Relation {
	r := Relation{
		BodyA:      a,
		BodyB:      b,
		AContainsB: contains(a.Solid, b.Solid),
		BContainsA: contains(b.Solid, a.Solid),
	}

	if hit, ok := intersects(a.Solid, b.Solid); ok {
		r.Intersects = hit
	} else {
		// pairs with a cylinder and another kind go through GJK
		containsEither := r.AContainsB || r.BContainsA
		r.Intersects = !containsEither && convexOverlap(a.Solid, b.Solid)
	}

	if ca, ok := a.Solid.(shape.Cube); ok {
		if cb, ok := b.Solid.(shape.Cube); ok {
			r.Volume = ca.IntersectionVolume(cb)
		}
	}

	return r
}

// contains reports whether outer strictly contains inner
func contains(outer, inner Solid) bool {
	switch o := outer.(type) {
	case shape.Sphere:
		switch i := inner.(type) {
		case shape.Sphere:
			return o.ContainsSphere(i)
		case shape.Cube:
			return o.ContainsCube(i)
		case shape.Cylinder:
			return o.ContainsCylinder(i)
		}
	case shape.Cube:
		switch i := inner.(type) {
		case shape.Sphere:
			return o.ContainsSphere(i)
		case shape.Cube:
			return o.ContainsCube(i)
		case shape.Cylinder:
			return o.ContainsCylinder(i)
		}
	case shape.Cylinder:
		switch i := inner.(type) {
		case shape.Sphere:
			return o.ContainsSphere(i)
		case shape.Cube:
			return o.ContainsCube(i)
		case shape.Cylinder:
			return o.ContainsCylinder(i)
		}
	}
	return false
}

// intersects dispatches to the closed-form intersection test of the pair.
// ok is false when the pair has none.
func intersects(a, b Solid) (result bool, ok bool) {
	switch sa := a.(type) {
	case shape.Sphere:
		switch sb := b.(type) {
		case shape.Sphere:
			return sa.IntersectsSphere(sb), true
		case shape.Cube:
			return sa.IntersectsCube(sb), true
		}
	case shape.Cube:
		switch sb := b.(type) {
		case shape.Sphere:
			return sb.IntersectsCube(sa), true
		case shape.Cube:
			return sa.IntersectsCube(sb), true
		}
	case shape.Cylinder:
		if sb, ok := b.(shape.Cylinder); ok {
			return sa.IntersectsCylinder(sb), true
		}
	}
	return false, false
}

// convexOverlap runs GJK when both solids expose a support function
func convexOverlap(a, b Solid) bool {
	ca, okA := a.(shape.Convex)
	cb, okB := b.(shape.Convex)
	if !okA || !okB {
		return false
	}
	return gjk.Overlaps(ca, cb)
}
