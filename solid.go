// Package solids arranges named shapes in a scene and reports how they relate:
// which ones contain each other, which intersect, and how much volume
// intersecting cubes share.
//
// The geometry itself lives in the shape package. A scene only narrows the
// number of pairs to test with a spatial grid over the shapes' bounding boxes,
// then runs the exact pairwise predicates on the remaining candidates.
package solids

import (
	"errors"
	"fmt"

	"github.com/akmonengine/solids/shape"
)

var errEmptyName = errors.New("body name cannot be empty")

// Solid is implemented by shape.Sphere, shape.Cube and shape.Cylinder values
type Solid interface {
	Area() float64
	Volume() float64
	// Bounds returns the axis-aligned box enclosing the solid
	Bounds() shape.AABB
	ContainsPoint(p shape.Point) bool
	String() string
}

// Body is a named solid placed in a scene
type Body struct {
	Name  string
	Solid Solid
}

// Validate checks the dimensions of the body's solid
func (b *Body) Validate() error {
	if b.Name == "" {
		return errEmptyName
	}

	var err error
	switch s := b.Solid.(type) {
	case shape.Sphere:
		err = s.Validate()
	case shape.Cube:
		err = s.Validate()
	case shape.Cylinder:
		err = s.Validate()
	default:
		err = fmt.Errorf("unsupported solid type %T", b.Solid)
	}
	if err != nil {
		return fmt.Errorf("body %q: %w", b.Name, err)
	}
	return nil
}

// Kind returns "sphere", "cube" or "cylinder"
func (b *Body) Kind() string {
	switch b.Solid.(type) {
	case shape.Sphere:
		return "sphere"
	case shape.Cube:
		return "cube"
	case shape.Cylinder:
		return "cylinder"
	}
	return "unknown"
}
