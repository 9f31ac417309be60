package solids

import (
	"errors"
	"fmt"

	"github.com/akmonengine/solids/shape"
)

const (
	DEFAULT_CELL_SIZE = 1.0
	DEFAULT_CELLS     = 1024
)

// ErrDuplicateBody is returned when a body name is already used in the scene
var ErrDuplicateBody = errors.New("duplicate body name")

type Scene struct {
	// Bodies in insertion order
	Bodies      []*Body
	SpatialGrid *SpatialGrid

	byName map[string]*Body
}

// NewScene creates an empty scene using grid as broad phase.
// A nil grid falls back to DEFAULT_CELL_SIZE and DEFAULT_CELLS.
func NewScene(grid *SpatialGrid) *Scene {
	if grid == nil {
		grid = NewSpatialGrid(DEFAULT_CELL_SIZE, DEFAULT_CELLS)
	}
	return &Scene{
		SpatialGrid: grid,
		byName:      make(map[string]*Body),
	}
}

// AddBody validates the body and adds it to the scene
func (s *Scene) AddBody(body *Body) error {
	if err := body.Validate(); err != nil {
		return err
	}
	if _, ok := s.byName[body.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateBody, body.Name)
	}

	s.Bodies = append(s.Bodies, body)
	s.byName[body.Name] = body
	return nil
}

// RemoveBody removes the named body, reporting whether it was present
func (s *Scene) RemoveBody(name string) bool {
	body, ok := s.byName[name]
	if !ok {
		return false
	}

	for i, b := range s.Bodies {
		if b == body {
			s.Bodies = append(s.Bodies[:i], s.Bodies[i+1:]...)
			break
		}
	}
	delete(s.byName, name)
	return true
}

// Body returns the named body
func (s *Scene) Body(name string) (*Body, bool) {
	body, ok := s.byName[name]
	return body, ok
}

// Evaluate relates every pair of bodies whose bounding boxes overlap.
// Pairs are ordered by insertion order of their first then second body.
func (s *Scene) Evaluate() []Relation {
	s.SpatialGrid.Clear()
	for i, body := range s.Bodies {
		s.SpatialGrid.Insert(i, body)
	}
	s.SpatialGrid.SortCells()

	pairs := s.SpatialGrid.FindPairs(s.Bodies)
	relations := make([]Relation, 0, len(pairs))
	for _, pair := range pairs {
		relations = append(relations, Relate(pair.BodyA, pair.BodyB))
	}
	return relations
}

// Locate returns the bodies strictly containing p, in insertion order
func (s *Scene) Locate(p shape.Point) []*Body {
	var found []*Body
	for _, body := range s.Bodies {
		if !body.Solid.Bounds().ContainsPoint(p.Vec3) {
			continue
		}
		if body.Solid.ContainsPoint(p) {
			found = append(found, body)
		}
	}
	return found
}
