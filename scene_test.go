package solids

import (
	"errors"
	"testing"

	"github.com/akmonengine/solids/shape"
)

func newTestScene(t *testing.T, bodies ...*Body) *Scene {
	t.Helper()

	scene := NewScene(nil)
	for _, body := range bodies {
		if err := scene.AddBody(body); err != nil {
			t.Fatalf("AddBody(%s) error = %v", body.Name, err)
		}
	}
	return scene
}

func TestSceneAddBody(t *testing.T) {
	scene := newTestScene(t, sphereBody("a", 0, 0, 0, 1))

	tests := []struct {
		name      string
		body      *Body
		duplicate bool
		dimension bool
	}{
		{"new body", cubeBody("b", 0, 0, 0, 1), false, false},
		{"duplicate name", cubeBody("a", 5, 5, 5, 1), true, false},
		{"invalid radius", sphereBody("c", 0, 0, 0, -1), false, true},
		{"empty name", cubeBody("", 0, 0, 0, 1), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scene.AddBody(tt.body)
			if errors.Is(err, ErrDuplicateBody) != tt.duplicate {
				t.Errorf("AddBody() error = %v, duplicate %v", err, tt.duplicate)
			}
			if errors.Is(err, shape.ErrInvalidDimension) != tt.dimension {
				t.Errorf("AddBody() error = %v, invalid dimension %v", err, tt.dimension)
			}
		})
	}

	if len(scene.Bodies) != 2 {
		t.Errorf("len(Bodies) = %d, want 2", len(scene.Bodies))
	}
	if err := scene.AddBody(cubeBody("", 0, 0, 0, 1)); !errors.Is(err, errEmptyName) {
		t.Errorf("AddBody() with empty name error = %v, want %v", err, errEmptyName)
	}
}

func TestSceneRemoveBody(t *testing.T) {
	scene := newTestScene(t,
		sphereBody("a", 0, 0, 0, 1),
		cubeBody("b", 0, 0, 0, 1),
		cylinderBody("c", 0, 0, 0, 1, 1),
	)

	if !scene.RemoveBody("b") {
		t.Fatal("RemoveBody(b) = false, want true")
	}
	if scene.RemoveBody("b") {
		t.Error("RemoveBody(b) twice = true, want false")
	}
	if _, ok := scene.Body("b"); ok {
		t.Error("Body(b) still found after removal")
	}
	if len(scene.Bodies) != 2 || scene.Bodies[0].Name != "a" || scene.Bodies[1].Name != "c" {
		t.Errorf("Bodies after removal = %v, want [a c]", scene.Bodies)
	}

	// the name can be reused
	if err := scene.AddBody(cubeBody("b", 1, 1, 1, 1)); err != nil {
		t.Errorf("AddBody(b) after removal error = %v", err)
	}
}

func TestSceneBody(t *testing.T) {
	a := sphereBody("a", 0, 0, 0, 1)
	scene := newTestScene(t, a)

	if got, ok := scene.Body("a"); !ok || got != a {
		t.Errorf("Body(a) = %v, %v, want the added body", got, ok)
	}
	if _, ok := scene.Body("missing"); ok {
		t.Error("Body(missing) found")
	}
	if a.Kind() != "sphere" {
		t.Errorf("Kind() = %s, want sphere", a.Kind())
	}
}

func TestSceneEvaluate(t *testing.T) {
	scene := newTestScene(t,
		sphereBody("A", 0, 0, 0, 5),
		cubeBody("box", 1, 1, 1, 2),
		cylinderBody("pipe", 0, 0, 0, 1, 4),
		sphereBody("far", 50, 50, 50, 1),
	)

	relations := scene.Evaluate()

	expected := []struct {
		a, b       string
		aContainsB bool
		intersects bool
	}{
		{"A", "box", true, false},
		{"A", "pipe", true, false},
		{"box", "pipe", false, true},
	}

	if len(relations) != len(expected) {
		t.Fatalf("Evaluate() returned %d relations, want %d", len(relations), len(expected))
	}
	for i, want := range expected {
		r := relations[i]
		if r.BodyA.Name != want.a || r.BodyB.Name != want.b {
			t.Errorf("relation %d = %s/%s, want %s/%s", i, r.BodyA.Name, r.BodyB.Name, want.a, want.b)
			continue
		}
		if r.AContainsB != want.aContainsB || r.BContainsA {
			t.Errorf("%s/%s containment = %v/%v, want %v/false", want.a, want.b, r.AContainsB, r.BContainsA, want.aContainsB)
		}
		if r.Intersects != want.intersects {
			t.Errorf("%s/%s Intersects = %v, want %v", want.a, want.b, r.Intersects, want.intersects)
		}
	}

	// a second run gives the same pairs
	if again := scene.Evaluate(); len(again) != len(relations) {
		t.Errorf("second Evaluate() returned %d relations, want %d", len(again), len(relations))
	}
}

func TestSceneLocate(t *testing.T) {
	scene := newTestScene(t,
		sphereBody("A", 0, 0, 0, 5),
		cubeBody("box", 1, 1, 1, 2),
		cylinderBody("pipe", 0, 0, 0, 1, 4),
		sphereBody("far", 50, 50, 50, 1),
	)

	tests := []struct {
		name     string
		point    shape.Point
		expected []string
	}{
		{"inside three", shape.NewPoint(0.5, 0.5, 0.5), []string{"A", "box", "pipe"}},
		{"outside the pipe", shape.NewPoint(1.5, 1.5, 1.5), []string{"A", "box"}},
		{"far sphere", shape.NewPoint(50, 50, 50), []string{"far"}},
		{"nowhere", shape.NewPoint(20, 0, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := scene.Locate(tt.point)
			if len(found) != len(tt.expected) {
				t.Fatalf("Locate(%v) returned %d bodies, want %v", tt.point, len(found), tt.expected)
			}
			for i, body := range found {
				if body.Name != tt.expected[i] {
					t.Errorf("Locate(%v)[%d] = %s, want %s", tt.point, i, body.Name, tt.expected[i])
				}
			}
		})
	}
}
