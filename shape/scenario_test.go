package shape

import (
	"math"
	"testing"
)

// ========== End-to-end scenario ==========

func TestScenario(t *testing.T) {
	p := NewPoint(0, 0, 0)
	q := NewPoint(1, 1, 1)
	sphereA := NewSphere(0, 0, 0, 5)
	sphereB := NewSphere(1, 1, 1, 1)
	cubeA := NewCube(0, 0, 0, 4)
	cubeB := NewCube(1, 1, 1, 1)
	cylA := NewCylinder(0, 0, 0, 2, 4)
	cylB := NewCylinder(1, 1, 1, 1, 1)
	origin := NewPoint(0, 0, 0)

	tests := []struct {
		name     string
		got      bool
		expected bool
	}{
		{"p farther than q", p.Distance(origin) > q.Distance(origin), false},
		{"sphereA contains p", sphereA.ContainsPoint(p), true},
		{"sphereA contains sphereB", sphereA.ContainsSphere(sphereB), true},
		{"sphereA contains cubeA", sphereA.ContainsCube(cubeA), true},
		{"sphereA contains cylA", sphereA.ContainsCylinder(cylA), true},
		{"sphereB intersects sphereA", sphereB.IntersectsSphere(sphereA), false},
		{"sphereB intersects cubeB", sphereB.IntersectsCube(cubeB), false},
		{"circumscribed cube larger than cylA", sphereA.CircumscribeCube().Volume() > cylA.Volume(), true},
		{"cubeA contains p", cubeA.ContainsPoint(p), true},
		{"cubeA contains sphereA", cubeA.ContainsSphere(sphereA), false},
		{"cubeA contains cubeB", cubeA.ContainsCube(cubeB), true},
		{"cubeA contains cylA", cubeA.ContainsCylinder(cylA), false},
		{"cubeA intersects cubeB", cubeA.IntersectsCube(cubeB), false},
		{"cube overlap larger than sphereA", cubeA.IntersectionVolume(cubeB) > sphereA.Volume(), false},
		{"inscribed sphere area larger than cylA", cubeA.InscribeSphere().Area() > cylA.Area(), false},
		{"cylA contains p", cylA.ContainsPoint(p), true},
		{"cylA contains sphereA", cylA.ContainsSphere(sphereA), false},
		{"cylA contains cubeA", cylA.ContainsCube(cubeA), false},
		{"cylA contains cylB", cylA.ContainsCylinder(cylB), false},
		{"cylA intersects cylB", cylA.IntersectsCylinder(cylB), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}

	// nested cubes do not intersect, so they share no volume
	if v := cubeA.IntersectionVolume(cubeB); v != 0 {
		t.Errorf("IntersectionVolume() = %v, want 0", v)
	}
	if d := q.Distance(origin); !floatEqual(d, math.Sqrt(3), 1e-12) {
		t.Errorf("Distance() = %v, want sqrt(3)", d)
	}
}
