package solids

import (
	"math"
	"testing"
)

func floatEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRelate(t *testing.T) {
	tests := []struct {
		name       string
		a, b       *Body
		aContainsB bool
		bContainsA bool
		intersects bool
		volume     float64
	}{
		{
			name:       "sphere inside sphere",
			a:          sphereBody("a", 0, 0, 0, 5),
			b:          sphereBody("b", 1, 1, 1, 1),
			aContainsB: true,
		},
		{
			name:       "sphere inside sphere, reversed",
			a:          sphereBody("b", 1, 1, 1, 1),
			b:          sphereBody("a", 0, 0, 0, 5),
			bContainsA: true,
		},
		{
			name:       "tangent spheres",
			a:          sphereBody("a", 0, 0, 0, 1),
			b:          sphereBody("b", 2, 0, 0, 1),
			intersects: true,
		},
		{
			name:       "overlapping cubes",
			a:          cubeBody("a", 0, 0, 0, 2),
			b:          cubeBody("b", 1, 0, 0, 2),
			intersects: true,
			volume:     4,
		},
		{
			name:       "nested cubes share no volume",
			a:          cubeBody("a", 0, 0, 0, 4),
			b:          cubeBody("b", 0.5, 0.5, 0.5, 1),
			aContainsB: true,
		},
		{
			name:       "cube touching a sphere with a corner",
			a:          cubeBody("a", 1, 1, 1, 1),
			b:          sphereBody("b", 0, 0, 0, 1),
			intersects: true,
		},
		{
			name:       "crossing cylinders",
			a:          cylinderBody("a", 0, 0, 0, 1, 2),
			b:          cylinderBody("b", 0.5, 0, 1, 1, 2),
			intersects: true,
		},
		{
			name:       "sphere crossing a cylinder",
			a:          sphereBody("a", 0, 0, 0, 1),
			b:          cylinderBody("b", 0.5, 0, 0, 1, 2),
			intersects: true,
		},
		{
			name: "sphere in the bounding box corner of a cylinder",
			a:    cylinderBody("a", 0, 0, 0, 2, 2),
			b:    sphereBody("b", 1.8, 1.8, 0, 0.5),
		},
		{
			name:       "sphere inside a cylinder",
			a:          cylinderBody("a", 0, 0, 0, 2, 4),
			b:          sphereBody("b", 0, 0, 0.5, 0.5),
			aContainsB: true,
		},
		{
			name:       "cylinder inside a cube",
			a:          cubeBody("a", 0, 0, 0, 4),
			b:          cylinderBody("b", 0, 0, 0, 1, 1),
			aContainsB: true,
		},
		{
			name:       "cube crossing a cylinder rim",
			a:          cubeBody("a", 1.4, 0, 0, 1),
			b:          cylinderBody("b", 0, 0, 0, 1, 2),
			intersects: true,
		},
		{
			name: "cube in the bounding box corner of a cylinder",
			a:    cubeBody("a", 1.8, 1.8, 0, 0.5),
			b:    cylinderBody("b", 0, 0, 0, 2, 2),
		},
		{
			name: "cube and cylinder apart",
			a:    cubeBody("a", 0, 0, 0, 1),
			b:    cylinderBody("b", 5, 0, 0, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Relate(tt.a, tt.b)

			if r.BodyA != tt.a || r.BodyB != tt.b {
				t.Errorf("Relate() bodies = %s, %s, want %s, %s", r.BodyA.Name, r.BodyB.Name, tt.a.Name, tt.b.Name)
			}
			if r.AContainsB != tt.aContainsB {
				t.Errorf("AContainsB = %v, want %v", r.AContainsB, tt.aContainsB)
			}
			if r.BContainsA != tt.bContainsA {
				t.Errorf("BContainsA = %v, want %v", r.BContainsA, tt.bContainsA)
			}
			if r.Intersects != tt.intersects {
				t.Errorf("Intersects = %v, want %v", r.Intersects, tt.intersects)
			}
			if !floatEqual(r.Volume, tt.volume, 1e-12) {
				t.Errorf("Volume = %v, want %v", r.Volume, tt.volume)
			}
		})
	}
}

func TestRelateNeverContainsAndIntersects(t *testing.T) {
	bodies := []*Body{
		sphereBody("s1", 0, 0, 0, 3),
		sphereBody("s2", 1, 0, 0, 1),
		cubeBody("c1", 0, 0, 0, 2),
		cubeBody("c2", 2, 2, 2, 3),
		cylinderBody("y1", 0, 0, 0, 1, 1),
		cylinderBody("y2", 0, 0, 1, 2, 6),
	}

	for _, a := range bodies {
		for _, b := range bodies {
			if a == b {
				continue
			}
			r := Relate(a, b)
			if r.Intersects && (r.AContainsB || r.BContainsA) {
				t.Errorf("%s/%s: intersection reported alongside containment", a.Name, b.Name)
			}
			if r.AContainsB && r.BContainsA {
				t.Errorf("%s/%s: both contain each other", a.Name, b.Name)
			}
		}
	}
}

func TestRelateBoundsOverlapWithoutContact(t *testing.T) {
	cyl := cylinderBody("pipe", 0, 0, 0, 1, 2)
	near := []*Body{
		// just past the rim, level with the axis
		sphereBody("side", 1.2, 1.2, 0, 0.5),
		// above the top rim
		sphereBody("rim", 1.2, 0, 1.2, 0.25),
		cubeBody("corner", 1.2, 1.2, 0.5, 0.6),
	}

	for _, body := range near {
		if !cyl.Solid.Bounds().Overlaps(body.Solid.Bounds()) {
			t.Fatalf("setup: bounds of %s should overlap the cylinder's", body.Name)
		}
		for _, r := range []Relation{Relate(cyl, body), Relate(body, cyl)} {
			if r.Intersects || r.AContainsB || r.BContainsA {
				t.Errorf("%s/%s: contains %v/%v, intersects %v, want none",
					r.BodyA.Name, r.BodyB.Name, r.AContainsB, r.BContainsA, r.Intersects)
			}
		}
	}
}
