package report

import (
	"fmt"
	"io"

	"github.com/akmonengine/solids/shape"
)

// Finding is the outcome of one comparison
type Finding struct {
	Name     string
	Holds    bool
	Sentence string
}

// check pairs a comparison with its sentence. The sentence carries one %s,
// replaced by "" when the comparison holds and "not " otherwise.
type check struct {
	name     string
	sentence string
	eval     func(in Input) bool
}

var checks = []check{
	// sphere
	{"p-farther-than-q", "Distance of Point p from the origin is %sgreater than the distance of Point q from the origin", func(in Input) bool {
		origin := shape.NewPoint(0, 0, 0)
		return in.P.Distance(origin) > in.Q.Distance(origin)
	}},
	{"sphereA-contains-p", "Point p is %sinside sphereA", func(in Input) bool {
		return in.SphereA.ContainsPoint(in.P)
	}},
	{"sphereA-contains-sphereB", "sphereB is %sinside sphereA", func(in Input) bool {
		return in.SphereA.ContainsSphere(in.SphereB)
	}},
	{"sphereA-contains-cubeA", "cubeA is %sinside sphereA", func(in Input) bool {
		return in.SphereA.ContainsCube(in.CubeA)
	}},
	{"sphereA-contains-cylA", "cylA is %sinside sphereA", func(in Input) bool {
		return in.SphereA.ContainsCylinder(in.CylA)
	}},
	{"sphereA-intersects-sphereB", "sphereA does %sintersect sphereB", func(in Input) bool {
		return in.SphereB.IntersectsSphere(in.SphereA)
	}},
	{"sphereB-intersects-cubeB", "cubeB does %sintersect sphereB", func(in Input) bool {
		return in.SphereB.IntersectsCube(in.CubeB)
	}},
	{"circumscribed-cube-larger-than-cylA", "Volume of the largest Cube that is circumscribed by sphereA is %sgreater than the volume of cylA", func(in Input) bool {
		return in.SphereA.CircumscribeCube().Volume() > in.CylA.Volume()
	}},

	// cube
	{"cubeA-contains-p", "Point p is %sinside cubeA", func(in Input) bool {
		return in.CubeA.ContainsPoint(in.P)
	}},
	{"cubeA-contains-sphereA", "sphereA is %sinside cubeA", func(in Input) bool {
		return in.CubeA.ContainsSphere(in.SphereA)
	}},
	{"cubeA-contains-cubeB", "cubeB is %sinside cubeA", func(in Input) bool {
		return in.CubeA.ContainsCube(in.CubeB)
	}},
	{"cubeA-contains-cylA", "cylA is %sinside cubeA", func(in Input) bool {
		return in.CubeA.ContainsCylinder(in.CylA)
	}},
	{"cubeA-intersects-cubeB", "cubeA does %sintersect cubeB", func(in Input) bool {
		return in.CubeA.IntersectsCube(in.CubeB)
	}},
	{"cube-overlap-larger-than-sphereA", "Intersection volume of cubeA and cubeB is %sgreater than the volume of sphereA", func(in Input) bool {
		return in.CubeA.IntersectionVolume(in.CubeB) > in.SphereA.Volume()
	}},
	{"inscribed-sphere-area-larger-than-cylA", "Surface area of the largest Sphere object inscribed by cubeA is %sgreater than the surface area of cylA", func(in Input) bool {
		return in.CubeA.InscribeSphere().Area() > in.CylA.Area()
	}},

	// cylinder
	{"cylA-contains-p", "Point p is %sinside cylA", func(in Input) bool {
		return in.CylA.ContainsPoint(in.P)
	}},
	{"cylA-contains-sphereA", "sphereA is %sinside cylA", func(in Input) bool {
		return in.CylA.ContainsSphere(in.SphereA)
	}},
	{"cylA-contains-cubeA", "cubeA is %sinside cylA", func(in Input) bool {
		return in.CylA.ContainsCube(in.CubeA)
	}},
	{"cylA-contains-cylB", "cylB is %sinside cylA", func(in Input) bool {
		return in.CylA.ContainsCylinder(in.CylB)
	}},
	{"cylA-intersects-cylB", "cylB does %sintersect cylA", func(in Input) bool {
		return in.CylA.IntersectsCylinder(in.CylB)
	}},
}

// Run evaluates every comparison in print order
func Run(in Input) []Finding {
	findings := make([]Finding, len(checks))
	for i, c := range checks {
		holds := c.eval(in)
		negation := "not "
		if holds {
			negation = ""
		}
		findings[i] = Finding{
			Name:     c.name,
			Holds:    holds,
			Sentence: fmt.Sprintf(c.sentence, negation),
		}
	}
	return findings
}

// Write prints one sentence per line
func Write(w io.Writer, findings []Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, f.Sentence); err != nil {
			return err
		}
	}
	return nil
}
