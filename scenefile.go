package solids

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/akmonengine/solids/shape"
)

type sceneFile struct {
	Spheres   []sphereEntry   `toml:"sphere"`
	Cubes     []cubeEntry     `toml:"cube"`
	Cylinders []cylinderEntry `toml:"cylinder"`
}

type sphereEntry struct {
	Name   string     `toml:"name"`
	Center [3]float64 `toml:"center"`
	Radius float64    `toml:"radius"`
}

type cubeEntry struct {
	Name   string     `toml:"name"`
	Center [3]float64 `toml:"center"`
	Side   float64    `toml:"side"`
}

type cylinderEntry struct {
	Name   string     `toml:"name"`
	Center [3]float64 `toml:"center"`
	Radius float64    `toml:"radius"`
	Height float64    `toml:"height"`
}

// LoadScene decodes a TOML scene description into a new scene.
// Bodies are added spheres first, then cubes, then cylinders, each group in
// file order.
func LoadScene(r io.Reader, grid *SpatialGrid) (*Scene, error) {
	var f sceneFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode scene: unknown keys %s", strings.Join(keys, ", "))
	}

	scene := NewScene(grid)
	for _, e := range f.Spheres {
		body := &Body{Name: e.Name, Solid: shape.NewSphere(e.Center[0], e.Center[1], e.Center[2], e.Radius)}
		if err := scene.AddBody(body); err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
	}
	for _, e := range f.Cubes {
		body := &Body{Name: e.Name, Solid: shape.NewCube(e.Center[0], e.Center[1], e.Center[2], e.Side)}
		if err := scene.AddBody(body); err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
	}
	for _, e := range f.Cylinders {
		body := &Body{Name: e.Name, Solid: shape.NewCylinder(e.Center[0], e.Center[1], e.Center[2], e.Radius, e.Height)}
		if err := scene.AddBody(body); err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
	}

	return scene, nil
}
