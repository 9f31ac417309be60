package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/akmonengine/solids"
	"github.com/akmonengine/solids/shape"
)

// SetupScene creates a large sphere holding two overlapping crates and two
// crossing cylinders
func SetupScene() *solids.Scene {
	scene := solids.NewScene(solids.NewSpatialGrid(1.0, 256))

	bodies := []*solids.Body{
		{Name: "shell", Solid: shape.NewSphere(0, 0, 0, 6)},
		{Name: "crate", Solid: shape.NewCube(1, 1, 1, 2)},
		{Name: "box", Solid: shape.NewCube(2.5, 1, 1, 2)},
		{Name: "pipe", Solid: shape.NewCylinder(-2, 0, 0, 1, 3)},
		{Name: "rod", Solid: shape.NewCylinder(-2, 0.5, 1.5, 0.5, 3)},
	}
	for _, body := range bodies {
		if err := scene.AddBody(body); err != nil {
			log.Fatal(err)
		}
	}

	return scene
}

func main() {
	scene := SetupScene()

	fmt.Println("📦 Bodies:")
	for _, body := range scene.Bodies {
		fmt.Printf("   %-6s %-8s %s (volume %.3f)\n", body.Name, body.Kind(), body.Solid, body.Solid.Volume())
	}

	fmt.Println("🔍 Relations:")
	for _, r := range scene.Evaluate() {
		fmt.Printf("   %s / %s: contains=%v contained=%v intersects=%v", r.BodyA.Name, r.BodyB.Name, r.AContainsB, r.BContainsA, r.Intersects)
		if r.Volume > 0 {
			fmt.Printf(" shared volume=%.3f", r.Volume)
		}
		fmt.Println()
	}

	p := shape.NewPoint(1.8, 1, 1)
	fmt.Printf("🎯 Bodies containing %s:\n", p)
	for _, body := range scene.Locate(p) {
		fmt.Printf("   %s\n", body.Name)
	}
}
