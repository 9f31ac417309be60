package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akmonengine/solids"
)

func newSceneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scene <file.toml>",
		Short: "Load a scene and list how its bodies relate",
		Long: `Load spheres, cubes and cylinders from a TOML file and print one line per
relation between bodies whose bounding boxes overlap: containment,
intersection, and the volume shared by intersecting cubes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			config := configFromContext(cmd.Context())

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open scene: %w", err)
			}
			defer f.Close()

			prog := newProgress(logger)
			grid := solids.NewSpatialGrid(config.Grid.CellSize, config.Grid.Cells)
			scene, err := solids.LoadScene(f, grid)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			logger.Debug("scene loaded", "bodies", len(scene.Bodies))

			relations := scene.Evaluate()
			prog.done(fmt.Sprintf("Evaluated %d bodies, %d candidate pairs", len(scene.Bodies), len(relations)))

			return writeRelations(cmd.OutOrStdout(), relations)
		},
	}
}

// writeRelations prints the facts of each relation, skipping pairs that only
// share bounding-box space
func writeRelations(w io.Writer, relations []solids.Relation) error {
	for _, r := range relations {
		a, b := r.BodyA.Name, r.BodyB.Name

		var lines []string
		if r.AContainsB {
			lines = append(lines, fmt.Sprintf("%s contains %s", a, b))
		}
		if r.BContainsA {
			lines = append(lines, fmt.Sprintf("%s contains %s", b, a))
		}
		if r.Intersects {
			lines = append(lines, fmt.Sprintf("%s intersects %s", a, b))
		}
		if r.Volume > 0 {
			lines = append(lines, fmt.Sprintf("%s and %s share volume %.3f", a, b, r.Volume))
		}

		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
