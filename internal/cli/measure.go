package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akmonengine/solids"
	"github.com/akmonengine/solids/shape"
)

func newMeasureCmd() *cobra.Command {
	var (
		kind   string
		center []float64
		radius float64
		side   float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Print the area and volume of a solid",
		Example: `  solids measure --shape sphere --radius 2
  solids measure --shape cylinder --radius 1 --height 3 --center 0,0,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if len(center) != 3 {
				return fmt.Errorf("--center needs 3 values, got %d", len(center))
			}
			x, y, z := center[0], center[1], center[2]

			body := &solids.Body{Name: kind}
			switch kind {
			case "sphere":
				body.Solid = shape.NewSphere(x, y, z, radius)
			case "cube":
				body.Solid = shape.NewCube(x, y, z, side)
			case "cylinder":
				body.Solid = shape.NewCylinder(x, y, z, radius, height)
			default:
				return fmt.Errorf("unknown shape %q (want sphere, cube or cylinder)", kind)
			}
			if err := body.Validate(); err != nil {
				return err
			}
			logger.Debug("measuring", "shape", kind, "solid", body.Solid.String())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, body.Solid.String())
			fmt.Fprintf(out, "area: %.3f\n", body.Solid.Area())
			fmt.Fprintf(out, "volume: %.3f\n", body.Solid.Volume())
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "shape", "sphere", "solid to measure: sphere, cube or cylinder")
	cmd.Flags().Float64SliceVar(&center, "center", []float64{0, 0, 0}, "center as x,y,z")
	cmd.Flags().Float64Var(&radius, "radius", 1, "radius of a sphere or cylinder")
	cmd.Flags().Float64Var(&side, "side", 1, "side of a cube")
	cmd.Flags().Float64Var(&height, "height", 1, "height of a cylinder")

	return cmd
}
