package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akmonengine/solids/internal/report"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [file]",
		Short: "Compare two points and six solids read from a file or stdin",
		Long: `Read eight records, one per line: point p, point q, sphereA, sphereB,
cubeA, cubeB, cylA and cylB. Points take x y z, spheres x y z radius,
cubes x y z side and cylinders x y z radius height.

Reads stdin when no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var r io.Reader = cmd.InOrStdin()
			source := "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open report input: %w", err)
				}
				defer f.Close()
				r = f
				source = args[0]
			}

			in, err := report.Parse(r)
			if err != nil {
				return err
			}
			logger.Debug("parsed report input", "source", source)

			findings := report.Run(in)
			holding := 0
			for _, f := range findings {
				if f.Holds {
					holding++
				}
			}
			logger.Debug("evaluated comparisons", "total", len(findings), "holding", holding)

			return report.Write(cmd.OutOrStdout(), findings)
		},
	}
}
