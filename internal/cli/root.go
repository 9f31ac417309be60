package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the solids CLI with ctx and returns an error if any command fails
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. The logger level comes from the
// configuration, and --verbose forces debug.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "solids",
		Short:         "solids answers containment and intersection questions between 3D solids",
		Long:          `solids models points, spheres, axis-aligned cubes and z-aligned cylinders, and reports which ones contain or intersect each other.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			level, _ := charmlog.ParseLevel(config.Log.Level)
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			logger.Debug("configuration loaded", "cell_size", config.Grid.CellSize, "cells", config.Grid.Cells)

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, config)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("solids %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.solids.yaml)")

	root.AddCommand(newReportCmd())
	root.AddCommand(newSceneCmd())
	root.AddCommand(newMeasureCmd())

	return root
}
