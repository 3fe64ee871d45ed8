package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts domain.BuildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the Windows platform project in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := domain.NewBuildRequest(opts)
			if err != nil {
				return err
			}

			root, err := os.Getwd()
			if err != nil {
				return zerr.Wrap(err, "failed to get working directory")
			}

			return c.app.Build(cmd.Context(), root, req)
		},
	}

	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Build the Debug configuration (default)")
	cmd.Flags().BoolVarP(&opts.Release, "release", "r", false, "Build the Release configuration")
	cmd.Flags().StringVar(&opts.Archs, "archs", "", `Space separated architectures to build, e.g. "x86 x64 arm"`)
	cmd.Flags().BoolVar(&opts.Phone, "phone", false, "Build the Windows Phone target only")
	cmd.Flags().BoolVar(&opts.Store, "store", false, "Build the Windows Store target only")
	return cmd
}
