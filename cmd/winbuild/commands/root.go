// Package commands implements the CLI commands for winbuild.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/winbuild/internal/app"
	"go.trai.ch/winbuild/internal/build"
	"go.trai.ch/winbuild/internal/core/domain"
)

// CLI represents the command line interface for winbuild.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "winbuild",
		Short:         "Build Cordova Windows platform projects with MSBuild",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("verbose", false, "Show debug output, including MSBuild output")
	rootCmd.PersistentFlags().Bool("silent", false, "Only show errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "silent")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = c.applyVerbosity

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) applyVerbosity(cmd *cobra.Command, _ []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	silent, _ := cmd.Flags().GetBool("silent")

	switch {
	case verbose:
		c.app.SetVerbosity(domain.ParseLogLevel("verbose"))
	case silent:
		c.app.SetVerbosity(domain.ParseLogLevel("silent"))
	}
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}
