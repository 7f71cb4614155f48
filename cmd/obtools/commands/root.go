// Package commands implements the CLI commands for obtools.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/obtools/internal/app"
	"go.trai.ch/obtools/internal/build"
)

// DefaultSettingsFile is the tool settings file looked up in the working
// directory.
const DefaultSettingsFile = "obtools.yaml"

// CLI represents the command line interface for obtools.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Status(ctx context.Context, scope app.Scope) (*app.StatusReport, error)
	Enable(ctx context.Context, scope app.Scope, selectors []string) error
	Disable(ctx context.Context, scope app.Scope, selectors []string) error
	ShowSettings(ctx context.Context, scope app.Scope) (*app.SettingsReport, error)
	SetSettings(ctx context.Context, scope app.Scope, change app.SettingsChange) error
	Apply(ctx context.Context, scope app.Scope, planFile string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "obtools",
		Short:         "Wire the Obfuscar obfuscator into MSBuild projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("project", "p", "", "Project file, solution or directory to operate on")
	rootCmd.PersistentFlags().StringP("config", "c", DefaultSettingsFile, "Path to the tool settings file")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newEnableCmd())
	rootCmd.AddCommand(c.newDisableCmd())
	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetJSONHook sets up a PersistentPreRun function that retrieves the json
// flag and calls the provided callback with its value.
func (c *CLI) SetJSONHook(fn func(bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		enabled, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		fn(enabled)
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// scope builds the app scope from the global flags.
func scope(cmd *cobra.Command) (app.Scope, error) {
	dir, err := os.Getwd()
	if err != nil {
		return app.Scope{}, err
	}
	project, _ := cmd.Flags().GetString("project")
	settings, _ := cmd.Flags().GetString("config")
	return app.Scope{Dir: dir, Project: project, SettingsFile: settings}, nil
}
