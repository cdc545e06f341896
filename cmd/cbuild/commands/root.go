// Package commands implements the CLI commands for the cbuild build helper.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cbuild/internal/app"
	"go.trai.ch/cbuild/internal/build"
	"go.trai.ch/cbuild/internal/core/domain"
)

// CLI represents the command line interface for cbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, tokens []string, opts app.RunOptions) error
	Status(ctx context.Context, opts app.RunOptions) (*app.Status, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "cbuild [compile] [run]",
		Short: "Compile every source file under a directory and run the result",
		Long: `cbuild discovers source files under the build root, hands them to the
compiler in a single invocation, and runs the produced binary.

Commands are a set: "compile" and "run" may be given in any order and
always execute as compile, then run.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Run(cmd.Context(), args, runOptions(cmd))
		},
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

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", domain.DefaultConfigFile, "Configuration file")
	flags.StringP("root", "r", "", "Build root to scan (default \".\")")
	flags.String("ext", "", "Source file extension (default \".c\")")
	flags.String("compiler", "", "Compiler executable (default \"gcc\")")
	flags.String("binary", "", "Binary produced by the compiler, relative to the root")
	flags.Bool("json", false, "Emit diagnostics as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// runOptions collects the persistent flags into app.RunOptions.
func runOptions(cmd *cobra.Command) app.RunOptions {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	root, _ := flags.GetString("root")
	ext, _ := flags.GetString("ext")
	compiler, _ := flags.GetString("compiler")
	binary, _ := flags.GetString("binary")
	jsonLogs, _ := flags.GetBool("json")

	return app.RunOptions{
		ConfigPath:     configPath,
		ConfigRequired: flags.Changed("config"),
		Overrides: app.Overrides{
			Root:      root,
			Extension: ext,
			Compiler:  compiler,
			Binary:    binary,
		},
		JSONLogs: jsonLogs,
	}
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
