package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/typhonjs-tcg/scrydex-sub001/cmd/scrydex/cmd"
)

// Execute runs the scrydex CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "scrydex",
		Short:   "Trading card collection database CLI",
		Version: a.version,
		Long: `Scrydex manages file-backed databases of trading card collections.

Each database is a single JSON file holding a metadata envelope and an
array of card records in Scryfall's schema. Databases can be listed,
searched with card-level filters, derived into sorted stores, and
compared against each other by card identity.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.scrydex.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("scrydex {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(c *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags above, so errors
	// indicate programming errors.
	verbose := mustGetBool(c, "verbose")
	quiet := mustGetBool(c, "quiet")
	noColor := mustGetBool(c, "no-color")
	logLevel := mustGetString(c, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(cmd.NewListCommand(a))
	rootCmd.AddCommand(cmd.NewFindCommand(a))
	rootCmd.AddCommand(cmd.NewFilterCommand(a))
	rootCmd.AddCommand(cmd.NewDiffCommand(a))
	rootCmd.AddCommand(cmd.NewVersionCommand(a))
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag
// doesn't exist. Only for flags defined in this package.
func mustGetBool(c *cobra.Command, name string) bool {
	val, err := c.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag
// doesn't exist. Only for flags defined in this package.
func mustGetString(c *cobra.Command, name string) string {
	val, err := c.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
