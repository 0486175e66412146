package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/typhonjs-tcg/scrydex-sub001/internal/appcontext"
)

// NewVersionCommand creates the version command with app dependencies.
func NewVersionCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the scrydex CLI.`,
		Run: func(c *cobra.Command, _ []string) {
			out := c.OutOrStdout()
			fmt.Fprintf(out, "scrydex version %s\n", app.Version())
			fmt.Fprintf(out, "commit: %s\n", app.Commit())
			fmt.Fprintf(out, "built: %s\n", app.Date())
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
