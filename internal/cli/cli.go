// Package cli wires the cobra commands for the glmr binary.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/glmr/internal/ui"
)

// version is overridden with -ldflags at release time
var version = "dev"

// exitCodeError carries a non-zero exit code that is not an error to report
// (for example the user answering "no" at a confirmation prompt)
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewRootCmd builds the root command with its subcommands
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glmr",
		Short:         "Simple stupid GitLab CLI for merge requests",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(newCreateCmd())
	return rootCmd
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		var ec exitCodeError
		if errors.As(err, &ec) {
			return ec.code
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error("ERROR:"), err)
		return 1
	}
	return 0
}
