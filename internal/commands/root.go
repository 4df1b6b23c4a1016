package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagosx-dev/pagosx/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pagosx",
		Short:   "Extend payment ledger exports with Pagos 2.0 tax breakdown fields",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newExtendCommand())

	return rootCmd
}
