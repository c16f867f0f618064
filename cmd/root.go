package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := NewOptions()

	rootCmd := &cobra.Command{
		Use:   "tstamp [expression]...",
		Short: "Resolve systemd.time timestamp expressions",
		Long: `A CLI tool that resolves timestamp expressions like "yesterday -2days",
"3s ago" or "@1529578800" into absolute times. Expressions combine a
time literal with an optional signed time span.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add resolve flags to the root command so `tstamp` and
	// `tstamp resolve` work identically
	addResolveFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdResolve(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
