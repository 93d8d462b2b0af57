package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var versionCmd = LeafCommand{
	Use:   "version",
	Short: "Print the version information",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "short", Usage: "print the version number only"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		return runVersion(cmd, short)
	},
}.Build()

func runVersion(cmd *cobra.Command, short bool) error {
	if short {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), appVersion)
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "transithours %s (commit: %s, built: %s, %s)\n",
		appVersion, appCommit, appDate, runtime.Version())
	return nil
}
