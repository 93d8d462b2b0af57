package cli

import (
	"fmt"

	"github.com/Flyrell/transithours/internal/route"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "transithours",
	Short:         "Resolve transit headways from OSM opening_hours and interval tags",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		disableColorUnlessTerminal(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "explain why tags could not be used")
	rootCmd.PersistentFlags().String("routes", route.DefaultPath, "route catalog file")

	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(gtfsCmd)
	rootCmd.AddCommand(timetableCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), Error("error: "+err.Error()))
	}
	return err
}
