package cli

import (
	"fmt"

	"github.com/Flyrell/transithours/internal/gtfs"
	"github.com/Flyrell/transithours/internal/interval"
	"github.com/Flyrell/transithours/internal/route"
	"github.com/Flyrell/transithours/internal/schedule"
	"github.com/spf13/cobra"
)

var gtfsCmd = LeafCommand{
	Use:   "gtfs",
	Short: "Convert route hours to GTFS frequency rows",
	BoolFlags: []BoolFlag{
		{Name: "all", Usage: "convert every route of the catalog"},
	},
	StrFlags: withTagFlags(
		StringFlag{Name: "output", Usage: "output format (table, json, csv)", Default: "table"},
	),
	RunE: func(cmd *cobra.Command, args []string) error {
		var routes []route.Route
		all, _ := cmd.Flags().GetBool("all")
		if all {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			routes = cat.Routes
		} else {
			r, err := readRoute(cmd)
			if err != nil {
				return err
			}
			routes = []route.Route{r}
		}
		output, _ := cmd.Flags().GetString("output")
		return runGTFS(cmd, newConverter(cmd), routes, all, output)
	},
}.Build()

func runGTFS(cmd *cobra.Command, conv *interval.Converter, routes []route.Route, all bool, output string) error {
	if output != "table" && output != "json" && output != "csv" {
		return fmt.Errorf("unknown output format %q (expected table, json or csv)", output)
	}

	freqs := make([]gtfs.RouteFrequencies, 0, len(routes))
	for _, r := range routes {
		rows, err := gtfs.TagsToGTFS(conv, r.Tags)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		freqs = append(freqs, gtfs.RouteFrequencies{RouteID: r.ID, Rows: rows})
	}

	w := cmd.OutOrStdout()
	switch output {
	case "json":
		if !all && len(freqs) == 1 {
			return writeJSON(w, freqs[0].Rows)
		}
		return writeJSON(w, freqs)
	case "csv":
		return gtfs.WriteCSV(w, freqs...)
	}

	for i, rf := range freqs {
		if len(routes) > 1 {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintf(w, "%s %s\n", Primary(routes[i].Name), Silent("("+rf.RouteID+")"))
		}
		if len(rf.Rows) == 0 {
			_, _ = fmt.Fprintln(w, Silent("no frequencies"))
			continue
		}
		for _, row := range rf.Rows {
			_, _ = fmt.Fprintf(w, "%-14s %s-%s  %s\n",
				schedule.FormatDays(row.Days()),
				row.StartTime, row.EndTime,
				Info(fmt.Sprintf("every %ds", row.Headway)))
		}
	}
	return nil
}
