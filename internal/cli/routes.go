package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/Flyrell/transithours/internal/route"
	"github.com/spf13/cobra"
)

var routesCmd = GroupCommand{
	Use:   "routes",
	Short: "Inspect the route catalog",
	Subcommands: []*cobra.Command{
		routesListCmd,
		routesCheckCmd,
	},
}.Build()

var routesListCmd = LeafCommand{
	Use:   "list",
	Short: "List catalog routes and the state of their hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		return runRoutesList(cmd, newConverter(cmd), cat)
	},
}.Build()

var routesCheckCmd = LeafCommand{
	Use:   "check",
	Short: "Fail when a catalog route has invalid hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		return runRoutesCheck(cmd, newConverter(cmd), cat)
	},
}.Build()

// routeStatus is "ok", "unset" or "invalid".
func routeStatus(conv *interval.Converter, r route.Route) string {
	computed := conv.TagsToHoursObject(r.Tags).AllComputedIntervals
	if computed.IsSet() {
		return "ok"
	}
	return computed.String()
}

func styledStatus(status string) string {
	switch status {
	case "ok":
		return Info(status)
	case interval.TagInvalid:
		return Error(status)
	default:
		return Warning(status)
	}
}

func runRoutesList(cmd *cobra.Command, conv *interval.Converter, cat *route.Catalog) error {
	w := cmd.OutOrStdout()
	if len(cat.Routes) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No routes in catalog."))
		return nil
	}
	for _, r := range cat.Routes {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Silent(fmt.Sprintf("%-7s", r.ID)), Primary(r.Name), styledStatus(routeStatus(conv, r)))
	}
	return nil
}

func runRoutesCheck(cmd *cobra.Command, conv *interval.Converter, cat *route.Catalog) error {
	var invalid []string
	for _, r := range cat.Routes {
		if routeStatus(conv, r) == interval.TagInvalid {
			invalid = append(invalid, r.Name)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%d route(s) with invalid hours: %s", len(invalid), strings.Join(invalid, ", "))
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d route(s) checked\n", len(cat.Routes))
	return nil
}
