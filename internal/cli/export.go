package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/Flyrell/transithours/internal/route"
	"github.com/Flyrell/transithours/internal/stringutil"
	"github.com/Flyrell/transithours/internal/timetable"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export a route's timetable as PDF",
	StrFlags: withTagFlags(
		StringFlag{Name: "from", Usage: "first date of the service date listing (YYYY-MM-DD)"},
		StringFlag{Name: "to", Usage: "last date of the service date listing (YYYY-MM-DD)"},
		StringFlag{Name: "dir", Usage: "output directory", Default: "."},
	),
	SliceFlags: periodSliceFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := readRoute(cmd)
		if err != nil {
			return err
		}
		p, hasPeriod, err := readPeriod(cmd)
		if err != nil {
			return err
		}
		var pp *period
		if hasPeriod {
			pp = &p
		}
		dir, _ := cmd.Flags().GetString("dir")
		return runExport(cmd, newConverter(cmd), r, pp, dir)
	},
}.Build()

func runExport(cmd *cobra.Command, conv *interval.Converter, r route.Route, p *period, dir string) error {
	groups, err := computedGroups(conv, r.Tags)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Name, err)
	}

	doc := timetable.Document{RouteName: r.Name, RouteID: r.ID, Groups: groups}
	if p != nil {
		doc.Days, err = timetable.Expand(groups, p.from, p.to, p.holidays)
		if err != nil {
			return err
		}
	}

	outPath := filepath.Join(dir, stringutil.FileName(r.Name, "timetable", "pdf"))
	if err := timetable.RenderPDF(doc, outPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", Primary(r.Name), Text(outPath))
	return nil
}
