package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/Flyrell/transithours/internal/schedule"
	"github.com/Flyrell/transithours/internal/timetable"
	"github.com/spf13/cobra"
)

// period is the date range a timetable is expanded over.
type period struct {
	from     time.Time
	to       time.Time
	holidays []time.Time
}

var periodSliceFlags = []StringSliceFlag{
	{Name: "holiday", Usage: "public holiday date (YYYY-MM-DD), repeatable"},
}

var timetableCmd = LeafCommand{
	Use:   "timetable",
	Short: "Expand a route's headways over a date range",
	StrFlags: withTagFlags(
		StringFlag{Name: "from", Usage: "first date (YYYY-MM-DD)"},
		StringFlag{Name: "to", Usage: "last date (YYYY-MM-DD)"},
		StringFlag{Name: "output", Usage: "output format (text, json)", Default: "text"},
	),
	SliceFlags: periodSliceFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := readRoute(cmd)
		if err != nil {
			return err
		}
		p, ok, err := readPeriod(cmd)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("--from and --to are required")
		}
		output, _ := cmd.Flags().GetString("output")
		return runTimetable(cmd, newConverter(cmd), r.Tags, p, output)
	},
}.Build()

// readPeriod reads --from, --to and --holiday. ok is false when neither
// date is given.
func readPeriod(cmd *cobra.Command) (p period, ok bool, err error) {
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")
	if fromFlag == "" && toFlag == "" {
		return period{}, false, nil
	}
	if fromFlag == "" || toFlag == "" {
		return period{}, false, fmt.Errorf("--from and --to must be given together")
	}

	if p.from, err = timetable.ParseDate(fromFlag); err != nil {
		return period{}, false, err
	}
	if p.to, err = timetable.ParseDate(toFlag); err != nil {
		return period{}, false, err
	}

	holidayFlags, _ := cmd.Flags().GetStringSlice("holiday")
	for _, h := range holidayFlags {
		d, err := timetable.ParseDate(h)
		if err != nil {
			return period{}, false, err
		}
		p.holidays = append(p.holidays, d)
	}
	return p, true, nil
}

// computedGroups resolves tags into day groups. Invalid hours are an error;
// absent hours give no groups.
func computedGroups(conv *interval.Converter, tags map[string]string) ([]interval.DayGroup, error) {
	computed := conv.TagsToHoursObject(tags).AllComputedIntervals
	if computed.IsInvalid() {
		return nil, interval.ErrInvalidHours
	}
	groups, _ := computed.Get()
	return groups, nil
}

func runTimetable(cmd *cobra.Command, conv *interval.Converter, tags map[string]string, p period, output string) error {
	if output != "text" && output != "json" {
		return fmt.Errorf("unknown output format %q (expected text or json)", output)
	}

	groups, err := computedGroups(conv, tags)
	if err != nil {
		return err
	}
	days, err := timetable.Expand(groups, p.from, p.to, p.holidays)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if output == "json" {
		return writeJSON(w, days)
	}

	if len(days) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No service in this period."))
		return nil
	}
	for _, d := range days {
		label := schedule.FromTime(d.Date.Weekday()).Abbrev()
		if d.Holiday {
			label = schedule.PublicHoliday.Abbrev()
		}
		windows := make([]string, len(d.Intervals))
		for i, it := range d.Intervals {
			windows[i] = fmt.Sprintf("%s /%s", it.Range, interval.FormatMinutes(it.Minutes))
		}
		_, _ = fmt.Fprintf(w, "%s %s  %s\n",
			Primary(d.Date.Format("2006-01-02")),
			Silent(label),
			strings.Join(windows, ", "))
	}
	return nil
}
