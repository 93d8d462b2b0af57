package gtfs

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/Flyrell/transithours/internal/schedule"
)

// ErrInvalidHours is returned when the tags of a route cannot be turned
// into a timetable.
var ErrInvalidHours = errors.New("route hours are invalid and cannot be converted")

// FrequencyRow is one constant-headway window for a set of weekdays.
// Times use GTFS notation and may exceed 24:00:00 after midnight.
type FrequencyRow struct {
	Monday    bool   `json:"monday"`
	Tuesday   bool   `json:"tuesday"`
	Wednesday bool   `json:"wednesday"`
	Thursday  bool   `json:"thursday"`
	Friday    bool   `json:"friday"`
	Saturday  bool   `json:"saturday"`
	Sunday    bool   `json:"sunday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Headway   int    `json:"headway"`
}

// Days returns the weekdays the row applies to.
func (r FrequencyRow) Days() []schedule.Weekday {
	var out []schedule.Weekday
	flags := []bool{r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday, r.Saturday, r.Sunday}
	for i, d := range schedule.CalendarDays() {
		if flags[i] {
			out = append(out, d)
		}
	}
	return out
}

// TagsToGTFS converts route tags to frequency rows.
func TagsToGTFS(c *interval.Converter, tags map[string]string) ([]FrequencyRow, error) {
	return Flatten(c.TagsToHoursObject(tags).AllComputedIntervals)
}

// Flatten turns computed day groups into one row per group and range.
// Public holidays have no column: a group made only of "ph" gives no rows.
// Unset intervals give no rows; invalid ones are an error.
func Flatten(computed interval.Field[[]interval.DayGroup]) ([]FrequencyRow, error) {
	if computed.IsInvalid() {
		return nil, ErrInvalidHours
	}
	groups, _ := computed.Get()

	sorted := append([]interval.DayGroup{}, groups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return firstDay(sorted[i]) < firstDay(sorted[j])
	})

	rows := []FrequencyRow{}
	for _, g := range sorted {
		base, ok := dayColumns(g)
		if !ok {
			continue
		}

		prevEnd := -1
		for _, it := range g.Intervals {
			start := it.Range.From.Minutes()
			// Continue on the extended clock after a range that went past midnight.
			if prevEnd >= minutesPerDay && start+minutesPerDay == prevEnd {
				start += minutesPerDay
			}
			end := start + it.Range.Duration()

			row := base
			row.StartTime = formatGTFSTime(start)
			row.EndTime = formatGTFSTime(end)
			row.Headway = int(math.Round(it.Minutes * 60))
			rows = append(rows, row)

			prevEnd = end
		}
	}
	return rows, nil
}

const minutesPerDay = 24 * 60

func firstDay(g interval.DayGroup) int {
	if len(g.Days) == 0 {
		return math.MaxInt
	}
	first := g.Days[0].Index()
	for _, d := range g.Days[1:] {
		if d.Index() < first {
			first = d.Index()
		}
	}
	return first
}

// dayColumns sets the weekday flags of a group. It reports false when the
// group has no real weekday.
func dayColumns(g interval.DayGroup) (FrequencyRow, bool) {
	var row FrequencyRow
	hasDay := false
	for _, d := range g.Days {
		hasDay = hasDay || d != schedule.PublicHoliday
		switch d {
		case schedule.Monday:
			row.Monday = true
		case schedule.Tuesday:
			row.Tuesday = true
		case schedule.Wednesday:
			row.Wednesday = true
		case schedule.Thursday:
			row.Thursday = true
		case schedule.Friday:
			row.Friday = true
		case schedule.Saturday:
			row.Saturday = true
		case schedule.Sunday:
			row.Sunday = true
		}
	}
	return row, hasDay
}

// formatGTFSTime renders minutes since the start of the service day as
// HH:MM:SS. Hours go past 23 for times after midnight.
func formatGTFSTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}
