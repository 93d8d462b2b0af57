package interval

import (
	"fmt"

	"github.com/Flyrell/transithours/internal/schedule"
)

// ComputeAll builds the complete timetable of every day from the opening
// hours, the default headway and the conditional intervals grouped by day.
//
// When the inputs cannot be combined the conditional groups are passed
// through unchanged, except that unreadable opening hours or an unreadable
// default headway with no conditional intervals at all give Invalid.
// Missing opening hours mean open all day, every day. A semantic problem
// found while merging a day gives Invalid together with the error.
func ComputeAll(opens Field[schedule.WeekTable], defaultMinutes Field[float64], byDays Field[[]DayGroup]) (Field[[]DayGroup], error) {
	if opens.IsInvalid() || !defaultMinutes.IsSet() || byDays.IsInvalid() {
		if (opens.IsInvalid() || defaultMinutes.IsInvalid()) && byDays.IsUnset() {
			return Invalid[[]DayGroup](), nil
		}
		return byDays, nil
	}

	table, ok := opens.Get()
	if !ok {
		table = schedule.FullWeek()
	}
	minutes, _ := defaultMinutes.Get()
	groups, _ := byDays.Get()
	conds := SplitDays(groups)

	perDay := make(map[schedule.Weekday]Intervals, 8)
	for _, d := range schedule.Weekdays() {
		windows := table[d]
		if len(windows) == 0 {
			if len(conds[d]) > 0 {
				return Invalid[[]DayGroup](), fmt.Errorf("%s: %w: closed all day", d.Name(), ErrNotCovered)
			}
			continue
		}
		merged, err := MergeDay(windows, minutes, conds[d])
		if err != nil {
			return Invalid[[]DayGroup](), fmt.Errorf("%s: %w", d.Name(), err)
		}
		perDay[d] = merged
	}

	return Of(groupDays(perDay)), nil
}
