package interval

import (
	"github.com/Flyrell/transithours/internal/schedule"
)

// DayGroup is a set of days sharing the same intervals.
type DayGroup struct {
	Days      []schedule.Weekday `json:"days" yaml:"days"`
	Intervals Intervals          `json:"intervals" yaml:"intervals"`
}

// Has reports whether d belongs to the group.
func (g DayGroup) Has(d schedule.Weekday) bool {
	for _, day := range g.Days {
		if day == d {
			return true
		}
	}
	return false
}

// GroupByDays collects, day by day, the ranges every clause contributes and
// merges days whose mappings are equal. Days without any range are left out.
// A range given twice for the same day keeps the headway of the later clause.
func GroupByDays(conds []ConditionalInterval) []DayGroup {
	byDay := make(map[schedule.Weekday]Intervals, 8)
	for _, ci := range conds {
		for _, d := range schedule.Weekdays() {
			for _, r := range ci.Applies[d] {
				iv := byDay[d]
				iv.Set(r, ci.Interval)
				byDay[d] = iv
			}
		}
	}
	return groupDays(byDay)
}

// SplitDays expands groups back into one mapping per day.
func SplitDays(groups []DayGroup) map[schedule.Weekday]Intervals {
	byDay := make(map[schedule.Weekday]Intervals, 8)
	for _, g := range groups {
		for _, d := range g.Days {
			byDay[d] = g.Intervals
		}
	}
	return byDay
}

// groupDays walks the days in canonical order and puts each non-empty day
// in the first group with an equal mapping, or in a new group.
func groupDays(byDay map[schedule.Weekday]Intervals) []DayGroup {
	groups := []DayGroup{}
	for _, d := range schedule.Weekdays() {
		iv := byDay[d]
		if len(iv) == 0 {
			continue
		}
		found := false
		for i := range groups {
			if groups[i].Intervals.Equal(iv) {
				groups[i].Days = append(groups[i].Days, d)
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, DayGroup{Days: []schedule.Weekday{d}, Intervals: iv})
		}
	}
	return groups
}
