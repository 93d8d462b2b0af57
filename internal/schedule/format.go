package schedule

import (
	"strings"
)

// FormatDays renders days in opening-hours notation, collapsing runs of
// consecutive weekdays: [mo tu we th fr ph] becomes "Mo-Fr,PH".
func FormatDays(days []Weekday) string {
	sorted := append([]Weekday{}, days...)
	SortWeekdays(sorted)

	var parts []string
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) &&
			sorted[j+1] != PublicHoliday &&
			sorted[j+1].Index() == sorted[j].Index()+1 {
			j++
		}
		switch {
		case j == i:
			parts = append(parts, sorted[i].Abbrev())
		case j == i+1:
			parts = append(parts, sorted[i].Abbrev(), sorted[j].Abbrev())
		default:
			parts = append(parts, sorted[i].Abbrev()+"-"+sorted[j].Abbrev())
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}

// DescribeDays returns a human-readable description of a set of days.
func DescribeDays(days []Weekday) string {
	var calendar []string
	holiday := false
	for _, d := range days {
		if d == PublicHoliday {
			holiday = true
			continue
		}
		calendar = append(calendar, string(d))
	}

	var desc string
	switch {
	case matchExactSet(calendar, "mo", "tu", "we", "th", "fr", "sa", "su"):
		desc = "every day"
	case isWeekdays(calendar):
		desc = "every weekday"
	case isWeekends(calendar):
		desc = "every weekend"
	case len(calendar) > 0:
		sorted := make([]Weekday, len(calendar))
		for i, c := range calendar {
			sorted[i] = Weekday(c)
		}
		SortWeekdays(sorted)
		names := make([]string, len(sorted))
		for i, d := range sorted {
			names[i] = d.Name()
		}
		desc = "every " + strings.Join(names, ", ")
	}

	if holiday {
		if desc == "" {
			return "public holidays"
		}
		return desc + " and public holidays"
	}
	return desc
}

// matchExactSet returns true if actual contains exactly the expected strings (in any order).
func matchExactSet(actual []string, expected ...string) bool {
	if len(actual) != len(expected) {
		return false
	}
	set := make(map[string]bool, len(expected))
	for _, e := range expected {
		set[e] = false
	}
	for _, a := range actual {
		if _, ok := set[a]; !ok {
			return false
		}
		set[a] = true
	}
	for _, v := range set {
		if !v {
			return false
		}
	}
	return true
}

func isWeekdays(days []string) bool {
	return matchExactSet(days, "mo", "tu", "we", "th", "fr")
}

func isWeekends(days []string) bool {
	return matchExactSet(days, "sa", "su")
}
