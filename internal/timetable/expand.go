package timetable

import (
	"fmt"
	"sort"
	"time"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/Flyrell/transithours/internal/schedule"
	"github.com/teambition/rrule-go"
)

const dateLayout = "2006-01-02"

// ServiceDay is the timetable of one calendar date.
type ServiceDay struct {
	Date      time.Time          `json:"date" yaml:"date"`
	Holiday   bool               `json:"holiday" yaml:"holiday"`
	Intervals interval.Intervals `json:"intervals" yaml:"intervals"`
}

// Expand evaluates day groups into concrete dates between from and to
// (inclusive). Every group is turned into a weekly rule over its weekdays.
// Holiday dates take the public holiday group when there is one and have no
// service otherwise. Dates no group applies to are left out. The result is
// sorted by date.
func Expand(groups []interval.DayGroup, from, to time.Time, holidays []time.Time) ([]ServiceDay, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s is before start date %s", to.Format(dateLayout), from.Format(dateLayout))
	}

	dayMap := make(map[string]ServiceDay)
	var holidayGroup *interval.DayGroup

	for i, g := range groups {
		var weekdays []rrule.Weekday
		for _, d := range g.Days {
			if d == schedule.PublicHoliday {
				holidayGroup = &groups[i]
				continue
			}
			if wd, ok := d.RRule(); ok {
				weekdays = append(weekdays, wd)
			}
		}
		if len(weekdays) == 0 {
			continue
		}

		r, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   from,
			Byweekday: weekdays,
		})
		if err != nil {
			return nil, err
		}
		for _, d := range r.Between(from, to, true) {
			dayMap[d.Format(dateLayout)] = ServiceDay{Date: d, Intervals: g.Intervals}
		}
	}

	for _, h := range holidays {
		h = truncateDay(h)
		if h.Before(from) || h.After(to) {
			continue
		}
		key := h.Format(dateLayout)
		if holidayGroup == nil {
			delete(dayMap, key)
			continue
		}
		dayMap[key] = ServiceDay{Date: h, Holiday: true, Intervals: holidayGroup.Intervals}
	}

	result := make([]ServiceDay, 0, len(dayMap))
	for _, sd := range dayMap {
		result = append(result, sd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
