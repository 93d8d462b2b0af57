package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Weekday is one of the eight day keys of an opening-hours table: the seven
// days of the week plus "ph" for public holidays.
type Weekday string

const (
	Monday        Weekday = "mo"
	Tuesday       Weekday = "tu"
	Wednesday     Weekday = "we"
	Thursday      Weekday = "th"
	Friday        Weekday = "fr"
	Saturday      Weekday = "sa"
	Sunday        Weekday = "su"
	PublicHoliday Weekday = "ph"
)

// Weekdays returns the eight day keys in canonical order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, PublicHoliday}
}

// CalendarDays returns the seven real weekdays, Monday first.
func CalendarDays() []Weekday {
	return Weekdays()[:7]
}

var weekdayIndex = map[Weekday]int{
	Monday: 0, Tuesday: 1, Wednesday: 2, Thursday: 3,
	Friday: 4, Saturday: 5, Sunday: 6, PublicHoliday: 7,
}

var weekdayNames = map[Weekday]string{
	Monday:        "Monday",
	Tuesday:       "Tuesday",
	Wednesday:     "Wednesday",
	Thursday:      "Thursday",
	Friday:        "Friday",
	Saturday:      "Saturday",
	Sunday:        "Sunday",
	PublicHoliday: "Public holiday",
}

var rruleWeekdays = map[Weekday]rrule.Weekday{
	Monday:    rrule.MO,
	Tuesday:   rrule.TU,
	Wednesday: rrule.WE,
	Thursday:  rrule.TH,
	Friday:    rrule.FR,
	Saturday:  rrule.SA,
	Sunday:    rrule.SU,
}

var timeWeekdays = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// ParseWeekday parses a two-letter day key ("Mo", "mo", "PH") case-insensitively.
func ParseWeekday(s string) (Weekday, bool) {
	d := Weekday(strings.ToLower(strings.TrimSpace(s)))
	_, ok := weekdayIndex[d]
	return d, ok
}

// FromTime returns the day key of a calendar weekday.
func FromTime(wd time.Weekday) Weekday {
	return timeWeekdays[wd]
}

// Index returns the position of d in canonical order, or -1.
func (d Weekday) Index() int {
	if i, ok := weekdayIndex[d]; ok {
		return i
	}
	return -1
}

// Name returns the English name of the day.
func (d Weekday) Name() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return string(d)
}

// Abbrev returns the opening-hours spelling ("Mo", "PH").
func (d Weekday) Abbrev() string {
	if d == PublicHoliday {
		return "PH"
	}
	s := string(d)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RRule returns the rrule weekday for d. Public holidays have none.
func (d Weekday) RRule() (rrule.Weekday, bool) {
	wd, ok := rruleWeekdays[d]
	return wd, ok
}

// SortWeekdays sorts days in canonical order.
func SortWeekdays(days []Weekday) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Index() < days[j].Index()
	})
}

// expandDayRange returns the days from first to last inclusive, wrapping
// past Sunday (Sa-Mo is Sa, Su, Mo). Public holidays cannot be part of a range.
func expandDayRange(first, last Weekday) ([]Weekday, error) {
	if first == PublicHoliday || last == PublicHoliday {
		return nil, fmt.Errorf("PH cannot be used in a day range")
	}
	days := CalendarDays()
	var result []Weekday
	for i := first.Index(); ; i = (i + 1) % len(days) {
		result = append(result, days[i])
		if days[i] == last {
			break
		}
	}
	return result, nil
}
