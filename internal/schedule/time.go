package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var (
	// 14:00, 09:30, 9:30, 24:00
	time24h = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// TimeOfDay represents a clock time without a date component.
// 24:00 is valid and marks the end of a day.
type TimeOfDay struct {
	Hour   int // 0-24
	Minute int // 0-59
}

var (
	// Midnight is the start of a day (00:00).
	Midnight = TimeOfDay{}
	// EndOfDay is the end of a day (24:00).
	EndOfDay = TimeOfDay{Hour: 24}
)

// String returns TimeOfDay in "HH:MM" format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the number of minutes elapsed since 00:00.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than other on the same day.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// Add moves t forward by the given number of minutes, wrapping past
// midnight. The result is always in 00:00-23:59.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	m := (t.Minutes() + minutes) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return timeOfDayFromMinutes(m)
}

// Offset returns how many minutes one has to walk forward from origin to
// reach t. 24:00 is one full day after 00:00.
func Offset(origin, t TimeOfDay) int {
	d := t.Minutes() - origin.Minutes()
	if d < 0 {
		d += minutesPerDay
	}
	return d
}

func timeOfDayFromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// ParseTimeOfDay parses a 24-hour "HH:MM" or "H:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	return parseTimeOfDay(s)
}

func parseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)

	m := time24h.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("unrecognized time format %q", s)
	}
	return parseHourMinute24(m[1], m[2])
}

func parseHourMinute24(hourStr, minStr string) (TimeOfDay, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, err
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return TimeOfDay{}, err
	}

	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}
	if hour < 0 || hour > 24 || (hour == 24 && minute != 0) {
		return TimeOfDay{}, fmt.Errorf("hour %02d:%02d out of range", hour, minute)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
