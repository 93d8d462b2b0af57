package schedule

import (
	"fmt"
	"strings"
)

// ClockRange is a window of a day, stored as "HH:MM-HH:MM". When To is
// earlier than From the range wraps past midnight (22:00-03:00).
type ClockRange struct {
	From TimeOfDay
	To   TimeOfDay
}

// FullDay is the 00:00-24:00 range.
var FullDay = ClockRange{From: Midnight, To: EndOfDay}

// ParseClockRange parses "HH:MM-HH:MM". Empty ranges and ranges starting at
// 24:00 are rejected.
func ParseClockRange(s string) (ClockRange, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return ClockRange{}, fmt.Errorf("expected 'HH:MM-HH:MM', got %q", s)
	}

	from, err := parseTimeOfDay(parts[0])
	if err != nil {
		return ClockRange{}, fmt.Errorf("invalid start time %q: %w", parts[0], err)
	}
	to, err := parseTimeOfDay(parts[1])
	if err != nil {
		return ClockRange{}, fmt.Errorf("invalid end time %q: %w", parts[1], err)
	}

	if from == EndOfDay {
		return ClockRange{}, fmt.Errorf("range %q cannot start at 24:00", s)
	}
	if from == to {
		return ClockRange{}, fmt.Errorf("range %q is empty", s)
	}

	return ClockRange{From: from, To: to}, nil
}

// MustParseClockRange is like ParseClockRange but panics on error.
func MustParseClockRange(s string) ClockRange {
	r, err := ParseClockRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the range in "HH:MM-HH:MM" format.
func (r ClockRange) String() string {
	return r.From.String() + "-" + r.To.String()
}

// WrapsMidnight reports whether the range continues past midnight.
func (r ClockRange) WrapsMidnight() bool {
	return r.To.Before(r.From)
}

// Duration returns the length of the range in minutes.
func (r ClockRange) Duration() int {
	d := r.To.Minutes() - r.From.Minutes()
	if d <= 0 {
		d += minutesPerDay
	}
	return d
}

// IsFullDay reports whether the range covers 24 hours.
func (r ClockRange) IsFullDay() bool {
	return r.Duration() == minutesPerDay
}

// Decompose splits a range into the one or two non-wrapping segments it
// covers. 22:00-03:00 becomes 22:00-24:00 and 00:00-03:00; a range ending
// exactly at midnight yields a single segment.
func Decompose(r ClockRange) []ClockRange {
	if !r.WrapsMidnight() {
		return []ClockRange{r}
	}
	segs := []ClockRange{{From: r.From, To: EndOfDay}}
	if r.To != Midnight {
		segs = append(segs, ClockRange{From: Midnight, To: r.To})
	}
	return segs
}

// Overlaps reports whether two ranges share some time. Ranges touching at a
// boundary do not overlap, and neither do identical ranges.
func Overlaps(a, b ClockRange) bool {
	if a == b {
		return false
	}
	for _, sa := range Decompose(a) {
		for _, sb := range Decompose(b) {
			if sa.From.Before(sb.To) && sb.From.Before(sa.To) {
				return true
			}
		}
	}
	return false
}

// Within reports whether smaller lies entirely inside wider.
func Within(wider, smaller ClockRange) bool {
	if wider == smaller {
		return true
	}
	outer := Decompose(wider)
	for _, s := range Decompose(smaller) {
		contained := false
		for _, w := range outer {
			if !s.From.Before(w.From) && !w.To.Before(s.To) {
				contained = true
				break
			}
		}
		if !contained {
			return false
		}
	}
	return true
}

// ValidateRanges checks that the windows of a single day are pairwise
// disjoint.
func ValidateRanges(ranges []ClockRange) error {
	for i := 1; i < len(ranges); i++ {
		for j := 0; j < i; j++ {
			if ranges[i] == ranges[j] || Overlaps(ranges[i], ranges[j]) {
				return fmt.Errorf("time ranges overlap: %s and %s", ranges[j], ranges[i])
			}
		}
	}
	return nil
}
