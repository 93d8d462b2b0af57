package interval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// 02:45:30, 2:45:30.5
	hhmmss = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2}(?:\.\d+)?)$`)
	// 00:10, 3:10
	hhmm = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	// 15, 7.5
	bareMinutes = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// ParseMinutes reads an interval value ("HH:MM:SS", "HH:MM", "H:MM" or a
// bare number of minutes) and returns the headway in minutes. Seconds are
// kept as a fraction of a minute.
func ParseMinutes(s string) (float64, error) {
	s = strings.TrimSpace(s)

	var minutes float64
	switch {
	case hhmmss.MatchString(s):
		m := hhmmss.FindStringSubmatch(s)
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		sec, _ := strconv.ParseFloat(m[3], 64)
		if mins > 59 || sec >= 60 {
			return 0, fmt.Errorf("%w: %q out of range", ErrUnparseable, s)
		}
		minutes = float64(h*60+mins) + sec/60
	case hhmm.MatchString(s):
		m := hhmm.FindStringSubmatch(s)
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		if mins > 59 {
			return 0, fmt.Errorf("%w: %q out of range", ErrUnparseable, s)
		}
		minutes = float64(h*60 + mins)
	case bareMinutes.MatchString(s):
		minutes, _ = strconv.ParseFloat(s, 64)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive headway", ErrUnparseable, s)
	}
	return minutes, nil
}

// FormatMinutes renders a headway without a trailing fraction when it is
// a whole number of minutes.
func FormatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
