package interval

import (
	"fmt"
	"sort"

	"github.com/Flyrell/transithours/internal/schedule"
)

// placement is a conditional range positioned on the timeline of one
// opening window, in minutes from the window's origin.
type placement struct {
	Interval
	start int
	end   int
}

// MergeDay fills the opening windows of one day with the default headway
// around the conditional ranges of that day. Conditional ranges are kept
// verbatim; every gap before, between and after them gets the default
// headway. The result covers each window exactly, in window order.
//
// A conditional range that is not inside one of the windows yields
// ErrNotCovered; two conditional ranges sharing time yield ErrNotExclusive.
func MergeDay(opens []schedule.ClockRange, defaultMinutes float64, conds Intervals) (Intervals, error) {
	used := make([]bool, len(conds))
	var result Intervals

	for _, window := range opens {
		var applicable []Interval
		for i, c := range conds {
			switch {
			case schedule.Within(window, c.Range):
				applicable = append(applicable, c)
				used[i] = true
			case schedule.Overlaps(window, c.Range):
				return nil, fmt.Errorf("%w: %s reaches outside %s", ErrNotCovered, c.Range, window)
			}
		}

		merged, err := mergeWindow(window, defaultMinutes, applicable)
		if err != nil {
			return nil, err
		}
		result = append(result, merged...)
	}

	for i, c := range conds {
		if !used[i] {
			return nil, fmt.Errorf("%w: %s is outside the opening hours", ErrNotCovered, c.Range)
		}
	}
	return result, nil
}

// mergeWindow walks a single window from its start and emits gaps and
// conditional ranges in chronological order.
func mergeWindow(window schedule.ClockRange, defaultMinutes float64, conds []Interval) (Intervals, error) {
	origin := window.From
	length := window.Duration()

	// A full day has no natural start: walk it from the end of a range
	// crossing midnight so that range stays in one piece.
	rotated := false
	if window.IsFullDay() {
		for _, c := range conds {
			if c.Range.WrapsMidnight() && c.Range.To != schedule.Midnight {
				origin = c.Range.To
				rotated = true
				break
			}
		}
	}

	placed := make([]placement, len(conds))
	for i, c := range conds {
		start := schedule.Offset(origin, c.Range.From)
		placed[i] = placement{Interval: c, start: start, end: start + c.Range.Duration()}
	}
	sort.SliceStable(placed, func(i, j int) bool {
		return placed[i].start < placed[j].start
	})

	for i, p := range placed {
		if i > 0 && p.start < placed[i-1].end {
			return nil, fmt.Errorf("%w: %s and %s", ErrNotExclusive, placed[i-1].Range, p.Range)
		}
		if p.end > length {
			return nil, fmt.Errorf("%w: %s ends after %s", ErrNotCovered, p.Range, window)
		}
	}

	startAt := func(off int) schedule.TimeOfDay {
		return origin.Add(off)
	}
	endAt := func(off int) schedule.TimeOfDay {
		if off == length {
			if rotated {
				return origin
			}
			return window.To
		}
		t := origin.Add(off)
		if t == schedule.Midnight {
			return schedule.EndOfDay
		}
		return t
	}

	var out Intervals
	cursor := 0
	for _, p := range placed {
		if p.start > cursor {
			out = append(out, Interval{
				Range:   schedule.ClockRange{From: startAt(cursor), To: endAt(p.start)},
				Minutes: defaultMinutes,
			})
		}
		out = append(out, p.Interval)
		cursor = p.end
	}
	if cursor < length {
		out = append(out, Interval{
			Range:   schedule.ClockRange{From: startAt(cursor), To: endAt(length)},
			Minutes: defaultMinutes,
		})
	}
	return out, nil
}
