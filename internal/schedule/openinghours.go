package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// WeekTable maps each of the eight day keys to that day's opening windows,
// in chronological order. A day with no windows is closed.
type WeekTable map[Weekday][]ClockRange

// NewWeekTable returns a table with every day present and closed.
func NewWeekTable() WeekTable {
	t := make(WeekTable, 8)
	for _, d := range Weekdays() {
		t[d] = []ClockRange{}
	}
	return t
}

// FullWeek returns the table for "24/7": every day open 00:00-24:00.
func FullWeek() WeekTable {
	t := make(WeekTable, 8)
	for _, d := range Weekdays() {
		t[d] = []ClockRange{FullDay}
	}
	return t
}

// Strings returns the windows of day d as "HH:MM-HH:MM" strings.
func (t WeekTable) Strings(d Weekday) []string {
	out := make([]string, len(t[d]))
	for i, r := range t[d] {
		out[i] = r.String()
	}
	return out
}

// MarshalJSON writes the table as an object keyed in canonical day order.
func (t WeekTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Weekdays() {
		if i > 0 {
			buf.WriteByte(',')
		}
		ranges, err := json.Marshal(t.Strings(d))
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%q:%s", d, ranges)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the table as a mapping keyed in canonical day order.
func (t WeekTable) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, d := range Weekdays() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, s := range t.Strings(d) {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: s})
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(d)},
			seq,
		)
	}
	return node, nil
}

// ParseOpeningHours reads the subset of the OpenStreetMap opening_hours
// syntax used on public transport routes:
//
//	24/7
//	Mo-Fr 05:00-22:00; Sa 07:00-23:00; PH off
//	Mo,Fr 08:00-10:00,16:30-18:30
//	Mo-Fr,PH 05:00-22:00
//	05:00-22:00
//
// Rules are separated by semicolons and later rules replace earlier ones for
// the days they name. A rule without a day selector applies to every day,
// public holidays included. A day selector without times means open all day.
func ParseOpeningHours(s string) (WeekTable, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty opening hours")
	}

	table := NewWeekTable()
	for _, rule := range strings.Split(s, ";") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		days, ranges, err := parseRule(rule)
		if err != nil {
			return nil, err
		}
		for _, d := range days {
			table[d] = append([]ClockRange{}, ranges...)
		}
	}
	return table, nil
}

// parseRule parses one "<selector> <times>" rule.
func parseRule(rule string) ([]Weekday, []ClockRange, error) {
	if rule == "24/7" {
		return Weekdays(), []ClockRange{FullDay}, nil
	}

	fields := strings.Fields(rule)
	var days []Weekday
	i := 0
	for ; i < len(fields); i++ {
		selected, err := parseDaySelector(fields[i])
		if err != nil {
			break
		}
		days = appendMissing(days, selected...)
	}
	if i == 0 {
		days = Weekdays()
	}
	SortWeekdays(days)

	times := strings.Join(fields[i:], "")
	switch strings.ToLower(times) {
	case "":
		return days, []ClockRange{FullDay}, nil
	case "off", "closed":
		return days, nil, nil
	case "24/7":
		return days, []ClockRange{FullDay}, nil
	}

	ranges, err := parseRangeList(times)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid opening hours rule %q: %w", rule, err)
	}
	return days, ranges, nil
}

// parseDaySelector expands "Mo-Fr", "Sa,Su", "Mo-Fr,PH" or "Tu" into day keys.
func parseDaySelector(s string) ([]Weekday, error) {
	s = strings.TrimSuffix(s, ",")
	if s == "" {
		return nil, fmt.Errorf("empty day selector")
	}

	var days []Weekday
	for _, part := range strings.Split(s, ",") {
		bounds := strings.Split(part, "-")
		switch len(bounds) {
		case 1:
			d, ok := ParseWeekday(bounds[0])
			if !ok {
				return nil, fmt.Errorf("unknown day %q", bounds[0])
			}
			days = appendMissing(days, d)
		case 2:
			first, ok := ParseWeekday(bounds[0])
			if !ok {
				return nil, fmt.Errorf("unknown day %q", bounds[0])
			}
			last, ok := ParseWeekday(bounds[1])
			if !ok {
				return nil, fmt.Errorf("unknown day %q", bounds[1])
			}
			expanded, err := expandDayRange(first, last)
			if err != nil {
				return nil, err
			}
			days = appendMissing(days, expanded...)
		default:
			return nil, fmt.Errorf("invalid day range %q", part)
		}
	}
	return days, nil
}

// parseRangeList parses comma-separated clock ranges and checks they are
// disjoint.
func parseRangeList(s string) ([]ClockRange, error) {
	var ranges []ClockRange
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			continue
		}
		r, err := ParseClockRange(part)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("no time ranges in %q", s)
	}
	if err := ValidateRanges(ranges); err != nil {
		return nil, err
	}
	return ranges, nil
}

func appendMissing(days []Weekday, add ...Weekday) []Weekday {
	for _, d := range add {
		found := false
		for _, existing := range days {
			if existing == d {
				found = true
				break
			}
		}
		if !found {
			days = append(days, d)
		}
	}
	return days
}
