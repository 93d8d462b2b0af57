package interval

import (
	"fmt"
	"strings"

	"github.com/Flyrell/transithours/internal/schedule"
)

// ConditionalInterval is one clause of an interval:conditional tag: a
// headway and the windows it applies to.
type ConditionalInterval struct {
	Interval float64            `json:"interval" yaml:"interval"`
	Applies  schedule.WeekTable `json:"applies" yaml:"applies"`
}

// OpeningHoursParser turns an opening_hours value into a week table.
type OpeningHoursParser interface {
	Parse(s string) (schedule.WeekTable, error)
}

// OpeningHoursParserFunc adapts a function to OpeningHoursParser.
type OpeningHoursParserFunc func(s string) (schedule.WeekTable, error)

func (f OpeningHoursParserFunc) Parse(s string) (schedule.WeekTable, error) {
	return f(s)
}

// SplitConditional splits a composite interval:conditional value into its
// clauses. Semicolons inside parentheses separate rules of a single clause
// and are kept.
//
//	"5 @ (Mo-Fr 07:00-10:00; Su 16:30-19:00); 30 @ (Mo-Su 22:00-05:00)"
//	→ ["5 @ (Mo-Fr 07:00-10:00; Su 16:30-19:00)", "30 @ (Mo-Su 22:00-05:00)"]
func SplitConditional(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	flush := func(end int) {
		if p := strings.TrimSpace(s[start:end]); p != "" {
			parts = append(parts, p)
		}
	}
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return parts
}

// ParseClause reads a single "<interval> @ <selector> <ranges>" clause.
// Parentheses around the selector are optional, and so are the spaces
// around "@".
func (c *Converter) ParseClause(clause string) (ConditionalInterval, error) {
	parts := strings.Split(clause, "@")
	if len(parts) != 2 {
		return ConditionalInterval{}, fmt.Errorf("%w: clause %q needs exactly one '@'", ErrUnparseable, clause)
	}

	minutes, err := ParseMinutes(parts[0])
	if err != nil {
		return ConditionalInterval{}, fmt.Errorf("clause %q: %w", clause, err)
	}

	hours := strings.TrimSpace(parts[1])
	if strings.HasPrefix(hours, "(") && strings.HasSuffix(hours, ")") {
		hours = strings.TrimSpace(hours[1 : len(hours)-1])
	}
	applies, err := c.parser.Parse(hours)
	if err != nil {
		return ConditionalInterval{}, fmt.Errorf("%w: clause %q: %w", ErrUnparseable, clause, err)
	}

	return ConditionalInterval{Interval: minutes, Applies: applies}, nil
}

// ParseConditional reads a whole interval:conditional value, keeping the
// clause order.
func (c *Converter) ParseConditional(s string) ([]ConditionalInterval, error) {
	clauses := SplitConditional(s)
	if len(clauses) == 0 {
		return nil, fmt.Errorf("%w: empty interval:conditional", ErrUnparseable)
	}

	result := make([]ConditionalInterval, 0, len(clauses))
	for _, clause := range clauses {
		ci, err := c.ParseClause(clause)
		if err != nil {
			return nil, err
		}
		result = append(result, ci)
	}
	return result, nil
}
