package interval

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Flyrell/transithours/internal/schedule"
	"gopkg.in/yaml.v3"
)

// Interval is one range of a day with its headway in minutes.
type Interval struct {
	Range   schedule.ClockRange
	Minutes float64
}

// Intervals is an ordered range → minutes mapping. Order is the order in
// which ranges were added; a range is present at most once.
type Intervals []Interval

// Set adds r with the given headway, or replaces the headway of r in place
// when it is already present.
func (iv *Intervals) Set(r schedule.ClockRange, minutes float64) {
	for i := range *iv {
		if (*iv)[i].Range == r {
			(*iv)[i].Minutes = minutes
			return
		}
	}
	*iv = append(*iv, Interval{Range: r, Minutes: minutes})
}

// Get returns the headway of r.
func (iv Intervals) Get(r schedule.ClockRange) (float64, bool) {
	for _, it := range iv {
		if it.Range == r {
			return it.Minutes, true
		}
	}
	return 0, false
}

// Ranges returns the ranges in order.
func (iv Intervals) Ranges() []schedule.ClockRange {
	out := make([]schedule.ClockRange, len(iv))
	for i, it := range iv {
		out[i] = it.Range
	}
	return out
}

// Equal reports whether both mappings hold the same ranges with the same
// headways, regardless of order.
func (iv Intervals) Equal(other Intervals) bool {
	if len(iv) != len(other) {
		return false
	}
	for _, it := range iv {
		m, ok := other.Get(it.Range)
		if !ok || m != it.Minutes {
			return false
		}
	}
	return true
}

// Strings returns "HH:MM-HH:MM: minutes" lines, mostly for messages and tests.
func (iv Intervals) Strings() []string {
	out := make([]string, len(iv))
	for i, it := range iv {
		out[i] = fmt.Sprintf("%s: %s", it.Range, FormatMinutes(it.Minutes))
	}
	return out
}

// MarshalJSON writes an object keyed by range, in order.
func (iv Intervals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range iv {
		if i > 0 {
			buf.WriteByte(',')
		}
		m, err := json.Marshal(it.Minutes)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%q:%s", it.Range.String(), m)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes a mapping keyed by range, in order.
func (iv Intervals) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, it := range iv {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: it.Range.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Value: FormatMinutes(it.Minutes)},
		)
	}
	return node, nil
}
