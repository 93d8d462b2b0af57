package interval

import (
	"io"

	"github.com/Flyrell/transithours/internal/schedule"
	"github.com/charmbracelet/log"
)

// Tag keys read from a route.
const (
	TagOpeningHours        = "opening_hours"
	TagInterval            = "interval"
	TagIntervalConditional = "interval:conditional"
)

// HoursObject is everything that can be read from the hours tags of a
// route. Each field is resolved on its own.
type HoursObject struct {
	Opens                Field[schedule.WeekTable]    `json:"opens" yaml:"opens"`
	DefaultInterval      Field[float64]               `json:"defaultInterval" yaml:"defaultInterval"`
	OtherIntervals       Field[[]ConditionalInterval] `json:"otherIntervals" yaml:"otherIntervals"`
	OtherIntervalsByDays Field[[]DayGroup]            `json:"otherIntervalsByDays" yaml:"otherIntervalsByDays"`
	AllComputedIntervals Field[[]DayGroup]            `json:"allComputedIntervals" yaml:"allComputedIntervals"`
}

// Converter reads route tags. It holds no state between calls and is safe
// for concurrent use.
type Converter struct {
	logger *log.Logger
	parser OpeningHoursParser
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger receiving debug messages about tags that
// could not be used.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithParser replaces the opening hours grammar.
func WithParser(p OpeningHoursParser) Option {
	return func(c *Converter) {
		c.parser = p
	}
}

// NewConverter returns a Converter using the built-in opening hours grammar
// and a silent logger unless options say otherwise.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger: log.New(io.Discard),
		parser: OpeningHoursParserFunc(schedule.ParseOpeningHours),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TagsToHoursObject resolves the opening_hours, interval and
// interval:conditional tags. Other tags are ignored. A tag that is absent
// gives Unset and a tag that cannot be read gives Invalid; neither is an
// error.
func (c *Converter) TagsToHoursObject(tags map[string]string) HoursObject {
	var h HoursObject

	if v, ok := tags[TagOpeningHours]; ok {
		table, err := c.parser.Parse(v)
		if err != nil {
			c.logger.Debug("opening hours unreadable", "tag", TagOpeningHours, "value", v, "err", err)
			h.Opens = Invalid[schedule.WeekTable]()
		} else {
			h.Opens = Of(table)
		}
	}

	if v, ok := tags[TagInterval]; ok {
		minutes, err := ParseMinutes(v)
		if err != nil {
			c.logger.Debug("interval unreadable", "tag", TagInterval, "value", v, "err", err)
			h.DefaultInterval = Invalid[float64]()
		} else {
			h.DefaultInterval = Of(minutes)
		}
	}

	if v, ok := tags[TagIntervalConditional]; ok {
		conds, err := c.ParseConditional(v)
		if err != nil {
			c.logger.Debug("conditional interval unreadable", "tag", TagIntervalConditional, "value", v, "err", err)
			h.OtherIntervals = Invalid[[]ConditionalInterval]()
			h.OtherIntervalsByDays = Invalid[[]DayGroup]()
		} else {
			h.OtherIntervals = Of(conds)
			h.OtherIntervalsByDays = Of(GroupByDays(conds))
		}
	}

	computed, err := ComputeAll(h.Opens, h.DefaultInterval, h.OtherIntervalsByDays)
	if err != nil {
		c.logger.Debug("intervals cannot be computed", "err", err)
	}
	h.AllComputedIntervals = computed

	return h
}
