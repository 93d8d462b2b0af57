package interval

import "errors"

var (
	// ErrUnparseable is returned for an interval or interval:conditional
	// value that cannot be read.
	ErrUnparseable = errors.New("unparseable interval")
	// ErrInvalidHours is returned for opening hours that cannot be read.
	ErrInvalidHours = errors.New("invalid opening hours")
	// ErrNotCovered is returned when a conditional range is not contained
	// in the opening hours of its day.
	ErrNotCovered = errors.New("opening hours do not cover conditional interval")
	// ErrNotExclusive is returned when two conditional ranges of the same
	// day overlap.
	ErrNotExclusive = errors.New("conditional intervals are not exclusive")
)
