package hashutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{7}$`)

func TestShortIDFormat(t *testing.T) {
	assert.Regexp(t, hexPattern, ShortID("any-seed-value"))
	assert.Regexp(t, hexPattern, ShortID())
}

func TestShortIDDeterministic(t *testing.T) {
	assert.Equal(t, ShortID("fixed", "seed"), ShortID("fixed", "seed"))
}

func TestShortIDDifferentInputs(t *testing.T) {
	assert.NotEqual(t, ShortID("seed-a"), ShortID("seed-b"))
	assert.NotEqual(t, ShortID("ab", "c"), ShortID("a", "bc"))
}

func TestRouteID(t *testing.T) {
	assert.Regexp(t, hexPattern, RouteID("Ligne 42"))
	assert.Equal(t, RouteID("Ligne 42"), RouteID("  Ligne 42 "))
	assert.NotEqual(t, RouteID("Ligne 42"), RouteID("Ligne 43"))
}
