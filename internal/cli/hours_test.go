package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execHours(t *testing.T, conv *interval.Converter, tags map[string]string, output string) (string, error) {
	t.Helper()
	stdout := new(bytes.Buffer)
	cmd := hoursCmd
	cmd.SetOut(stdout)

	err := runHours(cmd, conv, tags, output)
	return stdout.String(), err
}

func TestHoursJSON(t *testing.T) {
	out, err := execHours(t, interval.NewConverter(), map[string]string{
		"opening_hours":        "Mo-Fr 05:00-22:00",
		"interval":             "00:30",
		"interval:conditional": "00:10 @ (Mo-Fr 07:00-09:30)",
	}, "json")

	require.NoError(t, err)
	assert.Contains(t, out, `"defaultInterval": 30`)
	assert.Contains(t, out, `"09:30-22:00": 30`)
	assert.Contains(t, out, `"otherIntervals": [`)
}

func TestHoursJSONNoTags(t *testing.T) {
	out, err := execHours(t, interval.NewConverter(), map[string]string{}, "json")

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"opens": "unset",
		"defaultInterval": "unset",
		"otherIntervals": "unset",
		"otherIntervalsByDays": "unset",
		"allComputedIntervals": "unset"
	}`, out)
}

func TestHoursYAML(t *testing.T) {
	out, err := execHours(t, interval.NewConverter(), map[string]string{
		"opening_hours": "what ?",
		"interval":      "00:30",
	}, "yaml")

	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "invalid", decoded["opens"])
	assert.Equal(t, 30, decoded["defaultInterval"])
	assert.Equal(t, "invalid", decoded["allComputedIntervals"])
}

func TestHoursUnknownOutput(t *testing.T) {
	_, err := execHours(t, interval.NewConverter(), nil, "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestHoursVerboseLogging(t *testing.T) {
	logs := new(bytes.Buffer)
	conv := interval.NewConverter(interval.WithLogger(newLogger(logs, true)))

	_, err := execHours(t, conv, map[string]string{"interval": "soon"}, "json")

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "interval unreadable")
}

func TestHoursQuietLogging(t *testing.T) {
	logs := new(bytes.Buffer)
	conv := interval.NewConverter(interval.WithLogger(newLogger(logs, false)))

	_, err := execHours(t, conv, map[string]string{"interval": "soon"}, "json")

	require.NoError(t, err)
	assert.Empty(t, logs.String())
}

func TestNewLoggerDiscard(t *testing.T) {
	assert.NotNil(t, newLogger(io.Discard, false))
}
