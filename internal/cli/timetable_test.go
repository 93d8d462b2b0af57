package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execTimetable(tags map[string]string, p period, output string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := timetableCmd
	cmd.SetOut(stdout)

	err := runTimetable(cmd, interval.NewConverter(), tags, p, output)
	return stdout.String(), err
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimetableText(t *testing.T) {
	out, err := execTimetable(weekdayRoute.Tags, period{
		from:     day(2026, 2, 2),
		to:       day(2026, 2, 8),
		holidays: []time.Time{day(2026, 2, 4)},
	}, "text")

	require.NoError(t, err)
	assert.Contains(t, out, "2026-02-02 Mo  05:00-07:00 /30, 07:00-09:30 /10")
	assert.NotContains(t, out, "2026-02-04")
	assert.NotContains(t, out, "2026-02-07")
	assert.Contains(t, out, "2026-02-06 Fr")
}

func TestTimetableHolidayService(t *testing.T) {
	out, err := execTimetable(map[string]string{
		"opening_hours": "Mo-Fr 05:00-22:00; PH 08:00-20:00",
		"interval":      "20",
	}, period{
		from:     day(2026, 2, 2),
		to:       day(2026, 2, 4),
		holidays: []time.Time{day(2026, 2, 4)},
	}, "text")

	require.NoError(t, err)
	assert.Contains(t, out, "2026-02-04 PH  08:00-20:00 /20")
}

func TestTimetableJSON(t *testing.T) {
	out, err := execTimetable(nightRoute.Tags, period{from: day(2026, 2, 1), to: day(2026, 2, 28)}, "json")
	require.NoError(t, err)

	var days []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	assert.Len(t, days, 8) // 4 Fridays and 4 Saturdays
	assert.Equal(t, map[string]any{"23:00-03:00": float64(60)}, days[0]["intervals"])
}

func TestTimetableNoService(t *testing.T) {
	out, err := execTimetable(map[string]string{}, period{from: day(2026, 2, 1), to: day(2026, 2, 2)}, "text")

	require.NoError(t, err)
	assert.Contains(t, out, "No service in this period.")
}

func TestTimetableInvalid(t *testing.T) {
	_, err := execTimetable(brokenRoute.Tags, period{from: day(2026, 2, 1), to: day(2026, 2, 2)}, "text")
	assert.ErrorIs(t, err, interval.ErrInvalidHours)
}

func TestReadPeriod(t *testing.T) {
	newCmd := func(args ...string) *cobra.Command {
		cmd := LeafCommand{
			Use:        "test",
			StrFlags:   []StringFlag{{Name: "from"}, {Name: "to"}},
			SliceFlags: periodSliceFlags,
			RunE:       func(cmd *cobra.Command, args []string) error { return nil },
		}.Build()
		require.NoError(t, cmd.ParseFlags(args))
		return cmd
	}

	p, ok, err := readPeriod(newCmd("--from", "2026-02-01", "--to", "2026-02-28", "--holiday", "2026-02-16"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, day(2026, 2, 1), p.from)
	assert.Equal(t, day(2026, 2, 28), p.to)
	assert.Equal(t, []time.Time{day(2026, 2, 16)}, p.holidays)

	_, ok, err = readPeriod(newCmd())
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = readPeriod(newCmd("--from", "2026-02-01"))
	assert.Error(t, err)

	_, _, err = readPeriod(newCmd("--from", "2026-02-01", "--to", "2026-02-28", "--holiday", "someday"))
	assert.Error(t, err)
}
