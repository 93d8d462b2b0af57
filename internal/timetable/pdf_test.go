package timetable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF_CreatesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "test.pdf")

	groups := testGroups(t, map[string]string{
		"opening_hours":        "Mo-Fr 05:00-22:00; Sa 07:00-23:00",
		"interval":             "00:10",
		"interval:conditional": "5 @ (Mo,Fr 08:00-10:00)",
	})

	err := RenderPDF(Document{RouteName: "Ligne 42", RouteID: "42", Groups: groups}, outPath)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestRenderPDF_WithServiceDates(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "dates.pdf")

	groups := testGroups(t, map[string]string{
		"opening_hours": "Mo-Fr 05:00-22:00; PH 08:00-20:00",
		"interval":      "00:30",
	})
	days, err := Expand(groups, date(2026, 2, 2), date(2026, 2, 8), nil)
	require.NoError(t, err)

	err = RenderPDF(Document{RouteName: "Night bus", Groups: groups, Days: days}, outPath)
	require.NoError(t, err)

	_, err = os.Stat(outPath)
	require.NoError(t, err)
}

func TestRenderPDF_NoService(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "empty.pdf")

	err := RenderPDF(Document{RouteName: "Empty"}, outPath)
	require.NoError(t, err)

	_, err = os.Stat(outPath)
	require.NoError(t, err)
}

func TestServiceSpan(t *testing.T) {
	groups := testGroups(t, map[string]string{
		"opening_hours":        "Mo 05:00-22:00",
		"interval":             "00:10",
		"interval:conditional": "5 @ (Mo 08:00-10:00)",
	})
	require.Len(t, groups, 1)

	assert.Equal(t, "05:00-22:00, 3 windows", serviceSpan(groups[0].Intervals))
	assert.Equal(t, "05:00-08:00", serviceSpan(groups[0].Intervals[:1]))
	assert.Equal(t, "no service", serviceSpan(interval.Intervals{}))
}

func TestHeadwayLabel(t *testing.T) {
	assert.Equal(t, "every 7.5 min", headwayLabel(7.5))
	assert.Equal(t, "every 10 min", headwayLabel(10))
}
