package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(s string) ClockRange {
	return MustParseClockRange(s)
}

func TestParseClockRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClockRange
		wantErr bool
	}{
		{name: "daytime", input: "05:00-22:00", want: ClockRange{TimeOfDay{5, 0}, TimeOfDay{22, 0}}},
		{name: "over midnight", input: "22:00-03:00", want: ClockRange{TimeOfDay{22, 0}, TimeOfDay{3, 0}}},
		{name: "full day", input: "00:00-24:00", want: FullDay},
		{name: "short hours", input: "7:00-9:30", want: ClockRange{TimeOfDay{7, 0}, TimeOfDay{9, 30}}},

		{name: "empty", input: "", wantErr: true},
		{name: "single time", input: "05:00", wantErr: true},
		{name: "zero length", input: "05:00-05:00", wantErr: true},
		{name: "starts at 24:00", input: "24:00-03:00", wantErr: true},
		{name: "bad end", input: "05:00-late", wantErr: true},
		{name: "three parts", input: "05:00-06:00-07:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockRange(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockRangeDuration(t *testing.T) {
	assert.Equal(t, 1020, rng("05:00-22:00").Duration())
	assert.Equal(t, 300, rng("22:00-03:00").Duration())
	assert.Equal(t, 1440, FullDay.Duration())
	assert.Equal(t, 120, rng("22:00-00:00").Duration())
	assert.True(t, FullDay.IsFullDay())
	assert.False(t, rng("05:00-03:00").IsFullDay())
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"05:00-22:00", []string{"05:00-22:00"}},
		{"22:00-03:00", []string{"22:00-24:00", "00:00-03:00"}},
		{"22:00-00:00", []string{"22:00-24:00"}},
		{"00:00-24:00", []string{"00:00-24:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			segs := Decompose(rng(tt.input))
			got := make([]string, len(segs))
			for i, s := range segs {
				got[i] = s.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"disjoint", "07:00-09:30", "16:30-19:00", false},
		{"touching", "05:00-10:00", "10:00-17:00", false},
		{"disjoint over midnight", "05:00-10:00", "19:00-02:00", false},
		{"overlapping", "05:00-17:00", "15:00-17:00", true},
		{"overlapping over midnight", "05:00-17:00", "16:00-02:00", true},
		{"both over midnight", "15:00-02:00", "16:00-03:00", true},
		{"identical", "06:00-07:00", "06:00-07:00", false},
		{"after midnight part", "01:00-02:00", "23:00-01:30", true},
		{"touching at midnight", "20:00-24:00", "00:00-02:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(rng(tt.a), rng(tt.b)))
			assert.Equal(t, tt.want, Overlaps(rng(tt.b), rng(tt.a)), "must be symmetric")
		})
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		name           string
		wider, smaller string
		want           bool
	}{
		{"inside", "05:00-10:00", "06:00-07:00", true},
		{"outside", "06:00-07:00", "05:00-10:00", false},
		{"equal", "06:00-07:00", "06:00-07:00", true},
		{"partly after", "06:00-07:00", "06:30-09:00", false},
		{"partly before", "06:00-07:00", "05:30-06:10", false},
		{"over midnight both", "20:00-02:00", "23:00-01:00", true},
		{"over midnight before midnight", "20:00-02:00", "23:00-23:50", true},
		{"over midnight after midnight", "20:00-02:00", "00:30-01:30", true},
		{"over midnight wider on both ends", "20:00-02:00", "19:00-03:00", false},
		{"over midnight equal", "20:00-02:00", "20:00-02:00", true},
		{"over midnight in the gap", "20:00-02:00", "03:00-05:00", false},
		{"daytime wider, wrapping smaller", "05:00-22:00", "21:00-01:00", false},
		{"full day holds wrapping range", "00:00-24:00", "22:00-03:00", true},
		{"sharing start", "05:00-03:00", "05:00-09:00", true},
		{"sharing end", "05:00-03:00", "22:00-03:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Within(rng(tt.wider), rng(tt.smaller)))
		})
	}
}

func TestValidateRanges(t *testing.T) {
	assert.NoError(t, ValidateRanges([]ClockRange{rng("05:00-10:00"), rng("10:00-12:00")}))
	assert.NoError(t, ValidateRanges(nil))
	assert.Error(t, ValidateRanges([]ClockRange{rng("05:00-10:00"), rng("09:00-12:00")}))
	assert.Error(t, ValidateRanges([]ClockRange{rng("05:00-10:00"), rng("05:00-10:00")}))
	assert.Error(t, ValidateRanges([]ClockRange{rng("22:00-03:00"), rng("02:00-04:00")}))
}
