package gtfs

import (
	"io"

	"github.com/gocarina/gocsv"
)

// RouteFrequencies are the rows of one route.
type RouteFrequencies struct {
	RouteID string         `json:"route_id"`
	Rows    []FrequencyRow `json:"frequencies"`
}

// Frequency is a frequencies.txt style record keyed by route instead of
// trip, with the service days inline.
type Frequency struct {
	RouteID        string `csv:"route_id"`
	Monday         int    `csv:"monday"`
	Tuesday        int    `csv:"tuesday"`
	Wednesday      int    `csv:"wednesday"`
	Thursday       int    `csv:"thursday"`
	Friday         int    `csv:"friday"`
	Saturday       int    `csv:"saturday"`
	Sunday         int    `csv:"sunday"`
	StartTime      string `csv:"start_time"`
	EndTime        string `csv:"end_time"`
	HeadwaySeconds int    `csv:"headway_secs"`
}

// Records converts the rows of every route into CSV records.
func Records(routes ...RouteFrequencies) []*Frequency {
	records := []*Frequency{}
	for _, rf := range routes {
		for _, r := range rf.Rows {
			records = append(records, &Frequency{
				RouteID:        rf.RouteID,
				Monday:         flag(r.Monday),
				Tuesday:        flag(r.Tuesday),
				Wednesday:      flag(r.Wednesday),
				Thursday:       flag(r.Thursday),
				Friday:         flag(r.Friday),
				Saturday:       flag(r.Saturday),
				Sunday:         flag(r.Sunday),
				StartTime:      r.StartTime,
				EndTime:        r.EndTime,
				HeadwaySeconds: r.Headway,
			})
		}
	}
	return records
}

// WriteCSV writes the rows of every route, header first.
func WriteCSV(w io.Writer, routes ...RouteFrequencies) error {
	return gocsv.Marshal(Records(routes...), w)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
