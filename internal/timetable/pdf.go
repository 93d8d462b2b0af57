package timetable

import (
	"fmt"

	"github.com/Flyrell/transithours/internal/interval"
	"github.com/Flyrell/transithours/internal/schedule"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// Document is what gets printed for one route.
type Document struct {
	RouteName string
	RouteID   string
	Groups    []interval.DayGroup
	// Days is optional; when set, a per-date listing follows the weekly table.
	Days []ServiceDay
}

// RenderPDF generates a printable headway timetable and saves it to the
// given path.
func RenderPDF(doc Document, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, doc.RouteName, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	subtitle := "Headway timetable"
	if doc.RouteID != "" {
		subtitle = fmt.Sprintf("Route %s, headway timetable", doc.RouteID)
	}
	m.AddRow(8,
		text.NewCol(12, subtitle, props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	if len(doc.Groups) == 0 {
		m.AddRow(8, text.NewCol(12, "No scheduled service.", props.Text{Size: 10, Color: &pdfMutedColor}))
	}

	for _, g := range doc.Groups {
		m.AddRow(8,
			text.NewCol(9, schedule.DescribeDays(g.Days), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, schedule.FormatDays(g.Days), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)
		for _, it := range g.Intervals {
			m.AddRow(6,
				text.NewCol(9, "  "+it.Range.String(), props.Text{Size: 9}),
				text.NewCol(3, headwayLabel(it.Minutes), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			)
		}
		m.AddRow(4)
	}

	if len(doc.Days) > 0 {
		m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
		m.AddRow(10,
			text.NewCol(12, "Service dates", props.Text{
				Style: fontstyle.Bold,
				Size:  12,
				Color: &pdfHeaderColor,
			}),
		)
		for _, sd := range doc.Days {
			label := fmt.Sprintf("%s %d, %s", sd.Date.Month(), sd.Date.Day(), sd.Date.Weekday())
			if sd.Holiday {
				label += " (holiday)"
			}
			m.AddRow(5,
				text.NewCol(6, label, props.Text{Size: 8}),
				text.NewCol(6, serviceSpan(sd.Intervals), props.Text{
					Size:  8,
					Align: align.Right,
					Color: &pdfMutedColor,
				}),
			)
		}
	}

	generated, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return generated.Save(outputPath)
}

func headwayLabel(minutes float64) string {
	return fmt.Sprintf("every %s min", interval.FormatMinutes(minutes))
}

// serviceSpan summarises a day as its first start and last end.
func serviceSpan(iv interval.Intervals) string {
	if len(iv) == 0 {
		return "no service"
	}
	first := iv[0].Range
	last := iv[len(iv)-1].Range
	if len(iv) == 1 {
		return first.String()
	}
	return fmt.Sprintf("%s-%s, %d windows", first.From, last.To, len(iv))
}
