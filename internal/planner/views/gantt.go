package views

import (
	"time"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
)

// Axis padding and minimum bar width, all in days. Tunable display constants,
// not a contract.
const (
	ganttPadBefore  = 7
	ganttPadAfter   = 14
	ganttMinBarDays = 1
)

// GanttBar is one feature placed on the shared time axis, in day units
// counted from the axis start.
type GanttBar struct {
	Feature     PlacedFeature `json:"feature"`
	OffsetDays  int           `json:"offset_days"`
	WidthDays   int           `json:"width_days"`
	VersionName string        `json:"version_name"`
	Color       string        `json:"color"`
}

// GanttChart is the full time-axis layout of a roadmap.
type GanttChart struct {
	AxisStart string     `json:"axis_start"`
	AxisEnd   string     `json:"axis_end"`
	AxisDays  int        `json:"axis_days"`
	TodayDays int        `json:"today_days"`
	Bars      []GanttBar `json:"bars"`
}

// Gantt lays out every feature carrying both dates on a shared axis spanning
// the earliest start minus a week to the latest end plus two weeks. With no
// dated features the axis falls back to a window around today.
func Gantt(r entity.Roadmap, today time.Time) GanttChart {
	colorByVersion := map[int]string{}
	for vi, v := range r {
		colorByVersion[vi] = v.Color
	}

	type datedFeature struct {
		f          PlacedFeature
		start, end time.Time
	}
	var dated []datedFeature
	for _, f := range Flatten(r) {
		start, err1 := time.Parse(entity.DateLayout, f.StartDate)
		end, err2 := time.Parse(entity.DateLayout, f.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}
		dated = append(dated, datedFeature{f: f, start: start, end: end})
	}

	// Calendar day in the caller's zone, not a 24h boundary on absolute time.
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	var axisStart, axisEnd time.Time
	if len(dated) == 0 {
		axisStart = time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		axisEnd = time.Date(today.Year(), today.Month()+2, 0, 0, 0, 0, 0, time.UTC)
	} else {
		axisStart, axisEnd = dated[0].start, dated[0].end
		for _, d := range dated[1:] {
			if d.start.Before(axisStart) {
				axisStart = d.start
			}
			if d.end.After(axisEnd) {
				axisEnd = d.end
			}
		}
		axisStart = axisStart.AddDate(0, 0, -ganttPadBefore)
		axisEnd = axisEnd.AddDate(0, 0, ganttPadAfter)
	}

	chart := GanttChart{
		AxisStart: axisStart.Format(entity.DateLayout),
		AxisEnd:   axisEnd.Format(entity.DateLayout),
		AxisDays:  daysBetween(axisStart, axisEnd),
		TodayDays: daysBetween(axisStart, today),
		Bars:      []GanttBar{},
	}
	for _, d := range dated {
		width := daysBetween(d.start, d.end)
		if width < ganttMinBarDays {
			width = ganttMinBarDays
		}
		chart.Bars = append(chart.Bars, GanttBar{
			Feature:     d.f,
			OffsetDays:  daysBetween(axisStart, d.start),
			WidthDays:   width,
			VersionName: d.f.VersionName,
			Color:       colorByVersion[d.f.VersionIndex],
		})
	}
	return chart
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
