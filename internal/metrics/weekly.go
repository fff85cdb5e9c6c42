package metrics

import (
	"time"

	"github.com/konnichiwabon/inventory/internal/models"
)

// weeklyWindowCount is the fixed number of trailing weekly windows in
// the creation trend series.
const weeklyWindowCount = 12

// WeekPoint is one point in the weekly creation series: the window's
// start date rendered as MM/DD plus the number of products created
// inside the window.
type WeekPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WeeklySeries buckets product creation timestamps into the trailing
// twelve 7-day windows, oldest first, the current week last.
//
// Window i (i = 11..0) starts at the beginning of the day now-7i days
// and ends at the last instant of the sixth day after that. Start and
// end are truncated independently before any membership test, so the
// windows tile the full range: each day belongs to exactly one window,
// and a timestamp on a window boundary is counted exactly once.
func WeeklySeries(products []models.Product, now time.Time) []WeekPoint {
	series := make([]WeekPoint, 0, weeklyWindowCount)

	for i := weeklyWindowCount - 1; i >= 0; i-- {
		start := startOfDay(now.AddDate(0, 0, -7*i))
		end := endOfDay(start.AddDate(0, 0, 6))

		count := 0
		for _, p := range products {
			if !p.CreatedAt.Before(start) && !p.CreatedAt.After(end) {
				count++
			}
		}

		series = append(series, WeekPoint{
			Label: start.Format("01/02"),
			Count: count,
		})
	}

	return series
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
