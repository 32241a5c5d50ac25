// Package stats derives display statistics from the durable study
// history. Everything here is a pure function of (record, date) so the
// dashboard can recompute on every render without hidden state.
package stats

import (
	"time"

	"github.com/abhisek/versemind/internal/progress"
)

// windowDays is the rolling activity window shown on the dashboard.
const windowDays = 7

// ChartPoint is one bar of the weekly activity chart.
type ChartPoint struct {
	Label string // short weekday name
	Value int    // verses mastered that day
}

// Stats is the aggregate view backing the dashboard and the stats
// command.
type Stats struct {
	Streak     progress.StreakRecord
	TodayCount int
	WeekCount  int
	Chart      []ChartPoint // chronological, oldest first
}

// Compute aggregates the rolling window ending at today. Dates missing
// from the history contribute zero-valued bars. The streak record is
// passed through unchanged.
func Compute(rec *progress.Record, today time.Time) Stats {
	byDate := make(map[string]int, len(rec.History))
	for _, dl := range rec.History {
		byDate[dl.Date] = dl.MasteredCount
	}

	st := Stats{
		Streak:     rec.Streak,
		TodayCount: byDate[today.Format(progress.DateLayout)],
	}

	// Window assembled most-recent-first for the countdown loop, then
	// reversed so the chart reads left to right in time.
	chart := make([]ChartPoint, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := today.AddDate(0, 0, -i)
		count := byDate[day.Format(progress.DateLayout)]
		st.WeekCount += count
		chart = append(chart, ChartPoint{
			Label: day.Format("Mon"),
			Value: count,
		})
	}
	for i, j := 0, len(chart)-1; i < j; i, j = i+1, j-1 {
		chart[i], chart[j] = chart[j], chart[i]
	}
	st.Chart = chart
	return st
}
