package storage

import (
	"time"

	"neoflow/internal/dates"
)

// Streak returns the habit's current consecutive-day run as of today.
func (s *Storage) Streak(history History, habitID string) int {
	return StreakAt(history, habitID, s.Now())
}

// StreakAt computes the streak anchored at the given time. The anchor is
// the target day if its entry is true, otherwise the previous day if that
// entry is true, otherwise the streak is 0. From the anchor it walks back
// counting consecutive true days. Scheduling plays no part: only true
// ledger entries extend a streak, and a false or absent entry breaks it.
func StreakAt(history History, habitID string, at time.Time) int {
	day := dates.StartOfDay(at)

	if !doneOn(history, habitID, day) {
		day = dates.AddDays(day, -1)
		if !doneOn(history, habitID, day) {
			return 0
		}
	}

	streak := 0
	for doneOn(history, habitID, day) {
		streak++
		day = dates.AddDays(day, -1)
	}
	return streak
}

// WeekRow returns the habit's completion for the last 7 days, oldest
// first, ending at today.
func (s *Storage) WeekRow(history History, habitID string) []bool {
	week := make([]bool, 7)
	today := dates.StartOfDay(s.Now())
	for i := 0; i < 7; i++ {
		week[i] = doneOn(history, habitID, dates.AddDays(today, i-6))
	}
	return week
}

func doneOn(history History, habitID string, day time.Time) bool {
	return GetDay(history, dates.Format(day))[habitID]
}
