// Package reports provides daily and weekly report generation for the neoflow app.
// Reports aggregate habit completion, streaks, and progression stats.
package reports

import (
	"time"
)

// DailyReport contains aggregated data for a single day.
type DailyReport struct {
	Date        time.Time    `json:"date"`
	Habits      HabitSummary `json:"habits"`
	Stats       StatsSummary `json:"stats"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// WeeklyReport contains aggregated data for a week.
type WeeklyReport struct {
	StartDate      time.Time      `json:"start_date"`
	EndDate        time.Time      `json:"end_date"`
	Habits         WeeklyHabits   `json:"habits"`
	DailyBreakdown []DailySummary `json:"daily_breakdown"`
	Stats          StatsSummary   `json:"stats"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// StatsSummary mirrors the stored progression aggregate.
type StatsSummary struct {
	XP             int `json:"xp"`
	Level          int `json:"level"`
	TotalCompleted int `json:"total_completed"`
	LongestStreak  int `json:"longest_streak"`
}

// HabitSummary contains habit statistics for a single day.
type HabitSummary struct {
	Habits         []HabitStatus `json:"habits"`
	ScheduledCount int           `json:"scheduled_count"`
	CompletedCount int           `json:"completed_count"`
	CompletionRate float64       `json:"completion_rate"`
}

// HabitStatus represents a habit and its state on one day.
type HabitStatus struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Energy       string `json:"energy"`
	Scheduled    bool   `json:"scheduled"`
	Done         bool   `json:"done"`
	MissedReason string `json:"missed_reason,omitempty"`
	Streak       int    `json:"streak"`
}

// WeeklyHabits contains habit statistics for a week.
type WeeklyHabits struct {
	Habits         []WeeklyHabitStatus `json:"habits"`
	OverallRate    float64             `json:"overall_rate"`
	TotalCompleted int                 `json:"total_completed"`
	TotalExpected  int                 `json:"total_expected"`
}

// WeeklyHabitStatus represents a habit's completion over a week.
type WeeklyHabitStatus struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	DaysCompleted  []bool  `json:"days_completed"`  // 7 bools, Sunday first
	DaysScheduled  []bool  `json:"days_scheduled"`  // 7 bools, Sunday first
	CompletedCount int     `json:"completed_count"` // completions on scheduled days
	ExpectedCount  int     `json:"expected_count"`
	CompletionRate float64 `json:"completion_rate"`
	Streak         int     `json:"streak"`
}

// DailySummary provides a quick overview of a single day within a week.
type DailySummary struct {
	Date           string `json:"date"`
	DayOfWeek      string `json:"day_of_week"`
	HabitsComplete int    `json:"habits_complete"`
	HabitsExpected int    `json:"habits_expected"`
	MissedLogged   int    `json:"missed_logged"`
}
