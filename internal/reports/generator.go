// Package reports provides daily and weekly report generation for the neoflow app.
package reports

import (
	"time"

	"neoflow/internal/dates"
	"neoflow/internal/storage"
)

// Generator creates reports from storage data.
type Generator struct {
	store *storage.Storage
}

// NewGenerator creates a new report generator.
func NewGenerator(store *storage.Storage) *Generator {
	return &Generator{store: store}
}

// GenerateDaily generates a report for a specific date.
func (g *Generator) GenerateDaily(date time.Time) (*DailyReport, error) {
	date = dates.StartOfDay(date)

	habits, err := g.habitSummary(date)
	if err != nil {
		return nil, err
	}

	stats, err := g.statsSummary()
	if err != nil {
		return nil, err
	}

	return &DailyReport{
		Date:        date,
		Habits:      habits,
		Stats:       stats,
		GeneratedAt: time.Now(),
	}, nil
}

// GenerateWeekly generates a report for the week containing the given date.
func (g *Generator) GenerateWeekly(startDate time.Time) (*WeeklyReport, error) {
	// Align to start of week (Sunday).
	startDate = startOfWeekSunday(startDate)
	endDate := dates.AddDays(startDate, 7)

	weeklyHabits, err := g.weeklyHabits(startDate)
	if err != nil {
		return nil, err
	}

	breakdown, err := g.dailyBreakdown(startDate)
	if err != nil {
		return nil, err
	}

	stats, err := g.statsSummary()
	if err != nil {
		return nil, err
	}

	return &WeeklyReport{
		StartDate:      startDate,
		EndDate:        endDate.Add(-time.Nanosecond), // End of last day
		Habits:         weeklyHabits,
		DailyBreakdown: breakdown,
		Stats:          stats,
		GeneratedAt:    time.Now(),
	}, nil
}

// habitSummary returns per-habit state for a specific date.
func (g *Generator) habitSummary(date time.Time) (HabitSummary, error) {
	habitStore, err := g.store.LoadHabits()
	if err != nil {
		return HabitSummary{}, err
	}
	history, err := g.store.LoadHistory()
	if err != nil {
		return HabitSummary{}, err
	}
	missed, err := g.store.LoadMissed()
	if err != nil {
		return HabitSummary{}, err
	}

	dateStr := dates.Format(date)
	day := storage.GetDay(history, dateStr)

	var statuses []HabitStatus
	scheduled := 0
	completed := 0

	for _, habit := range habitStore.Habits {
		isScheduled := storage.IsScheduled(habit, date)
		done := day[habit.ID]
		reason, _ := storage.MissedReason(missed, dateStr, habit.ID)

		if isScheduled {
			scheduled++
		}
		if done {
			completed++
		}

		statuses = append(statuses, HabitStatus{
			ID:           habit.ID,
			Name:         habit.Name,
			Category:     string(habit.Category),
			Energy:       string(habit.EnergyReq),
			Scheduled:    isScheduled,
			Done:         done,
			MissedReason: reason,
			Streak:       storage.StreakAt(history, habit.ID, date),
		})
	}

	rate := 0.0
	if scheduled > 0 {
		rate = float64(completed) / float64(scheduled) * 100
	}

	return HabitSummary{
		Habits:         statuses,
		ScheduledCount: scheduled,
		CompletedCount: completed,
		CompletionRate: rate,
	}, nil
}

// weeklyHabits returns per-habit completion grids for a week.
func (g *Generator) weeklyHabits(start time.Time) (WeeklyHabits, error) {
	habitStore, err := g.store.LoadHabits()
	if err != nil {
		return WeeklyHabits{}, err
	}
	history, err := g.store.LoadHistory()
	if err != nil {
		return WeeklyHabits{}, err
	}

	var statuses []WeeklyHabitStatus
	totalCompleted := 0
	totalExpected := 0
	weekEnd := dates.AddDays(start, 6)

	for _, habit := range habitStore.Habits {
		daysCompleted := make([]bool, 7)
		daysScheduled := make([]bool, 7)
		expected := 0
		completed := 0

		for i := 0; i < 7; i++ {
			day := dates.AddDays(start, i)
			daysScheduled[i] = storage.IsScheduled(habit, day)
			daysCompleted[i] = storage.GetDay(history, dates.Format(day))[habit.ID]
			if daysScheduled[i] {
				expected++
				if daysCompleted[i] {
					completed++
				}
			}
		}

		totalExpected += expected
		totalCompleted += completed

		rate := 0.0
		if expected > 0 {
			rate = float64(completed) / float64(expected) * 100
		}

		statuses = append(statuses, WeeklyHabitStatus{
			ID:             habit.ID,
			Name:           habit.Name,
			Category:       string(habit.Category),
			DaysCompleted:  daysCompleted,
			DaysScheduled:  daysScheduled,
			CompletedCount: completed,
			ExpectedCount:  expected,
			CompletionRate: rate,
			Streak:         storage.StreakAt(history, habit.ID, weekEnd),
		})
	}

	overallRate := 0.0
	if totalExpected > 0 {
		overallRate = float64(totalCompleted) / float64(totalExpected) * 100
	}

	return WeeklyHabits{
		Habits:         statuses,
		OverallRate:    overallRate,
		TotalCompleted: totalCompleted,
		TotalExpected:  totalExpected,
	}, nil
}

// dailyBreakdown returns a per-day overview for a week.
func (g *Generator) dailyBreakdown(start time.Time) ([]DailySummary, error) {
	habitStore, err := g.store.LoadHabits()
	if err != nil {
		return nil, err
	}
	history, err := g.store.LoadHistory()
	if err != nil {
		return nil, err
	}
	missed, err := g.store.LoadMissed()
	if err != nil {
		return nil, err
	}

	breakdown := make([]DailySummary, 0, 7)
	for i := 0; i < 7; i++ {
		day := dates.AddDays(start, i)
		dateStr := dates.Format(day)
		entries := storage.GetDay(history, dateStr)

		expected := 0
		complete := 0
		for _, habit := range habitStore.Habits {
			if storage.IsScheduled(habit, day) {
				expected++
				if entries[habit.ID] {
					complete++
				}
			}
		}

		breakdown = append(breakdown, DailySummary{
			Date:           dateStr,
			DayOfWeek:      day.Format("Mon"),
			HabitsComplete: complete,
			HabitsExpected: expected,
			MissedLogged:   len(missed[dateStr]),
		})
	}

	return breakdown, nil
}

func (g *Generator) statsSummary() (StatsSummary, error) {
	stats, err := g.store.LoadStats()
	if err != nil {
		return StatsSummary{}, err
	}
	return StatsSummary{
		XP:             stats.XP,
		Level:          stats.Level,
		TotalCompleted: stats.TotalCompleted,
		LongestStreak:  stats.LongestStreak,
	}, nil
}

// startOfWeekSunday returns the start of the week (Sunday).
func startOfWeekSunday(t time.Time) time.Time {
	t = dates.StartOfDay(t)
	return dates.AddDays(t, -dates.WeekdayIndex(t))
}
