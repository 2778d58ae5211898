package reports

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"neoflow/internal/storage"
)

// newTestGenerator builds a generator over an isolated store with a frozen
// clock and no seed habits.
func newTestGenerator(t *testing.T) (*Generator, *storage.Storage) {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	if err := store.SaveHabits(&storage.HabitStore{Habits: []storage.Habit{}}); err != nil {
		t.Fatalf("clear seed habits: %v", err)
	}
	// 2025-12-17 is a Wednesday.
	store.SetNowFunc(func() time.Time {
		return time.Date(2025, 12, 17, 10, 0, 0, 0, time.Local)
	})
	return NewGenerator(store), store
}

func addHabit(t *testing.T, store *storage.Storage, h storage.Habit) storage.Habit {
	t.Helper()
	added, err := store.AddHabit(h)
	if err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	return *added
}

func TestGenerateDaily(t *testing.T) {
	gen, store := newTestGenerator(t)
	everyday := []int{0, 1, 2, 3, 4, 5, 6}
	run := addHabit(t, store, storage.Habit{Name: "Run", Category: storage.CategoryHealth, Frequency: everyday})
	gym := addHabit(t, store, storage.Habit{Name: "Gym", Category: storage.CategoryHealth, Frequency: everyday})
	addHabit(t, store, storage.Habit{Name: "Weekend Hike", Category: storage.CategoryHealth, Frequency: []int{0, 6}})

	today := store.Today()
	if _, err := store.ToggleCompletion(run.ID, today); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if err := store.LogMissed(gym.ID, today, "closed"); err != nil {
		t.Fatalf("LogMissed() error = %v", err)
	}

	report, err := gen.GenerateDaily(store.Now())
	if err != nil {
		t.Fatalf("GenerateDaily() error = %v", err)
	}

	if report.Habits.ScheduledCount != 2 {
		t.Errorf("ScheduledCount = %d, want 2 (hike unscheduled on Wednesday)", report.Habits.ScheduledCount)
	}
	if report.Habits.CompletedCount != 1 {
		t.Errorf("CompletedCount = %d, want 1", report.Habits.CompletedCount)
	}
	if report.Habits.CompletionRate != 50 {
		t.Errorf("CompletionRate = %.1f, want 50", report.Habits.CompletionRate)
	}

	byID := map[string]HabitStatus{}
	for _, h := range report.Habits.Habits {
		byID[h.ID] = h
	}
	if !byID[run.ID].Done || byID[run.ID].Streak != 1 {
		t.Errorf("run status = %+v, want done with streak 1", byID[run.ID])
	}
	if byID[gym.ID].MissedReason != "closed" {
		t.Errorf("gym MissedReason = %q, want %q", byID[gym.ID].MissedReason, "closed")
	}

	if report.Stats.XP != 10 || report.Stats.TotalCompleted != 1 {
		t.Errorf("stats = %+v, want 10 xp / 1 completion", report.Stats)
	}
}

func TestGenerateWeekly(t *testing.T) {
	gen, store := newTestGenerator(t)
	habit := addHabit(t, store, storage.Habit{Name: "Deep Work", Category: storage.CategoryWork, Frequency: []int{1, 2, 3, 4, 5}})

	// Complete Monday through Wednesday of the current week.
	for _, date := range []string{"2025-12-15", "2025-12-16", "2025-12-17"} {
		if _, err := store.ToggleCompletion(habit.ID, date); err != nil {
			t.Fatalf("ToggleCompletion(%s) error = %v", date, err)
		}
	}

	report, err := gen.GenerateWeekly(store.Now())
	if err != nil {
		t.Fatalf("GenerateWeekly() error = %v", err)
	}

	// Week of Sunday 2025-12-14.
	if got := report.StartDate.Format("2006-01-02"); got != "2025-12-14" {
		t.Errorf("StartDate = %s, want 2025-12-14", got)
	}

	if len(report.Habits.Habits) != 1 {
		t.Fatalf("len(habits) = %d, want 1", len(report.Habits.Habits))
	}
	h := report.Habits.Habits[0]
	if h.ExpectedCount != 5 {
		t.Errorf("ExpectedCount = %d, want 5 weekdays", h.ExpectedCount)
	}
	if h.CompletedCount != 3 {
		t.Errorf("CompletedCount = %d, want 3", h.CompletedCount)
	}
	if h.CompletionRate != 60 {
		t.Errorf("CompletionRate = %.1f, want 60", h.CompletionRate)
	}
	// Sunday-first grid: Mon(1), Tue(2), Wed(3) done.
	wantDays := []bool{false, true, true, true, false, false, false}
	for i, want := range wantDays {
		if h.DaysCompleted[i] != want {
			t.Errorf("DaysCompleted[%d] = %v, want %v", i, h.DaysCompleted[i], want)
		}
	}

	if len(report.DailyBreakdown) != 7 {
		t.Fatalf("len(DailyBreakdown) = %d, want 7", len(report.DailyBreakdown))
	}
	wed := report.DailyBreakdown[3]
	if wed.HabitsComplete != 1 || wed.HabitsExpected != 1 {
		t.Errorf("Wednesday breakdown = %+v, want 1/1", wed)
	}
}

func TestFormatDailyMarkdown(t *testing.T) {
	gen, store := newTestGenerator(t)
	habit := addHabit(t, store, storage.Habit{Name: "Meditation", Category: storage.CategoryMind, Frequency: []int{0, 1, 2, 3, 4, 5, 6}})
	if _, err := store.ToggleCompletion(habit.ID, store.Today()); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}

	report, err := gen.GenerateDaily(store.Now())
	if err != nil {
		t.Fatalf("GenerateDaily() error = %v", err)
	}

	md := FormatDailyMarkdown(report)
	for _, want := range []string{
		"# Daily Report:",
		"- [x] Meditation (Mind, Medium)",
		"streak 1",
		"Level 1 (10 XP)",
		"1 total completions",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestFormatWeeklyMarkdown(t *testing.T) {
	gen, store := newTestGenerator(t)
	addHabit(t, store, storage.Habit{Name: "Deep Work", Category: storage.CategoryWork, Frequency: []int{1, 2, 3, 4, 5}})

	report, err := gen.GenerateWeekly(store.Now())
	if err != nil {
		t.Fatalf("GenerateWeekly() error = %v", err)
	}

	md := FormatWeeklyMarkdown(report)
	for _, want := range []string{
		"# Weekly Report:",
		"| Deep Work |",
		"## Day by day",
		"Best streak:",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestFormatDailyJSON(t *testing.T) {
	gen, store := newTestGenerator(t)
	addHabit(t, store, storage.Habit{Name: "Run", Category: storage.CategoryHealth, Frequency: []int{3}})

	report, err := gen.GenerateDaily(store.Now())
	if err != nil {
		t.Fatalf("GenerateDaily() error = %v", err)
	}

	data, err := FormatDailyJSON(report)
	if err != nil {
		t.Fatalf("FormatDailyJSON() error = %v", err)
	}

	var decoded DailyReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Habits.ScheduledCount != 1 {
		t.Errorf("decoded ScheduledCount = %d, want 1", decoded.Habits.ScheduledCount)
	}
}
