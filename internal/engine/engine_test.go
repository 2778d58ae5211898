package engine

import (
	"testing"

	"neoflow/internal/storage"
)

func testHabits() []storage.Habit {
	return []storage.Habit{
		{ID: "h1", Name: "Morning Hydration", Category: storage.CategoryHealth, EnergyReq: storage.EnergyVeryEasy},
		{ID: "h2", Name: "Deep Work Session", Category: storage.CategoryWork, EnergyReq: storage.EnergyHard},
		{ID: "h3", Name: "Meditation", Category: storage.CategoryMind, EnergyReq: storage.EnergyMedium},
		{ID: "h4", Name: "evening stretch", Category: storage.CategoryHealth, EnergyReq: storage.EnergyEasy},
	}
}

func ids(habits []storage.Habit) []string {
	out := make([]string, len(habits))
	for i, h := range habits {
		out[i] = h.ID
	}
	return out
}

func assertOrder(t *testing.T, got []storage.Habit, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		state storage.EnergyState
		want  []string
	}{
		{storage.StateCritical, []string{"h1"}},
		{storage.StateTired, []string{"h1", "h4"}},
		{storage.StateNormal, []string{"h1", "h2", "h3", "h4"}},
		{storage.StateEnergized, []string{"h1", "h2", "h3", "h4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assertOrder(t, Filter(testHabits(), tt.state), tt.want...)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	habits := testHabits()
	Filter(habits, storage.StateCritical)
	assertOrder(t, habits, "h1", "h2", "h3", "h4")
}

func TestSort(t *testing.T) {
	tests := []struct {
		name    string
		mode    SortMode
		state   storage.EnergyState
		streaks map[string]int
		want    []string
	}{
		{
			name:  "default keeps repository order",
			mode:  SortDefault,
			state: storage.StateNormal,
			want:  []string{"h1", "h2", "h3", "h4"},
		},
		{
			name:  "default energized puts hardest first",
			mode:  SortDefault,
			state: storage.StateEnergized,
			want:  []string{"h2", "h3", "h4", "h1"},
		},
		{
			name:  "name ascending case-insensitive",
			mode:  SortName,
			state: storage.StateNormal,
			want:  []string{"h2", "h4", "h3", "h1"},
		},
		{
			name:  "category ascending",
			mode:  SortCategory,
			state: storage.StateNormal,
			want:  []string{"h1", "h4", "h3", "h2"},
		},
		{
			name:    "streak descending",
			mode:    SortStreak,
			state:   storage.StateNormal,
			streaks: map[string]int{"h1": 2, "h2": 9, "h3": 5, "h4": 2},
			want:    []string{"h2", "h3", "h1", "h4"},
		},
		{
			name:  "energy descending",
			mode:  SortEnergy,
			state: storage.StateNormal,
			want:  []string{"h2", "h3", "h4", "h1"},
		},
		{
			name:  "energy sort ignores energized flip",
			mode:  SortEnergy,
			state: storage.StateEnergized,
			want:  []string{"h2", "h3", "h4", "h1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertOrder(t, Sort(testHabits(), tt.mode, tt.state, tt.streaks), tt.want...)
		})
	}
}

func TestSort_StableOnTies(t *testing.T) {
	habits := []storage.Habit{
		{ID: "a", Name: "Same", EnergyReq: storage.EnergyMedium},
		{ID: "b", Name: "Same", EnergyReq: storage.EnergyMedium},
		{ID: "c", Name: "Same", EnergyReq: storage.EnergyMedium},
	}

	for _, mode := range SortModes {
		got := Sort(habits, mode, storage.StateEnergized, map[string]int{})
		assertOrder(t, got, "a", "b", "c")
	}
}

func TestSort_MissingStreaksCountAsZero(t *testing.T) {
	got := Sort(testHabits(), SortStreak, storage.StateNormal, map[string]int{"h3": 1})
	assertOrder(t, got, "h3", "h1", "h2", "h4")
}

func TestView(t *testing.T) {
	// Tired hides Medium and Hard habits; energy sort orders the rest.
	got := View(testHabits(), storage.StateTired, SortEnergy, nil)
	assertOrder(t, got, "h4", "h1")
}

func TestCanReorder(t *testing.T) {
	if !CanReorder(SortDefault) {
		t.Error("CanReorder(default) = false, want true")
	}
	for _, mode := range []SortMode{SortName, SortCategory, SortStreak, SortEnergy} {
		if CanReorder(mode) {
			t.Errorf("CanReorder(%s) = true, want false", mode)
		}
	}
}

func TestDifficultyScore(t *testing.T) {
	tests := []struct {
		req  storage.EnergyReq
		want int
	}{
		{storage.EnergyHard, 4},
		{storage.EnergyMedium, 3},
		{storage.EnergyEasy, 2},
		{storage.EnergyVeryEasy, 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := DifficultyScore(tt.req); got != tt.want {
			t.Errorf("DifficultyScore(%q) = %d, want %d", tt.req, got, tt.want)
		}
	}
}
