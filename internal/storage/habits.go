package storage

import (
	"fmt"
	"strings"
	"time"

	"neoflow/internal/dates"
)

// LoadHabits reads habits from disk, normalizing legacy records.
func (s *Storage) LoadHabits() (*HabitStore, error) {
	store := HabitStore{Habits: []Habit{}}
	err := s.loadJSONWithRecovery(habitsFile, &store)
	if migrateHabits(&store) {
		if saveErr := s.SaveHabits(&store); saveErr != nil && err == nil {
			err = saveErr
		}
	}
	return &store, err
}

// SaveHabits writes habits to disk.
func (s *Storage) SaveHabits(store *HabitStore) error {
	return s.writeJSONAtomic(habitsFile, store)
}

// AddHabit appends a new habit. An empty ID gets a generated one; a
// caller-supplied ID is kept as-is, uniqueness being the caller's problem.
func (s *Storage) AddHabit(habit Habit) (*Habit, error) {
	habit.Name = strings.TrimSpace(habit.Name)

	if habit.Name == "" {
		return nil, fmt.Errorf("habit name is required")
	}
	if len(habit.Name) > maxHabitNameLen {
		return nil, fmt.Errorf("habit name too long (max %d)", maxHabitNameLen)
	}
	if !validCategory(habit.Category) {
		return nil, fmt.Errorf("invalid category: %s", habit.Category)
	}
	if habit.EnergyReq == "" {
		habit.EnergyReq = EnergyMedium
	}
	if !validEnergyReq(habit.EnergyReq) {
		return nil, fmt.Errorf("invalid energy requirement: %s", habit.EnergyReq)
	}
	for _, d := range habit.Frequency {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday index: %d", d)
		}
	}
	if habit.Frequency == nil {
		habit.Frequency = []int{}
	}

	if strings.TrimSpace(habit.ID) == "" {
		id, err := newID("h")
		if err != nil {
			return nil, err
		}
		habit.ID = id
	}

	store, err := s.LoadHabits()
	if err != nil {
		return nil, err
	}

	store.Habits = append(store.Habits, habit)

	if err := s.SaveHabits(store); err != nil {
		return nil, err
	}

	return &habit, nil
}

// UpdateHabit replaces the habit with a matching ID in place, preserving
// its position. Updating a habit that no longer exists is a no-op.
func (s *Storage) UpdateHabit(habit Habit) error {
	habit.Name = strings.TrimSpace(habit.Name)

	if strings.TrimSpace(habit.ID) == "" {
		return fmt.Errorf("habit id is required")
	}
	if habit.Name == "" {
		return fmt.Errorf("habit name is required")
	}
	if len(habit.Name) > maxHabitNameLen {
		return fmt.Errorf("habit name too long (max %d)", maxHabitNameLen)
	}
	if habit.Frequency == nil {
		habit.Frequency = []int{}
	}

	store, err := s.LoadHabits()
	if err != nil {
		return err
	}

	for i := range store.Habits {
		if store.Habits[i].ID == habit.ID {
			store.Habits[i] = habit
			return s.SaveHabits(store)
		}
	}

	// Habit was deleted underneath the caller; nothing to update.
	return nil
}

// DeleteHabit removes a habit definition only. Ledger and missed entries
// for the habit are left in place, so history survives deletion and
// readers must tolerate entries whose habit no longer exists.
func (s *Storage) DeleteHabit(id string) error {
	store, err := s.LoadHabits()
	if err != nil {
		return err
	}

	for i := range store.Habits {
		if store.Habits[i].ID == id {
			store.Habits = append(store.Habits[:i], store.Habits[i+1:]...)
			return s.SaveHabits(store)
		}
	}

	// Already gone; deleting a missing habit is a no-op.
	return nil
}

// ReorderHabits moves the habit at index from to index to, shifting the
// habits in between. Out-of-range indices are an error.
func (s *Storage) ReorderHabits(from, to int) error {
	store, err := s.LoadHabits()
	if err != nil {
		return err
	}

	n := len(store.Habits)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("reorder index out of range (%d -> %d, %d habits)", from, to, n)
	}
	if from == to {
		return nil
	}

	h := store.Habits[from]
	store.Habits = append(store.Habits[:from], store.Habits[from+1:]...)
	store.Habits = append(store.Habits[:to], append([]Habit{h}, store.Habits[to:]...)...)

	return s.SaveHabits(store)
}

// FindHabit returns the habit with the given ID, or nil.
func FindHabit(store *HabitStore, id string) *Habit {
	for i := range store.Habits {
		if store.Habits[i].ID == id {
			return &store.Habits[i]
		}
	}
	return nil
}

// IsScheduled reports whether the habit is scheduled on the given day.
// A habit with an empty frequency is scheduled on no days.
func IsScheduled(habit Habit, day time.Time) bool {
	idx := dates.WeekdayIndex(day)
	for _, d := range habit.Frequency {
		if d == idx {
			return true
		}
	}
	return false
}

func validCategory(c Category) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

func validEnergyReq(e EnergyReq) bool {
	for _, v := range EnergyReqs {
		if e == v {
			return true
		}
	}
	return false
}
