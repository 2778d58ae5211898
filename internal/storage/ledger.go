package storage

import (
	"fmt"
	"strings"

	"neoflow/internal/dates"
)

// LoadHistory reads the completion ledger from disk.
func (s *Storage) LoadHistory() (History, error) {
	history := History{}
	err := s.loadJSONWithRecovery(historyFile, &history)
	if history == nil {
		history = History{}
	}
	return history, err
}

// SaveHistory writes the completion ledger to disk.
func (s *Storage) SaveHistory(history History) error {
	return s.writeJSONAtomic(historyFile, history)
}

// LoadMissed reads the missed-reason log from disk.
func (s *Storage) LoadMissed() (MissedLog, error) {
	missed := MissedLog{}
	err := s.loadJSONWithRecovery(missedFile, &missed)
	if missed == nil {
		missed = MissedLog{}
	}
	return missed, err
}

// SaveMissed writes the missed-reason log to disk.
func (s *Storage) SaveMissed(missed MissedLog) error {
	return s.writeJSONAtomic(missedFile, missed)
}

// GetDay returns the ledger slice for a date. Absent dates yield an empty
// map; mutating the result does not write anything back.
func GetDay(history History, date string) DayLog {
	if day, ok := history[date]; ok && day != nil {
		return day
	}
	return DayLog{}
}

// MissedReason returns the recorded reason for (date, habit), if any.
func MissedReason(missed MissedLog, date, habitID string) (string, bool) {
	if day, ok := missed[date]; ok {
		reason, ok := day[habitID]
		return reason, ok
	}
	return "", false
}

// ToggleCompletion flips the ledger entry for (habitID, date). If a missed
// reason is recorded for the pair it is cleared first and the entry flips
// from the forced false, so the toggle lands on true. Toggling back to
// false never restores a reason.
//
// The habit ID is not validated against the habit collection: habits can
// be deleted after history exists, and the ledger accepts entries for
// unknown ids.
//
// The returned ToggleResult reports the new state; the all-for-today
// variants fire only on the toggle that newly completes every habit
// scheduled for the current day.
func (s *Storage) ToggleCompletion(habitID, date string) (ToggleResult, error) {
	habitID = strings.TrimSpace(habitID)
	if habitID == "" {
		return ToggleUnchecked, fmt.Errorf("habit id is required")
	}
	if _, err := dates.Parse(date); err != nil {
		return ToggleUnchecked, err
	}

	habits, err := s.LoadHabits()
	if err != nil {
		return ToggleUnchecked, err
	}
	history, err := s.LoadHistory()
	if err != nil {
		return ToggleUnchecked, err
	}
	missed, err := s.LoadMissed()
	if err != nil {
		return ToggleUnchecked, err
	}

	wasAllDone := s.allScheduledDoneToday(habits, history)

	// A recorded miss pins the entry to false. Toggling clears the reason
	// and flips from that false, landing on true.
	missedChanged := false
	if day, ok := missed[date]; ok {
		if _, ok := day[habitID]; ok {
			delete(day, habitID)
			if len(day) == 0 {
				delete(missed, date)
			}
			history = setEntry(history, date, habitID, false)
			missedChanged = true
		}
	}

	newVal := !GetDay(history, date)[habitID]
	history = setEntry(history, date, habitID, newVal)

	if missedChanged {
		if err := s.SaveMissed(missed); err != nil {
			return ToggleUnchecked, err
		}
	}
	if err := s.SaveHistory(history); err != nil {
		return ToggleUnchecked, err
	}
	if err := s.recomputeStats(habits, history); err != nil {
		return ToggleUnchecked, err
	}

	if !newVal {
		return ToggleUnchecked, nil
	}
	if !wasAllDone && s.allScheduledDoneToday(habits, history) {
		journal, err := s.LoadJournal()
		if err != nil {
			return ToggleCompletedAllForToday, err
		}
		if !HasEntryOn(journal, s.Today()) {
			return ToggleCompletedAllAndPromptJournal, nil
		}
		return ToggleCompletedAllForToday, nil
	}
	return ToggleCompleted, nil
}

// LogMissed records a reason for skipping a habit on a date, forcing the
// ledger entry for the pair to false.
func (s *Storage) LogMissed(habitID, date, reason string) error {
	habitID = strings.TrimSpace(habitID)
	reason = strings.TrimSpace(reason)
	if habitID == "" {
		return fmt.Errorf("habit id is required")
	}
	if _, err := dates.Parse(date); err != nil {
		return err
	}
	if reason == "" {
		return fmt.Errorf("reason is required")
	}
	if len(reason) > maxReasonLen {
		return fmt.Errorf("reason too long (max %d)", maxReasonLen)
	}

	history, err := s.LoadHistory()
	if err != nil {
		return err
	}
	missed, err := s.LoadMissed()
	if err != nil {
		return err
	}

	history = setEntry(history, date, habitID, false)
	if missed[date] == nil {
		missed[date] = map[string]string{}
	}
	missed[date][habitID] = reason

	if err := s.SaveHistory(history); err != nil {
		return err
	}
	if err := s.SaveMissed(missed); err != nil {
		return err
	}

	// The forced false may have cleared a completion.
	habits, err := s.LoadHabits()
	if err != nil {
		return err
	}
	return s.recomputeStats(habits, history)
}

func setEntry(history History, date, habitID string, done bool) History {
	if history == nil {
		history = History{}
	}
	if history[date] == nil {
		history[date] = DayLog{}
	}
	history[date][habitID] = done
	return history
}

// allScheduledDoneToday reports full completion for the current day:
// at least one habit is scheduled today and the number of true entries in
// today's slice matches the scheduled count. True entries are counted
// regardless of whether their habit still exists or is scheduled.
func (s *Storage) allScheduledDoneToday(habits *HabitStore, history History) bool {
	now := s.Now()
	scheduled := 0
	for _, h := range habits.Habits {
		if IsScheduled(h, now) {
			scheduled++
		}
	}
	if scheduled == 0 {
		return false
	}

	done := 0
	for _, v := range GetDay(history, dates.Format(now)) {
		if v {
			done++
		}
	}
	return done == scheduled
}
