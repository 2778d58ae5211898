package storage

const (
	xpPerCompletion = 10
	xpPerLevel      = 100
)

// LoadStats reads the derived stats from disk.
func (s *Storage) LoadStats() (UserStats, error) {
	stats := defaultStats()
	err := s.loadJSONWithRecovery(statsFile, &stats)
	if stats.Level < 1 {
		stats.Level = 1
	}
	return stats, err
}

// SaveStats writes the derived stats to disk.
func (s *Storage) SaveStats(stats UserStats) error {
	return s.writeJSONAtomic(statsFile, stats)
}

// RecomputeStats rebuilds stats from the ledger and persists the result.
func (s *Storage) RecomputeStats() (UserStats, error) {
	habits, err := s.LoadHabits()
	if err != nil {
		return UserStats{}, err
	}
	history, err := s.LoadHistory()
	if err != nil {
		return UserStats{}, err
	}
	if err := s.recomputeStats(habits, history); err != nil {
		return UserStats{}, err
	}
	return s.LoadStats()
}

// recomputeStats derives XP, level and totalCompleted from the ledger and
// raises the stored longest-streak high-water mark. Completions are counted
// across every date and habit id, including ids whose habit was deleted;
// XP earned is never retroactively lost to deletion.
func (s *Storage) recomputeStats(habits *HabitStore, history History) error {
	prev, err := s.LoadStats()
	if err != nil {
		return err
	}

	total := 0
	for _, day := range history {
		for _, done := range day {
			if done {
				total++
			}
		}
	}

	stats := UserStats{
		XP:             total * xpPerCompletion,
		TotalCompleted: total,
		LongestStreak:  prev.LongestStreak,
	}
	stats.Level = stats.XP/xpPerLevel + 1

	for _, h := range habits.Habits {
		if st := s.Streak(history, h.ID); st > stats.LongestStreak {
			stats.LongestStreak = st
		}
	}

	return s.SaveStats(stats)
}
