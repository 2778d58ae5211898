package storage

// Legacy energy labels written by earlier releases. Normalized once at
// load time rather than patched inline by every reader.
const (
	legacyEnergyLow  EnergyReq = "Low"
	legacyEnergyHigh EnergyReq = "High"
)

// migrateHabits normalizes legacy habit records in place and reports
// whether anything changed. Low maps to Easy, High to Hard, and a missing
// energy requirement defaults to Medium. A nil frequency becomes an empty
// slice so no reader has to special-case it.
func migrateHabits(store *HabitStore) bool {
	changed := false
	for i := range store.Habits {
		h := &store.Habits[i]
		switch h.EnergyReq {
		case legacyEnergyLow:
			h.EnergyReq = EnergyEasy
			changed = true
		case legacyEnergyHigh:
			h.EnergyReq = EnergyHard
			changed = true
		case "":
			h.EnergyReq = EnergyMedium
			changed = true
		}
		if h.Frequency == nil {
			h.Frequency = []int{}
			changed = true
		}
	}
	return changed
}
