// Package engine derives the habit view for the dashboard: which habits
// the current energy state surfaces, and in what order. It is pure; it
// never touches storage or mutates its inputs.
package engine

import (
	"sort"
	"strings"

	"neoflow/internal/storage"
)

// SortMode selects the ordering applied after the energy filter.
type SortMode string

const (
	SortDefault  SortMode = "default"
	SortName     SortMode = "name"
	SortCategory SortMode = "category"
	SortStreak   SortMode = "streak"
	SortEnergy   SortMode = "energy"
)

// SortModes lists every sort mode in cycle order.
var SortModes = []SortMode{SortDefault, SortName, SortCategory, SortStreak, SortEnergy}

// DifficultyScore maps an energy requirement to its sort weight.
func DifficultyScore(e storage.EnergyReq) int {
	switch e {
	case storage.EnergyHard:
		return 4
	case storage.EnergyMedium:
		return 3
	case storage.EnergyEasy:
		return 2
	case storage.EnergyVeryEasy:
		return 1
	default:
		return 0
	}
}

// Filter returns the habits visible in the given energy state, preserving
// repository order. Critical surfaces only Very Easy habits, Tired adds
// Easy, and Normal or Energized show everything.
func Filter(habits []storage.Habit, state storage.EnergyState) []storage.Habit {
	var allowed map[storage.EnergyReq]bool
	switch state {
	case storage.StateCritical:
		allowed = map[storage.EnergyReq]bool{storage.EnergyVeryEasy: true}
	case storage.StateTired:
		allowed = map[storage.EnergyReq]bool{storage.EnergyVeryEasy: true, storage.EnergyEasy: true}
	default:
		out := make([]storage.Habit, len(habits))
		copy(out, habits)
		return out
	}

	out := make([]storage.Habit, 0, len(habits))
	for _, h := range habits {
		if allowed[h.EnergyReq] {
			out = append(out, h)
		}
	}
	return out
}

// Sort orders habits for display. Default mode keeps repository order
// except when Energized, which puts the hardest habits first. Streaks are
// looked up per habit id; missing ids count as 0. All orderings are
// stable, so repository order breaks ties.
func Sort(habits []storage.Habit, mode SortMode, state storage.EnergyState, streaks map[string]int) []storage.Habit {
	out := make([]storage.Habit, len(habits))
	copy(out, habits)

	switch mode {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortCategory:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(string(out[i].Category)) < strings.ToLower(string(out[j].Category))
		})
	case SortStreak:
		sort.SliceStable(out, func(i, j int) bool {
			return streaks[out[i].ID] > streaks[out[j].ID]
		})
	case SortEnergy:
		sort.SliceStable(out, func(i, j int) bool {
			return DifficultyScore(out[i].EnergyReq) > DifficultyScore(out[j].EnergyReq)
		})
	default:
		// Energized flips the default view to hardest-first so spare
		// capacity goes to the expensive habits.
		if state == storage.StateEnergized {
			sort.SliceStable(out, func(i, j int) bool {
				return DifficultyScore(out[i].EnergyReq) > DifficultyScore(out[j].EnergyReq)
			})
		}
	}

	return out
}

// View filters then sorts in one step.
func View(habits []storage.Habit, state storage.EnergyState, mode SortMode, streaks map[string]int) []storage.Habit {
	return Sort(Filter(habits, state), mode, state, streaks)
}

// CanReorder reports whether manual reordering is meaningful: only the
// default sort reflects repository order, so only there may the user
// rearrange habits.
func CanReorder(mode SortMode) bool {
	return mode == SortDefault
}
