package storage

import "time"

// Category groups habits for display and sorting.
type Category string

const (
	CategoryHealth Category = "Health"
	CategoryWork   Category = "Work"
	CategoryMind   Category = "Mind"
	CategorySocial Category = "Social"
	CategorySkill  Category = "Skill"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryHealth, CategoryWork, CategoryMind, CategorySocial, CategorySkill}

// EnergyReq is a habit's fixed capacity-cost tag.
type EnergyReq string

const (
	EnergyVeryEasy EnergyReq = "Very Easy"
	EnergyEasy     EnergyReq = "Easy"
	EnergyMedium   EnergyReq = "Medium"
	EnergyHard     EnergyReq = "Hard"
)

// EnergyReqs lists every valid energy requirement, cheapest first.
var EnergyReqs = []EnergyReq{EnergyVeryEasy, EnergyEasy, EnergyMedium, EnergyHard}

// EnergyState is the user's currently declared capacity. It drives
// filtering and sorting only and is never persisted per day.
type EnergyState string

const (
	StateCritical  EnergyState = "Critical"
	StateTired     EnergyState = "Tired"
	StateNormal    EnergyState = "Normal"
	StateEnergized EnergyState = "Energized"
)

// EnergyStates lists every energy state in cycle order.
var EnergyStates = []EnergyState{StateCritical, StateTired, StateNormal, StateEnergized}

// Habit represents a recurring trackable habit.
type Habit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Color        string    `json:"color,omitempty"`
	Frequency    []int     `json:"frequency"` // weekday indices, 0=Sunday; may be empty
	TargetStreak int       `json:"target_streak,omitempty"`
	EnergyReq    EnergyReq `json:"energy_req"`
}

// HabitStore holds the ordered habit collection. Slice order is exactly
// insertion/reorder order; nothing may assume any other ordering.
type HabitStore struct {
	Habits []Habit `json:"habits"`
}

// DayLog maps habit id to completion state for one calendar day.
type DayLog map[string]bool

// History is the completion ledger: date (YYYY-MM-DD) -> habit id -> done.
// A date key with an empty inner map is equivalent to an absent key.
// Entries may outlive their habit; readers must tolerate dangling ids.
type History map[string]DayLog

// MissedLog records free-text reasons for explicitly logged misses,
// keyed date -> habit id. A recorded reason implies the ledger entry
// for that pair is false.
type MissedLog map[string]map[string]string

// UserStats is the derived XP aggregate. LongestStreak is a stored
// high-water mark: recomputes raise it, never lower it.
type UserStats struct {
	XP             int `json:"xp"`
	Level          int `json:"level"`
	TotalCompleted int `json:"total_completed"`
	LongestStreak  int `json:"longest_streak"`
}

// JournalEntry is a single recorded win. The journal is append-only.
type JournalEntry struct {
	ID             string      `json:"id"`
	Date           string      `json:"date"` // YYYY-MM-DD
	Victory        string      `json:"victory"`
	Tags           []string    `json:"tags,omitempty"`
	EnergySnapshot EnergyState `json:"energy_snapshot,omitempty"`
}

// JournalStore holds all journal entries.
type JournalStore struct {
	Entries []JournalEntry `json:"entries"`
}

// ResourceType classifies vault resources.
type ResourceType string

const (
	ResourcePDF   ResourceType = "PDF"
	ResourceURL   ResourceType = "URL"
	ResourceVideo ResourceType = "Video"
	ResourceText  ResourceType = "Text"
	ResourceNote  ResourceType = "Note"
)

// ResourceTypes lists every valid resource type.
var ResourceTypes = []ResourceType{ResourcePDF, ResourceURL, ResourceVideo, ResourceText, ResourceNote}

// Resource is a strategy-vault item, optionally linked to a habit.
type Resource struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Type              ResourceType `json:"type"`
	URL               string       `json:"url,omitempty"`
	Content           string       `json:"content,omitempty"`
	AssociatedHabitID string       `json:"associated_habit_id,omitempty"`
	Metadata          string       `json:"metadata,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// VaultStore holds all vault resources.
type VaultStore struct {
	Resources []Resource `json:"resources"`
}

// ToggleResult reports what a completion toggle did, so callers can react
// without the data layer scheduling side effects itself.
type ToggleResult int

const (
	// ToggleUnchecked means the entry flipped to false.
	ToggleUnchecked ToggleResult = iota
	// ToggleCompleted means the entry flipped to true.
	ToggleCompleted
	// ToggleCompletedAllForToday means this toggle newly completed every
	// habit scheduled for the current day.
	ToggleCompletedAllForToday
	// ToggleCompletedAllAndPromptJournal is ToggleCompletedAllForToday
	// when no journal entry exists for the current day yet.
	ToggleCompletedAllAndPromptJournal
)
