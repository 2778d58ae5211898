// Package ui provides terminal user interface components for the neoflow app.
// This file defines message types for async I/O operations using the Bubble Tea
// command pattern. All storage operations should return these messages to keep
// the event loop non-blocking.
package ui

import (
	"neoflow/internal/storage"
)

// =============================================================================
// Dashboard Messages
// =============================================================================

// dashboardLoadedMsg is sent when the habit dashboard data is loaded: the
// habit list plus the ledger slices the view needs.
type dashboardLoadedMsg struct {
	habits  *storage.HabitStore
	history storage.History
	missed  storage.MissedLog
	stats   storage.UserStats
	err     error
}

// habitAddedMsg is sent when a new habit is created.
type habitAddedMsg struct {
	habit *storage.Habit
	err   error
}

// habitToggledMsg is sent when a habit's ledger entry is toggled.
type habitToggledMsg struct {
	id     string
	name   string
	date   string // YYYY-MM-DD
	result storage.ToggleResult
	err    error
}

// habitDeletedMsg is sent when a habit is removed. Ledger entries stay.
type habitDeletedMsg struct {
	id    string
	habit *storage.Habit
	err   error
}

// habitReorderedMsg is sent when a habit is moved within the list.
type habitReorderedMsg struct {
	from int
	to   int
	err  error
}

// missedLoggedMsg is sent when a missed reason is recorded.
type missedLoggedMsg struct {
	id     string
	date   string
	reason string
	err    error
}

// =============================================================================
// Journal Messages
// =============================================================================

// journalLoadedMsg is sent when journal entries are loaded from storage.
type journalLoadedMsg struct {
	store *storage.JournalStore
	err   error
}

// winAddedMsg is sent when a new journal entry is recorded.
type winAddedMsg struct {
	entry *storage.JournalEntry
	err   error
}

// =============================================================================
// Vault Messages
// =============================================================================

// vaultLoadedMsg is sent when vault resources are loaded from storage.
type vaultLoadedMsg struct {
	store *storage.VaultStore
	err   error
}

// resourceAddedMsg is sent when a new resource is added to the vault.
type resourceAddedMsg struct {
	resource *storage.Resource
	err      error
}

// resourceDeletedMsg is sent when a resource is removed from the vault.
type resourceDeletedMsg struct {
	id  string
	err error
}

// =============================================================================
// Celebration Messages
// =============================================================================

// celebrationExpiredMsg clears the all-done flash after its timer runs out.
type celebrationExpiredMsg struct{}

// notifySentMsg is sent after a desktop notification attempt. It carries no
// payload; notification failures are deliberately silent.
type notifySentMsg struct{}
