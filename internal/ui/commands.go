// Package ui provides terminal user interface components for the neoflow app.
// This file contains tea.Cmd factories that wrap storage operations. These
// commands run I/O operations asynchronously to keep the Bubble Tea event
// loop responsive. Each command returns a corresponding message type defined
// in messages.go.
package ui

import (
	"time"

	"neoflow/internal/notify"
	"neoflow/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// celebrationTTL is how long the all-done flash stays on screen.
const celebrationTTL = 4 * time.Second

// =============================================================================
// Dashboard Commands
// =============================================================================

// loadDashboardCmd returns a command that loads everything the habit pane
// renders: habits, ledger, missed reasons, and the stats aggregate.
func loadDashboardCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		habits, err := store.LoadHabits()
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		history, err := store.LoadHistory()
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		missed, err := store.LoadMissed()
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		stats, err := store.LoadStats()
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{habits: habits, history: history, missed: missed, stats: stats}
	}
}

// addHabitCmd returns a command that creates a new habit.
func addHabitCmd(store *storage.Storage, habit storage.Habit) tea.Cmd {
	return func() tea.Msg {
		added, err := store.AddHabit(habit)
		return habitAddedMsg{habit: added, err: err}
	}
}

// toggleHabitCmd returns a command that flips a habit's ledger entry for a
// date. The result reports whether the toggle newly completed the day.
func toggleHabitCmd(store *storage.Storage, id, name, date string) tea.Cmd {
	return func() tea.Msg {
		result, err := store.ToggleCompletion(id, date)
		return habitToggledMsg{id: id, name: name, date: date, result: result, err: err}
	}
}

// deleteHabitCmd returns a command that removes a habit. Ledger entries are
// left in place so earned XP survives.
func deleteHabitCmd(store *storage.Storage, id string) tea.Cmd {
	return func() tea.Msg {
		var deleted *storage.Habit
		if habits, err := store.LoadHabits(); err == nil {
			if h := storage.FindHabit(habits, id); h != nil {
				habitCopy := *h
				deleted = &habitCopy
			}
		}

		err := store.DeleteHabit(id)
		return habitDeletedMsg{id: id, habit: deleted, err: err}
	}
}

// reorderHabitCmd returns a command that moves a habit within the list.
func reorderHabitCmd(store *storage.Storage, from, to int) tea.Cmd {
	return func() tea.Msg {
		err := store.ReorderHabits(from, to)
		return habitReorderedMsg{from: from, to: to, err: err}
	}
}

// logMissedCmd returns a command that records a miss reason for a habit.
func logMissedCmd(store *storage.Storage, id, date, reason string) tea.Cmd {
	return func() tea.Msg {
		err := store.LogMissed(id, date, reason)
		return missedLoggedMsg{id: id, date: date, reason: reason, err: err}
	}
}

// =============================================================================
// Journal Commands
// =============================================================================

// loadJournalCmd returns a command that loads all journal entries.
func loadJournalCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		journal, err := store.LoadJournal()
		return journalLoadedMsg{store: journal, err: err}
	}
}

// addWinCmd returns a command that records a win with the current energy
// state snapshotted alongside it.
func addWinCmd(store *storage.Storage, victory string, tags []string, energy storage.EnergyState) tea.Cmd {
	return func() tea.Msg {
		entry, err := store.AddJournalEntry(victory, tags, energy)
		return winAddedMsg{entry: entry, err: err}
	}
}

// =============================================================================
// Vault Commands
// =============================================================================

// loadVaultCmd returns a command that loads all vault resources.
func loadVaultCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		vault, err := store.LoadVault()
		return vaultLoadedMsg{store: vault, err: err}
	}
}

// addResourceCmd returns a command that adds a resource to the vault.
func addResourceCmd(store *storage.Storage, res storage.Resource) tea.Cmd {
	return func() tea.Msg {
		added, err := store.AddResource(res)
		return resourceAddedMsg{resource: added, err: err}
	}
}

// deleteResourceCmd returns a command that removes a resource from the vault.
func deleteResourceCmd(store *storage.Storage, id string) tea.Cmd {
	return func() tea.Msg {
		err := store.DeleteResource(id)
		return resourceDeletedMsg{id: id, err: err}
	}
}

// =============================================================================
// Celebration Commands
// =============================================================================

// celebrationTimerCmd clears the all-done flash after celebrationTTL.
func celebrationTimerCmd() tea.Cmd {
	return tea.Tick(celebrationTTL, func(time.Time) tea.Msg {
		return celebrationExpiredMsg{}
	})
}

// notifyCelebrateCmd sends the all-done desktop notification off the event
// loop. notify-send can block briefly on some desktops.
func notifyCelebrateCmd(n notify.Notifier, sound bool) tea.Cmd {
	return func() tea.Msg {
		notify.Celebrate(n, sound)
		return notifySentMsg{}
	}
}
