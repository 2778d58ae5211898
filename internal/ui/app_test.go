// Package ui provides terminal user interface components for the neoflow app.
// This file contains tests for the main App model, including layout behavior.
package ui

import (
	"errors"
	"strings"
	"testing"

	"neoflow/internal/config"
	"neoflow/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestAppConfig() *AppConfig {
	return &AppConfig{
		Keys:                      &config.KeysConfig{},
		ConfirmDeletions:          true,
		PromptJournalOnCompletion: true,
		NarrowLayoutThreshold:     80,
	}
}

// TestApp_LayoutModeTransitions verifies layout mode changes based on width.
func TestApp_LayoutModeTransitions(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	app := NewApp(store, createTestStyles(), newTestAppConfig())

	tests := []struct {
		name         string
		width        int
		expectedMode LayoutMode
	}{
		{"Very narrow (40)", 40, LayoutNarrow},
		{"Narrow (60)", 60, LayoutNarrow},
		{"At threshold (79)", 79, LayoutNarrow},
		{"At threshold (80)", 80, LayoutWide},
		{"Wide (100)", 100, LayoutWide},
		{"Very wide (200)", 200, LayoutWide},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app.Update(tea.WindowSizeMsg{Width: tc.width, Height: 30})

			if app.layoutMode != tc.expectedMode {
				t.Errorf("Width %d: expected layout mode %v, got %v",
					tc.width, tc.expectedMode, app.layoutMode)
			}
		})
	}
}

// TestApp_NarrowLayoutShowsTabBar verifies the tab bar renders in narrow mode.
func TestApp_NarrowLayoutShowsTabBar(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	app := NewApp(store, createTestStyles(), newTestAppConfig())

	app.Update(tea.WindowSizeMsg{Width: 60, Height: 30})

	if app.activePane != PaneHabits {
		t.Errorf("Expected default active pane to be Habits")
	}

	view := app.View()

	if !strings.Contains(view, "[Habits]") {
		t.Error("Expected to see [Habits] tab highlighted in narrow mode")
	}
	if !strings.Contains(view, "Journal") {
		t.Error("Expected to see Journal tab in narrow mode")
	}
	if !strings.Contains(view, "Vault") {
		t.Error("Expected to see Vault tab in narrow mode")
	}
}

// TestApp_WideLayoutShowsAllPanes verifies all panes are shown in wide mode.
func TestApp_WideLayoutShowsAllPanes(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	app := NewApp(store, createTestStyles(), newTestAppConfig())

	app.Update(tea.WindowSizeMsg{Width: 140, Height: 30})

	if app.layoutMode != LayoutWide {
		t.Errorf("Expected LayoutWide at width 140, got %v", app.layoutMode)
	}

	view := app.View()

	if !strings.Contains(view, "HABITS") {
		t.Error("Expected to see HABITS pane in wide mode")
	}
	if !strings.Contains(view, "JOURNAL") {
		t.Error("Expected to see JOURNAL pane in wide mode")
	}
	if !strings.Contains(view, "VAULT") {
		t.Error("Expected to see VAULT pane in wide mode")
	}
}

// TestApp_PaneSwitching verifies tab cycling through all three panes.
func TestApp_PaneSwitching(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	app := NewApp(store, createTestStyles(), newTestAppConfig())

	if app.activePane != PaneHabits {
		t.Errorf("Expected initial pane to be Habits")
	}

	app.switchPane()
	if app.activePane != PaneJournal {
		t.Errorf("Expected pane to be Journal after switch, got %v", app.activePane)
	}

	app.switchPane()
	if app.activePane != PaneVault {
		t.Errorf("Expected pane to be Vault after second switch, got %v", app.activePane)
	}

	app.switchPane()
	if app.activePane != PaneHabits {
		t.Errorf("Expected pane to cycle back to Habits, got %v", app.activePane)
	}
}

// TestApp_CelebrationOnAllDone verifies the flash fires when a toggle
// completes every scheduled habit.
func TestApp_CelebrationOnAllDone(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	app := NewApp(store, createTestStyles(), newTestAppConfig())

	_, cmd := app.Update(habitToggledMsg{
		id:     "h1",
		name:   "Meditate",
		date:   store.Today(),
		result: storage.ToggleCompletedAllForToday,
	})

	if !app.celebrating {
		t.Error("Expected celebrating after all-done toggle")
	}
	if cmd == nil {
		t.Fatal("Expected celebration timer command")
	}

	app.Update(celebrationExpiredMsg{})
	if app.celebrating {
		t.Error("Expected celebration to clear after expiry")
	}
}

// TestApp_JournalPromptOnAllDone verifies the win prompt opens when the
// toggle result asks for one.
func TestApp_JournalPromptOnAllDone(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	app := NewApp(store, createTestStyles(), newTestAppConfig())

	app.Update(habitToggledMsg{
		id:     "h1",
		name:   "Meditate",
		date:   store.Today(),
		result: storage.ToggleCompletedAllAndPromptJournal,
	})

	if app.activePane != PaneJournal {
		t.Errorf("Expected journal pane active, got %v", app.activePane)
	}
	if !app.journalPane.IsAdding() {
		t.Error("Expected journal win input to be open")
	}
}

// TestApp_JournalPromptDisabled verifies the prompt respects configuration.
func TestApp_JournalPromptDisabled(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	cfg := newTestAppConfig()
	cfg.PromptJournalOnCompletion = false
	app := NewApp(store, createTestStyles(), cfg)

	app.Update(habitToggledMsg{
		id:     "h1",
		name:   "Meditate",
		date:   store.Today(),
		result: storage.ToggleCompletedAllAndPromptJournal,
	})

	if app.activePane == PaneJournal {
		t.Error("Journal pane should not activate when the prompt is disabled")
	}
	if app.journalPane.IsAdding() {
		t.Error("Win input should not open when the prompt is disabled")
	}
}

// TestApp_ConfirmDeleteHabit verifies the delete overlay intercepts 'x'.
func TestApp_ConfirmDeleteHabit(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	addTestHabit(t, store, "Doomed", storage.EnergyEasy)

	app := NewApp(store, createTestStyles(), newTestAppConfig())
	loadDashboard(t, app.habitsPane)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	if app.confirmDel == nil {
		t.Fatal("Expected confirm-delete overlay after 'x'")
	}
	if !strings.Contains(app.confirmDel.body, "Doomed") {
		t.Errorf("Overlay body = %q, want habit name", app.confirmDel.body)
	}

	view := app.View()
	if !strings.Contains(view, "Delete habit?") {
		t.Error("Expected delete prompt in view")
	}

	// Decline.
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if app.confirmDel != nil {
		t.Error("Expected overlay dismissed after 'n'")
	}

	habits, _ := store.LoadHabits()
	if len(habits.Habits) != 1 {
		t.Error("Habit should survive a declined delete")
	}
}

// TestApp_ConfirmDeleteAccepted verifies 'y' runs the pending delete.
func TestApp_ConfirmDeleteAccepted(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	addTestHabit(t, store, "Doomed", storage.EnergyEasy)

	app := NewApp(store, createTestStyles(), newTestAppConfig())
	loadDashboard(t, app.habitsPane)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if app.confirmDel == nil {
		t.Fatal("Expected confirm-delete overlay")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatal("Expected delete command after confirmation")
	}
	cmd()

	habits, _ := store.LoadHabits()
	if len(habits.Habits) != 0 {
		t.Error("Habit should be deleted after confirmation")
	}
}

// TestApp_WelcomeDismissal verifies the first-run screen clears on any key.
func TestApp_WelcomeDismissal(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	cfg := newTestAppConfig()
	cfg.ShowOnboarding = true

	app := NewApp(store, createTestStyles(), cfg)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if !app.showWelcome {
		t.Fatal("Expected welcome screen on a fresh profile")
	}

	view := app.View()
	if !strings.Contains(view, "Welcome to neoflow") {
		t.Error("Expected welcome text in view")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if app.showWelcome {
		t.Error("Expected welcome screen to dismiss on key press")
	}
}

// TestApp_NoWelcomeAfterActivity verifies first-run detection checks the ledger.
func TestApp_NoWelcomeAfterActivity(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	habit := addTestHabit(t, store, "Run", storage.EnergyMedium)
	if _, err := store.ToggleCompletion(habit.ID, store.Today()); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	cfg := newTestAppConfig()
	cfg.ShowOnboarding = true
	app := NewApp(store, createTestStyles(), cfg)

	if app.showWelcome {
		t.Error("Welcome screen should not show once the ledger has entries")
	}
}

// TestApp_TitleBarShowsProgression verifies level and XP reach the title bar.
func TestApp_TitleBarShowsProgression(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)

	habit := addTestHabit(t, store, "Run", storage.EnergyMedium)
	if _, err := store.ToggleCompletion(habit.ID, store.Today()); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	app := NewApp(store, createTestStyles(), newTestAppConfig())
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	loadDashboard(t, app.habitsPane)
	app.showWelcome = false

	view := app.View()
	if !strings.Contains(view, "Lv 1") {
		t.Errorf("Expected level in title bar, got:\n%s", view)
	}
	if !strings.Contains(view, "10 XP") {
		t.Errorf("Expected XP in title bar, got:\n%s", view)
	}
	if !strings.Contains(view, "Today: 1/1") {
		t.Errorf("Expected today progress in title bar, got:\n%s", view)
	}
}

// TestApp_StatusOnToggleError verifies storage errors surface in the help bar.
func TestApp_StatusOnToggleError(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	app := NewApp(store, createTestStyles(), newTestAppConfig())

	app.Update(habitToggledMsg{
		id:  "ghost",
		err: errors.New("habit not found"),
	})

	if app.status == "" || !app.statusErr {
		t.Errorf("Expected error status, got %q (err=%v)", app.status, app.statusErr)
	}
}
