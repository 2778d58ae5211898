package ui

import (
	"testing"
	"time"

	"neoflow/internal/config"
	"neoflow/internal/storage"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// keyMsg builds a key message from a readable name.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// setupTest prepares the test environment for deterministic rendering.
// ASCII profile disables all color codes in output.
func setupTest(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStorage creates a Storage instance with a temporary directory,
// cleared of the starter habits and with the clock frozen at a known
// Wednesday.
func createTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	if err := store.SaveHabits(&storage.HabitStore{Habits: []storage.Habit{}}); err != nil {
		t.Fatalf("failed to clear seed habits: %v", err)
	}
	store.SetNowFunc(func() time.Time {
		return time.Date(2025, 12, 17, 10, 0, 0, 0, time.Local)
	})
	return store
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// addTestHabit inserts a habit scheduled every day unless a frequency is given.
func addTestHabit(t *testing.T, store *storage.Storage, name string, req storage.EnergyReq, freq ...int) *storage.Habit {
	t.Helper()
	if len(freq) == 0 {
		freq = []int{0, 1, 2, 3, 4, 5, 6}
	}
	h, err := store.AddHabit(storage.Habit{
		Name:      name,
		Category:  storage.CategoryHealth,
		Frequency: freq,
		EnergyReq: req,
	})
	if err != nil {
		t.Fatalf("failed to add habit %q: %v", name, err)
	}
	return h
}

// loadDashboard runs the load command synchronously and feeds the result to
// the pane, the same way the Bubble Tea runtime would.
func loadDashboard(t *testing.T, pane *HabitsPane) {
	t.Helper()
	msg := pane.LoadCmd()()
	loaded, ok := msg.(dashboardLoadedMsg)
	if !ok {
		t.Fatalf("LoadCmd returned %T, want dashboardLoadedMsg", msg)
	}
	if loaded.err != nil {
		t.Fatalf("dashboard load failed: %v", loaded.err)
	}
	pane.Update(loaded)
}
