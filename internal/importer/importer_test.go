package importer

import (
	"strings"
	"testing"
	"time"

	"neoflow/internal/storage"
)

const sampleExport = `{
  "habits": [
    {"id": "web_1", "name": "Morning Run", "category": "Health", "color": "#06b6d4", "frequency": [1, 3, 5], "targetStreak": 21, "energyReq": "Low"},
    {"id": "web_2", "name": "Deep Work", "category": "Work", "frequency": [1, 2, 3, 4, 5], "energyReq": "High"},
    {"id": "web_3", "name": "Meditation", "category": "Mind", "frequency": [0, 1, 2, 3, 4, 5, 6], "energyReq": ""}
  ],
  "completionHistory": {
    "2025-12-15": {"web_1": true, "web_2": true},
    "2025-12-16": {"web_2": true}
  },
  "missedReasons": {
    "2025-12-16": {"web_1": "travel day"}
  },
  "journal": [
    {"id": "j_1", "date": "2025-12-15", "victory": "Ran 5k before sunrise", "tags": ["health"]}
  ],
  "resources": [
    {"id": "r_1", "title": "Atomic Habits summary", "type": "URL", "url": "https://example.com/atomic", "createdAt": "2025-12-01T08:00:00Z"}
  ]
}`

func newTestStore(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	if err := store.SaveHabits(&storage.HabitStore{Habits: []storage.Habit{}}); err != nil {
		t.Fatalf("clear seed habits: %v", err)
	}
	store.SetNowFunc(func() time.Time {
		return time.Date(2025, 12, 17, 10, 0, 0, 0, time.Local)
	})
	return store
}

func TestGetImporter(t *testing.T) {
	if imp := GetImporter("webapp"); imp == nil || imp.Name() != "webapp" {
		t.Errorf("GetImporter(webapp) = %v", imp)
	}
	if imp := GetImporter("todoist"); imp != nil {
		t.Errorf("GetImporter(todoist) = %v, want nil", imp)
	}
}

func TestWebExportImport(t *testing.T) {
	store := newTestStore(t)
	imp := &WebExportImporter{}

	result, err := imp.Import(strings.NewReader(sampleExport), store)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.Habits != 3 {
		t.Errorf("Habits = %d, want 3", result.Habits)
	}
	if result.Days != 2 {
		t.Errorf("Days = %d, want 2", result.Days)
	}
	if result.JournalEntries != 1 {
		t.Errorf("JournalEntries = %d, want 1", result.JournalEntries)
	}
	if result.Resources != 1 {
		t.Errorf("Resources = %d, want 1", result.Resources)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}

	habits, err := store.LoadHabits()
	if err != nil {
		t.Fatalf("LoadHabits() error = %v", err)
	}
	if got := storage.FindHabit(habits, "web_1").EnergyReq; got != storage.EnergyEasy {
		t.Errorf("web_1 energy = %q, want %q (legacy Low maps to Easy)", got, storage.EnergyEasy)
	}
	if got := storage.FindHabit(habits, "web_2").EnergyReq; got != storage.EnergyHard {
		t.Errorf("web_2 energy = %q, want %q", got, storage.EnergyHard)
	}
	if got := storage.FindHabit(habits, "web_3").EnergyReq; got != storage.EnergyMedium {
		t.Errorf("web_3 energy = %q, want %q", got, storage.EnergyMedium)
	}

	history, err := store.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if !storage.GetDay(history, "2025-12-15")["web_1"] {
		t.Error("expected web_1 done on 2025-12-15")
	}

	missed, err := store.LoadMissed()
	if err != nil {
		t.Fatalf("LoadMissed() error = %v", err)
	}
	if reason, ok := storage.MissedReason(missed, "2025-12-16", "web_1"); !ok || reason != "travel day" {
		t.Errorf("missed reason = %q, %v", reason, ok)
	}

	// XP covers the three imported completions.
	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats() error = %v", err)
	}
	if stats.TotalCompleted != 3 || stats.XP != 30 {
		t.Errorf("stats = %+v, want 3 completions / 30 xp", stats)
	}

	journal, err := store.LoadJournal()
	if err != nil {
		t.Fatalf("LoadJournal() error = %v", err)
	}
	if len(journal.Entries) != 1 || journal.Entries[0].Date != "2025-12-15" {
		t.Errorf("journal = %+v, want one entry dated 2025-12-15", journal.Entries)
	}

	vault, err := store.LoadVault()
	if err != nil {
		t.Fatalf("LoadVault() error = %v", err)
	}
	if len(vault.Resources) != 1 || vault.Resources[0].ID != "r_1" {
		t.Errorf("vault = %+v, want resource r_1", vault.Resources)
	}
	if !vault.Resources[0].CreatedAt.Equal(time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v, want export timestamp preserved", vault.Resources[0].CreatedAt)
	}
}

func TestWebExportImport_Idempotent(t *testing.T) {
	store := newTestStore(t)
	imp := &WebExportImporter{}

	if _, err := imp.Import(strings.NewReader(sampleExport), store); err != nil {
		t.Fatalf("first Import() error = %v", err)
	}

	result, err := imp.Import(strings.NewReader(sampleExport), store)
	if err != nil {
		t.Fatalf("second Import() error = %v", err)
	}

	if result.Habits != 0 || result.JournalEntries != 0 || result.Resources != 0 || result.Days != 0 {
		t.Errorf("second import added data: %+v", result)
	}
	if result.Skipped == 0 {
		t.Error("second import should report skips")
	}

	habits, err := store.LoadHabits()
	if err != nil {
		t.Fatalf("LoadHabits() error = %v", err)
	}
	if len(habits.Habits) != 3 {
		t.Errorf("len(habits) = %d, want 3", len(habits.Habits))
	}
}

func TestWebExportImport_LocalDataWins(t *testing.T) {
	store := newTestStore(t)

	// Locally web_2 is unchecked on 2025-12-16; the export says done.
	history := storage.History{
		"2025-12-16": storage.DayLog{"web_2": false},
	}
	if err := store.SaveHistory(history); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}

	imp := &WebExportImporter{}
	if _, err := imp.Import(strings.NewReader(sampleExport), store); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	merged, err := store.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if merged["2025-12-16"]["web_2"] {
		t.Error("import overwrote a local ledger entry")
	}
}

func TestWebExportImport_RecordsErrors(t *testing.T) {
	store := newTestStore(t)
	imp := &WebExportImporter{}

	export := `{"habits": [{"id": "bad_1", "name": "", "category": "Health", "frequency": [1]}]}`
	result, err := imp.Import(strings.NewReader(export), store)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(result.Errors) != 1 {
		t.Errorf("Errors = %v, want one entry for the blank name", result.Errors)
	}
	if result.Habits != 0 {
		t.Errorf("Habits = %d, want 0", result.Habits)
	}
}

func TestWebExportImport_InvalidJSON(t *testing.T) {
	store := newTestStore(t)
	imp := &WebExportImporter{}

	if _, err := imp.Import(strings.NewReader("{not json"), store); err == nil {
		t.Error("expected error for malformed export")
	}
}

func TestWebExportPreview(t *testing.T) {
	imp := &WebExportImporter{}

	habits, err := imp.Preview(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	if len(habits) != 3 {
		t.Fatalf("len(habits) = %d, want 3", len(habits))
	}
	if habits[0].Name != "Morning Run" || habits[0].Energy != "Easy" || habits[0].Days != 3 {
		t.Errorf("habits[0] = %+v", habits[0])
	}
	if habits[2].Energy != "Medium" {
		t.Errorf("habits[2].Energy = %q, want Medium default", habits[2].Energy)
	}
}
