// Package importer provides import functionality for the neoflow app.
// This file implements import of the web app's JSON export, a dump of its
// localStorage collections.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"neoflow/internal/storage"
)

// WebExportImporter handles importing from web app JSON exports.
type WebExportImporter struct{}

// webExport mirrors the web app's export format. Keys are camelCase and
// energy labels may use the legacy Low/Medium/High scale.
type webExport struct {
	Habits []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Category     string `json:"category"`
		Color        string `json:"color"`
		Frequency    []int  `json:"frequency"`
		TargetStreak int    `json:"targetStreak"`
		EnergyReq    string `json:"energyReq"`
	} `json:"habits"`
	CompletionHistory map[string]map[string]bool   `json:"completionHistory"`
	MissedReasons     map[string]map[string]string `json:"missedReasons"`
	Journal           []struct {
		ID      string   `json:"id"`
		Date    string   `json:"date"`
		Victory string   `json:"victory"`
		Tags    []string `json:"tags"`
	} `json:"journal"`
	Resources []struct {
		ID                string `json:"id"`
		Title             string `json:"title"`
		Type              string `json:"type"`
		URL               string `json:"url"`
		Content           string `json:"content"`
		AssociatedHabitID string `json:"associatedHabitId"`
		CreatedAt         string `json:"createdAt"`
	} `json:"resources"`
}

// Name returns the importer name.
func (w *WebExportImporter) Name() string {
	return "webapp"
}

// Import merges a web export into storage. Existing local data wins on
// conflicts: habits and resources are matched by id, ledger entries by
// date and habit id.
func (w *WebExportImporter) Import(reader io.Reader, store *storage.Storage) (*ImportResult, error) {
	export, err := parseWebExport(reader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}

	if err := w.importHabits(export, store, result); err != nil {
		return nil, err
	}
	if err := w.importLedger(export, store, result); err != nil {
		return nil, err
	}
	if err := w.importJournal(export, store, result); err != nil {
		return nil, err
	}
	if err := w.importResources(export, store, result); err != nil {
		return nil, err
	}

	if _, err := store.RecomputeStats(); err != nil {
		return nil, fmt.Errorf("recompute stats after import: %w", err)
	}

	return result, nil
}

// Preview returns the habits that would be imported.
func (w *WebExportImporter) Preview(reader io.Reader) ([]PreviewHabit, error) {
	export, err := parseWebExport(reader)
	if err != nil {
		return nil, err
	}

	var habits []PreviewHabit
	for _, h := range export.Habits {
		if strings.TrimSpace(h.Name) == "" {
			continue
		}
		habits = append(habits, PreviewHabit{
			Name:     strings.TrimSpace(h.Name),
			Category: h.Category,
			Energy:   string(mapLegacyEnergy(h.EnergyReq)),
			Days:     len(h.Frequency),
		})
	}
	return habits, nil
}

func parseWebExport(reader io.Reader) (*webExport, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	var export webExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &export, nil
}

func (w *WebExportImporter) importHabits(export *webExport, store *storage.Storage, result *ImportResult) error {
	existing, err := store.LoadHabits()
	if err != nil {
		return err
	}

	for _, h := range export.Habits {
		if h.ID != "" && storage.FindHabit(existing, h.ID) != nil {
			result.Skipped++
			continue
		}

		habit := storage.Habit{
			ID:           h.ID,
			Name:         h.Name,
			Category:     storage.Category(h.Category),
			Color:        h.Color,
			Frequency:    h.Frequency,
			TargetStreak: h.TargetStreak,
			EnergyReq:    mapLegacyEnergy(h.EnergyReq),
		}

		added, err := store.AddHabit(habit)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", h.Name, err))
			continue
		}
		existing.Habits = append(existing.Habits, *added)
		result.Habits++
	}

	return nil
}

func (w *WebExportImporter) importLedger(export *webExport, store *storage.Storage, result *ImportResult) error {
	if len(export.CompletionHistory) == 0 && len(export.MissedReasons) == 0 {
		return nil
	}

	history, err := store.LoadHistory()
	if err != nil {
		return err
	}
	missed, err := store.LoadMissed()
	if err != nil {
		return err
	}

	for date, day := range export.CompletionHistory {
		if !validDate(date) {
			result.Errors = append(result.Errors, fmt.Sprintf("history: invalid date %q", date))
			continue
		}
		merged := false
		for habitID, done := range day {
			if habitID == "" {
				continue
			}
			if _, exists := history[date][habitID]; exists {
				result.Skipped++
				continue
			}
			if history[date] == nil {
				history[date] = storage.DayLog{}
			}
			history[date][habitID] = done
			merged = true
		}
		if merged {
			result.Days++
		}
	}

	for date, reasons := range export.MissedReasons {
		if !validDate(date) {
			continue
		}
		for habitID, reason := range reasons {
			if habitID == "" || strings.TrimSpace(reason) == "" {
				continue
			}
			if _, exists := missed[date][habitID]; exists {
				result.Skipped++
				continue
			}
			// A recorded reason implies the ledger entry is false.
			if done := history[date][habitID]; done {
				continue
			}
			if missed[date] == nil {
				missed[date] = map[string]string{}
			}
			missed[date][habitID] = strings.TrimSpace(reason)
		}
	}

	if err := store.SaveHistory(history); err != nil {
		return err
	}
	return store.SaveMissed(missed)
}

func (w *WebExportImporter) importJournal(export *webExport, store *storage.Storage, result *ImportResult) error {
	if len(export.Journal) == 0 {
		return nil
	}

	journal, err := store.LoadJournal()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(journal.Entries))
	for _, e := range journal.Entries {
		seen[e.ID] = true
	}

	for _, e := range export.Journal {
		victory := strings.TrimSpace(e.Victory)
		if victory == "" || !validDate(e.Date) {
			result.Skipped++
			continue
		}
		if e.ID != "" && seen[e.ID] {
			result.Skipped++
			continue
		}

		id := e.ID
		if id == "" {
			id = fmt.Sprintf("win_import_%s_%d", e.Date, len(journal.Entries))
		}
		journal.Entries = append(journal.Entries, storage.JournalEntry{
			ID:      id,
			Date:    e.Date,
			Victory: victory,
			Tags:    e.Tags,
		})
		seen[id] = true
		result.JournalEntries++
	}

	return store.SaveJournal(journal)
}

func (w *WebExportImporter) importResources(export *webExport, store *storage.Storage, result *ImportResult) error {
	if len(export.Resources) == 0 {
		return nil
	}

	vault, err := store.LoadVault()
	if err != nil {
		return err
	}

	existing := make(map[string]bool, len(vault.Resources))
	for _, r := range vault.Resources {
		existing[r.ID] = true
	}

	for _, r := range export.Resources {
		if r.ID != "" && existing[r.ID] {
			result.Skipped++
			continue
		}

		res := storage.Resource{
			ID:                r.ID,
			Title:             r.Title,
			Type:              storage.ResourceType(r.Type),
			URL:               r.URL,
			Content:           r.Content,
			AssociatedHabitID: r.AssociatedHabitID,
		}
		if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			res.CreatedAt = t
		}

		added, err := store.AddResource(res)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", r.Title, err))
			continue
		}
		existing[added.ID] = true
		result.Resources++
	}

	return nil
}

// mapLegacyEnergy converts the web app's Low/Medium/High scale to the
// current four-step scale. Current labels pass through unchanged.
func mapLegacyEnergy(label string) storage.EnergyReq {
	switch strings.TrimSpace(label) {
	case "Low":
		return storage.EnergyEasy
	case "High":
		return storage.EnergyHard
	case "":
		return storage.EnergyMedium
	default:
		return storage.EnergyReq(strings.TrimSpace(label))
	}
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
