// Package importer provides import functionality for migrating data from
// earlier neoflow releases, such as the browser-based web app.
package importer

import (
	"io"

	"neoflow/internal/storage"
)

// ImportResult contains statistics about an import operation.
type ImportResult struct {
	Habits         int      // Number of imported habits
	Days           int      // Number of merged ledger days
	JournalEntries int      // Number of imported journal entries
	Resources      int      // Number of imported vault resources
	Skipped        int      // Number of skipped items (duplicates, blanks)
	Errors         []string // Error messages for failed imports
}

// PreviewHabit represents a habit preview before import.
type PreviewHabit struct {
	Name     string
	Category string
	Energy   string
	Days     int // scheduled weekdays per week
}

// Importer defines the interface for import implementations.
type Importer interface {
	// Import reads data from the reader and merges it into storage.
	Import(reader io.Reader, store *storage.Storage) (*ImportResult, error)

	// Preview reads habits from the reader without importing.
	Preview(reader io.Reader) ([]PreviewHabit, error)

	// Name returns the importer name (e.g., "webapp").
	Name() string
}

// GetImporter returns the appropriate importer for the given format.
func GetImporter(format string) Importer {
	switch format {
	case "webapp":
		return &WebExportImporter{}
	default:
		return nil
	}
}

// SupportedFormats returns the list of supported import formats.
func SupportedFormats() []string {
	return []string{"webapp"}
}
