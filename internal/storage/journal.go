package storage

import (
	"fmt"
	"strings"
)

// LoadJournal reads journal entries from disk.
func (s *Storage) LoadJournal() (*JournalStore, error) {
	store := JournalStore{Entries: []JournalEntry{}}
	err := s.loadJSONWithRecovery(journalFile, &store)
	return &store, err
}

// SaveJournal writes journal entries to disk.
func (s *Storage) SaveJournal(store *JournalStore) error {
	return s.writeJSONAtomic(journalFile, store)
}

// AddJournalEntry appends a win for the current day. The journal is
// append-only; entries are never edited or removed.
func (s *Storage) AddJournalEntry(victory string, tags []string, energy EnergyState) (*JournalEntry, error) {
	victory = strings.TrimSpace(victory)
	if victory == "" {
		return nil, fmt.Errorf("victory text is required")
	}
	if len(victory) > maxVictoryLen {
		return nil, fmt.Errorf("victory text too long (max %d)", maxVictoryLen)
	}

	store, err := s.LoadJournal()
	if err != nil {
		return nil, err
	}

	id, err := newID("win")
	if err != nil {
		return nil, err
	}

	var cleaned []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}

	entry := JournalEntry{
		ID:             id,
		Date:           s.Today(),
		Victory:        victory,
		Tags:           cleaned,
		EnergySnapshot: energy,
	}

	store.Entries = append(store.Entries, entry)

	if err := s.SaveJournal(store); err != nil {
		return nil, err
	}

	return &entry, nil
}

// HasEntryOn reports whether any journal entry exists for the given date.
func HasEntryOn(store *JournalStore, date string) bool {
	for _, e := range store.Entries {
		if e.Date == date {
			return true
		}
	}
	return false
}
