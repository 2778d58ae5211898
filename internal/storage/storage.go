// Package storage handles all file I/O for neoflow data. Each collection
// lives in its own JSON file inside the profile data directory and is
// written atomically with a best-effort .bak kept for recovery.
package storage

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"neoflow/internal/dates"
	"neoflow/internal/fsutil"
)

// Storage handles all file I/O operations for one profile.
type Storage struct {
	dataDir string
	now     func() time.Time // injectable clock for deterministic tests
}

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	maxHabitNameLen = 60
	maxReasonLen    = 200
	maxVictoryLen   = 500
	maxTitleLen     = 120
)

// Data file names, one per collection.
const (
	habitsFile  = "habits.json"
	historyFile = "history.json"
	missedFile  = "missed.json"
	statsFile   = "stats.json"
	journalFile = "journal.json"
	vaultFile   = "vault.json"
)

// DataFiles lists every collection file managed by Storage.
var DataFiles = []string{habitsFile, historyFile, missedFile, statsFile, journalFile, vaultFile}

// New creates a Storage instance rooted at dataDir, creating the directory
// and default files (including the starter habits) on first run.
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{dataDir: dataDir, now: time.Now}

	if err := s.initFiles(); err != nil {
		return nil, err
	}

	return s, nil
}

// SetNowFunc overrides the clock used by time-dependent storage operations.
// Passing nil resets it to time.Now.
func (s *Storage) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the storage clock.
func (s *Storage) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Today returns the current date as YYYY-MM-DD per the storage clock.
func (s *Storage) Today() string {
	return dates.Format(s.Now())
}

// GetDataDir returns the path to the data directory.
func (s *Storage) GetDataDir() string {
	return s.dataDir
}

// initFiles creates default JSON files if they don't exist. The habit file
// is seeded with the starter habits so a first run has something to show.
func (s *Storage) initFiles() error {
	if !fileExists(s.path(habitsFile)) {
		if err := s.SaveHabits(&HabitStore{Habits: seedHabits()}); err != nil {
			return err
		}
	}
	if !fileExists(s.path(historyFile)) {
		if err := s.SaveHistory(History{}); err != nil {
			return err
		}
	}
	if !fileExists(s.path(missedFile)) {
		if err := s.SaveMissed(MissedLog{}); err != nil {
			return err
		}
	}
	if !fileExists(s.path(statsFile)) {
		if err := s.SaveStats(defaultStats()); err != nil {
			return err
		}
	}
	if !fileExists(s.path(journalFile)) {
		if err := s.SaveJournal(&JournalStore{Entries: []JournalEntry{}}); err != nil {
			return err
		}
	}
	if !fileExists(s.path(vaultFile)) {
		if err := s.SaveVault(&VaultStore{Resources: []Resource{}}); err != nil {
			return err
		}
	}
	return nil
}

// seedHabits returns the starter habits written on first run.
func seedHabits() []Habit {
	return []Habit{
		{
			ID:           "h1",
			Name:         "Morning Hydration",
			Category:     CategoryHealth,
			Color:        "#06b6d4",
			Frequency:    []int{0, 1, 2, 3, 4, 5, 6},
			TargetStreak: 21,
			EnergyReq:    EnergyVeryEasy,
		},
		{
			ID:           "h2",
			Name:         "Deep Work Session",
			Category:     CategoryWork,
			Color:        "#8b5cf6",
			Frequency:    []int{1, 2, 3, 4, 5},
			TargetStreak: 21,
			EnergyReq:    EnergyHard,
		},
		{
			ID:           "h3",
			Name:         "Meditation",
			Category:     CategoryMind,
			Color:        "#f43f5e",
			Frequency:    []int{0, 1, 2, 3, 4, 5, 6},
			TargetStreak: 21,
			EnergyReq:    EnergyMedium,
		},
	}
}

func defaultStats() UserStats {
	return UserStats{XP: 0, Level: 1, TotalCompleted: 0, LongestStreak: 0}
}

func (s *Storage) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func newID(prefix string) (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(b[:])), nil
}

func (s *Storage) writeJSONAtomic(filename string, v any) error {
	path := s.path(filename)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filename, err)
	}

	// Keep a best-effort backup before overwriting.
	fsutil.BestEffortBackup(path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(path, data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	return nil
}

func (s *Storage) loadJSONWithRecovery(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.writeJSONAtomic(filename, v); err != nil {
				return err
			}
			return nil
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorruptJSON(filename, v, fmt.Errorf("%s is empty", filename))
	}

	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}
	return s.recoverCorruptJSON(filename, v, fmt.Errorf("parse %s: %w", filename, err))
}

func (s *Storage) recoverCorruptJSON(filename string, v any, cause error) error {
	path := s.path(filename)

	// Try backup first.
	bakData, bakErr := os.ReadFile(path + ".bak")
	if bakErr == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if err := json.Unmarshal(bakData, v); err == nil {
			corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
			_ = os.Rename(path, corruptPath)
			_ = s.writeJSONAtomic(filename, v)
			return fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), filename)
		}
	}

	// No usable backup: preserve the broken file (best effort) and reset.
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)
	_ = s.writeJSONAtomic(filename, v)
	return fmt.Errorf("%s (reset to defaults; original moved to %s)", cause.Error(), corruptPath)
}
