package calendar

import (
	"strings"
	"testing"
	"time"

	"neoflow/internal/storage"
)

func TestExport(t *testing.T) {
	anchor := time.Date(2025, 12, 17, 10, 0, 0, 0, time.UTC)
	habits := []storage.Habit{
		{
			ID:        "h1",
			Name:      "Morning Hydration",
			Category:  storage.CategoryHealth,
			Frequency: []int{0, 1, 2, 3, 4, 5, 6},
			EnergyReq: storage.EnergyVeryEasy,
		},
		{
			ID:        "h2",
			Name:      "Deep Work Session",
			Category:  storage.CategoryWork,
			Frequency: []int{1, 2, 3, 4, 5},
			EnergyReq: storage.EnergyHard,
		},
	}

	got := Export(habits, anchor)

	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"VERSION:2.0\r\n",
		"PRODID:-//NeoFlow//Habit Tracker//EN\r\n",
		"UID:h1@neoflow\r\n",
		"SUMMARY:Morning Hydration\r\n",
		"RRULE:FREQ=WEEKLY;BYDAY=SU,MO,TU,WE,TH,FR,SA\r\n",
		"RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR\r\n",
		"DTSTART;VALUE=DATE:20251217\r\n",
		"CATEGORIES:Work\r\n",
		"END:VCALENDAR\r\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Export() missing %q\n%s", want, got)
		}
	}

	if count := strings.Count(got, "BEGIN:VEVENT"); count != 2 {
		t.Errorf("Export() has %d events, want 2", count)
	}
}

func TestExport_SkipsUnscheduledHabits(t *testing.T) {
	habits := []storage.Habit{
		{ID: "h1", Name: "Paused", Frequency: []int{}},
		{ID: "h2", Name: "Active", Frequency: []int{3}},
	}

	got := Export(habits, time.Now())

	if strings.Contains(got, "Paused") {
		t.Error("habit with empty frequency exported")
	}
	if !strings.Contains(got, "RRULE:FREQ=WEEKLY;BYDAY=WE\r\n") {
		t.Errorf("missing Wednesday rule:\n%s", got)
	}
}

func TestExport_EscapesReservedCharacters(t *testing.T) {
	habits := []storage.Habit{
		{ID: "h1", Name: "Read, write; repeat", Frequency: []int{0}},
	}

	got := Export(habits, time.Now())

	if !strings.Contains(got, `SUMMARY:Read\, write\; repeat`) {
		t.Errorf("reserved characters not escaped:\n%s", got)
	}
}

func TestExport_EmptyCalendar(t *testing.T) {
	got := Export(nil, time.Now())

	if strings.Contains(got, "VEVENT") {
		t.Error("empty habit list produced events")
	}
	if !strings.HasPrefix(got, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(got, "END:VCALENDAR\r\n") {
		t.Errorf("calendar envelope malformed:\n%s", got)
	}
}

func TestWriteLine_FoldsLongLines(t *testing.T) {
	var b strings.Builder
	writeLine(&b, "SUMMARY:"+strings.Repeat("a", 200))
	got := b.String()

	for _, line := range strings.Split(strings.TrimSuffix(got, "\r\n"), "\r\n") {
		if len(line) > 76 {
			t.Errorf("folded line too long (%d): %q", len(line), line)
		}
	}
	if !strings.Contains(got, "\r\n ") {
		t.Error("long line not folded with continuation")
	}
}
