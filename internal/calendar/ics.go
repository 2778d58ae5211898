// Package calendar renders the habit schedule as an iCalendar (RFC 5545)
// document, one weekly recurring event per scheduled habit.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"neoflow/internal/storage"
)

const prodID = "-//NeoFlow//Habit Tracker//EN"

// byDay maps weekday indices (0=Sunday) to iCalendar BYDAY codes.
var byDay = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Export renders habits as a VCALENDAR document. Habits with an empty
// frequency have no recurrence to describe and are skipped. The anchor
// time seeds DTSTART so importing calendars start recurring now, not at
// some fixed epoch.
func Export(habits []storage.Habit, anchor time.Time) string {
	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)

	for _, h := range habits {
		if len(h.Frequency) == 0 {
			continue
		}
		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+escapeText(h.ID)+"@neoflow")
		writeLine(&b, "DTSTAMP:"+anchor.UTC().Format("20060102T150405Z"))
		writeLine(&b, "DTSTART;VALUE=DATE:"+anchor.Format("20060102"))
		writeLine(&b, "SUMMARY:"+escapeText(h.Name))
		if h.Category != "" {
			writeLine(&b, "CATEGORIES:"+escapeText(string(h.Category)))
		}
		if h.EnergyReq != "" {
			writeLine(&b, "DESCRIPTION:"+escapeText("Energy: "+string(h.EnergyReq)))
		}
		writeLine(&b, "RRULE:FREQ=WEEKLY;BYDAY="+byDayList(h.Frequency))
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func byDayList(frequency []int) string {
	days := make([]string, 0, len(frequency))
	for _, d := range frequency {
		if d >= 0 && d < len(byDay) {
			days = append(days, byDay[d])
		}
	}
	return strings.Join(days, ",")
}

// escapeText escapes the characters RFC 5545 reserves in TEXT values.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
		"\r", "",
	)
	return r.Replace(s)
}

// writeLine appends a content line with the CRLF terminator the format
// requires, folding lines longer than 75 octets.
func writeLine(b *strings.Builder, line string) {
	const limit = 75
	for len(line) > limit {
		cut := limit
		for cut > 0 && !isBoundary(line, cut) {
			cut--
		}
		if cut == 0 {
			cut = limit
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

// isBoundary reports whether cutting at i keeps UTF-8 sequences intact.
func isBoundary(s string, i int) bool {
	return i < len(s) && (s[i]&0xC0) != 0x80
}

// ExportAll is a convenience wrapper that loads habits from storage.
func ExportAll(s *storage.Storage) (string, error) {
	habits, err := s.LoadHabits()
	if err != nil {
		return "", fmt.Errorf("load habits: %w", err)
	}
	return Export(habits.Habits, s.Now()), nil
}
