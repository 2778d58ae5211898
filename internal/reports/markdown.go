// Package reports provides daily and weekly report generation for the neoflow app.
package reports

import (
	"fmt"
	"strings"
)

// FormatDailyMarkdown renders a daily report as human-readable Markdown.
func FormatDailyMarkdown(report *DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Daily Report: %s\n\n", report.Date.Format("Monday, January 2, 2006"))

	fmt.Fprintf(&b, "## Habits (%d/%d scheduled, %.0f%%)\n\n",
		report.Habits.CompletedCount, report.Habits.ScheduledCount, report.Habits.CompletionRate)

	if len(report.Habits.Habits) == 0 {
		b.WriteString("_No habits defined._\n\n")
	} else {
		for _, h := range report.Habits.Habits {
			mark := " "
			switch {
			case h.Done:
				mark = "x"
			case h.MissedReason != "":
				mark = "-"
			}
			line := fmt.Sprintf("- [%s] %s (%s, %s)", mark, h.Name, h.Category, h.Energy)
			if !h.Scheduled {
				line += " _(not scheduled)_"
			}
			if h.Streak > 0 {
				line += fmt.Sprintf(" — streak %d", h.Streak)
			}
			if h.MissedReason != "" {
				line += fmt.Sprintf(" — missed: %s", h.MissedReason)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	writeStats(&b, report.Stats)

	fmt.Fprintf(&b, "\n_Generated at %s_\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}

// FormatWeeklyMarkdown renders a weekly report as human-readable Markdown.
func FormatWeeklyMarkdown(report *WeeklyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Report: %s - %s\n\n",
		report.StartDate.Format("Jan 2"), report.EndDate.Format("Jan 2, 2006"))

	fmt.Fprintf(&b, "## Habits (%d/%d expected, %.0f%%)\n\n",
		report.Habits.TotalCompleted, report.Habits.TotalExpected, report.Habits.OverallRate)

	if len(report.Habits.Habits) == 0 {
		b.WriteString("_No habits defined._\n\n")
	} else {
		b.WriteString("| Habit | Su Mo Tu We Th Fr Sa | Done | Streak |\n")
		b.WriteString("|-------|----------------------|------|--------|\n")
		for _, h := range report.Habits.Habits {
			fmt.Fprintf(&b, "| %s | %s | %d/%d | %d |\n",
				h.Name, weekGrid(h), h.CompletedCount, h.ExpectedCount, h.Streak)
		}
		b.WriteString("\n")
	}

	if len(report.DailyBreakdown) > 0 {
		b.WriteString("## Day by day\n\n")
		for _, d := range report.DailyBreakdown {
			line := fmt.Sprintf("- %s %s: %d/%d habits", d.DayOfWeek, d.Date, d.HabitsComplete, d.HabitsExpected)
			if d.MissedLogged > 0 {
				line += fmt.Sprintf(" (%d missed with reason)", d.MissedLogged)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	writeStats(&b, report.Stats)

	fmt.Fprintf(&b, "\n_Generated at %s_\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}

func writeStats(b *strings.Builder, s StatsSummary) {
	b.WriteString("## Progress\n\n")
	fmt.Fprintf(b, "- Level %d (%d XP)\n", s.Level, s.XP)
	fmt.Fprintf(b, "- %d total completions\n", s.TotalCompleted)
	fmt.Fprintf(b, "- Best streak: %d days\n", s.LongestStreak)
}

// weekGrid renders a habit's week as a compact cell row: x done, . skipped
// scheduled day, space for unscheduled days.
func weekGrid(h WeeklyHabitStatus) string {
	cells := make([]string, 7)
	for i := 0; i < 7; i++ {
		switch {
		case i < len(h.DaysCompleted) && h.DaysCompleted[i]:
			cells[i] = "x"
		case i < len(h.DaysScheduled) && h.DaysScheduled[i]:
			cells[i] = "."
		default:
			cells[i] = " "
		}
	}
	return strings.Join(cells, "  ")
}
