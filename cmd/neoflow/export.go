// Package main is the entry point for the neoflow application.
// This file contains the export subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"neoflow/internal/calendar"
	"neoflow/internal/config"
	"neoflow/internal/fsutil"
	"neoflow/internal/reports"
	"neoflow/internal/storage"
)

// exportHelpText is the help message for the export subcommand.
const exportHelpText = `neoflow export - Generate reports and calendar exports

USAGE:
    neoflow export [OPTIONS] [DATE]

OPTIONS:
    -d, --daily          Generate a daily report (default)
    -w, --weekly         Generate a weekly report
    --ics                Export the habit schedule as an iCalendar file
    -f, --format FORMAT  Output format: markdown (default) or json
    -o, --output FILE    Write output to a file instead of stdout
    -h, --help           Show this help message

ARGUMENTS:
    DATE    Report date in YYYY-MM-DD form (defaults to today).
            For weekly reports this is the start of the week.

EXAMPLES:
    # Today's report to stdout
    neoflow export

    # A weekly report starting on a specific Monday
    neoflow export --weekly 2025-12-15

    # Daily report as JSON
    neoflow export --format json

    # Write a report to a file
    neoflow export --weekly --output week.md

    # Export the schedule for your calendar app
    neoflow export --ics --output habits.ics
`

// runExport handles the "neoflow export" subcommand.
func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	dailyFlag := fs.Bool("daily", false, "generate a daily report")
	fs.BoolVar(dailyFlag, "d", false, "generate a daily report (shorthand)")

	weeklyFlag := fs.Bool("weekly", false, "generate a weekly report")
	fs.BoolVar(weeklyFlag, "w", false, "generate a weekly report (shorthand)")

	icsFlag := fs.Bool("ics", false, "export the habit schedule as iCalendar")

	formatFlag := fs.String("format", "markdown", "output format: markdown or json")
	fs.StringVar(formatFlag, "f", "markdown", "output format (shorthand)")

	outputFlag := fs.String("output", "", "write output to file")
	fs.StringVar(outputFlag, "o", "", "write output to file (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, exportHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(exportHelpText)
		os.Exit(0)
	}

	// Load config to get data directory
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// iCalendar export ignores the report flags entirely.
	if *icsFlag {
		ics, err := calendar.ExportAll(store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting calendar: %v\n", err)
			os.Exit(1)
		}
		writeOutput([]byte(ics), *outputFlag)
		return
	}

	// Determine report date (defaults to today)
	date := store.Now()
	if fs.NArg() > 0 {
		parsed, err := time.ParseInLocation("2006-01-02", fs.Arg(0), time.Local)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid date %q (expected YYYY-MM-DD)\n", fs.Arg(0))
			os.Exit(1)
		}
		date = parsed
	}

	generator := reports.NewGenerator(store)

	var output []byte
	switch {
	case *weeklyFlag:
		report, err := generator.GenerateWeekly(date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating weekly report: %v\n", err)
			os.Exit(1)
		}
		switch *formatFlag {
		case "json":
			output, err = reports.FormatWeeklyJSON(report)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error formatting report: %v\n", err)
				os.Exit(1)
			}
		case "markdown", "md":
			output = []byte(reports.FormatWeeklyMarkdown(report))
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown format %q (use markdown or json)\n", *formatFlag)
			os.Exit(1)
		}
	default:
		report, err := generator.GenerateDaily(date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating daily report: %v\n", err)
			os.Exit(1)
		}
		switch *formatFlag {
		case "json":
			output, err = reports.FormatDailyJSON(report)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error formatting report: %v\n", err)
				os.Exit(1)
			}
		case "markdown", "md":
			output = []byte(reports.FormatDailyMarkdown(report))
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown format %q (use markdown or json)\n", *formatFlag)
			os.Exit(1)
		}
	}

	writeOutput(output, *outputFlag)
}

// writeOutput sends data to a file or stdout.
func writeOutput(data []byte, path string) {
	if path == "" {
		fmt.Print(string(data))
		return
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Written to %s\n", path)
}
