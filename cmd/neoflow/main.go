// Package main is the entry point for the neoflow application.
// It loads configuration, initializes storage, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"neoflow/internal/config"
	"neoflow/internal/notify"
	"neoflow/internal/storage"
	"neoflow/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `neoflow - An energy-aware habit dashboard for your terminal

USAGE:
    neoflow [OPTIONS]
    neoflow <command> [ARGS]

COMMANDS:
    backup           Create a backup of all data
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    export           Generate a daily report (Markdown)
    export --weekly  Generate a weekly report
    export -f json   Output report as JSON
    export --ics     Export the habit schedule as an iCalendar file
    import           Import data from the web app
    import webapp FILE  Import a web-app JSON export

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    neoflow is a terminal habit tracker that adapts to how much energy you
    have. Declare your state (Critical, Tired, Normal, Energized) and the
    dashboard filters down to habits you can actually do right now.

FEATURES:
    • Habits     - Weekday scheduling, week view, streaks, target streaks
    • Energy     - Adaptive filtering by declared energy state
    • Journal    - One-line victory log with #tags
    • Vault      - Links, notes, and files tied to your habits
    • XP         - 10 XP per completion, levels every 100 XP
    • Local Data - Plain JSON files in ~/.neoflow/

KEYBINDINGS:
    Global:
        Tab          Switch between panes
        1, 2, 3      Jump to specific pane
        ?            Show help overlay
        q            Quit

    Habits Pane:
        j/k, ↓/↑     Navigate
        a            Add habit
        d/Space      Toggle today's completion
        m            Log a missed reason
        e            Cycle energy state
        s            Cycle sort mode
        K/J          Move habit up/down
        x            Delete habit

    Journal Pane:
        a            Log a win (#tags allowed)

    Vault Pane:
        a            Add resource
        x            Delete resource

DATA STORAGE:
    All data is stored per profile in ~/.neoflow/<profile>/ as plain JSON:
        habits.json   - Habit definitions
        history.json  - Completion ledger
        missed.json   - Missed-day reasons
        stats.json    - XP, level, streak aggregates
        journal.json  - Victory log
        vault.json    - Resource vault

CONFIGURATION:
    Optional config file: ~/.config/neoflow/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start the app
    neoflow

    # Create a backup
    neoflow backup

    # Restore from a backup
    neoflow restore --latest

    # Generate today's report
    neoflow export

    # Generate weekly report as JSON
    neoflow export --weekly --format json

    # Export the schedule for your calendar app
    neoflow export --ics --output habits.ics

    # Show version
    neoflow --version
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		case "import":
			runImport(os.Args[2:])
			return
		}
	}

	// Define flags
	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("neoflow version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	// Reject unknown arguments
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/neoflow/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize storage with the configured profile directory
	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// Create styles from theme config
	styles := ui.NewStylesFromTheme(&cfg.Theme)

	// Create app config with keys, UX, and notification settings
	appCfg := &ui.AppConfig{
		Keys:                      &cfg.Keys,
		ConfirmDeletions:          cfg.UX.ConfirmDeletions,
		PromptJournalOnCompletion: cfg.UX.PromptJournalOnCompletion,
		ShowOnboarding:            true,
		NarrowLayoutThreshold:     cfg.UX.NarrowLayoutThreshold,
		NotifyCelebrate:           cfg.Notifications.Enabled && cfg.Notifications.Celebrate,
		NotifySound:               cfg.Notifications.Sound,
	}
	if cfg.Notifications.Enabled {
		appCfg.Notifier = notify.New()
	}

	if err := ui.Run(store, styles, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
