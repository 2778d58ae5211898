// Package main is the entry point for the neoflow application.
// This file contains the import subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"neoflow/internal/config"
	"neoflow/internal/importer"
	"neoflow/internal/storage"
)

// importHelpText is the help message for the import subcommand.
const importHelpText = `neoflow import - Import data from other tools

USAGE:
    neoflow import [OPTIONS] FORMAT FILE

OPTIONS:
    --dry-run      Preview what would be imported without writing
    -h, --help     Show this help message

ARGUMENTS:
    FORMAT    Import format (see below)
    FILE      Path to the export file

SUPPORTED FORMATS:
    webapp    JSON export from the web app

EXAMPLES:
    # Preview an import first
    neoflow import --dry-run webapp export.json

    # Import a web-app export
    neoflow import webapp export.json
`

// runImport handles the "neoflow import" subcommand.
func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	dryRunFlag := fs.Bool("dry-run", false, "preview without writing")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, importHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(importHelpText)
		os.Exit(0)
	}

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: import requires a format and a file")
		fmt.Fprintf(os.Stderr, "Supported formats: %s\n", strings.Join(importer.SupportedFormats(), ", "))
		fmt.Fprintln(os.Stderr, "Run 'neoflow import --help' for usage.")
		os.Exit(1)
	}

	format := fs.Arg(0)
	path := fs.Arg(1)

	imp := importer.GetImporter(format)
	if imp == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		fmt.Fprintf(os.Stderr, "Supported formats: %s\n", strings.Join(importer.SupportedFormats(), ", "))
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if *dryRunFlag {
		previewImport(imp, f)
		return
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

	result, err := imp.Import(f, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Import complete (%s)\n", imp.Name())
	fmt.Printf("  Habits:          %d\n", result.Habits)
	fmt.Printf("  Days logged:     %d\n", result.Days)
	fmt.Printf("  Journal entries: %d\n", result.JournalEntries)
	fmt.Printf("  Resources:       %d\n", result.Resources)
	if result.Skipped > 0 {
		fmt.Printf("  Skipped:         %d\n", result.Skipped)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "  warning: %s\n", e)
	}
}

// previewImport shows what an import would bring in without writing anything.
func previewImport(imp importer.Importer, f *os.File) {
	habits, err := imp.Preview(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error previewing import: %v\n", err)
		os.Exit(1)
	}

	if len(habits) == 0 {
		fmt.Println("No habits found in the export file.")
		return
	}

	fmt.Printf("Would import %d habits (%s):\n", len(habits), imp.Name())

	shown := habits
	if len(shown) > 20 {
		shown = shown[:20]
	}
	for _, h := range shown {
		fmt.Printf("  • %s  [%s / %s]  %d days/week\n", h.Name, h.Category, h.Energy, h.Days)
	}
	if len(habits) > 20 {
		fmt.Printf("  ... and %d more\n", len(habits)-20)
	}

	fmt.Println("\nRun without --dry-run to import.")
}
