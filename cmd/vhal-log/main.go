// Command vhal-log is a tool for viewing and analyzing vehicle HAL event logs.
//
// Event logs are written by fake-vhal when it runs with the -event-log flag.
//
// Usage:
//
//	vhal-log <command> [flags] <file.vlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	vhal-log view vhal.vlog
//
//	# View only failed client sets
//	vhal-log view --kind set --source client vhal.vlog
//
//	# Export one property to CSV
//	vhal-log export --format csv --prop HVAC_FAN_SPEED vhal.vlog
//
//	# Keep one session in a new file
//	vhal-log filter --session 3f2a9c1e-... -o session.vlog vhal.vlog
//
//	# Show statistics
//	vhal-log stats vhal.vlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vhal-go/fakevhal/cmd/vhal-log/commands"
	"github.com/vhal-go/fakevhal/pkg/log"
)

const usage = `vhal-log - Vehicle HAL Event Log Analyzer

Usage:
  vhal-log <command> [flags] <file.vlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "vhal-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set for a subcommand with the shared selection
// flags registered.
func newFlagSet(name, summary, synopsis string, sel *commands.Selection) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "vhal-log %s - %s\n\nUsage:\n  vhal-log %s\n\nFlags:\n", name, summary, synopsis)
		fs.PrintDefaults()
	}

	fs.StringVar(&sel.Session, "session", "", "Filter by session ID")
	fs.StringVar(&sel.Kind, "kind", "", "Filter by kind (get, set, change, set_error, seed)")
	fs.StringVar(&sel.Source, "source", "", "Filter by source (client, hardware)")
	fs.StringVar(&sel.Prop, "prop", "", "Filter by property name or ID")
	fs.StringVar(&sel.Area, "area", "", "Filter by area ID")
	fs.StringVar(&sel.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&sel.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return fs
}

// parseArgs parses args and returns the log path and filter, exiting on
// invalid input.
func parseArgs(fs *flag.FlagSet, sel *commands.Selection, args []string) (string, log.Filter) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := sel.Filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return fs.Arg(0), filter
}

func runView(args []string) {
	var sel commands.Selection
	fs := newFlagSet("view", "View log file in human-readable format", "view [flags] <file.vlog>", &sel)
	path, filter := parseArgs(fs, &sel, args)

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	var sel commands.Selection
	fs := newFlagSet("export", "Export log file to JSON or CSV format", "export [flags] <file.vlog>", &sel)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path, filter := parseArgs(fs, &sel, args)

	if err := commands.RunExport(path, *format, *output, filter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	var sel commands.Selection
	fs := newFlagSet("filter", "Filter log file and write to new file", "filter [flags] <file.vlog>", &sel)
	output := fs.String("o", "", "Output file (required)")
	path, filter := parseArgs(fs, &sel, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunFilter(path, *output, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	var sel commands.Selection
	fs := newFlagSet("stats", "Show statistics about the log file", "stats [flags] <file.vlog>", &sel)
	path, filter := parseArgs(fs, &sel, args)

	if err := commands.RunStats(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
