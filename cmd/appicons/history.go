package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Mavwarf/appicons/internal/eventlog"
	"github.com/Mavwarf/appicons/internal/paths"
)

const defaultHistoryRuns = 10

func historyCmd(args []string) {
	path := paths.HistoryPath()
	if _, err := os.Stat(path); err != nil {
		fmt.Println("No history found. Enable it with \"log\": true in appicons.json or APPICONS_LOG=true.")
		return
	}

	s, err := eventlog.Open(path)
	if err != nil {
		fatal("%v", err)
	}
	defer s.Close()

	limit := defaultHistoryRuns
	if len(args) > 0 {
		if args[0] == "clear" {
			if err := s.Clear(); err != nil {
				fatal("%v", err)
			}
			fmt.Printf("History cleared (%s).\n", s.Path())
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			fatal("history count must be a non-negative number, got %q", args[0])
		}
		limit = n
	}

	runs, err := s.Runs(limit)
	if err != nil {
		fatal("%v", err)
	}
	printRuns(os.Stdout, runs)
}

// printRuns writes one summary line per run followed by its failed outputs.
func printRuns(w io.Writer, runs []eventlog.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	for _, r := range runs {
		when := "unknown time       "
		if !r.Time.IsZero() {
			when = r.Time.Local().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%s  %-6s  %2d generated  %2d failed  %s\n",
			when, r.Renderer, r.Generated, r.Failed, r.Source)
		for _, o := range r.Outputs {
			if o.Error != "" {
				fmt.Fprintf(w, "    %s (%dx%d): %s\n", o.Path, o.Pixels, o.Pixels, o.Error)
			}
		}
	}
}
