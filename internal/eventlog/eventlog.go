package eventlog

import (
	"fmt"
	"os"
)

// Log opens the history database at path, stores run and closes it.
// Errors are printed to stderr but never returned; logging is best-effort.
func Log(path string, run Run) {
	s, err := Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventlog: %v\n", err)
		return
	}
	defer s.Close()

	if err := s.LogRun(run); err != nil {
		fmt.Fprintf(os.Stderr, "eventlog: %v\n", err)
	}
}
