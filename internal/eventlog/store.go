// Package eventlog records generation runs in a SQLite history database.
// Logging is opt-in and best-effort: callers print failures and carry on.
package eventlog

import "time"

// Output is one target of a run. Error is empty on success.
type Output struct {
	Path   string
	Pixels int
	Error  string
}

// Run is one invocation of the generator.
type Run struct {
	ID        int64
	Time      time.Time
	Source    string
	Renderer  string
	Generated int
	Failed    int
	Outputs   []Output
}

// Store abstracts run history storage.
type Store interface {
	LogRun(run Run) error
	Runs(limit int) ([]Run, error) // newest first, 0 = all
	Clear() error
	Path() string
	Close() error
}

// Open returns the history store at path, creating the database if needed.
func Open(path string) (Store, error) {
	s, err := NewSQLiteStore(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
