package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/termtrack/internal/utils"
)

// Tracker appends command entries to per-day JSON Lines files in a log
// directory. One file per day keeps cleanup a matter of deleting old files.
type Tracker struct {
	logDir string
	logger utils.Logger
	now    func() time.Time
}

// Option functions for configuration
type Option func(*Tracker)

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger utils.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// withClock overrides the clock; used by tests.
func withClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a Tracker writing to the given log directory.
func New(logDir string, opts ...Option) *Tracker {
	t := &Tracker{
		logDir: logDir,
		logger: &utils.NoopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// LogFile returns the day file an entry recorded at the given time lands in.
func (t *Tracker) LogFile(at time.Time) string {
	return filepath.Join(t.logDir, fmt.Sprintf("termtrack-%s.jsonl", at.Format("2006-01-02")))
}

// Track appends an entry to today's log file, creating the directory as
// needed.
func (t *Tracker) Track(e Entry) error {
	if err := os.MkdirAll(t.logDir, 0o755); err != nil {
		t.logger.Debug("tracker: could not create log dir %s: %v", t.logDir, err)
		return err
	}

	line, err := json.Marshal(e)
	if err != nil {
		t.logger.Debug("tracker: could not marshal entry for %q: %v", e.Command, err)
		return err
	}

	path := t.LogFile(t.now())
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.logger.Debug("tracker: could not open %s: %v", path, err)
		return err
	}

	_, err = f.Write(append(line, '\n'))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		t.logger.Debug("tracker: could not write entry: %v", err)
		return err
	}

	t.logger.Debug("tracker: logged %q in project %q (language: %s, duration: %.1fs)",
		e.Command, e.Project, e.Language, e.Duration)
	return nil
}

// Cleanup removes day files whose modification time is older than the given
// number of days. Returns how many files were removed; individual failures
// are logged and skipped.
func (t *Tracker) Cleanup(daysToKeep int) (int, error) {
	cutoff := t.now().Add(-time.Duration(daysToKeep) * 24 * time.Hour)

	matches, err := filepath.Glob(filepath.Join(t.logDir, "termtrack-*.jsonl"))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			t.logger.Debug("tracker: could not stat %s: %v", path, err)
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				t.logger.Debug("tracker: could not remove %s: %v", path, err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}
