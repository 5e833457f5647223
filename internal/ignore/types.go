// Package ignore decides whether a command line should be excluded from tracking
package ignore

import (
	"regexp"
	"time"

	"github.com/bethropolis/termtrack/internal/utils"
)

// LoadStatus reports what a Load pass actually did, so callers can tell
// "no patterns configured" apart from "load failed".
type LoadStatus int

const (
	// StatusUnchanged means the file's mtime matched the cached parse; nothing was re-read.
	StatusUnchanged LoadStatus = iota
	// StatusLoaded means the file was (re)parsed successfully.
	StatusLoaded
	// StatusBootstrapped means no file existed and a default one was written.
	// The engine stays empty for the rest of this process; the default
	// entries take effect once the file's mtime changes or a new engine
	// loads it.
	StatusBootstrapped
	// StatusDegraded means reading or creating the file failed; the engine
	// holds empty pattern sets and every command will be tracked.
	StatusDegraded
)

// String returns a human-readable name for the status.
func (s LoadStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusLoaded:
		return "loaded"
	case StatusBootstrapped:
		return "bootstrapped"
	case StatusDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Engine matches command lines against gitignore-style patterns loaded from a
// user-editable file. The file is the single source of truth: every query
// re-checks its modification time and reloads when it changed, so edits made
// by the user or a sibling process take effect on the very next command.
type Engine struct {
	path string

	// Raw pattern text in file order.
	patterns  []string
	negations []string

	// Compiled forms; entries that fail to compile are dropped, so these
	// may be shorter than the raw lists.
	compiled         []*regexp.Regexp
	compiledNegation []*regexp.Regexp

	lastMTime time.Time
	hasMTime  bool

	logger utils.Logger
}

// Path returns the location of the backing pattern file.
func (e *Engine) Path() string {
	return e.path
}
