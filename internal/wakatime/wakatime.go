// Package wakatime relays logged activity to the wakatime-cli time tracker
package wakatime

import (
	"os/exec"
	"strconv"

	"github.com/bethropolis/termtrack/internal/tracker"
	"github.com/bethropolis/termtrack/internal/utils"
)

// Binary is the external CLI looked up on PATH.
const Binary = "wakatime-cli"

// Relay spawns wakatime-cli for each entry, fire-and-forget. A missing
// binary or a failed spawn is never an error for the caller; relaying is
// strictly best-effort.
type Relay struct {
	logger utils.Logger

	// lookPath and start are swappable for tests.
	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
}

// New creates a Relay.
func New(logger utils.Logger) *Relay {
	if logger == nil {
		logger = &utils.NoopLogger{}
	}
	return &Relay{
		logger:   logger,
		lookPath: exec.LookPath,
		start:    (*exec.Cmd).Start,
	}
}

// Args builds the wakatime-cli argument list for an entry.
func Args(e tracker.Entry) []string {
	return []string{
		"--entity", e.Entity,
		"--entity-type", "url",
		"--project", e.Project,
		"--language", e.Language,
		"--time", strconv.FormatFloat(e.Timestamp, 'f', -1, 64),
		"--plugin", e.PluginName,
		"--category", "coding",
		"--timeout", "5",
	}
}

// Send spawns wakatime-cli detached for the entry. The child is never waited
// on; its output is discarded.
func (r *Relay) Send(e tracker.Entry) {
	bin, err := r.lookPath(Binary)
	if err != nil {
		r.logger.Debug("wakatime: %s not on PATH, skipping relay", Binary)
		return
	}

	cmd := exec.Command(bin, Args(e)...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := r.start(cmd); err != nil {
		r.logger.Debug("wakatime: could not spawn %s: %v", Binary, err)
		return
	}

	// Detach so the short-lived hook process can exit immediately.
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	r.logger.Debug("wakatime: relayed %s", e.Entity)
}
