// Package tracker records command activity to local JSON Lines log files
package tracker

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/bethropolis/termtrack/internal/config"
	"github.com/bethropolis/termtrack/internal/language"
	"github.com/bethropolis/termtrack/internal/project"
)

// Plugin identifies the log producer in every entry.
var Plugin = "termtrack/" + config.Version

// DefaultDuration is assumed when the shell hook reports no duration.
const DefaultDuration = 2.0

// Entry is one recorded command, serialized as a single JSON line.
type Entry struct {
	Timestamp   float64 `json:"timestamp"`
	Datetime    string  `json:"datetime"`
	Command     string  `json:"command"`
	BaseCommand string  `json:"base_command"`
	Cwd         string  `json:"cwd"`
	Project     string  `json:"project"`
	Language    string  `json:"language"`
	Entity      string  `json:"entity"`
	Duration    float64 `json:"duration"`
	PluginName  string  `json:"plugin"`
}

// NewEntry builds a log entry for a command. Zero timestamp means "now";
// zero duration falls back to DefaultDuration.
func NewEntry(command, cwd string, timestamp, duration float64) Entry {
	if timestamp == 0 {
		timestamp = float64(time.Now().UnixNano()) / float64(time.Second)
	}
	if duration == 0 {
		duration = DefaultDuration
	}

	base := BaseCommand(command)
	proj := project.Detect(cwd)

	return Entry{
		Timestamp:   timestamp,
		Datetime:    unixToRFC3339(timestamp),
		Command:     command,
		BaseCommand: base,
		Cwd:         cwd,
		Project:     proj,
		Language:    language.FromCommand(command),
		Entity:      entityID(proj, base, cwd),
		Duration:    duration,
		PluginName:  Plugin,
	}
}

// entityID builds a stable URL-style identity for a command in a directory.
func entityID(proj, base, cwd string) string {
	sum := md5.Sum([]byte(base + ":" + cwd))
	return fmt.Sprintf("terminal://%s/%s#%s", proj, base, hex.EncodeToString(sum[:])[:12])
}

func unixToRFC3339(timestamp float64) string {
	sec := int64(timestamp)
	nsec := int64((timestamp - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).Format(time.RFC3339)
}
