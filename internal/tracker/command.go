package tracker

import (
	"path/filepath"
	"strings"
)

// wrapperPrefixes are commands that wrap the command we actually care about.
var wrapperPrefixes = map[string]struct{}{
	"time":    {},
	"nohup":   {},
	"nice":    {},
	"ionice":  {},
	"timeout": {},
	"strace":  {},
	"ltrace":  {},
}

// BaseCommand extracts the base command name from a full command line: the
// first command of a pipe/&&/; chain, with wrapper prefixes skipped and path
// components stripped. Returns "unknown" when nothing remains.
func BaseCommand(command string) string {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return "unknown"
	}

	// Only the first command of a compound line is attributed.
	for _, sep := range []string{"|", "&&", ";"} {
		if idx := strings.Index(cmd, sep); idx >= 0 {
			cmd = cmd[:idx]
		}
	}

	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return "unknown"
	}

	i := 0
	for i < len(fields) {
		if _, ok := wrapperPrefixes[fields[i]]; !ok {
			break
		}
		i++
	}

	if i < len(fields) {
		return filepath.Base(fields[i])
	}
	return fields[0]
}
