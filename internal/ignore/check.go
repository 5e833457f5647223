package ignore

import "strings"

// ShouldIgnore reports whether a command line should be excluded from
// tracking. The decision honors gitignore-style precedence: if any ignore
// pattern matches, the command is ignored unless any negation pattern also
// matches, in which case negation wins unconditionally.
//
// The pattern file is re-checked on every call so out-of-process edits take
// effect on the next command; when the mtime is unchanged this is a cheap
// no-op.
func (e *Engine) ShouldIgnore(command string) bool {
	command = strings.TrimSpace(command)

	// Nothing meaningful to track.
	if command == "" {
		return true
	}

	e.Load()

	ignored := false
	for _, re := range e.compiled {
		if re.MatchString(command) {
			e.logger.Debug("ignore: %q matched pattern %s", command, re.String())
			ignored = true
			break
		}
	}

	if ignored {
		for _, re := range e.compiledNegation {
			if re.MatchString(command) {
				e.logger.Debug("ignore: %q re-included by negation %s", command, re.String())
				return false
			}
		}
	}

	return ignored
}
