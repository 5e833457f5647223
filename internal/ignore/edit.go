package ignore

import (
	"os"
	"path/filepath"
	"strings"
)

// AddPattern appends a raw pattern line to the backing file and reloads.
// Duplicates are not checked; matching is a union, so repeats are harmless.
// Prefix the pattern with '!' to add a negation entry.
func (e *Engine) AddPattern(pattern string) error {
	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		e.logger.Debug("ignore: could not create config dir for %s: %v", e.path, err)
		return err
	}

	f, err := os.OpenFile(e.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		e.logger.Debug("ignore: could not open %s for append: %v", e.path, err)
		return err
	}

	_, err = f.WriteString("\n" + pattern + "\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		e.logger.Debug("ignore: could not append pattern %q: %v", pattern, err)
		return err
	}

	e.Load()
	return nil
}

// RemovePattern rewrites the file without the first line whose trimmed text
// equals pattern or "!"+pattern, so removal works whether the caller means an
// ignore entry or its negation. If both forms exist, whichever occurs first
// in the file is the one removed. Returns whether a matching line was found.
func (e *Engine) RemovePattern(pattern string) (bool, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		if !os.IsNotExist(err) {
			e.logger.Debug("ignore: could not read %s: %v", e.path, err)
		}
		return false, nil
	}

	lines := strings.Split(string(data), "\n")
	kept := make([]string, 0, len(lines))
	found := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !found && (trimmed == pattern || trimmed == "!"+pattern) {
			found = true
			continue
		}
		kept = append(kept, line)
	}

	if !found {
		return false, nil
	}

	if err := os.WriteFile(e.path, []byte(strings.Join(kept, "\n")), 0o644); err != nil {
		e.logger.Debug("ignore: could not rewrite %s: %v", e.path, err)
		return false, err
	}

	e.Load()
	return true, nil
}

// ListPatterns returns all current patterns after a fresh load: ignore
// patterns in file order, then negation patterns each prefixed with '!'.
func (e *Engine) ListPatterns() []string {
	e.Load()

	result := make([]string, 0, len(e.patterns)+len(e.negations))
	result = append(result, e.patterns...)
	for _, pattern := range e.negations {
		result = append(result, "!"+pattern)
	}
	return result
}
