package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/termtrack/internal/utils"
)

// DefaultPath returns the default location of the ignore file
// (~/.config/termtrack/ignore).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a relative path; the engine degrades gracefully anyway.
		return filepath.Join(".config", "termtrack", "ignore")
	}
	return filepath.Join(home, ".config", "termtrack", "ignore")
}

// New creates an Engine and performs an initial load. Construction never
// fails: any I/O problem degrades to empty pattern sets, which means every
// command gets tracked.
func New(opts ...Option) *Engine {
	e := &Engine{
		path:   DefaultPath(),
		logger: &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.Load()
	return e
}

// Load refreshes the in-memory pattern state from the backing file.
//
// Missing file: a default file with illustrative patterns is written and the
// engine stays empty until the next load (the caller sees StatusBootstrapped).
// Unchanged mtime: cheap no-op. Anything going wrong resets the engine to
// empty pattern sets; a broken ignore file must never stop command tracking.
func (e *Engine) Load() LoadStatus {
	info, err := os.Stat(e.path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := e.writeDefaultFile(); werr != nil {
				e.logger.Debug("ignore: could not create default file %s: %v", e.path, werr)
				e.reset()
				return StatusDegraded
			}
			e.logger.Debug("ignore: created default pattern file at %s", e.path)
			// Record the fresh file's mtime so its entries stay inert for
			// this process; they activate once the file is touched again
			// or a new process loads it.
			if info, serr := os.Stat(e.path); serr == nil {
				e.lastMTime = info.ModTime()
				e.hasMTime = true
			}
			e.reset()
			return StatusBootstrapped
		}
		e.logger.Debug("ignore: cannot stat %s: %v", e.path, err)
		e.reset()
		return StatusDegraded
	}

	if e.hasMTime && info.ModTime().Equal(e.lastMTime) {
		return StatusUnchanged
	}

	e.lastMTime = info.ModTime()
	e.hasMTime = true

	f, err := os.Open(e.path)
	if err != nil {
		e.logger.Debug("ignore: cannot open %s: %v", e.path, err)
		e.reset()
		return StatusDegraded
	}
	defer f.Close()

	var patterns, negations []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "!") {
			pattern := strings.TrimSpace(line[1:])
			if pattern != "" {
				negations = append(negations, pattern)
			}
		} else {
			patterns = append(patterns, line)
		}
	}

	if err := scanner.Err(); err != nil {
		e.logger.Debug("ignore: error reading %s: %v", e.path, err)
		e.reset()
		return StatusDegraded
	}

	e.patterns = patterns
	e.negations = negations
	e.recompile()

	e.logger.Debug("ignore: loaded %d pattern(s), %d negation(s) from %s",
		len(e.patterns), len(e.negations), e.path)
	return StatusLoaded
}

// reset drops all pattern state, raw and compiled.
func (e *Engine) reset() {
	e.patterns = nil
	e.negations = nil
	e.compiled = nil
	e.compiledNegation = nil
}

// writeDefaultFile creates the parent directory and writes the default
// pattern file. The uncommented entries become active on the next load.
func (e *Engine) writeDefaultFile() error {
	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(e.path, []byte(defaultFileContent), 0o644)
}

const defaultFileContent = `# Termtrack Ignore Patterns
# This file uses .gitignore-style syntax to specify commands to ignore
# Lines starting with # are comments
# Use ! to negate patterns (include commands that would otherwise be ignored)

# System and shell built-ins
cd
pwd
ls
ll
la
clear
exit
logout
history

# Navigation and basic file operations (uncomment if you want to ignore these)
# tree
# exa
# lsd

# Temporary or testing commands
test*
tmp*

# Sensitive commands (uncomment to ignore)
# ssh*
# scp*
# rsync*

# Version control status checks (uncomment if you want to ignore frequent status checks)
# git status
# git diff
# git log*

# Package manager update checks
# apt update
# brew update
# pacman -Sy

# Example: Ignore all commands starting with "debug_"
debug_*

# Example: Ignore specific command with arguments
# docker ps -a

# Example negation: Always track python commands even if other python* patterns exist
# !python
# !python3
`
