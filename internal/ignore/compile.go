package ignore

import (
	"regexp"
	"strings"
)

// classRe recognizes an escaped character class so it can be restored after
// the wholesale regexp.QuoteMeta pass. The backslash before the closing
// bracket must be mandatory: if it were optional, the greedy group would
// swallow it and the restored class would end with a stray escape.
var classRe = regexp.MustCompile(`\\\[([^\]]+)\\\]`)

// patternToRegex converts a gitignore-style command pattern to a regex source.
//
// Supported wildcards: '*' matches any run of non-whitespace characters,
// '?' matches exactly one, and '[...]' is a literal character class. The
// result is anchored at the start of the command and must be followed by
// whitespace or end-of-string, which gives prefix-of-first-token semantics:
// "git" matches "git status" but not "github-cli".
func patternToRegex(pattern string) string {
	quoted := regexp.QuoteMeta(pattern)

	quoted = strings.ReplaceAll(quoted, `\*`, `[^\s]*`)
	quoted = strings.ReplaceAll(quoted, `\?`, `[^\s]`)

	// Restore escaped [...] back into a real character class.
	quoted = classRe.ReplaceAllString(quoted, `[$1]`)

	return `^` + quoted + `(?:\s|$)`
}

// recompile rebuilds the compiled matcher lists from the raw pattern lists.
// Patterns that fail to compile are skipped; one bad line must not disable
// the rest of the file.
func (e *Engine) recompile() {
	e.compiled = e.compileAll(e.patterns, "ignore")
	e.compiledNegation = e.compileAll(e.negations, "negation")
}

func (e *Engine) compileAll(patterns []string, kind string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(`(?i)` + patternToRegex(pattern))
		if err != nil {
			e.logger.Debug("ignore: invalid %s pattern %q: %v", kind, pattern, err)
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}
