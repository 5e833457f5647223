package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldIgnore_Matching(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		command string
		want    bool
	}{
		{name: "exact command with args", file: "cd\n", command: "cd /tmp", want: true},
		{name: "exact command alone", file: "cd\n", command: "cd", want: true},
		{name: "no boundary after match", file: "cd\n", command: "cdx", want: false},
		{name: "prefix of longer name", file: "git\n", command: "github-cli auth", want: false},
		{name: "unlisted command", file: "cd\n", command: "make build", want: false},
		{name: "star wildcard", file: "debug_*\n", command: "debug_trace --level=2", want: true},
		{name: "star stops at whitespace", file: "git*\n", command: "gitk --all", want: true},
		{name: "question mark wildcard", file: "l?\n", command: "ls -la", want: true},
		{name: "question mark needs a char", file: "l?\n", command: "l", want: false},
		{name: "character class", file: "l[sa]\n", command: "la", want: true},
		{name: "character class miss", file: "l[sa]\n", command: "ll", want: false},
		{name: "case insensitive", file: "ls\n", command: "LS -la", want: true},
		{name: "multi-word pattern", file: "git status\n", command: "git status --short", want: true},
		{name: "multi-word pattern prefix only", file: "git status\n", command: "git stash", want: false},
		{name: "negation overrides ignore", file: "git*\n!git status\n", command: "git status", want: false},
		{name: "negation without ignore match is moot", file: "cd\n!git status\n", command: "git status", want: false},
		{name: "negation leaves siblings ignored", file: "git*\n!git status\n", command: "git log", want: true},
		{name: "negation wins over several ignores", file: "git*\ngit status\n!git status\n", command: "git status", want: false},
		{name: "leading whitespace trimmed", file: "cd\n", command: "   cd /tmp", want: true},
		{name: "pipes are not parsed", file: "grep\n", command: "cat x | grep y", want: false},
		{name: "matches up to whole string", file: "ls -la\n", command: "ls -la", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, tt.file)
			assert.Equal(t, tt.want, e.ShouldIgnore(tt.command))
		})
	}
}

func TestShouldIgnore_EmptyCommand(t *testing.T) {
	e := newTestEngine(t, "cd\n")

	assert.True(t, e.ShouldIgnore(""))
	assert.True(t, e.ShouldIgnore("   \t  "))
}

func TestShouldIgnore_EmptyCommandWithNoPatterns(t *testing.T) {
	e := newTestEngine(t, "# only comments here\n")

	assert.True(t, e.ShouldIgnore(""))
	assert.False(t, e.ShouldIgnore("anything"))
}

func TestShouldIgnore_Idempotent(t *testing.T) {
	e := newTestEngine(t, "cd\n")

	first := e.ShouldIgnore("cd /tmp")
	second := e.ShouldIgnore("cd /tmp")

	assert.Equal(t, first, second)
	assert.Len(t, e.patterns, 1)
}
