package tracker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "plain command", command: "git status", want: "git"},
		{name: "pipe takes first", command: "cat x | grep y", want: "cat"},
		{name: "and-chain takes first", command: "make && make install", want: "make"},
		{name: "semicolon takes first", command: "cd /tmp; ls", want: "cd"},
		{name: "wrapper prefix skipped", command: "time go test ./...", want: "go"},
		{name: "stacked wrappers skipped", command: "nohup nice ./server", want: "server"},
		{name: "path stripped", command: "/usr/local/bin/python3 app.py", want: "python3"},
		{name: "only a wrapper", command: "time", want: "time"},
		{name: "empty", command: "", want: "unknown"},
		{name: "whitespace only", command: "   ", want: "unknown"},
		{name: "separator first", command: "; ls", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseCommand(tt.command))
		})
	}
}

func TestNewEntry_Fields(t *testing.T) {
	e := NewEntry("git status", "/home/user/proj", 1700000000.5, 3)

	assert.Equal(t, 1700000000.5, e.Timestamp)
	assert.Equal(t, "git status", e.Command)
	assert.Equal(t, "git", e.BaseCommand)
	assert.Equal(t, "/home/user/proj", e.Cwd)
	assert.Equal(t, 3.0, e.Duration)
	assert.Equal(t, Plugin, e.PluginName)
	assert.NotEmpty(t, e.Datetime)
}

func TestNewEntry_Defaults(t *testing.T) {
	e := NewEntry("ls", "/tmp", 0, 0)

	assert.NotZero(t, e.Timestamp)
	assert.Equal(t, DefaultDuration, e.Duration)
}

func TestEntityID_StableAndShaped(t *testing.T) {
	a := entityID("proj", "git", "/home/user/proj")
	b := entityID("proj", "git", "/home/user/proj")
	c := entityID("proj", "git", "/elsewhere")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "terminal://proj/git#"))

	hash := a[strings.LastIndex(a, "#")+1:]
	assert.Len(t, hash, 12)
}
