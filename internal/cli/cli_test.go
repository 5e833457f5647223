package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestIgnoreAddListRemove(t *testing.T) {
	ignoreFile := filepath.Join(t.TempDir(), "ignore")

	out, err := runCLI(t, "ignore", "--ignore-file", ignoreFile, "add", "foo*")
	require.NoError(t, err)
	assert.Contains(t, out, "Added pattern: foo*")

	_, err = runCLI(t, "ignore", "--ignore-file", ignoreFile, "add", "!foo")
	require.NoError(t, err)

	out, err = runCLI(t, "ignore", "--ignore-file", ignoreFile, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "foo*")
	assert.Contains(t, out, "!foo")

	out, err = runCLI(t, "ignore", "--ignore-file", ignoreFile, "remove", "foo*")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed pattern: foo*")

	out, err = runCLI(t, "ignore", "--ignore-file", ignoreFile, "remove", "nope")
	require.NoError(t, err)
	assert.Contains(t, out, "Pattern not found: nope")
}

func TestIgnoreCheck(t *testing.T) {
	ignoreFile := filepath.Join(t.TempDir(), "ignore")
	require.NoError(t, os.WriteFile(ignoreFile, []byte("git*\n!git status\n"), 0o644))

	out, err := runCLI(t, "ignore", "--ignore-file", ignoreFile, "check", "git", "log")
	assert.ErrorIs(t, err, errIgnored)
	assert.Contains(t, out, "IGNORE")

	out, err = runCLI(t, "ignore", "--ignore-file", ignoreFile, "check", "git", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "TRACK")
}

func TestIgnorePath(t *testing.T) {
	ignoreFile := filepath.Join(t.TempDir(), "ignore")

	out, err := runCLI(t, "ignore", "--ignore-file", ignoreFile, "path")
	require.NoError(t, err)
	assert.Contains(t, out, ignoreFile)
}

func TestTrackCommand_WritesLog(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	ignoreFile := filepath.Join(dir, "ignore")
	require.NoError(t, os.WriteFile(ignoreFile, []byte("cd\n"), 0o644))

	_, err := runCLI(t, "--ignore-file", ignoreFile, "--log-dir", logDir, "--", "make", "build")
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(logDir, "termtrack-*.jsonl"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"command":"make build"`)
	assert.Contains(t, string(data), `"base_command":"make"`)
}

func TestTrackCommand_IgnoredWritesNothing(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	ignoreFile := filepath.Join(dir, "ignore")
	require.NoError(t, os.WriteFile(ignoreFile, []byte("git*\n"), 0o644))

	_, err := runCLI(t, "--ignore-file", ignoreFile, "--log-dir", logDir, "--", "git", "status")
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(logDir, "termtrack-*.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCleanup(t *testing.T) {
	logDir := t.TempDir()

	out, err := runCLI(t, "cleanup", "--log-dir", logDir, "--days-to-keep", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 log file(s) older than 7 days.")
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	ignoreFile := filepath.Join(dir, "ignore")
	require.NoError(t, os.WriteFile(ignoreFile, []byte("# nothing ignored\n"), 0o644))

	_, err := runCLI(t, "--ignore-file", ignoreFile, "--log-dir", logDir, "--", "git", "status")
	require.NoError(t, err)

	out, err := runCLI(t, "stats", "--log-dir", logDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Entries: 1")
	assert.Contains(t, out, "Git")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "termtrack version")
}

func TestInstall(t *testing.T) {
	out, err := runCLI(t, "install", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "add-zsh-hook preexec")

	_, err = runCLI(t, "install", "powershell")
	assert.Error(t, err)
}
