//go:build e2e && unix

package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}
	dir := t.TempDir()
	full := append([]string{"--config", filepath.Join(dir, "config.toml")}, args...)
	cmd := exec.Command(binPath, full...)
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+dir)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	output, err := runCLI(t, "--help")
	require.NoError(t, err, "Help command should run without error")

	for _, sub := range []string{"Usage", "serve", "search", "show", "categories", "lang"} {
		require.Contains(t, output, sub)
	}
}

func TestSearchCommandPlainOutput(t *testing.T) {
	t.Parallel()

	output, err := runCLI(t, "search", "automation", "--limit", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	require.True(t, strings.HasPrefix(lines[0], "xargs\t"), "first line: %q", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "bash\t"), "second line: %q", lines[1])
}

func TestShowUnknownExitsNonZero(t *testing.T) {
	t.Parallel()

	output, err := runCLI(t, "show", "nonexistent-id")
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit")
	require.Equal(t, 1, exitErr.ExitCode())
	require.Contains(t, output, "not found")
}
