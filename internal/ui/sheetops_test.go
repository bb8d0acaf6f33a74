package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knighty/internal/domain"
)

var gitSheet = domain.Cheatsheet{ID: "git", Title: "Git", File: "git_cheat_sheet.html"}

func TestSheetOps_TargetWithBaseURL(t *testing.T) {
	ops := NewSheetOps("htmls", "https://cheats.example.com/")

	assert.Equal(t, "https://cheats.example.com/htmls/git_cheat_sheet.html", ops.Target(gitSheet))
}

func TestSheetOps_TargetLocal(t *testing.T) {
	dir := t.TempDir()
	ops := NewSheetOps(dir, "")

	assert.Equal(t, filepath.Join(dir, "git_cheat_sheet.html"), ops.Target(gitSheet))
}

func TestSheetOps_LocalPathStaysInDocsDir(t *testing.T) {
	ops := NewSheetOps("/srv/htmls", "")

	got := ops.LocalPath(domain.Cheatsheet{File: "../../etc/passwd"})

	assert.Equal(t, filepath.Join("/srv/htmls", "passwd"), got)
}

func TestSheetOps_OpenInBrowser(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, gitSheet.File), []byte("<p>git</p>"), 0644))
	ops := NewSheetOps(dir, "")
	var opened []string
	ops.SetOpener(func(target string) error {
		opened = append(opened, target)
		return nil
	})

	target, err := ops.OpenInBrowser(gitSheet)

	require.NoError(t, err)
	assert.Equal(t, []string{target}, opened)
}

func TestSheetOps_OpenMissingDocument(t *testing.T) {
	ops := NewSheetOps(t.TempDir(), "")
	ops.SetOpener(func(string) error {
		t.Fatal("opener must not run for a missing file")
		return nil
	})

	_, err := ops.OpenInBrowser(gitSheet)

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSheetOps_OpenerFailure(t *testing.T) {
	ops := NewSheetOps("htmls", "http://localhost:8080")
	boom := errors.New("no browser")
	ops.SetOpener(func(string) error { return boom })

	_, err := ops.OpenInBrowser(gitSheet)

	assert.ErrorIs(t, err, boom)
}

func TestSheetOps_ReadDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, gitSheet.File), []byte("<h1>Git</h1><p>git status</p>"), 0644))
	ops := NewSheetOps(dir, "")

	text, err := ops.ReadDocument(gitSheet)

	require.NoError(t, err)
	assert.Equal(t, "Git\ngit status\n", text)

	_, err = ops.ReadDocument(domain.Cheatsheet{File: "missing.html"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSheetOps_PagerNeedsProgram(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, gitSheet.File), []byte("<p>x</p>"), 0644))
	ops := NewSheetOps(dir, "")

	err := ops.ShowDocumentInPager(gitSheet)

	assert.EqualError(t, err, "program not set")
}
