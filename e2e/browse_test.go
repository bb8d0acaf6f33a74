//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLandingShowsCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.True(t, tf.SeePlain("Knighty"), "Should show the title")
	require.True(t, tf.SeePlain("Featured Cheat Sheets"), "Should show the featured section")
	require.True(t, tf.SeePlain("CLI Commands"), "Should list the first entry")

	tf.Quit()
}

func TestQuickSearchOpensDetail(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("automation"))
	require.True(t, tf.SeePlain("5 cheat sheets found"), "Dropdown should report the matches")

	// Second suggestion is bash
	tf.Down()
	tf.Down()
	tf.Enter()

	require.True(t, tf.SeePlain("Open in New Tab"), "Should show the detail actions")
	require.True(t, tf.SeePlain("/cheatsheet/bash"), "Should show the bash deep link")

	tf.Escape()
	require.True(t, tf.SeePlain("Press ? for help"), "Should return to browsing")
	tf.Quit()
}

func TestEscapeClearsSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("zzz-no-match"))
	require.True(t, tf.SeePlain(`No results for "zzz-no-match"`), "Should show the empty state")

	tf.Escape()
	require.True(t, tf.OutputContainsPlain("25 cheat sheets found", 3*time.Second), "Clearing the search shows everything again")
	tf.Quit()
}

func TestHelpPopup(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.SendKeys(KeyHelp)
	require.True(t, tf.SeePlain("Knighty Help"), "Should open the help popup")
	require.True(t, tf.SeePlain("Focus search"), "Help should list the search key")

	tf.Escape()
	tf.Quit()
}
