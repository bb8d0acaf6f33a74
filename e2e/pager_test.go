//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedDocumentPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("xargs"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.SendKeys(KeyView)
	require.True(t, tf.OutputContainsPlain("first xargs tip", 3*time.Second), "Pager should show the document text")

	// Quit pager and ensure TUI again
	tf.Quit()
	require.True(t, tf.SeePlain("Open in New Tab"), "Should return to the detail view after closing the pager")
	tf.Quit()
}

func TestEmbeddedDocumentMissing(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("sql"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.SendKeys(KeyView)
	require.True(t, tf.WaitForStatusMessage("Cannot view sql", 3*time.Second), "Missing documents report an error")
	tf.Quit()
}
