package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText(t *testing.T) {
	doc := `<!DOCTYPE html>
<html><head><title>Git</title><style>body { color: red }</style></head>
<body>
  <h1>Git   Cheat Sheet</h1>
  <script>alert("x")</script>
  <p>Track <b>changes</b> fast.</p>
  <ul><li>git status</li><li>git log</li></ul>
  <pre>git commit -m "msg"
  git push</pre>
</body></html>`

	got, err := HTMLToText(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Contains(t, got, "Git Cheat Sheet\n")
	assert.Contains(t, got, "Track changes fast.")
	assert.Contains(t, got, "• git status\n• git log")
	assert.Contains(t, got, "git commit -m \"msg\"\n  git push")
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "color: red")
	assert.NotContains(t, got, "\n\n\n")
}

func TestHTMLToText_Empty(t *testing.T) {
	got, err := HTMLToText(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "\n", got)
}

func TestHTMLToText_SelfClosingSkipTagsKeepText(t *testing.T) {
	doc := `<html><body><script src="x.js"/><style/><pre/><p>Track changes</p>
<ul><li>git   status</li></ul></body></html>`

	got, err := HTMLToText(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Contains(t, got, "Track changes")
	assert.Contains(t, got, "• git status")
}
