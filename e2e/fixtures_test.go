//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory holding the config file,
// the log and a docs directory with a few cheat sheet documents
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	if err := os.MkdirAll(tf.DocsDir(), 0755); err != nil {
		return "", err
	}
	for _, name := range []string{"xargs", "git", "docker"} {
		if err := tf.WriteDocument(name+"_cheat_sheet.html", name); err != nil {
			return "", err
		}
	}
	return tmpDir, nil
}

// DocsDir is where the test documents live
func (tf *TUITestFramework) DocsDir() string {
	return filepath.Join(tf.workspace, "htmls")
}

// ConfigPath is the config file the app under test reads and writes
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// WriteDocument writes a small HTML cheat sheet into the docs directory
func (tf *TUITestFramework) WriteDocument(file, title string) error {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html><head><title>%[1]s</title><style>body{}</style></head>
<body><h1>%[1]s cheat sheet</h1>
<ul><li>first %[1]s tip</li><li>second %[1]s tip</li></ul>
<pre>%[1]s --help</pre>
</body></html>`, title)
	return os.WriteFile(filepath.Join(tf.DocsDir(), file), []byte(html), 0644)
}

// WriteConfig replaces the config file
func (tf *TUITestFramework) WriteConfig(content string) error {
	return os.WriteFile(tf.ConfigPath(), []byte(content), 0644)
}
