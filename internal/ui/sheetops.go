package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"knighty/internal/domain"
)

// OpenerEnv overrides the program used to open documents, mainly for tests
const OpenerEnv = "KNIGHTY_OPENER"

// SheetOps opens cheat sheet documents in a browser or the embedded pager
type SheetOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
	docsDir string
	baseURL string
	opener  func(target string) error
}

// NewSheetOps creates a new SheetOps instance
func NewSheetOps(docsDir, baseURL string) *SheetOps {
	return &SheetOps{
		docsDir: docsDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		opener:  openExternal,
	}
}

// SetProgram sets the program reference for terminal management
func (s *SheetOps) SetProgram(p *tea.Program) {
	s.program = p
}

// SetOpener replaces the function that hands a target to the browser
func (s *SheetOps) SetOpener(fn func(target string) error) {
	s.opener = fn
}

// Target is what a new browsing context is pointed at: the served URL when
// a base URL is configured, otherwise the local file
func (s *SheetOps) Target(sheet domain.Cheatsheet) string {
	if s.baseURL != "" {
		return s.baseURL + sheet.DocumentPath()
	}
	path := s.LocalPath(sheet)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// LocalPath is the document's location inside the docs directory
func (s *SheetOps) LocalPath(sheet domain.Cheatsheet) string {
	return filepath.Join(s.docsDir, filepath.Base(sheet.File))
}

// OpenInBrowser opens the sheet's document in a new browsing context
func (s *SheetOps) OpenInBrowser(sheet domain.Cheatsheet) (string, error) {
	target := s.Target(sheet)
	if s.baseURL == "" {
		if _, err := os.Stat(target); err != nil {
			return target, fmt.Errorf("document %s: %w", sheet.File, err)
		}
	}
	if err := s.opener(target); err != nil {
		return target, fmt.Errorf("failed to open %s: %w", target, err)
	}
	return target, nil
}

// ReadDocument loads the sheet's HTML document as plain text
func (s *SheetOps) ReadDocument(sheet domain.Cheatsheet) (string, error) {
	f, err := os.Open(s.LocalPath(sheet))
	if err != nil {
		return "", fmt.Errorf("document %s: %w", sheet.File, err)
	}
	defer f.Close()

	text, err := HTMLToText(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", sheet.File, err)
	}
	return text, nil
}

// ShowDocumentInPager shows the sheet's document using the ov pager
func (s *SheetOps) ShowDocumentInPager(sheet domain.Cheatsheet) error {
	text, err := s.ReadDocument(sheet)
	if err != nil {
		return err
	}
	return s.runPager(strings.NewReader(text))
}

// runPager runs ov over r, handing the terminal over while it is open
func (s *SheetOps) runPager(r io.Reader) error {
	if s.program == nil {
		return fmt.Errorf("program not set")
	}

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := s.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = s.program.RestoreTerminal()
	}()

	return root.Run()
}

// openExternal hands target to the platform's default handler
func openExternal(target string) error {
	var cmd *exec.Cmd
	if bin := os.Getenv(OpenerEnv); bin != "" {
		cmd = exec.Command(bin, target)
	} else {
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", target)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
		default:
			cmd = exec.Command("xdg-open", target)
		}
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child without blocking the UI
	go func() { _ = cmd.Wait() }()
	return nil
}
