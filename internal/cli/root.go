// Package cli wires the catalog, config and UI into the knighty command.
package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"knighty/internal/catalog"
	"knighty/internal/config"
	"knighty/internal/eventbus"
	"knighty/internal/i18n"
	"knighty/internal/logic"
)

var (
	cfgFile     string
	docsDir     string
	catalogFile string
	logFile     string
)

var rootCmd = &cobra.Command{
	Use:   "knighty [cheatsheet]",
	Short: "Browse developer cheat sheets from the terminal",
	Long: `Knighty is a searchable catalog of developer cheat sheets.

Run without arguments to open the interactive browser, or pass a cheat sheet
id or document file name to jump straight to its details.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default $XDG_CONFIG_HOME/knighty/config.toml)")
	rootCmd.PersistentFlags().StringVar(&docsDir, "docs", "", "directory containing the cheat sheet documents")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "alternative YAML catalog file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "knighty.log", "log file used while the browser owns the terminal")
}

// app bundles what every command needs
type app struct {
	configSvc config.ConfigService
	cfg       *config.Config
	store     *logic.MemorySheetStore
	bundle    *i18n.Bundle
}

// loadApp reads the config and catalog honoring the global flags
func loadApp(bus eventbus.EventBus) (*app, error) {
	var svc config.ConfigService
	if bus != nil {
		svc = config.NewConfigServiceWithBus(cfgFile, bus)
	} else {
		svc = config.NewConfigService(cfgFile)
	}

	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}
	config.ApplyEnv(cfg)
	if docsDir != "" {
		cfg.DocsDir = docsDir
	}

	cat := catalog.Default()
	if catalogFile != "" {
		cat, err = catalog.LoadFile(catalogFile)
		if err != nil {
			return nil, err
		}
	}

	bundle, err := i18n.Load()
	if err != nil {
		return nil, err
	}

	return &app{
		configSvc: svc,
		cfg:       cfg,
		store:     logic.NewMemorySheetStore(cat),
		bundle:    bundle,
	}, nil
}

// setupLogging sends the standard logger to path and returns the closer
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or 0 when it is not a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
