package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"knighty/internal/eventbus"
	"knighty/internal/i18n"
	"knighty/internal/logic"
)

// LanguageKey is the fixed key the language preference is stored under
const LanguageKey = "knighty-language"

// ErrMalformedConfig is returned when an existing config file does not parse
var ErrMalformedConfig = errors.New("malformed config file")

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	DocsDir     string         `toml:"docs_dir"`
	BaseURL     string         `toml:"base_url,omitempty"`
	Preferences Preferences    `toml:"preferences"`
	Server      ServerSettings `toml:"server"`
	UISettings  UISettings     `toml:"ui"`
}

// Preferences holds the persisted user preferences
type Preferences struct {
	Language string `toml:"knighty-language"`
}

// ServerSettings configures the HTTP server
type ServerSettings struct {
	Addr            string `toml:"addr"`
	AllowAllOrigins bool   `toml:"allow_all_origins"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ResetPolicy   string `toml:"reset_policy"`
	FocusDelayMS  int    `toml:"focus_delay_ms"`
	DropdownLimit int    `toml:"dropdown_limit"`
}

// Language returns the stored language, or the default when the stored value
// is absent or unrecognized
func (c *Config) Language() string {
	return i18n.Normalize(c.Preferences.Language)
}

// FocusDelay is the pause between scrolling to the top and focusing search
func (c *Config) FocusDelay() time.Duration {
	if c.UISettings.FocusDelayMS < 0 {
		return 0
	}
	return time.Duration(c.UISettings.FocusDelayMS) * time.Millisecond
}

// ResetPolicy returns the configured query reset policy
func (c *Config) ResetPolicy() logic.ResetPolicy {
	return logic.ParseResetPolicy(c.UISettings.ResetPolicy)
}

// DropdownLimit returns the configured suggestion count
func (c *Config) DropdownLimit() int {
	if c.UISettings.DropdownLimit <= 0 {
		return logic.DropdownLimit
	}
	return c.UISettings.DropdownLimit
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	SaveLanguage(lang string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/knighty/config.toml or its fallback
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "knighty", "config.toml")
}

// NewConfigService creates a config service for the given file; an empty
// path selects DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when the file
// does not exist yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Language: cfg.Language()})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedConfig, path, err)
	}

	if raw := cfg.Preferences.Language; raw != "" && !i18n.IsSupported(raw) {
		log.Printf("Ignoring unsupported language %q in %s, using %s", raw, path, i18n.DefaultLanguage)
	}
	cfg.Preferences.Language = cfg.Language()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return writeAtomic(path, data)
}

// SaveLanguage rewrites only preferences.knighty-language in the config
// file. Every other key keeps the value the file already had, so runtime
// overrides (flags, PORT) never reach disk. A file that does not parse is
// left untouched.
func (cs *configService) SaveLanguage(lang string) error {
	doc := map[string]interface{}{}
	data, err := os.ReadFile(cs.filePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedConfig, cs.filePath, err)
		}
	}

	prefs, ok := doc["preferences"].(map[string]interface{})
	if !ok {
		prefs = map[string]interface{}{}
	}
	prefs[LanguageKey] = i18n.Normalize(lang)
	doc["preferences"] = prefs

	if err := os.MkdirAll(filepath.Dir(cs.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := writeAtomic(cs.filePath, out); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		DocsDir: "htmls",
		Preferences: Preferences{
			Language: i18n.DefaultLanguage,
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
		UISettings: UISettings{
			ResetPolicy:   logic.ResetSingleFocus.String(),
			FocusDelayMS:  300,
			DropdownLimit: logic.DropdownLimit,
		},
	}
}

// ApplyEnv overrides settings from the environment. PORT replaces the
// server port.
func ApplyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
}

// LanguageSaver persists the language preference every time it changes
type LanguageSaver struct {
	bus eventbus.EventBus
	svc ConfigService
	cfg *Config
}

// NewLanguageSaver subscribes to language changes and writes them through
// to the config file
func NewLanguageSaver(bus eventbus.EventBus, svc ConfigService, cfg *Config) (*LanguageSaver, func()) {
	s := &LanguageSaver{bus: bus, svc: svc, cfg: cfg}
	unsub := bus.Subscribe(eventbus.EventLanguageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LanguageChangedEvent); ok {
			s.save(event.Language)
		}
	})
	return s, unsub
}

func (s *LanguageSaver) save(lang string) {
	s.cfg.Preferences.Language = i18n.Normalize(lang)
	if err := s.svc.SaveLanguage(s.cfg.Preferences.Language); err != nil {
		log.Printf("Skipped saving language preference: %v", err)
		if s.bus != nil {
			s.bus.Publish(eventbus.ErrorEvent{Message: "Language not saved", Err: err})
		}
	} else {
		log.Printf("Language preference %s saved to %s", s.cfg.Preferences.Language, s.svc.Path())
	}
}
