// Package i18n provides the English and Arabic string tables.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"knighty/internal/domain"
)

const (
	English = "en"
	Arabic  = "ar"

	// DefaultLanguage is used whenever a stored or requested value is unknown
	DefaultLanguage = English
)

//go:embed locales/*.json
var localeFS embed.FS

var supported = []string{English, Arabic}

// Supported returns the supported locale codes in display order
func Supported() []string {
	return append([]string(nil), supported...)
}

// IsSupported reports whether lang is one of the two locales
func IsSupported(lang string) bool {
	for _, l := range supported {
		if l == lang {
			return true
		}
	}
	return false
}

// Normalize maps any value to a supported locale, falling back to the default
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if IsSupported(lang) {
		return lang
	}
	return DefaultLanguage
}

// Parse validates a user-supplied locale
func Parse(lang string) (string, error) {
	l := strings.ToLower(strings.TrimSpace(lang))
	if !IsSupported(l) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}
	return l, nil
}

// Toggle returns the other locale
func Toggle(lang string) string {
	if Normalize(lang) == Arabic {
		return English
	}
	return Arabic
}

// IsRTL reports whether the locale is written right to left
func IsRTL(lang string) bool {
	return Normalize(lang) == Arabic
}

// Bundle holds one flat key/value table per locale
type Bundle struct {
	dict     map[string]map[string]string
	fallback string
}

// Load reads the embedded locale tables
func Load() (*Bundle, error) {
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: DefaultLanguage,
	}
	for _, l := range supported {
		raw, err := localeFS.ReadFile(path.Join("locales", l+".json"))
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	return b, nil
}

// MustLoad is Load for callers that treat a broken embedded table as fatal
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Category returns the localized label of a category
func (b *Bundle) Category(lang string, c domain.Category) string {
	key := "categories." + c.Key()
	if v := b.T(lang, key); v != key {
		return v
	}
	return string(c)
}

// NoResults returns the empty-state description for a search or filter
func (b *Bundle) NoResults(lang, query string) string {
	if strings.TrimSpace(query) == "" {
		return b.T(lang, "sections.noResultsFilters")
	}
	return strings.ReplaceAll(b.T(lang, "sections.noResultsDesc"), "{query}", query)
}

// Count renders the "N cheat sheets found" line
func (b *Bundle) Count(lang string, n int, query string) string {
	label := strings.ToLower(b.T(lang, "stats.cheatsheets"))
	if lang == English && n == 1 {
		label = strings.TrimSuffix(label, "s")
	}
	line := fmt.Sprintf("%d %s %s", n, label, b.T(lang, "results.found"))
	if query != "" {
		line += fmt.Sprintf(" %s %q", b.T(lang, "results.for"), query)
	}
	return line
}

// Table returns a copy of one locale's table, used by the HTTP API
func (b *Bundle) Table(lang string) map[string]string {
	src := b.dict[Normalize(lang)]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Keys returns the sorted keys of the fallback table
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.dict[b.fallback]))
	for k := range b.dict[b.fallback] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
