package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is the locale used when a lookup names no locale or names one
// the catalog does not carry.
const DefaultLocale = "pt-BR"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Catalog is a Translator backed by per-locale message maps. Messages are
// pongo2 templates rendered with the params passed to Translate.
type Catalog struct {
	mu            sync.RWMutex
	defaultLocale string
	messages      map[string]map[string]string
	templates     *templateCache
}

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

var _ Translator = (*Catalog)(nil)

// NewCatalog returns an empty catalog that falls back to defaultLocale.
func NewCatalog(defaultLocale string) *Catalog {
	if strings.TrimSpace(defaultLocale) == "" {
		defaultLocale = DefaultLocale
	}
	return &Catalog{
		defaultLocale: normalizeLocale(defaultLocale),
		messages:      make(map[string]map[string]string),
		templates:     newTemplateCache(),
	}
}

// DefaultCatalog returns a catalog seeded with the bundled pt-BR and en
// messages.
func DefaultCatalog() *Catalog {
	catalog, err := LoadFS(embeddedLocales, DefaultLocale)
	if err != nil {
		panic(fmt.Errorf("i18n: bundled locales: %w", err))
	}
	return catalog
}

// LoadFS walks fsys and parses every YAML catalog file it finds. When the same
// locale appears in several files the later file wins key by key.
func LoadFS(fsys fs.FS, defaultLocale string) (*Catalog, error) {
	catalog := NewCatalog(defaultLocale)
	if fsys == nil {
		return catalog, nil
	}
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", path, err)
		}
		return catalog.load(data, path)
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

// Add registers messages for locale, replacing existing keys.
func (c *Catalog) Add(locale string, messages map[string]string) {
	locale = normalizeLocale(locale)
	if locale == "" || len(messages) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	target, ok := c.messages[locale]
	if !ok {
		target = make(map[string]string, len(messages))
		c.messages[locale] = target
	}
	for key, msg := range messages {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			target[trimmed] = msg
		}
	}
}

// Merge copies every message of other into c.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil || other == c {
		return
	}
	other.mu.RLock()
	snapshot := make(map[string]map[string]string, len(other.messages))
	for locale, messages := range other.messages {
		snapshot[locale] = messages
	}
	other.mu.RUnlock()
	for locale, messages := range snapshot {
		c.Add(locale, messages)
	}
}

// Locales lists the locales the catalog carries, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Translate looks key up in locale, then in its base language ("pt" for
// "pt-BR"), then in the default locale.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	msg, ok := c.lookup(locale, key)
	if !ok {
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
	}
	if !strings.Contains(msg, "{{") && !strings.Contains(msg, "{%") {
		return msg, nil
	}
	return c.templates.render(msg, paramsFrom(args))
}

func (c *Catalog) lookup(locale, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, candidate := range localeChain(normalizeLocale(locale), c.defaultLocale) {
		if msg, ok := c.messages[candidate][key]; ok {
			return msg, true
		}
	}
	return "", false
}

func (c *Catalog) load(data []byte, path string) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", path, err)
	}
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		locale = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	c.Add(locale, file.Messages)
	return nil
}

func localeChain(locale, fallback string) []string {
	chain := make([]string, 0, 3)
	if locale != "" {
		chain = append(chain, locale)
		if idx := strings.IndexAny(locale, "-_"); idx > 0 {
			chain = append(chain, locale[:idx])
		}
	}
	if fallback != "" && fallback != locale {
		chain = append(chain, fallback)
	}
	return chain
}

func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
