package i18n

import (
	"errors"
	"strings"
)

var (
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator was configured.
	ErrMissingTranslator = errors.New("i18n: translator is not configured")
	// ErrMissingTranslation signals that no locale in the lookup chain defines
	// the requested key.
	ErrMissingTranslation = errors.New("i18n: translation not found")
)

// Translator resolves a message key for a locale. Params are optional; the
// first map[string]any found in args is used as template data.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string shown when a key cannot be
// translated.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Params is the template data passed alongside a message key.
type Params map[string]any

// Translate resolves key through t, falling back to the "default" param and
// finally the key itself. The result never contains markup.
func Translate(t Translator, locale, key string, args ...any) string {
	return TranslateWith(t, locale, key, nil, args...)
}

// TranslateWith is Translate with a custom missing translation handler.
func TranslateWith(t Translator, locale, key string, onMissing MissingTranslationHandler, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if t == nil {
		return Plain(onMissing(locale, key, args, ErrMissingTranslator))
	}
	msg, err := t.Translate(locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return Plain(onMissing(locale, key, args, err))
	}
	return Plain(msg)
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if params := paramsFrom(args); params != nil {
		if fallback, ok := params["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

func paramsFrom(args []any) map[string]any {
	for _, arg := range args {
		switch typed := arg.(type) {
		case Params:
			return typed
		case map[string]any:
			return typed
		}
	}
	return nil
}
