package render

import (
	"fmt"
	"strings"
)

// Catalog is an in-memory Translator. Message keys compare
// case-insensitively. Populate it before rendering; it is not safe for
// concurrent mutation.
type Catalog struct {
	messages map[string]map[string]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{messages: make(map[string]map[string]string)}
}

// Add merges messages into locale, replacing existing keys.
func (c *Catalog) Add(locale string, messages map[string]string) {
	locale = strings.TrimSpace(locale)
	bucket := c.messages[locale]
	if bucket == nil {
		bucket = make(map[string]string, len(messages))
		c.messages[locale] = bucket
	}
	for key, value := range messages {
		bucket[strings.ToLower(strings.TrimSpace(key))] = value
	}
}

// Translate implements Translator.
func (c *Catalog) Translate(locale, key string, _ ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	bucket, ok := c.messages[strings.TrimSpace(locale)]
	if !ok {
		return "", fmt.Errorf("render: no messages for locale %q", locale)
	}
	msg, ok := bucket[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return "", fmt.Errorf("render: no message %q for locale %q", key, locale)
	}
	return msg, nil
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
