package render

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Translator resolves message keys for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string rendered when a key cannot be
// translated. args carries a map with the "default" fallback text.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Sanitizer cleans markup written without encoding. *bluemonday.Policy
// satisfies it.
type Sanitizer interface {
	Sanitize(string) string
}

// Option configures a render pass.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	translator Translator
	locale     string
	onMissing  MissingTranslationHandler
	sanitizer  Sanitizer
}

// WithLogger routes dispatch diagnostics to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTranslator resolves component TextKey values for locale.
func WithTranslator(t Translator, locale string) Option {
	return func(cfg *config) {
		cfg.translator = t
		cfg.locale = strings.TrimSpace(locale)
	}
}

// WithMissingTranslation overrides how untranslated keys are rendered.
func WithMissingTranslation(handler MissingTranslationHandler) Option {
	return func(cfg *config) {
		cfg.onMissing = handler
	}
}

// WithSanitizer replaces the default policy applied to raw label text.
func WithSanitizer(s Sanitizer) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.sanitizer = s
		}
	}
}

func newConfig(options ...Option) *config {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.onMissing == nil {
		cfg.onMissing = missingTranslationDefault
	}
	if cfg.sanitizer == nil {
		cfg.sanitizer = defaultSanitizer()
	}
	return cfg
}

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

func defaultSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.UGCPolicy()
	})
	return markupPolicy
}
