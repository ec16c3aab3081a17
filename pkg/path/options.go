package path

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// Option configures a search or a Locator.
type Option func(*config)

type config struct {
	logger           *slog.Logger
	includeInvisible bool
	uic              *uicontext.Context
	value            *string
}

// WithLogger logs resolution steps at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// IncludeInvisible descends into components that would not be rendered.
func IncludeInvisible() Option {
	return func(cfg *config) {
		cfg.includeInvisible = true
	}
}

// WithUIContext searches in uic instead of the context carried by the
// request. Ignored by FindComponents, which takes the context explicitly.
func WithUIContext(uic *uicontext.Context) Option {
	return func(cfg *config) {
		cfg.uic = uic
	}
}

// WithValue narrows locator matches to the option whose value or displayed
// text equals value.
func WithValue(value string) Option {
	return func(cfg *config) {
		cfg.value = &value
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
	return cfg
}
