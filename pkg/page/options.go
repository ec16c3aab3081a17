package page

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-webxml/pkg/render/template"
)

// Option configures an Envelope.
type Option func(*config)

type config struct {
	templates    fs.FS
	templatesDir string
	renderer     template.Renderer
	theme        *theme.RendererConfig
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	stylesheet   string
	logger       *slog.Logger
}

// WithTemplatesFS loads page.tpl from fsys instead of the embedded template.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = fsys
	}
}

// WithTemplatesDir loads page.tpl from dir, falling back to the embedded
// template when dir does not provide one.
func WithTemplatesDir(dir string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(dir)
	}
}

// WithTemplateRenderer renders the envelope through renderer. The renderer
// must resolve the "page" template.
func WithTemplateRenderer(renderer template.Renderer) Option {
	return func(cfg *config) {
		cfg.renderer = renderer
	}
}

// WithTheme uses a resolved theme configuration for every page.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithThemeSelector resolves the theme through selector on every Wrap call,
// using name and variant unless a call overrides them.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = strings.TrimSpace(name)
		cfg.themeVariant = strings.TrimSpace(variant)
	}
}

// WithStylesheet pins the XSLT URL, bypassing theme asset resolution.
func WithStylesheet(url string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(url)
	}
}

// WithLogger logs theme resolution at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
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
	return cfg
}
