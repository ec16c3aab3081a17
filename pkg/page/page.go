package page

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-webxml/pkg/render/template"
	"github.com/goliatone/go-webxml/pkg/render/template/gotemplate"
)

// TemplateName is the template the envelope renders.
const TemplateName = "page"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Templates returns the embedded envelope templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(fmt.Sprintf("page: embedded templates: %v", err))
	}
	return sub
}

// Request describes one page to wrap.
type Request struct {
	Title string
	Body  []byte
	// ThemeName and ThemeVariant override the selector defaults.
	ThemeName    string
	ThemeVariant string
}

// Envelope renders pages through a template engine.
type Envelope struct {
	cfg      *config
	renderer template.Renderer
}

// New builds an envelope. Without options the embedded template and the
// default stylesheet URL are used.
func New(options ...Option) (*Envelope, error) {
	cfg := newConfig(options...)

	renderer := cfg.renderer
	if renderer == nil {
		var engineOpts []gotemplate.Option
		switch {
		case cfg.templates != nil:
			engineOpts = append(engineOpts, gotemplate.WithFS(cfg.templates))
		case cfg.templatesDir != "":
			engineOpts = append(engineOpts,
				gotemplate.WithBaseDir(cfg.templatesDir),
				gotemplate.WithFS(Templates()),
			)
		default:
			engineOpts = append(engineOpts, gotemplate.WithFS(Templates()))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("page: template engine: %w", err)
		}
		renderer = engine
	}

	return &Envelope{cfg: cfg, renderer: renderer}, nil
}

// Wrap renders req inside the envelope.
func (e *Envelope) Wrap(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	themeCfg, err := e.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"title":      req.Title,
		"body":       string(req.Body),
		"stylesheet": e.stylesheet(themeCfg),
		"theme":      themeData(themeCfg),
	}

	out, err := e.renderer.RenderTemplate(TemplateName, data)
	if err != nil {
		return nil, fmt.Errorf("page: render envelope: %w", err)
	}
	return []byte(out), nil
}

func (e *Envelope) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if e.cfg.theme != nil {
		return e.cfg.theme, nil
	}
	if e.cfg.selector == nil {
		return nil, nil
	}

	name := firstNonEmpty(req.ThemeName, e.cfg.themeName)
	variant := firstNonEmpty(req.ThemeVariant, e.cfg.themeVariant)
	selection, err := e.cfg.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("page: select theme %q: %w", name, err)
	}
	cfg := RendererConfigFromSelection(selection)
	if cfg != nil {
		e.cfg.logger.Debug("page theme selected",
			slog.String("theme", cfg.Theme),
			slog.String("variant", cfg.Variant),
		)
	}
	return cfg, nil
}

func (e *Envelope) stylesheet(cfg *theme.RendererConfig) string {
	if e.cfg.stylesheet != "" {
		return e.cfg.stylesheet
	}
	if cfg != nil && cfg.AssetURL != nil {
		if url := strings.TrimSpace(cfg.AssetURL(StylesheetAsset)); url != "" {
			return url
		}
	}
	return DefaultStylesheet
}

func themeData(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	tokens := make(map[string]any, len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		tokens[key] = value
	}
	return map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"tokens":  tokens,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
