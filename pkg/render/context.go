package render

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-webxml/pkg/render/markup"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// Context is the transient state of one render pass: the markup sink, the UI
// context currently being painted and the pass configuration. It is created by
// Render and discarded afterwards.
type Context struct {
	ctx      context.Context
	writer   *markup.Builder
	uic      *uicontext.Context
	registry *Registry
	cfg      *config
}

// NewContext builds a render context writing to w. Most callers should use
// Render instead.
func NewContext(ctx context.Context, registry *Registry, w *markup.Builder, uic *uicontext.Context, options ...Option) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if w == nil {
		w = &markup.Builder{}
	}
	if uic == nil {
		uic = uicontext.New()
	}
	return &Context{
		ctx:      uicontext.WithContext(ctx, uic),
		writer:   w,
		uic:      uic,
		registry: registry,
		cfg:      newConfig(options...),
	}
}

// Writer returns the markup sink shared by the whole pass.
func (rc *Context) Writer() *markup.Builder { return rc.writer }

// UIContext returns the UI context being painted.
func (rc *Context) UIContext() *uicontext.Context { return rc.uic }

// Context returns the request context, carrying the current UI context.
func (rc *Context) Context() context.Context { return rc.ctx }

// Logger returns the pass logger.
func (rc *Context) Logger() *slog.Logger { return rc.cfg.logger }

// Registry returns the registry used for dispatch.
func (rc *Context) Registry() *Registry { return rc.registry }

// WithUIContext derives a render context painting in uic. The writer and
// configuration are shared; the receiver is not modified.
func (rc *Context) WithUIContext(uic *uicontext.Context) *Context {
	derived := *rc
	derived.uic = uic
	derived.ctx = uicontext.WithContext(rc.ctx, uic)
	return &derived
}

// Translate resolves key for the configured locale, returning fallback when
// key is empty.
func (rc *Context) Translate(key, fallback string) string {
	return translate(rc.cfg.locale, key, fallback, rc.cfg.translator, rc.cfg.onMissing)
}

// Sanitize applies the configured markup policy.
func (rc *Context) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	return rc.cfg.sanitizer.Sanitize(raw)
}
