package webxml

import (
	"context"
	"sync"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/page"
	"github.com/goliatone/go-webxml/pkg/path"
	"github.com/goliatone/go-webxml/pkg/render"
	renderwebxml "github.com/goliatone/go-webxml/pkg/renderers/webxml"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// Component aliases component.Component for callers building trees through
// the root package.
type Component = component.Component

// UIContext aliases uicontext.Context.
type UIContext = uicontext.Context

// Element aliases path.Element, a rendered element located by path.
type Element = path.Element

// Registry aliases render.Registry.
type Registry = render.Registry

// RenderOption aliases render.Option.
type RenderOption = render.Option

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *render.Registry
)

// DefaultRegistry returns the shared registry holding the built-in web-xml
// renderers. Register custom kinds on a registry from NewRegistry instead.
func DefaultRegistry() *render.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = renderwebxml.NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry returns a fresh registry with the built-in web-xml renderers.
func NewRegistry() *render.Registry {
	return renderwebxml.NewRegistry()
}

// NewUIContext creates a root UI context.
func NewUIContext() *uicontext.Context {
	return uicontext.New()
}

// WithUIContext stores uic on ctx for Render and FindElements.
func WithUIContext(ctx context.Context, uic *uicontext.Context) context.Context {
	return uicontext.WithContext(ctx, uic)
}

// Render paints root with the built-in renderers.
func Render(ctx context.Context, root Component, options ...render.Option) ([]byte, error) {
	return render.Render(ctx, DefaultRegistry(), root, options...)
}

// RenderPage paints root and wraps the markup in env. A nil env uses the
// embedded envelope.
func RenderPage(ctx context.Context, root Component, env *page.Envelope, title string, options ...render.Option) ([]byte, error) {
	body, err := Render(ctx, root, options...)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env, err = page.New()
		if err != nil {
			return nil, err
		}
	}
	return env.Wrap(ctx, page.Request{Title: title, Body: body})
}

// FindElements resolves expr from root and returns the rendered elements it
// names. The UI context is taken from ctx unless path.WithUIContext is given.
func FindElements(ctx context.Context, root Component, expr string, options ...path.Option) ([]Element, error) {
	locator, err := path.NewLocator(root, expr, options...)
	if err != nil {
		return nil, err
	}
	return locator.FindElements(ctx)
}
