package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/layout"
	"github.com/goliatone/go-webxml/pkg/render/markup"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// Render paints root and its descendants, returning the markup. The UI
// context stored on ctx is used when present; otherwise a fresh root context
// is created for the pass.
func Render(ctx context.Context, registry *Registry, root component.Component, options ...Option) ([]byte, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if ctx == nil {
		ctx = context.Background()
	}
	uic, ok := uicontext.FromContext(ctx)
	if !ok {
		uic = uicontext.New()
	}

	var w markup.Builder
	rc := NewContext(ctx, registry, &w, uic, options...)
	if err := Paint(rc, root); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Paint dispatches c to the renderer registered for its kind. Invisible
// components produce no output.
func Paint(rc *Context, c component.Component) error {
	if c == nil {
		return nil
	}
	if !component.IsVisible(c, rc.uic) {
		return nil
	}

	renderer, err := rc.registry.Get(c.Kind())
	if err != nil {
		return err
	}

	rc.Logger().Debug("paint component",
		slog.String("kind", string(c.Kind())),
		slog.String("id", component.RenderedID(c, rc.uic)),
		slog.String("uic", rc.uic.ID()),
	)

	if err := renderer.Render(rc, c); err != nil {
		return fmt.Errorf("render %s %q: %w", c.Kind(), c.Common().ID, err)
	}
	return nil
}

// PaintChildren paints the owned children of c in document order.
func PaintChildren(rc *Context, c component.Component) error {
	if c == nil {
		return nil
	}
	for _, child := range c.Common().Children {
		if err := Paint(rc, child); err != nil {
			return err
		}
	}
	return nil
}

// PaintLayout paints the children of container using the renderer registered
// for l. A nil layout paints the children directly.
func PaintLayout(rc *Context, container component.Component, l layout.Layout) error {
	if l == nil {
		return PaintChildren(rc, container)
	}
	renderer, err := rc.registry.GetLayout(l.Kind())
	if err != nil {
		return err
	}
	rc.Logger().Debug("paint layout",
		slog.String("layout", string(l.Kind())),
		slog.String("container", component.RenderedID(container, rc.uic)),
	)
	return renderer.RenderLayout(rc, container, l)
}
