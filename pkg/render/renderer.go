package render

import (
	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/layout"
)

// Renderer serialises one component kind into the render context's writer.
// Renderers are stateless and may be shared across concurrent passes.
type Renderer interface {
	Render(rc *Context, c component.Component) error
}

// RendererFunc adapts a function into a Renderer.
type RendererFunc func(rc *Context, c component.Component) error

// Render calls the underlying function.
func (fn RendererFunc) Render(rc *Context, c component.Component) error {
	return fn(rc, c)
}

// LayoutRenderer paints a container's children arranged by a layout.
type LayoutRenderer interface {
	RenderLayout(rc *Context, container component.Component, l layout.Layout) error
}

// LayoutRendererFunc adapts a function into a LayoutRenderer.
type LayoutRendererFunc func(rc *Context, container component.Component, l layout.Layout) error

// RenderLayout calls the underlying function.
func (fn LayoutRendererFunc) RenderLayout(rc *Context, container component.Component, l layout.Layout) error {
	return fn(rc, container, l)
}
