package webxml

import (
	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/layout"
	"github.com/goliatone/go-webxml/pkg/render"
)

// Element names of the web-xml dialect.
const (
	TagPanel          = "ui:panel"
	TagLabel          = "ui:label"
	TagTextField      = "ui:textfield"
	TagDropdown       = "ui:dropdown"
	TagCheckBoxSelect = "ui:checkboxselect"
	TagOption         = "ui:option"
	TagRepeater       = "ui:repeater"
	TagGridLayout     = "ui:gridlayout"
	TagFlowLayout     = "ui:flowlayout"
	TagCell           = "ui:cell"
	TagPopup          = "wc-popup"
)

// NewRegistry returns a registry with every built-in component and layout
// renderer registered.
func NewRegistry() *render.Registry {
	reg := render.NewRegistry()
	Register(reg)
	return reg
}

// Register adds the built-in renderers to reg. It panics if any kind is
// already registered.
func Register(reg *render.Registry) {
	reg.MustRegister(component.KindPanel, render.RendererFunc(renderPanel))
	reg.MustRegister(component.KindLabel, render.RendererFunc(renderLabel))
	reg.MustRegister(component.KindText, render.RendererFunc(renderText))
	reg.MustRegister(component.KindTextField, render.RendererFunc(renderTextField))
	reg.MustRegister(component.KindDropdown, render.RendererFunc(renderDropdown))
	reg.MustRegister(component.KindCheckBoxSelect, render.RendererFunc(renderCheckBoxSelect))
	reg.MustRegister(component.KindPopup, render.RendererFunc(renderPopup))
	reg.MustRegister(component.KindRepeater, render.RendererFunc(renderRepeater))

	reg.MustRegisterLayout(layout.KindGrid, render.LayoutRendererFunc(renderGridLayout))
	reg.MustRegisterLayout(layout.KindFlow, render.LayoutRendererFunc(renderFlowLayout))
}
