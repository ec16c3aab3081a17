package webxml

import (
	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/render"
	"github.com/goliatone/go-webxml/pkg/render/markup"
)

// appendIdentity writes the id, class and track attributes shared by every
// element carrying an id.
func appendIdentity(xml *markup.Builder, rc *render.Context, c component.Component) {
	base := c.Common()
	xml.AppendAttribute("id", component.RenderedID(c, rc.UIContext()))
	xml.AppendOptionalAttribute("class", base.Class)
	xml.AppendOptionalBoolAttribute("track", base.Track, "true")
}

func appendInputState(xml *markup.Builder, input component.Input) {
	xml.AppendOptionalBoolAttribute("required", input.IsMandatory(), "true")
	xml.AppendOptionalBoolAttribute("readOnly", input.IsReadOnly(), "true")
}

func appendText(rc *render.Context, text string, raw bool) {
	if raw {
		rc.Writer().Append(rc.Sanitize(text), false)
		return
	}
	rc.Writer().Append(text, true)
}

// appendOptions writes one ui:option per entry of list. Each option carries
// the id the path locator reports for it.
func appendOptions(xml *markup.Builder, rc *render.Context, list component.OptionList, selected func(string) bool) {
	for idx, opt := range list.OptionItems() {
		xml.AppendTagOpen(TagOption)
		xml.AppendOptionalAttribute("id", component.OptionID(list, rc.UIContext(), idx))
		xml.AppendAttribute("value", opt.Value)
		xml.AppendOptionalBoolAttribute("selected", selected(opt.Value), "true")
		xml.AppendClose()
		xml.Append(opt.Display(), true)
		xml.AppendEndTag(TagOption)
	}
}
