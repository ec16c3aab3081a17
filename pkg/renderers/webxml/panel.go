package webxml

import (
	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/render"
)

func renderPanel(rc *render.Context, c component.Component) error {
	panel, ok := c.(*component.Panel)
	if !ok {
		return render.Mismatch("*component.Panel", c)
	}
	xml := rc.Writer()

	xml.AppendTagOpen(TagPanel)
	appendIdentity(xml, rc, panel)
	xml.AppendOptionalBoolAttribute("hidden", component.IsHidden(panel, rc.UIContext()), "true")
	xml.AppendClose()

	if err := render.PaintLayout(rc, panel, panel.Layout); err != nil {
		return err
	}

	xml.AppendEndTag(TagPanel)
	return nil
}
