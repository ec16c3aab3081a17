package webxml

import (
	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/render"
)

// renderRepeater paints the template once per row, each in the row's own UI
// context. The derived render context shares the writer with rc.
func renderRepeater(rc *render.Context, c component.Component) error {
	rpt, ok := c.(*component.Repeater)
	if !ok {
		return render.Mismatch("*component.Repeater", c)
	}
	xml := rc.Writer()

	xml.AppendTagOpen(TagRepeater)
	appendIdentity(xml, rc, rpt)
	xml.AppendOptionalBoolAttribute("hidden", component.IsHidden(rpt, rc.UIContext()), "true")
	xml.AppendClose()

	if rpt.Template != nil {
		for _, rowContext := range rpt.RowContexts(rc.UIContext()) {
			if err := render.Paint(rc.WithUIContext(rowContext), rpt.Template); err != nil {
				return err
			}
		}
	}

	xml.AppendEndTag(TagRepeater)
	return nil
}
