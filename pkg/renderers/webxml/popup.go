package webxml

import (
	"strings"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/render"
)

func renderPopup(rc *render.Context, c component.Component) error {
	popup, ok := c.(*component.Popup)
	if !ok {
		return render.Mismatch("*component.Popup", c)
	}
	xml := rc.Writer()

	xml.AppendTagOpen(TagPopup)
	xml.AppendURLAttribute("url", popup.URL)
	xml.AppendOptionalIntAttribute("width", popup.Width > 0, popup.Width)
	xml.AppendOptionalIntAttribute("height", popup.Height > 0, popup.Height)
	xml.AppendOptionalBoolAttribute("resizable", popup.Resizable, "true")
	xml.AppendOptionalBoolAttribute("scrollbars", popup.Scrollable, "true")
	xml.AppendOptionalBoolAttribute("target", strings.TrimSpace(popup.TargetWindow) != "", popup.TargetWindow)
	xml.AppendClose()
	xml.AppendEndTag(TagPopup)
	return nil
}
