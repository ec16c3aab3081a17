package webxml

import (
	"strings"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/render"
)

const (
	labelForGroup = "group"
	labelForInput = "input"
)

func renderLabel(rc *render.Context, c component.Component) error {
	label, ok := c.(*component.Label)
	if !ok {
		return render.Mismatch("*component.Label", c)
	}
	uic := rc.UIContext()
	xml := rc.Writer()

	xml.AppendTagOpen(TagLabel)
	appendIdentity(xml, rc, label)

	what := label.For
	if what != nil {
		xml.AppendOptionalAttribute("for", component.RenderedID(what, uic))
	}
	xml.AppendOptionalAttribute("what", labelTarget(what))

	input, isInput := what.(component.Input)
	xml.AppendOptionalBoolAttribute("readonly", isInput && input.IsReadOnly(), "true")
	xml.AppendOptionalBoolAttribute("required", isInput && input.IsMandatory(), "true")
	xml.AppendOptionalBoolAttribute("hiddencomponent", what != nil && component.IsHidden(what, uic), "true")
	xml.AppendOptionalAttribute("hint", label.Hint)
	if label.AccessKey != 0 {
		xml.AppendAttribute("accessKey", strings.ToUpper(string(label.AccessKey)))
	}
	xml.AppendOptionalBoolAttribute("hidden", component.IsHidden(label, uic), "true")
	xml.AppendOptionalAttribute("toolTip", label.ToolTip)
	xml.AppendOptionalAttribute("accessibleText", label.AccessibleText)
	xml.AppendClose()

	appendText(rc, rc.Translate(label.TextKey, label.TextIn(uic)), label.Raw)

	if err := render.PaintChildren(rc, label); err != nil {
		return err
	}

	xml.AppendEndTag(TagLabel)
	return nil
}

// labelTarget classifies the labelled component. Group inputs are checked
// first since they are also labelable.
func labelTarget(what component.Component) string {
	switch what.(type) {
	case component.MultiInput:
		return labelForGroup
	case component.Labelable:
		return labelForInput
	default:
		return ""
	}
}
