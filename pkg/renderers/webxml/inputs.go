package webxml

import (
	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/render"
)

func renderText(rc *render.Context, c component.Component) error {
	text, ok := c.(*component.Text)
	if !ok {
		return render.Mismatch("*component.Text", c)
	}
	appendText(rc, rc.Translate(text.TextKey, text.TextIn(rc.UIContext())), text.Raw)
	return nil
}

func renderTextField(rc *render.Context, c component.Component) error {
	field, ok := c.(*component.TextField)
	if !ok {
		return render.Mismatch("*component.TextField", c)
	}
	uic := rc.UIContext()
	xml := rc.Writer()

	xml.AppendTagOpen(TagTextField)
	appendIdentity(xml, rc, field)
	xml.AppendOptionalBoolAttribute("hidden", component.IsHidden(field, uic), "true")
	appendInputState(xml, field)
	xml.AppendOptionalIntAttribute("maxLength", field.MaxLength > 0, field.MaxLength)
	xml.AppendClose()
	xml.Append(field.ValueIn(uic), true)
	xml.AppendEndTag(TagTextField)
	return nil
}

func renderDropdown(rc *render.Context, c component.Component) error {
	dropdown, ok := c.(*component.Dropdown)
	if !ok {
		return render.Mismatch("*component.Dropdown", c)
	}
	uic := rc.UIContext()
	xml := rc.Writer()

	xml.AppendTagOpen(TagDropdown)
	appendIdentity(xml, rc, dropdown)
	xml.AppendOptionalBoolAttribute("hidden", component.IsHidden(dropdown, uic), "true")
	appendInputState(xml, dropdown)
	xml.AppendClose()

	selected := dropdown.SelectedIn(uic)
	appendOptions(xml, rc, dropdown, func(value string) bool {
		return selected != "" && value == selected
	})

	xml.AppendEndTag(TagDropdown)
	return nil
}

func renderCheckBoxSelect(rc *render.Context, c component.Component) error {
	group, ok := c.(*component.CheckBoxSelect)
	if !ok {
		return render.Mismatch("*component.CheckBoxSelect", c)
	}
	xml := rc.Writer()

	xml.AppendTagOpen(TagCheckBoxSelect)
	appendIdentity(xml, rc, group)
	xml.AppendOptionalBoolAttribute("hidden", component.IsHidden(group, rc.UIContext()), "true")
	appendInputState(xml, group)
	xml.AppendClose()

	appendOptions(xml, rc, group, group.IsSelected)

	xml.AppendEndTag(TagCheckBoxSelect)
	return nil
}
