package component_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

func TestCapabilities(t *testing.T) {
	var (
		_ component.Labelable  = (*component.TextField)(nil)
		_ component.Labelable  = (*component.Dropdown)(nil)
		_ component.MultiInput = (*component.CheckBoxSelect)(nil)
		_ component.OptionList = (*component.Dropdown)(nil)
		_ component.OptionList = (*component.CheckBoxSelect)(nil)
	)

	var popup component.Component = &component.Popup{}
	if _, ok := popup.(component.Labelable); ok {
		t.Fatalf("popup should not be labelable")
	}
	var field component.Component = &component.TextField{}
	if _, ok := field.(component.MultiInput); ok {
		t.Fatalf("text field should not be a multi input")
	}
}

func TestOverridesArePerContext(t *testing.T) {
	field := &component.TextField{Base: component.Base{ID: "name"}, Value: "default"}
	first := uicontext.New()
	second := uicontext.New()

	component.SetValue(field, first, "first")
	component.SetHidden(field, second, true)

	if got := field.ValueIn(first); got != "first" {
		t.Fatalf("first value: got %q", got)
	}
	if got := field.ValueIn(second); got != "default" {
		t.Fatalf("second value: got %q", got)
	}
	if component.IsHidden(field, first) {
		t.Fatalf("field hidden in first context")
	}
	if !component.IsHidden(field, second) {
		t.Fatalf("field visible in second context")
	}
}

func TestRepeaterRowContexts(t *testing.T) {
	name := &component.Text{Base: component.Base{ID: "name"}, Bind: "name"}
	rpt := &component.Repeater{
		Base:     component.Base{ID: "people"},
		Template: name,
		Rows: []map[string]string{
			{"name": "Ada"},
			{"name": "Grace"},
		},
	}

	root := uicontext.New()
	rows := rpt.RowContexts(root)
	if len(rows) != 2 {
		t.Fatalf("expected 2 row contexts, got %d", len(rows))
	}

	var got []string
	for _, row := range rows {
		got = append(got, component.RenderedID(name, row)+"="+name.TextIn(row))
	}
	want := []string{"people-0-name=Ada", "people-1-name=Grace"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("row rendering mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeaterRowContexts_KeepOverrides(t *testing.T) {
	field := &component.TextField{Base: component.Base{ID: "field"}, Bind: "name"}
	rpt := &component.Repeater{
		Base:     component.Base{ID: "people"},
		Template: field,
		Rows:     []map[string]string{{"name": "Ada"}},
	}

	root := uicontext.New()
	first := rpt.RowContexts(root)
	component.SetValue(field, first[0], "edited")

	again := rpt.RowContexts(root)
	if again[0] != first[0] {
		t.Fatalf("expected the same row context on every call")
	}
	if diff := cmp.Diff("edited", field.ValueIn(again[0])); diff != "" {
		t.Fatalf("row value mismatch (-want +got):\n%s", diff)
	}

	other := rpt.RowContexts(uicontext.New())
	if diff := cmp.Diff("Ada", field.ValueIn(other[0])); diff != "" {
		t.Fatalf("override leaked into another context (-want +got):\n%s", diff)
	}
}

func TestWalkAndFindByID(t *testing.T) {
	inner := &component.TextField{Base: component.Base{ID: "email"}}
	panel := &component.Panel{Base: component.Base{ID: "root"}}
	nested := &component.Panel{Base: component.Base{ID: "nested"}}
	nested.Add(inner, nil)
	panel.Add(&component.Label{Base: component.Base{ID: "lbl"}, For: inner}, nested)

	var order []string
	component.Walk(panel, func(c component.Component) bool {
		order = append(order, c.Common().ID)
		return true
	})
	if diff := cmp.Diff([]string{"root", "lbl", "nested", "email"}, order); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}

	if got := component.FindByID(panel, "email"); got != inner {
		t.Fatalf("FindByID returned %v", got)
	}
	if got := component.FindByID(panel, "missing"); got != nil {
		t.Fatalf("expected nil for missing id")
	}
}

func TestVisibilityOverride(t *testing.T) {
	popup := &component.Popup{Base: component.Base{ID: "help", Invisible: true}}
	uic := uicontext.New()
	if component.IsVisible(popup, uic) {
		t.Fatalf("invisible popup reported visible")
	}
	component.SetVisible(popup, uic, true)
	if !component.IsVisible(popup, uic) {
		t.Fatalf("override not applied")
	}
	if component.IsVisible(popup, uicontext.New()) {
		t.Fatalf("override leaked to another context")
	}
}
