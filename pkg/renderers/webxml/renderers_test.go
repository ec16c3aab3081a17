package webxml_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/layout"
	"github.com/goliatone/go-webxml/pkg/render"
	"github.com/goliatone/go-webxml/pkg/renderers/webxml"
	"github.com/goliatone/go-webxml/pkg/testsupport"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

func TestGridLayout_UnboundedColumns(t *testing.T) {
	panel := &component.Panel{
		Base:   component.Base{ID: "p"},
		Layout: layout.MustGridLayout(2, 0),
	}
	panel.Add(&component.Text{Text: "a"}, &component.Text{Text: "b"})

	got := testsupport.MustRender(t, webxml.NewRegistry(), panel)
	want := `<ui:panel id="p"><ui:gridlayout rows="2" cols="0"><ui:cell>a</ui:cell><ui:cell>b</ui:cell></ui:gridlayout></ui:panel>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(got, `rows="2" cols="0"`) {
		t.Fatalf("expected rows/cols pair in %s", got)
	}
}

func TestGridLayout_GapsAndEmptyCells(t *testing.T) {
	panel := &component.Panel{
		Base: component.Base{ID: "p", Class: "form"},
		Layout: layout.MustGridLayout(1, 3,
			layout.WithHorizontalGap(layout.GapSmall),
			layout.WithVerticalGap(layout.GapLarge),
		),
	}
	panel.Add(
		&component.Text{Text: "x"},
		&component.Text{Base: component.Base{Invisible: true}, Text: "gone"},
	)

	got := testsupport.MustRender(t, webxml.NewRegistry(), panel)
	want := `<ui:panel id="p" class="form"><ui:gridlayout rows="1" cols="3" hgap="sm" vgap="lg"><ui:cell>x</ui:cell><ui:cell></ui:cell></ui:gridlayout></ui:panel>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGridLayout_ZeroValueIsRejected(t *testing.T) {
	panel := &component.Panel{Base: component.Base{ID: "p"}, Layout: layout.GridLayout{}}
	panel.Add(&component.Text{Text: "a"})

	_, err := render.Render(testsupport.Context(), webxml.NewRegistry(), panel)
	if !errors.Is(err, layout.ErrNoDimension) {
		t.Fatalf("expected ErrNoDimension, got %v", err)
	}
}

func TestFlowLayout(t *testing.T) {
	flow, err := layout.NewFlowLayout(layout.AlignCenter, layout.GapMedium)
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	panel := &component.Panel{Base: component.Base{ID: "bar"}, Layout: flow}
	panel.Add(&component.Text{Text: "one"})

	got := testsupport.MustRender(t, webxml.NewRegistry(), panel)
	want := `<ui:panel id="bar"><ui:flowlayout align="center" gap="med"><ui:cell>one</ui:cell></ui:flowlayout></ui:panel>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("flow mismatch (-want +got):\n%s", diff)
	}
}

func TestLabel_TargetClassification(t *testing.T) {
	cases := []struct {
		name  string
		label *component.Label
		want  string
	}{
		{
			name: "single input",
			label: &component.Label{
				Base: component.Base{ID: "lbl"},
				Text: "Name",
				For: &component.TextField{
					Base:       component.Base{ID: "name"},
					InputState: component.InputState{Mandatory: true},
				},
			},
			want: `<ui:label id="lbl" for="name" what="input" required="true">Name</ui:label>`,
		},
		{
			name: "multi input group",
			label: &component.Label{
				Base: component.Base{ID: "lbl"},
				Text: "Pick",
				For: &component.CheckBoxSelect{
					Base:       component.Base{ID: "opts", Hidden: true},
					InputState: component.InputState{ReadOnly: true},
				},
			},
			want: `<ui:label id="lbl" for="opts" what="group" readonly="true" hiddencomponent="true">Pick</ui:label>`,
		},
		{
			name: "non labelable target",
			label: &component.Label{
				Base: component.Base{ID: "lbl"},
				Text: "Help",
				For:  &component.Popup{Base: component.Base{ID: "help"}},
			},
			want: `<ui:label id="lbl" for="help">Help</ui:label>`,
		},
		{
			name: "all optional attributes",
			label: &component.Label{
				Base:           component.Base{ID: "l", Class: "c", Track: true, Hidden: true},
				Text:           "T & C",
				Hint:           "h",
				AccessKey:      'n',
				ToolTip:        "tip",
				AccessibleText: "acc",
			},
			want: `<ui:label id="l" class="c" track="true" hint="h" accessKey="N" hidden="true" toolTip="tip" accessibleText="acc">T &amp; C</ui:label>`,
		},
	}

	reg := webxml.NewRegistry()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := testsupport.MustRender(t, reg, tc.label)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("label mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabel_RawTextIsSanitized(t *testing.T) {
	label := &component.Label{
		Base: component.Base{ID: "lbl"},
		Text: `<b>bold</b><script>alert(1)</script>`,
		Raw:  true,
	}
	got := testsupport.MustRender(t, webxml.NewRegistry(), label)
	want := `<ui:label id="lbl"><b>bold</b></ui:label>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("raw label mismatch (-want +got):\n%s", diff)
	}
}

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestLabel_TranslatesTextKey(t *testing.T) {
	panel := &component.Panel{Base: component.Base{ID: "p"}}
	panel.Add(
		&component.Label{Base: component.Base{ID: "a"}, Text: "Name", TextKey: "fields.name"},
		&component.Label{Base: component.Base{ID: "b"}, Text: "Email", TextKey: "fields.email"},
	)

	got := testsupport.MustRender(t, webxml.NewRegistry(), panel,
		render.WithTranslator(stubTranslator{"fields.name": "Nombre"}, "es"),
	)
	want := `<ui:panel id="p"><ui:label id="a">Nombre</ui:label><ui:label id="b">Email</ui:label></ui:panel>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("translated mismatch (-want +got):\n%s", diff)
	}
}

func TestPopup_DimensionsOptional(t *testing.T) {
	reg := webxml.NewRegistry()

	bare := &component.Popup{URL: "http://example.com/p?a=1&b=2"}
	if diff := cmp.Diff(`<wc-popup url="http://example.com/p?a=1&amp;b=2"></wc-popup>`, testsupport.MustRender(t, reg, bare)); diff != "" {
		t.Fatalf("bare popup mismatch (-want +got):\n%s", diff)
	}

	full := &component.Popup{
		URL:          "/help",
		Width:        300,
		Height:       200,
		Resizable:    true,
		Scrollable:   true,
		TargetWindow: "helpwin",
	}
	want := `<wc-popup url="/help" width="300" height="200" resizable="true" scrollbars="true" target="helpwin"></wc-popup>`
	if diff := cmp.Diff(want, testsupport.MustRender(t, reg, full)); diff != "" {
		t.Fatalf("full popup mismatch (-want +got):\n%s", diff)
	}

	blankTarget := &component.Popup{URL: "/x", Width: -5, TargetWindow: "  "}
	if diff := cmp.Diff(`<wc-popup url="/x"></wc-popup>`, testsupport.MustRender(t, reg, blankTarget)); diff != "" {
		t.Fatalf("blank target mismatch (-want +got):\n%s", diff)
	}
}

func TestInputs(t *testing.T) {
	panel := &component.Panel{Base: component.Base{ID: "form"}}
	panel.Add(
		&component.TextField{
			Base:       component.Base{ID: "name", Track: true},
			InputState: component.InputState{Mandatory: true, ReadOnly: true},
			Value:      "Ada <admin>",
			MaxLength:  20,
		},
		&component.Dropdown{
			Base:     component.Base{ID: "dd"},
			Options:  []component.Option{{Value: "a", Text: "Alpha"}, {Value: "b"}},
			Selected: "b",
		},
		&component.CheckBoxSelect{
			Base:     component.Base{ID: "cbs", Hidden: true},
			Options:  []component.Option{{Value: "x", Text: "X"}, {Value: "y", Text: "Y"}},
			Selected: []string{"x"},
		},
	)

	got := testsupport.MustRender(t, webxml.NewRegistry(), panel)
	want := `<ui:panel id="form">` +
		`<ui:textfield id="name" track="true" required="true" readOnly="true" maxLength="20">Ada &lt;admin&gt;</ui:textfield>` +
		`<ui:dropdown id="dd"><ui:option id="dd-0" value="a">Alpha</ui:option><ui:option id="dd-1" value="b" selected="true">b</ui:option></ui:dropdown>` +
		`<ui:checkboxselect id="cbs" hidden="true"><ui:option id="cbs-0" value="x" selected="true">X</ui:option><ui:option id="cbs-1" value="y">Y</ui:option></ui:checkboxselect>` +
		`</ui:panel>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeater_RendersRowsInOwnContext(t *testing.T) {
	row := &component.Panel{Base: component.Base{ID: "row"}}
	row.Add(&component.TextField{Base: component.Base{ID: "name"}, Bind: "name"})
	rpt := &component.Repeater{
		Base:     component.Base{ID: "people"},
		Template: row,
		Rows: []map[string]string{
			{"name": "Ada"},
			{"name": "Grace"},
		},
	}

	got := testsupport.MustRender(t, webxml.NewRegistry(), rpt)
	want := `<ui:repeater id="people">` +
		`<ui:panel id="people-0-row"><ui:textfield id="people-0-name">Ada</ui:textfield></ui:panel>` +
		`<ui:panel id="people-1-row"><ui:textfield id="people-1-name">Grace</ui:textfield></ui:panel>` +
		`</ui:repeater>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("repeater mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PerContextState(t *testing.T) {
	field := &component.TextField{Base: component.Base{ID: "f"}, Value: "shared"}
	reg := webxml.NewRegistry()

	first := uicontext.New()
	second := uicontext.New()
	component.SetValue(field, first, "mine")
	component.SetHidden(field, second, true)

	if diff := cmp.Diff(`<ui:textfield id="f">mine</ui:textfield>`, testsupport.MustRenderIn(t, reg, field, first)); diff != "" {
		t.Fatalf("first context (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(`<ui:textfield id="f" hidden="true">shared</ui:textfield>`, testsupport.MustRenderIn(t, reg, field, second)); diff != "" {
		t.Fatalf("second context (-want +got):\n%s", diff)
	}
}

func TestRender_UnsupportedKind(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(component.KindPanel, webxmlPanelOnly())

	panel := &component.Panel{Base: component.Base{ID: "p"}}
	panel.Add(&component.Popup{URL: "/x"})

	_, err := render.Render(testsupport.Context(), reg, panel)
	var unsupported *render.UnsupportedKindError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedKindError, got %v", err)
	}
	if unsupported.Kind != string(component.KindPopup) {
		t.Fatalf("unexpected kind %q", unsupported.Kind)
	}
}

func webxmlPanelOnly() render.Renderer {
	full := webxml.NewRegistry()
	renderer, err := full.Get(component.KindPanel)
	if err != nil {
		panic(err)
	}
	return renderer
}
