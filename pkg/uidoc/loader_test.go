package uidoc_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/layout"
	"github.com/goliatone/go-webxml/pkg/uidoc"
)

func childIDs(c component.Component) []string {
	var ids []string
	for _, child := range component.Children(c) {
		ids = append(ids, child.Common().ID)
	}
	return ids
}

func TestLoadFile_YAML(t *testing.T) {
	root, err := uidoc.LoadFile(filepath.Join("testdata", "form.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	panel, ok := root.(*component.Panel)
	if !ok {
		t.Fatalf("expected panel root, got %T", root)
	}
	if panel.ID != "form" || panel.Class != "wc-form" {
		t.Fatalf("unexpected root identity: %+v", panel.Base)
	}

	wantIDs := []string{"nameLabel", "name", "cityLabel", "city", "topicsLabel", "topics", "people", ""}
	if diff := cmp.Diff(wantIDs, childIDs(panel)); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}

	grid, ok := panel.Layout.(layout.GridLayout)
	if !ok {
		t.Fatalf("expected grid layout, got %T", panel.Layout)
	}
	if grid.Rows() != 3 || grid.Cols() != 2 {
		t.Fatalf("unexpected grid size %dx%d", grid.Rows(), grid.Cols())
	}
	if hgap, ok := grid.HorizontalGap(); !ok || hgap != layout.GapSmall {
		t.Fatalf("expected small hgap, got %v %v", hgap, ok)
	}
	if vgap, ok := grid.VerticalGap(); !ok || vgap != layout.GapLarge {
		t.Fatalf("expected pixel vgap 12 to map to lg, got %v %v", vgap, ok)
	}

	nameLabel := component.FindByID(root, "nameLabel").(*component.Label)
	name := component.FindByID(root, "name")
	if nameLabel.For != name {
		t.Fatalf("label target not resolved")
	}
	if nameLabel.AccessKey != 'n' {
		t.Fatalf("unexpected access key %q", nameLabel.AccessKey)
	}
	if field := name.(*component.TextField); !field.IsMandatory() || field.MaxLength != 40 {
		t.Fatalf("unexpected textfield %+v", field)
	}

	city := component.FindByID(root, "city").(*component.Dropdown)
	if city.Selected != "syd" || len(city.Options) != 2 {
		t.Fatalf("unexpected dropdown %+v", city)
	}
	if cityLabel := component.FindByID(root, "cityLabel").(*component.Label); cityLabel.TextKey != "form.city" {
		t.Fatalf("unexpected text key %q", cityLabel.TextKey)
	}

	topics := component.FindByID(root, "topics").(*component.CheckBoxSelect)
	if diff := cmp.Diff([]string{"go", "xml"}, topics.Selected); diff != "" {
		t.Fatalf("selected mismatch (-want +got):\n%s", diff)
	}
	if !topics.IsReadOnly() {
		t.Fatalf("expected read only checkbox select")
	}

	people := component.FindByID(root, "people").(*component.Repeater)
	if len(people.Rows) != 2 || people.Rows[1]["name"] != "Grace" {
		t.Fatalf("unexpected rows %+v", people.Rows)
	}
	person := people.Template.(*component.Panel)
	flow, ok := person.Layout.(layout.FlowLayout)
	if !ok || flow.Alignment() != layout.AlignVertical {
		t.Fatalf("unexpected template layout %#v", person.Layout)
	}
	if gap, ok := flow.Gap(); !ok || gap != layout.GapMedium {
		t.Fatalf("expected med flow gap, got %v %v", gap, ok)
	}

	popup := panel.Children[7].(*component.Popup)
	if popup.URL != "https://example.com/help?a=1&b=2" || popup.Width != 300 || popup.TargetWindow != "help" {
		t.Fatalf("unexpected popup %+v", popup)
	}
}

func TestLoadFS_JSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "form.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	fsys := fstest.MapFS{"docs/form.json": &fstest.MapFile{Data: data}}

	root, err := uidoc.LoadFS(fsys, "docs/form.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	flow, ok := root.(*component.Panel).Layout.(layout.FlowLayout)
	if !ok || flow.Alignment() != layout.AlignCenter {
		t.Fatalf("unexpected layout %#v", root.(*component.Panel).Layout)
	}
	if gap, _ := flow.Gap(); gap != layout.GapMedium {
		t.Fatalf("expected 6px to map to med, got %v", gap)
	}
	if value := component.FindByID(root, "name").(*component.TextField).Value; value != "Ada" {
		t.Fatalf("unexpected value %q", value)
	}

	if _, err := uidoc.LoadFS(fsys, "docs/missing.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{name: "empty", doc: "  \n", want: uidoc.ErrEmptyDocument},
		{name: "unknown kind", doc: "kind: window", want: uidoc.ErrUnknownKind},
		{
			name: "duplicate id",
			doc:  "kind: panel\nchildren:\n  - {kind: textfield, id: a}\n  - {kind: dropdown, id: a}",
			want: uidoc.ErrDuplicateID,
		},
		{
			name: "unresolved for",
			doc:  "kind: panel\nchildren:\n  - {kind: label, id: l, for: ghost}",
			want: uidoc.ErrUnresolvedFor,
		},
		{name: "grid zero", doc: "kind: panel\nlayout: {grid: {rows: 0, cols: 0}}", want: uidoc.ErrInvalidLayout},
		{name: "grid negative", doc: "kind: panel\nlayout: {grid: {rows: -1, cols: 2}}", want: layout.ErrNegativeRows},
		{name: "bad gap", doc: "kind: panel\nlayout: {grid: {rows: 1, cols: 1, hgap: huge}}", want: uidoc.ErrInvalidLayout},
		{name: "both layouts", doc: "kind: panel\nlayout: {grid: {rows: 1, cols: 1}, flow: {align: left}}", want: uidoc.ErrInvalidLayout},
		{name: "bad align", doc: "kind: panel\nlayout: {flow: {align: diagonal}}", want: uidoc.ErrInvalidLayout},
		{name: "children on input", doc: "kind: textfield\nchildren: [{kind: text}]", want: uidoc.ErrInvalidNode},
		{name: "repeater without id", doc: "kind: repeater\ntemplate: {kind: text}", want: uidoc.ErrInvalidNode},
		{name: "popup without url", doc: "kind: popup", want: uidoc.ErrInvalidNode},
		{name: "multi select dropdown", doc: "kind: dropdown\nselected: [a, b]", want: uidoc.ErrInvalidNode},
		{name: "malformed", doc: "kind: [panel", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uidoc.Load([]byte(tc.doc), "inline.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestIsDocumentFile(t *testing.T) {
	for name, want := range map[string]bool{
		"form.yaml": true,
		"form.YML":  true,
		"form.json": true,
		"form.xml":  false,
		"form":      false,
	} {
		if got := uidoc.IsDocumentFile(name); got != want {
			t.Errorf("IsDocumentFile(%q) = %v, want %v", name, got, want)
		}
	}
}
