package webxml

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/path"
)

const sampleDoc = `
kind: panel
id: form
children:
  - {kind: label, id: cityLabel, text: City, for: city}
  - kind: dropdown
    id: city
    options:
      - {value: mel, text: Melbourne}
      - {value: syd, text: Sydney}
`

func TestRenderAndLocate(t *testing.T) {
	root, err := LoadDocument([]byte(sampleDoc), "sample.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	out, err := Render(context.Background(), root)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(out), `<ui:panel id="form">`) {
		t.Fatalf("unexpected markup: %s", out)
	}
	if !strings.Contains(string(out), `for="city"`) {
		t.Fatalf("expected label target in markup: %s", out)
	}

	elements, err := FindElements(context.Background(), root, "#form/dropdown", path.WithValue("Sydney"))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	var ids []string
	for _, el := range elements {
		ids = append(ids, el.ID)
	}
	if diff := cmp.Diff([]string{"city-1"}, ids); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UsesContextOverrides(t *testing.T) {
	root, err := LoadDocument([]byte(sampleDoc), "sample.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	uic := NewUIContext()
	component.SetVisible(component.FindByID(root, "city"), uic, false)

	out, err := Render(WithUIContext(context.Background(), uic), root)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "ui:dropdown") {
		t.Fatalf("invisible dropdown rendered: %s", out)
	}

	plain, err := Render(context.Background(), root)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(plain), "ui:dropdown") {
		t.Fatalf("override leaked into a fresh context: %s", plain)
	}
}

func TestRenderPage(t *testing.T) {
	root, err := LoadDocument([]byte(sampleDoc), "sample.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := RenderPage(context.Background(), root, nil, "Cities")
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if !strings.HasPrefix(string(out), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("missing declaration: %s", out)
	}
	if !strings.Contains(string(out), `title="Cities"><ui:panel id="form">`) {
		t.Fatalf("body not wrapped: %s", out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "page.tpl"); err != nil {
		t.Fatalf("expected embedded page template: %v", err)
	}
	if NewRegistry() == DefaultRegistry() {
		t.Fatalf("NewRegistry must return a fresh registry")
	}
}
