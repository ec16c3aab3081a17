package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/path"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// sampleTree builds:
//
//	root(panel)
//	  nameLabel(label) name(textfield)
//	  inner(panel)
//	    cityLabel(label) city(dropdown)
//	  secret(panel, invisible)
//	    secretLabel(label)
//	  people(repeater) -> row(panel) -> person(text) personField(textfield)
func sampleTree() (*component.Panel, map[string]component.Component) {
	name := &component.TextField{Base: component.Base{ID: "name"}}
	nameLabel := &component.Label{Base: component.Base{ID: "nameLabel"}, Text: "Name", For: name}
	city := &component.Dropdown{
		Base: component.Base{ID: "city"},
		Options: []component.Option{
			{Value: "mel", Text: "Melbourne"},
			{Value: "syd", Text: "Sydney"},
		},
	}
	cityLabel := &component.Label{Base: component.Base{ID: "cityLabel"}, Text: "City", For: city}

	inner := &component.Panel{Base: component.Base{ID: "inner"}}
	inner.Add(cityLabel, city)

	secretLabel := &component.Label{Base: component.Base{ID: "secretLabel"}, Text: "Secret"}
	secret := &component.Panel{Base: component.Base{ID: "secret", Invisible: true}}
	secret.Add(secretLabel)

	person := &component.Text{Base: component.Base{ID: "person"}, Bind: "name"}
	personField := &component.TextField{Base: component.Base{ID: "personField"}, Bind: "name"}
	row := &component.Panel{Base: component.Base{ID: "row"}}
	row.Add(person, personField)
	people := &component.Repeater{
		Base:     component.Base{ID: "people"},
		Template: row,
		Rows: []map[string]string{
			{"name": "Ada"},
			{"name": "Grace"},
		},
	}

	root := &component.Panel{Base: component.Base{ID: "root"}}
	root.Add(nameLabel, name, inner, secret, people)

	return root, map[string]component.Component{
		"name":        name,
		"nameLabel":   nameLabel,
		"city":        city,
		"cityLabel":   cityLabel,
		"inner":       inner,
		"secret":      secret,
		"secretLabel": secretLabel,
		"person":      person,
		"personField": personField,
		"row":         row,
		"people":      people,
	}
}

func ids(matches []path.ComponentWithContext) []string {
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, component.RenderedID(match.Component, match.Context))
	}
	return out
}

func TestFindComponents_FirstSegmentMatchesAnyDepth(t *testing.T) {
	root, _ := sampleTree()

	matches := path.FindComponents(root, uicontext.New(), path.MustParse("label"))
	assert.Equal(t, []string{"nameLabel", "cityLabel"}, ids(matches))

	matches = path.FindComponents(root, uicontext.New(), path.MustParse("panel"))
	assert.Equal(t, []string{"root", "inner", "people-0-row", "people-1-row"}, ids(matches))
}

func TestFindComponents_DescendsAndDedupes(t *testing.T) {
	root, _ := sampleTree()

	// root and inner both reach cityLabel; it must appear once.
	matches := path.FindComponents(root, uicontext.New(), path.MustParse("panel/label"))
	assert.Equal(t, []string{"nameLabel", "cityLabel"}, ids(matches))

	matches = path.FindComponents(root, uicontext.New(), path.MustParse("#inner/dropdown"))
	assert.Equal(t, []string{"city"}, ids(matches))
}

func TestFindComponents_IndexIsPerParent(t *testing.T) {
	root, _ := sampleTree()

	matches := path.FindComponents(root, uicontext.New(), path.MustParse("#root/*[1]"))
	// Second child of root, second child of inner, second child of each row.
	assert.Equal(t, []string{"name", "city", "people-0-personField", "people-1-personField"}, ids(matches))

	matches = path.FindComponents(root, uicontext.New(), path.MustParse("label[1]"))
	assert.Empty(t, matches)
}

func TestFindComponents_InvisibleSubtrees(t *testing.T) {
	root, _ := sampleTree()
	uic := uicontext.New()

	assert.Empty(t, path.FindComponents(root, uic, path.MustParse("#secretLabel")))

	matches := path.FindComponents(root, uic, path.MustParse("#secretLabel"), path.IncludeInvisible())
	assert.Equal(t, []string{"secretLabel"}, ids(matches))

	other := uicontext.New()
	component.SetVisible(root.Children[3], other, true)
	assert.Len(t, path.FindComponents(root, other, path.MustParse("#secretLabel")), 1)
	assert.Empty(t, path.FindComponents(root, uic, path.MustParse("#secretLabel")))
}

func TestFindComponents_RepeaterRowsHaveDistinctContexts(t *testing.T) {
	root, nodes := sampleTree()
	uic := uicontext.New()

	matches := path.FindComponents(root, uic, path.MustParse("repeater/text"))
	require.Len(t, matches, 2)

	assert.Same(t, nodes["person"], matches[0].Component)
	assert.Same(t, nodes["person"], matches[1].Component)
	assert.NotSame(t, matches[0].Context, matches[1].Context)
	assert.Same(t, uic, matches[0].Context.Parent())

	assert.Equal(t, "Ada", matches[0].Component.(*component.Text).TextIn(matches[0].Context))
	assert.Equal(t, "Grace", matches[1].Component.(*component.Text).TextIn(matches[1].Context))
	assert.Equal(t, 0, matches[0].Context.RowIndex())
	assert.Equal(t, 1, matches[1].Context.RowIndex())
}

func TestFindComponents_EmptyResult(t *testing.T) {
	root, _ := sampleTree()

	matches := path.FindComponents(root, uicontext.New(), path.MustParse("popup"))
	require.NotNil(t, matches)
	assert.Empty(t, matches)

	matches = path.FindComponents(nil, nil, path.MustParse("panel"))
	require.NotNil(t, matches)
	assert.Empty(t, matches)
}
