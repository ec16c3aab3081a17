package component

import (
	"strconv"

	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// Kind tags the closed set of component types.
type Kind string

const (
	KindPanel          Kind = "panel"
	KindLabel          Kind = "label"
	KindText           Kind = "text"
	KindTextField      Kind = "textfield"
	KindDropdown       Kind = "dropdown"
	KindCheckBoxSelect Kind = "checkboxselect"
	KindPopup          Kind = "popup"
	KindRepeater       Kind = "repeater"
)

// Kinds lists every built-in kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindPanel,
		KindLabel,
		KindText,
		KindTextField,
		KindDropdown,
		KindCheckBoxSelect,
		KindPopup,
		KindRepeater,
	}
}

// ParseKind resolves a kind name. Matching is exact.
func ParseKind(name string) (Kind, bool) {
	for _, kind := range Kinds() {
		if string(kind) == name {
			return kind, true
		}
	}
	return "", false
}

// Component is implemented by every node in the tree.
type Component interface {
	Kind() Kind
	Common() *Base
}

// Base holds the attributes shared by all components. Children are owned by
// the component embedding Base.
type Base struct {
	ID    string
	Class string
	// Hidden components are rendered but flagged hidden for the client.
	Hidden bool
	// Invisible components are not rendered at all.
	Invisible bool
	Track     bool
	Children  []Component
}

// Common exposes the shared attributes.
func (b *Base) Common() *Base { return b }

// Add appends children, skipping nils.
func (b *Base) Add(children ...Component) {
	for _, child := range children {
		if child == nil {
			continue
		}
		b.Children = append(b.Children, child)
	}
}

// Labelable is implemented by components that can be the target of a label.
type Labelable interface {
	Component
	labelable()
}

// Input is implemented by components that accept user input.
type Input interface {
	Component
	IsReadOnly() bool
	IsMandatory() bool
}

// MultiInput marks components that group several inputs under a single
// label, such as a set of checkboxes.
type MultiInput interface {
	Input
	multiInput()
}

// OptionList is implemented by components offering a list of displayed
// options.
type OptionList interface {
	Component
	OptionItems() []Option
}

// Option is an entry of a list component.
type Option struct {
	Value string
	Text  string
}

// Display returns the text shown to the user, falling back to the value.
func (o Option) Display() string {
	if o.Text != "" {
		return o.Text
	}
	return o.Value
}

// InputState is embedded by input components.
type InputState struct {
	ReadOnly  bool
	Mandatory bool
}

// IsReadOnly implements Input.
func (s InputState) IsReadOnly() bool { return s.ReadOnly }

// IsMandatory implements Input.
func (s InputState) IsMandatory() bool { return s.Mandatory }

const (
	overrideHidden    = "hidden"
	overrideInvisible = "invisible"
	overrideText      = "text"
	overrideValue     = "value"
)

// RenderedID returns the id of c as it appears in markup rendered for uic.
func RenderedID(c Component, uic *uicontext.Context) string {
	if c == nil || c.Common().ID == "" {
		return ""
	}
	return uic.IDPrefix() + c.Common().ID
}

// OptionID returns the rendered id of the option at idx of list, or "" when
// list has no id.
func OptionID(list Component, uic *uicontext.Context, idx int) string {
	id := RenderedID(list, uic)
	if id == "" {
		return ""
	}
	return id + "-" + strconv.Itoa(idx)
}

// IsHidden reports whether c is hidden in uic.
func IsHidden(c Component, uic *uicontext.Context) bool {
	if c == nil {
		return false
	}
	if value, ok := uic.Get(c.Common().ID, overrideHidden); ok {
		if hidden, ok := value.(bool); ok {
			return hidden
		}
	}
	return c.Common().Hidden
}

// IsVisible reports whether c is rendered at all in uic.
func IsVisible(c Component, uic *uicontext.Context) bool {
	if c == nil {
		return false
	}
	if value, ok := uic.Get(c.Common().ID, overrideInvisible); ok {
		if invisible, ok := value.(bool); ok {
			return !invisible
		}
	}
	return !c.Common().Invisible
}

// SetVisible overrides the visibility of c for uic only.
func SetVisible(c Component, uic *uicontext.Context, visible bool) {
	if c == nil {
		return
	}
	uic.Set(c.Common().ID, overrideInvisible, !visible)
}

// SetHidden overrides the hidden flag of c for uic only.
func SetHidden(c Component, uic *uicontext.Context, hidden bool) {
	if c == nil {
		return
	}
	uic.Set(c.Common().ID, overrideHidden, hidden)
}

// SetText overrides the text of a label or text component for uic.
func SetText(c Component, uic *uicontext.Context, text string) {
	if c == nil {
		return
	}
	uic.Set(c.Common().ID, overrideText, text)
}

// SetValue overrides the value of an input component for uic.
func SetValue(c Component, uic *uicontext.Context, value string) {
	if c == nil {
		return
	}
	uic.Set(c.Common().ID, overrideValue, value)
}

func resolveString(c Component, uic *uicontext.Context, key, bind, fallback string) string {
	if value, ok := uic.Get(c.Common().ID, key); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	if bind != "" {
		if value, ok := uic.RowValue(bind); ok {
			return value
		}
	}
	return fallback
}
