package component

import (
	"github.com/goliatone/go-webxml/pkg/layout"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// Panel is a container that arranges its children with an optional layout.
type Panel struct {
	Base
	Layout layout.Layout
}

func (*Panel) Kind() Kind { return KindPanel }

// Label annotates another component referenced by For.
type Label struct {
	Base
	Text string
	// TextKey is a message key translated at render time; Text is the
	// fallback when no translation exists.
	TextKey string
	// Raw marks Text as markup that is written without encoding.
	Raw            bool
	For            Component
	Hint           string
	AccessKey      rune
	ToolTip        string
	AccessibleText string
}

func (*Label) Kind() Kind { return KindLabel }

// TextIn returns the label text for uic.
func (l *Label) TextIn(uic *uicontext.Context) string {
	return resolveString(l, uic, overrideText, "", l.Text)
}

// Text renders plain text. It emits no element and therefore cannot be
// located by id.
type Text struct {
	Base
	Text    string
	TextKey string
	// Bind names a repeater row key supplying the text.
	Bind string
	Raw  bool
}

func (*Text) Kind() Kind { return KindText }

// TextIn returns the text for uic.
func (t *Text) TextIn(uic *uicontext.Context) string {
	return resolveString(t, uic, overrideText, t.Bind, t.Text)
}

// TextField is a single line input.
type TextField struct {
	Base
	InputState
	Value     string
	Bind      string
	MaxLength int
}

func (*TextField) Kind() Kind { return KindTextField }
func (*TextField) labelable() {}

// ValueIn returns the field value for uic.
func (f *TextField) ValueIn(uic *uicontext.Context) string {
	return resolveString(f, uic, overrideValue, f.Bind, f.Value)
}

// Dropdown selects a single option.
type Dropdown struct {
	Base
	InputState
	Options  []Option
	Selected string
	Bind     string
}

func (*Dropdown) Kind() Kind { return KindDropdown }
func (*Dropdown) labelable() {}

// OptionItems implements OptionList.
func (d *Dropdown) OptionItems() []Option { return d.Options }

// SelectedIn returns the selected option value for uic.
func (d *Dropdown) SelectedIn(uic *uicontext.Context) string {
	return resolveString(d, uic, overrideValue, d.Bind, d.Selected)
}

// CheckBoxSelect renders a group of checkboxes labelled as one unit.
type CheckBoxSelect struct {
	Base
	InputState
	Options  []Option
	Selected []string
}

func (*CheckBoxSelect) Kind() Kind { return KindCheckBoxSelect }
func (*CheckBoxSelect) labelable() {}
func (*CheckBoxSelect) multiInput() {}

// OptionItems implements OptionList.
func (c *CheckBoxSelect) OptionItems() []Option { return c.Options }

// IsSelected reports whether value is among the selected options.
func (c *CheckBoxSelect) IsSelected(value string) bool {
	for _, selected := range c.Selected {
		if selected == value {
			return true
		}
	}
	return false
}

// Popup opens a URL in a new browser window when rendered.
type Popup struct {
	Base
	URL          string
	Width        int
	Height       int
	Resizable    bool
	Scrollable   bool
	TargetWindow string
}

func (*Popup) Kind() Kind { return KindPopup }

// Repeater renders Template once per row; each row is painted in its own
// derived UI context.
type Repeater struct {
	Base
	Template Component
	Rows     []map[string]string
}

func (*Repeater) Kind() Kind { return KindRepeater }

// RowContexts returns one UI context per row. Component ids rendered in a row
// are prefixed with "<repeater id>-<row>-". The contexts are kept on uic, so
// overrides set on a row context survive later traversals of the same uic.
func (r *Repeater) RowContexts(uic *uicontext.Context) []*uicontext.Context {
	if len(r.Rows) == 0 {
		return nil
	}
	contexts := make([]*uicontext.Context, len(r.Rows))
	for idx, row := range r.Rows {
		contexts[idx] = uic.Row(r.ID, idx, row)
	}
	return contexts
}
