package uidoc

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/layout"
)

// Load parses a JSON or YAML document and builds its component tree. source
// names the document in error messages.
func Load(data []byte, source string) (component.Component, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	b := &builder{
		source: source,
		byID:   make(map[string]component.Component),
	}
	root, err := b.build(doc, "root")
	if err != nil {
		return nil, err
	}
	if err := b.resolveTargets(); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadFS reads name from fsys and builds its component tree.
func LoadFS(fsys fs.FS, name string) (component.Component, error) {
	if fsys == nil {
		return nil, fmt.Errorf("uidoc: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("uidoc: read %s: %w", name, err)
	}
	return Load(data, name)
}

// LoadFile reads a document from the local filesystem.
func LoadFile(path string) (component.Component, error) {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(dir), name)
}

// IsDocumentFile reports whether path has a document extension.
func IsDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, source string) (nodeFile, error) {
	var doc nodeFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return nodeFile{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = nodeFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nodeFile{}, fmt.Errorf("uidoc: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

type pendingTarget struct {
	label  *component.Label
	target string
	where  string
}

type builder struct {
	source  string
	byID    map[string]component.Component
	pending []pendingTarget
}

func (b *builder) fail(sentinel error, where, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s: %s", sentinel, b.source, where, fmt.Sprintf(format, args...))
}

func (b *builder) wrap(sentinel error, where string, err error) error {
	return fmt.Errorf("%w: %s: %s: %w", sentinel, b.source, where, err)
}

func (b *builder) build(node nodeFile, where string) (component.Component, error) {
	kind, ok := component.ParseKind(strings.ToLower(strings.TrimSpace(node.Kind)))
	if !ok {
		return nil, b.fail(ErrUnknownKind, where, "%q", node.Kind)
	}

	id := strings.TrimSpace(node.ID)
	if id != "" {
		where = where + "#" + id
	}

	c, err := b.newComponent(kind, node, where)
	if err != nil {
		return nil, err
	}

	base := c.Common()
	base.ID = id
	base.Class = strings.TrimSpace(node.Class)
	base.Hidden = node.Hidden
	base.Invisible = node.Invisible
	base.Track = node.Track

	if id != "" {
		if _, exists := b.byID[id]; exists {
			return nil, b.fail(ErrDuplicateID, where, "%q", id)
		}
		b.byID[id] = c
	}

	if len(node.Children) > 0 {
		if kind != component.KindPanel && kind != component.KindLabel {
			return nil, b.fail(ErrInvalidNode, where, "%s does not take children", kind)
		}
		for idx, childNode := range node.Children {
			child, err := b.build(childNode, fmt.Sprintf("%s/%d", where, idx))
			if err != nil {
				return nil, err
			}
			base.Add(child)
		}
	}

	return c, nil
}

func (b *builder) newComponent(kind component.Kind, node nodeFile, where string) (component.Component, error) {
	if node.Layout != nil && kind != component.KindPanel {
		return nil, b.fail(ErrInvalidNode, where, "%s does not take a layout", kind)
	}
	if node.Popup != nil && kind != component.KindPopup {
		return nil, b.fail(ErrInvalidNode, where, "%s does not take popup settings", kind)
	}
	if node.Template != nil && kind != component.KindRepeater {
		return nil, b.fail(ErrInvalidNode, where, "%s does not take a template", kind)
	}

	state := component.InputState{ReadOnly: node.ReadOnly, Mandatory: node.Mandatory}

	switch kind {
	case component.KindPanel:
		l, err := b.buildLayout(node.Layout, where)
		if err != nil {
			return nil, err
		}
		return &component.Panel{Layout: l}, nil

	case component.KindLabel:
		label := &component.Label{
			Text:           node.Text,
			TextKey:        strings.TrimSpace(node.TextKey),
			Raw:            node.Raw,
			Hint:           node.Hint,
			ToolTip:        node.ToolTip,
			AccessibleText: node.AccessibleText,
		}
		if key := strings.TrimSpace(node.AccessKey); key != "" {
			r, _ := utf8.DecodeRuneInString(key)
			label.AccessKey = r
		}
		if target := strings.TrimSpace(node.For); target != "" {
			b.pending = append(b.pending, pendingTarget{label: label, target: target, where: where})
		}
		return label, nil

	case component.KindText:
		return &component.Text{
			Text:    node.Text,
			TextKey: strings.TrimSpace(node.TextKey),
			Bind:    strings.TrimSpace(node.Bind),
			Raw:     node.Raw,
		}, nil

	case component.KindTextField:
		if node.MaxLength < 0 {
			return nil, b.fail(ErrInvalidNode, where, "maxLength must not be negative")
		}
		return &component.TextField{
			InputState: state,
			Value:      node.Value,
			Bind:       strings.TrimSpace(node.Bind),
			MaxLength:  node.MaxLength,
		}, nil

	case component.KindDropdown:
		if len(node.Selected) > 1 {
			return nil, b.fail(ErrInvalidNode, where, "dropdown selects a single option")
		}
		dropdown := &component.Dropdown{
			InputState: state,
			Options:    convertOptions(node.Options),
			Bind:       strings.TrimSpace(node.Bind),
		}
		if len(node.Selected) == 1 {
			dropdown.Selected = node.Selected[0]
		}
		return dropdown, nil

	case component.KindCheckBoxSelect:
		return &component.CheckBoxSelect{
			InputState: state,
			Options:    convertOptions(node.Options),
			Selected:   append([]string(nil), node.Selected...),
		}, nil

	case component.KindPopup:
		if node.Popup == nil || strings.TrimSpace(node.Popup.URL) == "" {
			return nil, b.fail(ErrInvalidNode, where, "popup requires a url")
		}
		return &component.Popup{
			URL:          strings.TrimSpace(node.Popup.URL),
			Width:        node.Popup.Width,
			Height:       node.Popup.Height,
			Resizable:    node.Popup.Resizable,
			Scrollable:   node.Popup.Scrollbars,
			TargetWindow: node.Popup.Target,
		}, nil

	case component.KindRepeater:
		if strings.TrimSpace(node.ID) == "" {
			return nil, b.fail(ErrInvalidNode, where, "repeater requires an id")
		}
		if node.Template == nil {
			return nil, b.fail(ErrInvalidNode, where, "repeater requires a template")
		}
		template, err := b.build(*node.Template, where+"/template")
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]string, 0, len(node.Rows))
		for _, row := range node.Rows {
			cloned := make(map[string]string, len(row))
			for key, value := range row {
				cloned[key] = value
			}
			rows = append(rows, cloned)
		}
		return &component.Repeater{Template: template, Rows: rows}, nil
	}

	return nil, b.fail(ErrUnknownKind, where, "%q", kind)
}

func (b *builder) buildLayout(raw *layoutFile, where string) (layout.Layout, error) {
	if raw == nil {
		return nil, nil
	}
	if raw.Grid != nil && raw.Flow != nil {
		return nil, b.fail(ErrInvalidLayout, where, "grid and flow are mutually exclusive")
	}

	switch {
	case raw.Grid != nil:
		var opts []layout.GridOption
		hgap, ok, err := raw.Grid.HGap.resolve()
		if err != nil {
			return nil, b.wrap(ErrInvalidLayout, where+" hgap", err)
		}
		if ok {
			opts = append(opts, layout.WithHorizontalGap(hgap))
		}
		vgap, ok, err := raw.Grid.VGap.resolve()
		if err != nil {
			return nil, b.wrap(ErrInvalidLayout, where+" vgap", err)
		}
		if ok {
			opts = append(opts, layout.WithVerticalGap(vgap))
		}
		grid, err := layout.NewGridLayout(raw.Grid.Rows, raw.Grid.Cols, opts...)
		if err != nil {
			return nil, b.wrap(ErrInvalidLayout, where, err)
		}
		return grid, nil

	case raw.Flow != nil:
		align, err := layout.ParseAlignment(raw.Flow.Align)
		if err != nil {
			return nil, b.wrap(ErrInvalidLayout, where, err)
		}
		gap, _, err := raw.Flow.Gap.resolve()
		if err != nil {
			return nil, b.wrap(ErrInvalidLayout, where+" gap", err)
		}
		flow, err := layout.NewFlowLayout(align, gap)
		if err != nil {
			return nil, b.wrap(ErrInvalidLayout, where, err)
		}
		return flow, nil
	}

	return nil, b.fail(ErrInvalidLayout, where, "layout must be grid or flow")
}

func (b *builder) resolveTargets() error {
	for _, pending := range b.pending {
		target, ok := b.byID[pending.target]
		if !ok {
			return b.fail(ErrUnresolvedFor, pending.where, "%q", pending.target)
		}
		pending.label.For = target
	}
	return nil
}

func convertOptions(raw []option) []component.Option {
	if len(raw) == 0 {
		return nil
	}
	out := make([]component.Option, 0, len(raw))
	for _, opt := range raw {
		out = append(out, component.Option{Value: opt.Value, Text: opt.Text})
	}
	return out
}
