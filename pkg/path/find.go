package path

import (
	"log/slog"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// ComponentWithContext pairs a matched component with the UI context it was
// found in.
type ComponentWithContext struct {
	Component component.Component
	Context   *uicontext.Context
}

// matchKey identifies a match by component and row prefix. Row contexts are
// derived afresh on every traversal, so the prefix stands in for identity.
type matchKey struct {
	component component.Component
	prefix    string
}

// child is one edge of the traversal: repeaters expand their template once
// per row, each with the row's derived context.
type child struct {
	component component.Component
	context   *uicontext.Context
}

// FindComponents resolves p from root in uic. The first segment may match
// root or any descendant; each later segment matches descendants of the
// previous match. Results are in document order without duplicates. The
// returned slice is never nil.
func FindComponents(root component.Component, uic *uicontext.Context, p Path, options ...Option) []ComponentWithContext {
	cfg := newConfig(options...)
	if uic == nil {
		uic = uicontext.New()
	}
	result := make([]ComponentWithContext, 0)
	if root == nil || p.Len() == 0 {
		return result
	}

	f := finder{cfg: cfg}
	current := f.matchFirst(root, uic, p.segments[0])
	cfg.logger.Debug("path segment resolved",
		slog.String("segment", p.segments[0].raw),
		slog.Int("matches", len(current)),
	)

	for _, seg := range p.segments[1:] {
		var next []ComponentWithContext
		for _, match := range current {
			next = append(next, f.matchBelow(match.Component, match.Context, seg)...)
		}
		current = dedupe(next)
		cfg.logger.Debug("path segment resolved",
			slog.String("segment", seg.raw),
			slog.Int("matches", len(current)),
		)
		if len(current) == 0 {
			break
		}
	}

	return append(result, dedupe(current)...)
}

type finder struct {
	cfg *config
}

func (f finder) visible(c component.Component, uic *uicontext.Context) bool {
	return f.cfg.includeInvisible || component.IsVisible(c, uic)
}

// matchFirst tests root itself, then every descendant.
func (f finder) matchFirst(root component.Component, uic *uicontext.Context, seg Segment) []ComponentWithContext {
	if !f.visible(root, uic) {
		return nil
	}
	var matches []ComponentWithContext
	if seg.Matches(root) && seg.Index <= 0 {
		matches = append(matches, ComponentWithContext{Component: root, Context: uic})
	}
	return append(matches, f.matchBelow(root, uic, seg)...)
}

// matchBelow collects descendants of parent matching seg. Index filtering is
// applied per sibling list.
func (f finder) matchBelow(parent component.Component, uic *uicontext.Context, seg Segment) []ComponentWithContext {
	var matches []ComponentWithContext
	for _, siblings := range f.childGroups(parent, uic) {
		count := 0
		for _, ch := range siblings {
			if !f.visible(ch.component, ch.context) {
				continue
			}
			if seg.Matches(ch.component) {
				if seg.Index < 0 || seg.Index == count {
					matches = append(matches, ComponentWithContext{Component: ch.component, Context: ch.context})
				}
				count++
			}
			matches = append(matches, f.matchBelow(ch.component, ch.context, seg)...)
		}
	}
	return matches
}

// childGroups returns the sibling lists below parent. A repeater yields one
// group per row so that indexes count within a row.
func (f finder) childGroups(parent component.Component, uic *uicontext.Context) [][]child {
	if rpt, ok := parent.(*component.Repeater); ok {
		if rpt.Template == nil {
			return nil
		}
		rows := rpt.RowContexts(uic)
		groups := make([][]child, 0, len(rows))
		for _, rowCtx := range rows {
			groups = append(groups, []child{{component: rpt.Template, context: rowCtx}})
		}
		return groups
	}

	children := component.Children(parent)
	if len(children) == 0 {
		return nil
	}
	group := make([]child, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		group = append(group, child{component: c, context: uic})
	}
	return [][]child{group}
}

func dedupe(matches []ComponentWithContext) []ComponentWithContext {
	if len(matches) < 2 {
		return matches
	}
	seen := make(map[matchKey]struct{}, len(matches))
	out := matches[:0:0]
	for _, match := range matches {
		key := matchKey{component: match.Component, prefix: match.Context.IDPrefix()}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, match)
	}
	return out
}
