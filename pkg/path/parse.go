package path

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-webxml/pkg/component"
)

// Separator delimits path segments.
const Separator = "/"

// Segment matches components at one level of a path.
type Segment struct {
	// Kind restricts matches to one component kind. Empty for id and
	// wildcard segments.
	Kind component.Kind
	// ID matches the component id (not the rendered, prefixed id).
	ID string
	// Any matches every component.
	Any bool
	// Index keeps only the n-th match under one parent. -1 keeps all.
	Index int

	raw string
}

// String returns the segment as written.
func (s Segment) String() string { return s.raw }

// Matches reports whether c satisfies the segment, ignoring Index.
func (s Segment) Matches(c component.Component) bool {
	if c == nil {
		return false
	}
	switch {
	case s.Any:
		return true
	case s.ID != "":
		return c.Common().ID == s.ID
	default:
		return c.Kind() == s.Kind
	}
}

// Path is a parsed path expression.
type Path struct {
	segments []Segment
}

// Segments returns a copy of the parsed segments.
func (p Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// Raw returns the segments as written.
func (p Path) Raw() []string {
	raw := make([]string, len(p.segments))
	for i, seg := range p.segments {
		raw[i] = seg.raw
	}
	return raw
}

func (p Path) String() string {
	return strings.Join(p.Raw(), Separator)
}

// Parse splits expr on "/" and validates each segment. Accepted segment forms
// are "kind", "kind[n]", "#id", "*" and "*[n]".
func Parse(expr string) (Path, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Path{}, &SyntaxError{Expr: expr, Segment: -1, Reason: "expression is empty"}
	}

	parts := strings.Split(trimmed, Separator)
	segments := make([]Segment, 0, len(parts))
	for idx, part := range parts {
		seg, reason := parseSegment(strings.TrimSpace(part))
		if reason != "" {
			return Path{}, &SyntaxError{Expr: expr, Segment: idx, Reason: reason}
		}
		segments = append(segments, seg)
	}
	return Path{segments: segments}, nil
}

// MustParse panics when expr is invalid. Intended for tests and static paths.
func MustParse(expr string) Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(part string) (Segment, string) {
	seg := Segment{Index: -1, raw: part}
	if part == "" {
		return seg, "empty segment"
	}

	if strings.HasPrefix(part, "#") {
		id := part[1:]
		if id == "" {
			return seg, "id segment without id"
		}
		if strings.ContainsAny(id, "[]") {
			return seg, "id segments do not take an index"
		}
		seg.ID = id
		return seg, ""
	}

	name := part
	if open := strings.IndexByte(part, '['); open >= 0 {
		if !strings.HasSuffix(part, "]") {
			return seg, "unterminated index"
		}
		index, err := strconv.Atoi(part[open+1 : len(part)-1])
		if err != nil || index < 0 {
			return seg, "index must be a non-negative integer"
		}
		seg.Index = index
		name = part[:open]
	} else if strings.ContainsRune(part, ']') {
		return seg, "unexpected ]"
	}

	if name == "*" {
		seg.Any = true
		return seg, ""
	}
	kind, ok := component.ParseKind(name)
	if !ok {
		return seg, "unknown component kind " + strconv.Quote(name)
	}
	seg.Kind = kind
	return seg, ""
}
