// Package markup streams XML for the web-xml dialect. Attributes are written
// in call order so rendered output is byte-for-byte reproducible.
package markup

import (
	"strconv"
	"strings"
)

// Builder accumulates markup for a single render pass. The zero value is
// ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	buf strings.Builder
}

// AppendTagOpen writes the start of an element, leaving it open for
// attributes: <name
func (b *Builder) AppendTagOpen(name string) {
	b.buf.WriteByte('<')
	b.buf.WriteString(name)
}

// AppendTag writes a complete start tag with no attributes: <name>
func (b *Builder) AppendTag(name string) {
	b.AppendTagOpen(name)
	b.AppendClose()
}

// AppendClose ends an open start tag: >
func (b *Builder) AppendClose() {
	b.buf.WriteByte('>')
}

// AppendEnd ends an open start tag as an empty element: />
func (b *Builder) AppendEnd() {
	b.buf.WriteString("/>")
}

// AppendEndTag writes a closing tag: </name>
func (b *Builder) AppendEndTag(name string) {
	b.buf.WriteString("</")
	b.buf.WriteString(name)
	b.buf.WriteByte('>')
}

// AppendAttribute always writes the attribute, escaping the value.
func (b *Builder) AppendAttribute(name, value string) {
	b.buf.WriteByte(' ')
	b.buf.WriteString(name)
	b.buf.WriteString(`="`)
	b.buf.WriteString(Escape(value))
	b.buf.WriteByte('"')
}

// AppendOptionalAttribute writes the attribute only when value is non-empty.
func (b *Builder) AppendOptionalAttribute(name, value string) {
	if value == "" {
		return
	}
	b.AppendAttribute(name, value)
}

// AppendOptionalBoolAttribute writes name="value" when cond holds.
func (b *Builder) AppendOptionalBoolAttribute(name string, cond bool, value string) {
	if !cond {
		return
	}
	b.AppendAttribute(name, value)
}

// AppendOptionalIntAttribute writes the decimal value when cond holds.
func (b *Builder) AppendOptionalIntAttribute(name string, cond bool, value int) {
	if !cond {
		return
	}
	b.AppendAttribute(name, strconv.Itoa(value))
}

// AppendURLAttribute writes a URL attribute. Ampersands are always escaped,
// including those already forming entity references, so query strings survive
// the client's XSLT pass unchanged.
func (b *Builder) AppendURLAttribute(name, url string) {
	b.buf.WriteByte(' ')
	b.buf.WriteString(name)
	b.buf.WriteString(`="`)
	b.buf.WriteString(EscapeURL(url))
	b.buf.WriteByte('"')
}

// Append writes text content. When encode is false the text is written
// verbatim and must already be well-formed markup.
func (b *Builder) Append(text string, encode bool) {
	if text == "" {
		return
	}
	if encode {
		b.buf.WriteString(Escape(text))
		return
	}
	b.buf.WriteString(text)
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// String returns the accumulated markup.
func (b *Builder) String() string {
	return b.buf.String()
}

// Bytes returns a copy of the accumulated markup.
func (b *Builder) Bytes() []byte {
	return []byte(b.buf.String())
}

var textReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// Escape encodes the five XML special characters for use in content or
// attribute values. Whitespace, including line breaks, is written as is.
func Escape(value string) string {
	if value == "" || !strings.ContainsAny(value, "<>&'\"") {
		return value
	}
	return textReplacer.Replace(value)
}

var urlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	" ", "%20",
)

// EscapeURL encodes a URL for an attribute value.
func EscapeURL(url string) string {
	return urlReplacer.Replace(url)
}
