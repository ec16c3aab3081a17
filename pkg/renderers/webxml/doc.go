// Package webxml renders component trees into the web-xml markup dialect
// consumed by the client renderer. Tag names, attribute names, attribute order
// and presence rules are a wire contract; renderers emit optional attributes
// only when the underlying value differs from its default.
package webxml
