// Package page wraps rendered web-xml markup in the document envelope the
// client renderer expects: the XML declaration, the XSLT processing
// instruction pointing at the theme, and the ui:root element.
package page
