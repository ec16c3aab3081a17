// Package uidoc builds component trees from YAML or JSON documents. A document
// is a single root node; nodes nest through children (panels and labels) or
// template (repeaters).
//
//	kind: panel
//	id: form
//	layout:
//	  grid: {rows: 2, cols: 2, hgap: sm}
//	children:
//	  - {kind: label, id: nameLabel, text: Name, for: name}
//	  - {kind: textfield, id: name, mandatory: true}
package uidoc
