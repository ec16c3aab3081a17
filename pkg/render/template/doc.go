// Package template defines the seam page envelopes render through, keeping
// the page package independent of a specific engine. The pongo2 engine lives
// in the gotemplate subpackage.
package template
