package webxml

import (
	"io/fs"

	"github.com/goliatone/go-webxml/pkg/page"
)

// EmbeddedTemplates exposes the built-in page envelope templates so callers
// can copy or extend them and pass the result to page.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return page.Templates()
}
