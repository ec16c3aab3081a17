package webxml

import (
	"io/fs"

	"github.com/goliatone/go-webxml/pkg/uidoc"
)

// LoadDocument builds a component tree from YAML or JSON. source names the
// document in errors.
func LoadDocument(data []byte, source string) (Component, error) {
	return uidoc.Load(data, source)
}

// LoadDocumentFS builds a component tree from name in fsys.
func LoadDocumentFS(fsys fs.FS, name string) (Component, error) {
	return uidoc.LoadFS(fsys, name)
}

// LoadDocumentFile builds a component tree from a file on disk.
func LoadDocumentFile(path string) (Component, error) {
	return uidoc.LoadFile(path)
}
