// Package gotemplate renders page envelopes with pongo2. Templates load from a
// directory, an fs.FS, or both, with the directory taking precedence.
package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-webxml/pkg/render/markup"
	"github.com/goliatone/go-webxml/pkg/render/template"
)

// ErrNoSource is returned by New when neither a directory nor an fs.FS is
// configured.
var ErrNoSource = errors.New("gotemplate: need to provide either base dir or fs.FS")

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
}

// WithBaseDir loads envelope templates from dir on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads envelope templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the ".tpl" extension added to template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// Engine renders envelope templates from a pongo2 template set. Templates are
// compiled once and cached by path.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

var _ template.Renderer = (*Engine)(nil)

var registerFilters sync.Once

// New builds an engine. A directory loader, when configured, is consulted
// before the fs.FS loader.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, ErrNoSource
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	registerFilters.Do(func() {
		if !pongo2.FilterExists("xmlattr") {
			_ = pongo2.RegisterFilter("xmlattr", filterXMLAttr)
		}
	})

	return &Engine{
		set:       pongo2.NewSet("webxml", loaders...),
		ext:       cfg.extension,
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// RenderTemplate loads name, adding the extension when missing, and executes
// it with data.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}

	tmpl, err := e.lookup(path)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", path, err)
	}
	return out, nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

// filterXMLAttr escapes a value for a double-quoted XML attribute or a
// processing instruction pseudo-attribute.
func filterXMLAttr(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsSafeValue(markup.Escape(in.String())), nil
}
