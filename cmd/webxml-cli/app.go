package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	webxml "github.com/goliatone/go-webxml"
	"github.com/goliatone/go-webxml/internal/config"
	"github.com/goliatone/go-webxml/pkg/page"
	"github.com/goliatone/go-webxml/pkg/path"
	"github.com/goliatone/go-webxml/pkg/render"
)

type options struct {
	doc      string
	output   string
	page     bool
	locate   string
	value    string
	hasValue bool
}

type app struct {
	cfg    config.Config
	logger *slog.Logger
	opts   options
	stdout io.Writer
}

// once renders or locates a single time.
func (a *app) once(ctx context.Context) error {
	root, err := webxml.LoadDocumentFile(a.opts.doc)
	if err != nil {
		return err
	}
	if a.opts.locate != "" {
		return a.printElements(ctx, root, a.opts.locate, a.opts.value, a.opts.hasValue)
	}

	out, err := a.render(ctx, root)
	if err != nil {
		return err
	}
	return a.write(out)
}

func (a *app) render(ctx context.Context, root webxml.Component) ([]byte, error) {
	renderOpts := []render.Option{render.WithLogger(a.logger)}
	if len(a.cfg.Render.Messages) > 0 {
		catalog := render.NewCatalog()
		catalog.Add(a.cfg.Render.Locale, a.cfg.Render.Messages)
		renderOpts = append(renderOpts, render.WithTranslator(catalog, a.cfg.Render.Locale))
	}

	body, err := webxml.Render(ctx, root, renderOpts...)
	if err != nil {
		return nil, err
	}
	if !a.opts.page {
		return body, nil
	}

	env, err := page.New(a.pageOptions()...)
	if err != nil {
		return nil, err
	}
	return env.Wrap(ctx, page.Request{Title: a.cfg.Page.Title, Body: body})
}

func (a *app) pageOptions() []page.Option {
	opts := []page.Option{
		page.WithLogger(a.logger),
		page.WithStylesheet(a.cfg.StylesheetURL()),
	}
	if a.cfg.Page.TemplatesDir != "" {
		opts = append(opts, page.WithTemplatesDir(a.cfg.Page.TemplatesDir))
	}
	return opts
}

func (a *app) printElements(ctx context.Context, root webxml.Component, expr, value string, hasValue bool) error {
	opts := []path.Option{path.WithLogger(a.logger)}
	if hasValue {
		opts = append(opts, path.WithValue(value))
	}
	locator, err := path.NewLocator(root, expr, opts...)
	if err != nil {
		return err
	}
	elements, err := locator.FindElements(ctx)
	if err != nil {
		return err
	}

	a.logger.Debug("located", slog.String("locator", locator.String()), slog.Int("count", len(elements)))
	if len(elements) == 0 {
		_, err := fmt.Fprintf(a.stdout, "no elements for %s\n", locator)
		return err
	}
	for _, el := range elements {
		if _, err := fmt.Fprintf(a.stdout, "%s\t%s\n", el.ID, el.Component.Kind()); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) write(out []byte) error {
	if a.opts.output == "" {
		_, err := fmt.Fprintln(a.stdout, string(out))
		return err
	}
	if err := os.WriteFile(a.opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.Info("markup written", slog.String("output", a.opts.output), slog.Int("bytes", len(out)))
	return nil
}
