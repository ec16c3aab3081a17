package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// watch runs once, then again whenever the document is written. Editors that
// replace files are handled by watching the parent directory.
func (a *app) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(a.opts.doc)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	a.runLogged(ctx)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isDocumentChange(event, target) {
				continue
			}
			a.logger.Debug("document changed", slog.String("op", event.Op.String()))
			pending = time.After(watchDebounce)
		case <-pending:
			pending = nil
			a.runLogged(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("watch error", slog.Any("error", err))
		}
	}
}

func (a *app) runLogged(ctx context.Context) {
	if err := a.once(ctx); err != nil {
		a.logger.Error("render failed", slog.String("doc", a.opts.doc), slog.Any("error", err))
	}
}

func isDocumentChange(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
