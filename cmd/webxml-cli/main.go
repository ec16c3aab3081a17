package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/goliatone/go-webxml/internal/config"
)

func main() {
	doc := flag.String("doc", "", "UI document (YAML or JSON) to render")
	output := flag.String("output", "", "output file (stdout if empty)")
	configPath := flag.String("config", "", "config file (defaults to ./webxml.yaml or $WEBXML_CONFIG)")
	wrapPage := flag.Bool("page", false, "wrap the markup in the page envelope")
	title := flag.String("title", "", "page title (overrides config)")
	locate := flag.String("locate", "", "path expression to locate instead of rendering")
	value := flag.String("value", "", "value filter applied with -locate")
	interactive := flag.Bool("interactive", false, "prompt for path expressions until aborted")
	watch := flag.Bool("watch", false, "re-render when the document changes")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *doc == "" {
		log.Fatalf("missing -doc")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level := cfg.LogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *title != "" {
		cfg.Page.Title = *title
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		opts: options{
			doc:      *doc,
			output:   *output,
			page:     *wrapPage,
			locate:   *locate,
			value:    *value,
			hasValue: isFlagSet("value"),
		},
		stdout: os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *interactive:
		err = a.interactive(ctx, newSurveyPrompter())
	case *watch:
		err = a.watch(ctx)
	default:
		err = a.once(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("webxml-cli: %v", err)
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
