package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	webxml "github.com/goliatone/go-webxml"
	"github.com/goliatone/go-webxml/pkg/path"
)

// errAborted signals the user aborted input (e.g., Ctrl+C).
var errAborted = errors.New("webxml-cli: aborted")

type inputConfig struct {
	Message   string
	Help      string
	Validator func(string) error
}

// prompter abstracts the terminal so the interactive loop can be tested
// without one.
type prompter interface {
	Input(ctx context.Context, cfg inputConfig) (string, error)
}

type surveyPrompter struct{}

func newSurveyPrompter() prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(ctx context.Context, cfg inputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// interactive loads the document once and resolves path expressions until the
// user enters an empty path or aborts.
func (a *app) interactive(ctx context.Context, p prompter) error {
	root, err := webxml.LoadDocumentFile(a.opts.doc)
	if err != nil {
		return err
	}

	for {
		expr, err := p.Input(ctx, inputConfig{
			Message:   "Path",
			Help:      `Slash separated segments: kind, kind[n], #id or *. Empty to quit.`,
			Validator: validatePath,
		})
		if errors.Is(err, errAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		expr = strings.TrimSpace(expr)
		if expr == "" {
			return nil
		}

		value, err := p.Input(ctx, inputConfig{
			Message: "Value filter",
			Help:    "Option value or text to narrow list components. Empty for none.",
		})
		if errors.Is(err, errAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := a.printElements(ctx, root, expr, value, strings.TrimSpace(value) != ""); err != nil {
			fmt.Fprintf(a.stdout, "error: %v\n", err)
		}
	}
}

func validatePath(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := path.Parse(expr)
	return err
}
