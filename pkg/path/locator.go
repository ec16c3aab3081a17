package path

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/uicontext"
)

// Element is a rendered element located by a path: the id it carries in
// markup, plus the component and context that produced it.
type Element struct {
	ID        string
	Component component.Component
	Context   *uicontext.Context
}

// Locator finds rendered elements by component path. The search always starts
// at the configured root.
type Locator struct {
	root component.Component
	path Path
	cfg  *config

	mu         sync.Mutex
	targetKind component.Kind
}

// NewLocator parses expr and returns a locator rooted at root.
func NewLocator(root component.Component, expr string, options ...Option) (*Locator, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return &Locator{root: root, path: p, cfg: newConfig(options...)}, nil
}

// Path returns the parsed expression.
func (l *Locator) Path() Path { return l.path }

// FindElements resolves the path and maps every match to its rendered
// element. The UI context comes from WithUIContext, then from ctx, and falls
// back to a fresh context. Text components and components without an id emit
// no element and are skipped.
func (l *Locator) FindElements(ctx context.Context) ([]Element, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.root == nil {
		return nil, ErrNilRoot
	}

	uic := l.cfg.uic
	if uic == nil {
		if fromCtx, ok := uicontext.FromContext(ctx); ok {
			uic = fromCtx
		} else {
			uic = uicontext.New()
		}
	}

	matches := FindComponents(l.root, uic, l.path, l.searchOptions()...)

	l.mu.Lock()
	if len(matches) > 0 {
		l.targetKind = matches[0].Component.Kind()
	} else {
		l.targetKind = ""
	}
	l.mu.Unlock()

	elements := make([]Element, 0, len(matches))
	for _, match := range matches {
		element, ok := l.element(match)
		if !ok {
			continue
		}
		elements = append(elements, element)
	}

	l.cfg.logger.Debug("path elements located",
		slog.String("path", l.path.String()),
		slog.Int("components", len(matches)),
		slog.Int("elements", len(elements)),
	)
	return elements, nil
}

// TargetKind returns the kind of the first component matched by the last
// FindElements call, or "" when nothing matched.
func (l *Locator) TargetKind() component.Kind {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.targetKind
}

func (l *Locator) String() string {
	desc := "ByComponentPath:[" + strings.Join(l.path.Raw(), ", ") + "]"
	if l.cfg.value != nil {
		desc += fmt.Sprintf(" with value %q", *l.cfg.value)
	}
	return desc
}

func (l *Locator) searchOptions() []Option {
	opts := []Option{WithLogger(l.cfg.logger)}
	if l.cfg.includeInvisible {
		opts = append(opts, IncludeInvisible())
	}
	return opts
}

func (l *Locator) element(match ComponentWithContext) (Element, bool) {
	id := component.RenderedID(match.Component, match.Context)
	if id == "" || match.Component.Kind() == component.KindText {
		return Element{}, false
	}
	if l.cfg.value == nil {
		return Element{ID: id, Component: match.Component, Context: match.Context}, true
	}

	list, ok := match.Component.(component.OptionList)
	if !ok {
		return Element{}, false
	}
	want := *l.cfg.value
	for idx, opt := range list.OptionItems() {
		if opt.Value == want || opt.Display() == want {
			return Element{
				ID:        component.OptionID(list, match.Context, idx),
				Component: match.Component,
				Context:   match.Context,
			}, true
		}
	}
	return Element{}, false
}
