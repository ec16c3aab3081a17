package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-webxml/pkg/component"
	"github.com/goliatone/go-webxml/pkg/layout"
)

// Registry maps component and layout kinds to their renderers. Dispatch is by
// kind tag only, so the set of paintable types is exactly what has been
// registered.
type Registry struct {
	mu        sync.RWMutex
	renderers map[component.Kind]Renderer
	layouts   map[layout.Kind]LayoutRenderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[component.Kind]Renderer),
		layouts:   make(map[layout.Kind]LayoutRenderer),
	}
}

// Register adds a component renderer. Duplicate kinds return an error.
func (r *Registry) Register(kind component.Kind, renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	if kind == "" {
		return fmt.Errorf("render: component kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[kind]; exists {
		return fmt.Errorf("render: renderer for %q already registered", kind)
	}
	r.renderers[kind] = renderer
	return nil
}

// RegisterLayout adds a layout renderer. Duplicate kinds return an error.
func (r *Registry) RegisterLayout(kind layout.Kind, renderer LayoutRenderer) error {
	if renderer == nil {
		return fmt.Errorf("render: layout renderer is required")
	}
	if kind == "" {
		return fmt.Errorf("render: layout kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.layouts[kind]; exists {
		return fmt.Errorf("render: layout renderer for %q already registered", kind)
	}
	r.layouts[kind] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind component.Kind, renderer Renderer) {
	if err := r.Register(kind, renderer); err != nil {
		panic(err)
	}
}

// MustRegisterLayout panics on registration failure.
func (r *Registry) MustRegisterLayout(kind layout.Kind, renderer LayoutRenderer) {
	if err := r.RegisterLayout(kind, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer for a component kind.
func (r *Registry) Get(kind component.Kind) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[kind]
	if !ok {
		return nil, &UnsupportedKindError{Kind: string(kind)}
	}
	return renderer, nil
}

// GetLayout retrieves the renderer for a layout kind.
func (r *Registry) GetLayout(kind layout.Kind) (LayoutRenderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.layouts[kind]
	if !ok {
		return nil, &UnsupportedKindError{Kind: string(kind), Layout: true}
	}
	return renderer, nil
}

// Has reports whether a component renderer is registered.
func (r *Registry) Has(kind component.Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[kind]
	return ok
}

// List returns the registered component kinds, sorted.
func (r *Registry) List() []component.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]component.Kind, 0, len(r.renderers))
	for kind := range r.renderers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
