package render

import (
	"errors"
	"fmt"
)

// ErrMissingTranslator is reported to MissingTranslationHandler when a
// message key is rendered without a configured Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// ErrNilRegistry is returned when Render is called without a registry.
var ErrNilRegistry = errors.New("render: registry is required")

// UnsupportedKindError reports a component or layout kind with no registered
// renderer. It indicates a wiring mistake, not a recoverable condition.
type UnsupportedKindError struct {
	Kind   string
	Layout bool
}

func (e *UnsupportedKindError) Error() string {
	if e.Layout {
		return fmt.Sprintf("render: no renderer registered for layout %q", e.Kind)
	}
	return fmt.Sprintf("render: no renderer registered for component %q", e.Kind)
}

// KindMismatchError is returned by a renderer handed a value whose concrete
// type does not match the kind it was registered for.
type KindMismatchError struct {
	Want string
	Got  any
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("render: expected %s, got %T", e.Want, e.Got)
}

// Mismatch builds a KindMismatchError for got.
func Mismatch(want string, got any) error {
	return &KindMismatchError{Want: want, Got: got}
}
