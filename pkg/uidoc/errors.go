package uidoc

import "errors"

var (
	// ErrEmptyDocument is returned for blank input.
	ErrEmptyDocument = errors.New("uidoc: document is empty")
	// ErrUnknownKind is returned for nodes whose kind is not a component kind.
	ErrUnknownKind = errors.New("uidoc: unknown component kind")
	// ErrDuplicateID is returned when two nodes share an id.
	ErrDuplicateID = errors.New("uidoc: duplicate component id")
	// ErrUnresolvedFor is returned when a label targets an id that does not exist.
	ErrUnresolvedFor = errors.New("uidoc: label target not found")
	// ErrInvalidLayout is returned for malformed or conflicting layouts.
	ErrInvalidLayout = errors.New("uidoc: invalid layout")
	// ErrInvalidNode is returned for attributes the node kind cannot carry.
	ErrInvalidNode = errors.New("uidoc: invalid node")
)
