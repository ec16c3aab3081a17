// Package uicontext models the per-session variant of a component tree. A
// Context is passed explicitly through every traversal. State set on a derived
// context never leaks back to its parent.
package uicontext

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Context carries the state that distinguishes one rendering of a shared
// component tree from another: per-component overrides, repeater row data and
// the id prefix used to name components inside repeated rows.
type Context struct {
	id       string
	parent   *Context
	prefix   string
	rowIndex int
	row      map[string]string

	mu        sync.RWMutex
	overrides map[string]map[string]any
	rows      map[rowKey]*Context
}

type rowKey struct {
	owner string
	index int
}

// New creates a root context with a fresh identifier.
func New() *Context {
	return &Context{
		id:       uuid.NewString(),
		rowIndex: -1,
	}
}

// Derive returns a child context for a repeated row. Overrides not found on
// the child are looked up on its ancestors.
func (c *Context) Derive(prefix string, rowIndex int, row map[string]string) *Context {
	child := &Context{
		id:       uuid.NewString(),
		parent:   c,
		prefix:   c.IDPrefix() + strings.TrimSpace(prefix),
		rowIndex: rowIndex,
	}
	child.row = copyRow(row)
	return child
}

// Row returns the context for row index of the repeated component owner,
// deriving it with the prefix "<owner>-<index>-" on first use. Later calls
// return the same context so overrides set on it are kept; its row data is
// replaced with row.
func (c *Context) Row(owner string, index int, row map[string]string) *Context {
	prefix := owner + "-" + strconv.Itoa(index) + "-"
	if c == nil {
		return c.Derive(prefix, index, row)
	}
	key := rowKey{owner: owner, index: index}

	c.mu.Lock()
	child, ok := c.rows[key]
	if !ok {
		child = c.Derive(prefix, index, row)
		if c.rows == nil {
			c.rows = make(map[rowKey]*Context)
		}
		c.rows[key] = child
	}
	c.mu.Unlock()

	if ok {
		child.mu.Lock()
		child.row = copyRow(row)
		child.mu.Unlock()
	}
	return child
}

func copyRow(row map[string]string) map[string]string {
	if len(row) == 0 {
		return nil
	}
	out := make(map[string]string, len(row))
	for key, value := range row {
		out[key] = value
	}
	return out
}

// ID returns the unique identifier of the context.
func (c *Context) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

// Parent returns the context this one was derived from, or nil.
func (c *Context) Parent() *Context {
	if c == nil {
		return nil
	}
	return c.parent
}

// IDPrefix returns the naming prefix applied to component ids rendered in
// this context.
func (c *Context) IDPrefix() string {
	if c == nil {
		return ""
	}
	return c.prefix
}

// RowIndex reports the repeater row this context represents, or -1.
func (c *Context) RowIndex() int {
	if c == nil {
		return -1
	}
	return c.rowIndex
}

// RowValue looks up bound row data, walking up through enclosing rows.
func (c *Context) RowValue(key string) (string, bool) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		ctx.mu.RLock()
		value, ok := ctx.row[key]
		ctx.mu.RUnlock()
		if ok {
			return value, true
		}
	}
	return "", false
}

// Set stores a per-component override visible to this context and any
// contexts derived from it.
func (c *Context) Set(componentID, key string, value any) {
	if c == nil || componentID == "" || key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.overrides == nil {
		c.overrides = make(map[string]map[string]any)
	}
	values := c.overrides[componentID]
	if values == nil {
		values = make(map[string]any)
		c.overrides[componentID] = values
	}
	values[key] = value
}

// Get returns the closest override for the component and key.
func (c *Context) Get(componentID, key string) (any, bool) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		ctx.mu.RLock()
		value, ok := ctx.overrides[componentID][key]
		ctx.mu.RUnlock()
		if ok {
			return value, true
		}
	}
	return nil, false
}

type contextKey struct{}

// WithContext stores uic on ctx. The returned context is a new value; ctx
// itself is left untouched.
func WithContext(ctx context.Context, uic *Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, uic)
}

// FromContext extracts the UI context stored by WithContext.
func FromContext(ctx context.Context) (*Context, bool) {
	if ctx == nil {
		return nil, false
	}
	uic, ok := ctx.Value(contextKey{}).(*Context)
	return uic, ok && uic != nil
}
