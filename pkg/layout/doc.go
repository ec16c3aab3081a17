// Package layout defines the layout descriptors a container can use to arrange
// its children. Descriptors are immutable values validated at construction;
// renderers read them through accessors and never mutate them.
package layout
