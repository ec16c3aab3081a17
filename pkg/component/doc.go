// Package component defines the UI component tree rendered by go-webxml.
//
// Components form a closed set of kinds (see Kind). Each concrete type embeds
// Base, which carries the identifier, class, flags and owned children shared by
// all kinds. Capability interfaces (Labelable, Input, MultiInput, OptionList)
// describe what renderers and the path locator may rely on without casting to
// concrete types. A Label references its target through For; that reference is
// not ownership and the target must live elsewhere in the tree.
//
// State that may vary per session (hidden, text, value) is read through helper
// functions taking a *uicontext.Context so one tree can be rendered for many
// contexts.
package component
