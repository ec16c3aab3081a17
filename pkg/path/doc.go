// Package path locates components in a tree using slash-delimited path
// expressions such as "panel/label" or "repeater/#name". Matches carry the UI
// context they were found in, so a component inside a repeater is reported
// once per row together with that row's context.
package path
