package component

// Children returns the owned children of c. A repeater's only child is its
// template.
func Children(c Component) []Component {
	if c == nil {
		return nil
	}
	if rpt, ok := c.(*Repeater); ok {
		if rpt.Template == nil {
			return nil
		}
		return []Component{rpt.Template}
	}
	return c.Common().Children
}

// Walk visits c and its descendants depth-first in document order. Returning
// false from fn skips the node's subtree.
func Walk(c Component, fn func(Component) bool) {
	if c == nil || fn == nil {
		return
	}
	if !fn(c) {
		return
	}
	for _, child := range Children(c) {
		Walk(child, fn)
	}
}

// FindByID returns the first component with the given id.
func FindByID(root Component, id string) Component {
	var found Component
	Walk(root, func(c Component) bool {
		if found != nil {
			return false
		}
		if c.Common().ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}
