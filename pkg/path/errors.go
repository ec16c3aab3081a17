package path

import (
	"errors"
	"fmt"
)

// ErrNilRoot is returned by FindElements when the locator has no root.
var ErrNilRoot = errors.New("path: root component is required")

// SyntaxError reports a malformed path expression.
type SyntaxError struct {
	Expr    string
	Segment int
	Reason  string
}

func (e *SyntaxError) Error() string {
	if e.Segment < 0 {
		return fmt.Sprintf("path: invalid expression %q: %s", e.Expr, e.Reason)
	}
	return fmt.Sprintf("path: invalid expression %q at segment %d: %s", e.Expr, e.Segment, e.Reason)
}
