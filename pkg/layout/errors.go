package layout

import "errors"

var (
	// ErrNegativeRows is returned when a grid is built with rows < 0.
	ErrNegativeRows = errors.New("layout: rows must be greater than or equal to zero")
	// ErrNegativeCols is returned when a grid is built with cols < 0.
	ErrNegativeCols = errors.New("layout: cols must be greater than or equal to zero")
	// ErrNoDimension is returned when both rows and cols are zero.
	ErrNoDimension = errors.New("layout: one of rows or cols must be greater than zero")
	// ErrInvalidGap is returned when an option carries a gap outside the token set.
	ErrInvalidGap = errors.New("layout: invalid gap")
	// ErrInvalidAlignment is returned for unknown flow alignments.
	ErrInvalidAlignment = errors.New("layout: invalid alignment")
)
