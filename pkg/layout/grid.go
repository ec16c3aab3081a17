package layout

import "fmt"

// GridLayout arranges children into rows and columns. Either dimension may be
// zero to mean "as many as needed", but not both.
type GridLayout struct {
	rows int
	cols int
	hgap optionalGap
	vgap optionalGap
}

// GridOption configures optional grid spacing.
type GridOption func(*GridLayout) error

// WithHorizontalGap sets the gap placed between columns.
func WithHorizontalGap(gap Gap) GridOption {
	return func(g *GridLayout) error {
		if !gap.Valid() {
			return fmt.Errorf("%w: horizontal gap %d", ErrInvalidGap, int(gap))
		}
		g.hgap = optionalGap{gap: gap, set: true}
		return nil
	}
}

// WithVerticalGap sets the gap placed between rows.
func WithVerticalGap(gap Gap) GridOption {
	return func(g *GridLayout) error {
		if !gap.Valid() {
			return fmt.Errorf("%w: vertical gap %d", ErrInvalidGap, int(gap))
		}
		g.vgap = optionalGap{gap: gap, set: true}
		return nil
	}
}

// WithPixelGaps converts legacy pixel gaps into tokens. Non-positive values
// leave the corresponding gap unset.
func WithPixelGaps(hgap, vgap int) GridOption {
	return func(g *GridLayout) error {
		if gap, ok := GapFromPixels(hgap); ok {
			g.hgap = optionalGap{gap: gap, set: true}
		}
		if gap, ok := GapFromPixels(vgap); ok {
			g.vgap = optionalGap{gap: gap, set: true}
		}
		return nil
	}
}

// NewGridLayout validates the dimensions and returns an immutable grid.
func NewGridLayout(rows, cols int, options ...GridOption) (GridLayout, error) {
	if rows < 0 {
		return GridLayout{}, ErrNegativeRows
	}
	if cols < 0 {
		return GridLayout{}, ErrNegativeCols
	}
	if rows == 0 && cols == 0 {
		return GridLayout{}, ErrNoDimension
	}

	grid := GridLayout{rows: rows, cols: cols}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(&grid); err != nil {
			return GridLayout{}, err
		}
	}
	return grid, nil
}

// MustGridLayout panics when the grid is invalid. Useful for static trees.
func MustGridLayout(rows, cols int, options ...GridOption) GridLayout {
	grid, err := NewGridLayout(rows, cols, options...)
	if err != nil {
		panic(err)
	}
	return grid
}

// Kind implements Layout.
func (GridLayout) Kind() Kind { return KindGrid }

// Rows returns the row count, 0 meaning unbounded.
func (g GridLayout) Rows() int { return g.rows }

// Cols returns the column count, 0 meaning unbounded.
func (g GridLayout) Cols() int { return g.cols }

// HorizontalGap returns the column gap when one was configured.
func (g GridLayout) HorizontalGap() (Gap, bool) { return g.hgap.get() }

// VerticalGap returns the row gap when one was configured.
func (g GridLayout) VerticalGap() (Gap, bool) { return g.vgap.get() }
