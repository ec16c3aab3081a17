package layout

import (
	"fmt"
	"strings"
)

// Alignment positions children within a flow layout.
type Alignment string

const (
	AlignLeft     Alignment = "left"
	AlignCenter   Alignment = "center"
	AlignRight    Alignment = "right"
	AlignVertical Alignment = "vertical"
)

// ParseAlignment accepts the alignment names case-insensitively. An empty
// string yields AlignLeft.
func ParseAlignment(raw string) (Alignment, error) {
	switch value := Alignment(strings.ToLower(strings.TrimSpace(raw))); value {
	case "":
		return AlignLeft, nil
	case AlignLeft, AlignCenter, AlignRight, AlignVertical:
		return value, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlignment, raw)
	}
}

// FlowLayout places children one after another along a single axis.
type FlowLayout struct {
	align Alignment
	gap   optionalGap
}

// NewFlowLayout returns a flow layout; pass a zero Gap to leave it unset.
func NewFlowLayout(align Alignment, gap Gap) (FlowLayout, error) {
	if align == "" {
		align = AlignLeft
	}
	if _, err := ParseAlignment(string(align)); err != nil {
		return FlowLayout{}, err
	}
	flow := FlowLayout{align: align}
	if gap != 0 {
		if !gap.Valid() {
			return FlowLayout{}, fmt.Errorf("%w: %d", ErrInvalidGap, int(gap))
		}
		flow.gap = optionalGap{gap: gap, set: true}
	}
	return flow, nil
}

// Kind implements Layout.
func (FlowLayout) Kind() Kind { return KindFlow }

// Alignment returns the configured alignment.
func (f FlowLayout) Alignment() Alignment { return f.align }

// Gap returns the spacing between children when configured.
func (f FlowLayout) Gap() (Gap, bool) { return f.gap.get() }
