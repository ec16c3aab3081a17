package layout

import (
	"fmt"
	"strings"
)

// Gap is a spacing token understood by the client renderer. The zero value is
// not a valid token; optional gaps are modelled with a separate presence flag.
type Gap int

const (
	GapZero Gap = iota + 1
	GapSmall
	GapMedium
	GapLarge
	GapXL
)

var gapTokens = map[Gap]string{
	GapZero:   "z",
	GapSmall:  "sm",
	GapMedium: "med",
	GapLarge:  "lg",
	GapXL:     "xl",
}

var gapPixels = map[Gap]int{
	GapZero:   0,
	GapSmall:  3,
	GapMedium: 6,
	GapLarge:  12,
	GapXL:     24,
}

// String returns the wire token for the gap.
func (g Gap) String() string {
	if token, ok := gapTokens[g]; ok {
		return token
	}
	return ""
}

// Valid reports whether g is one of the declared tokens.
func (g Gap) Valid() bool {
	_, ok := gapTokens[g]
	return ok
}

// Pixels converts the token back to its nominal pixel size.
func (g Gap) Pixels() int {
	return gapPixels[g]
}

// ParseGap converts a wire token (case-insensitive) into a Gap.
func ParseGap(raw string) (Gap, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	for gap, token := range gapTokens {
		if token == trimmed {
			return gap, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown token %q", ErrInvalidGap, raw)
}

// GapFromPixels maps a legacy pixel measurement onto the largest token whose
// nominal size it reaches, with sm as the floor. Values <= 0 yield no gap.
func GapFromPixels(px int) (Gap, bool) {
	switch {
	case px <= 0:
		return 0, false
	case px < gapPixels[GapMedium]:
		return GapSmall, true
	case px < gapPixels[GapLarge]:
		return GapMedium, true
	case px < gapPixels[GapXL]:
		return GapLarge, true
	default:
		return GapXL, true
	}
}
