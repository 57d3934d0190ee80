package parser

import (
	"strconv"
	"strings"
)

// ToAmount coerces an arbitrary cell into a currency amount.
// Thousands separators are stripped and the value trimmed before the
// numeric parse; blanks and anything unparseable coerce to zero. Ledger
// exports are routinely dirty, so this never reports an error — callers
// must not rely on it to detect malformed input.
func ToAmount(cell string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
