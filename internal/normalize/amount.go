package normalize

import (
	"regexp"
	"strings"
)

// OCR renders a leading minus as any number of dash-like glyphs.
var dashGlyphs = strings.NewReplacer("—", "-", "–", "-", "―", "-")

// Comma-grouped form first, then a plain digit run for slips that print
// amounts ungrouped.
var reAmountValue = regexp.MustCompile(`-\s?\d{1,3}(?:,\d{3})+(?:\.\d{2})?|-\s?\d+(?:\.\d{1,2})?|\d{1,3}(?:,\d{3})+(?:\.\d{2})?|\d+(?:\.\d{1,2})?`)

// Amount strips a label-adjacent value down to its numeric content: the sign
// is normalized to a plain minus, grouping commas are removed, and trailing
// currency tokens (MMK, Ks, Kyat) are discarded. Never fails: when no
// numeric content is found the trimmed input comes back unchanged.
func Amount(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	cleaned := dashGlyphs.Replace(trimmed)
	m := reAmountValue.FindString(cleaned)
	if m == "" {
		return trimmed
	}
	m = strings.ReplaceAll(m, ",", "")
	m = strings.ReplaceAll(m, " ", "")
	return m
}
