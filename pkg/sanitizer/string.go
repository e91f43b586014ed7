package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims surrounding whitespace, collapses internal runs
// of whitespace into single spaces and drops control characters.
func TrimAndNormalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsControl(r):
			// skip
		default:
			if space {
				b.WriteRune(' ')
				space = false
			}
			b.WriteRune(r)
		}
	}

	return b.String()
}

// NormalizeName cleans a person's display name.
func NormalizeName(s string) string {
	return TrimAndNormalize(s)
}

// NormalizeLabel lowercases a categorical value such as a fuel type or
// body style so lookups are case-insensitive.
func NormalizeLabel(s string) string {
	return strings.ToLower(TrimAndNormalize(s))
}
