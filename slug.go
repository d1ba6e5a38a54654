package agentskills

import (
	"strings"
	"unicode"
)

// Slugify creates a stable identifier fragment from free text.
// Converts to lowercase, replaces whitespace, hyphens, underscores and path
// separators with single hyphens, and removes other punctuation.
func Slugify(s string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' || r == '/' || r == '.' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
