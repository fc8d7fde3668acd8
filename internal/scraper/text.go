package scraper

import (
	"html"
	"strconv"
	"strings"
)

// NormalizeText canonicalizes a raw string pulled out of site markup:
// HTML entities are decoded to a fixpoint (named, numeric and
// double-encoded, so "&amp;#178;" becomes "²"), literal backslash escapes
// are decoded when well-formed, and all runs of whitespace (non-breaking
// space included) collapse to a single ASCII space with the ends trimmed.
// Decode failures are absorbed, never surfaced; the partially processed
// text is returned instead. The result is stable under re-normalization.
func NormalizeText(raw string) string {
	s := raw
	for {
		decoded := html.UnescapeString(s)
		if decoded == s {
			break
		}
		s = decoded
	}
	if strings.Contains(s, `\u`) || strings.Contains(s, `\x`) {
		quoted := `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
		if decoded, err := strconv.Unquote(quoted); err == nil {
			s = decoded
		}
	}
	return strings.Join(strings.Fields(s), " ")
}

func lowerTrimmed(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
