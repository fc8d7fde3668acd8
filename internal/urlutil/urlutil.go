package urlutil

import (
	"net/url"
	"strings"
)

// DetailPathSegment marks a listing detail page on the source site.
const DetailPathSegment = "/pand/"

// trackingParam is appended to detail links handed out to automation callers.
const trackingParam = "utm_source=chatbot"

// Resolve turns any URL fragment found in site markup (protocol-relative,
// root-relative, relative or absolute) into an absolute URL against the
// site origin. Unresolvable input is returned as-is; empty input stays empty.
func Resolve(raw, origin string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	origin = strings.TrimRight(origin, "/")

	switch {
	case strings.HasPrefix(s, "//"):
		return "https:" + s
	case strings.HasPrefix(s, "/"):
		return origin + s
	case hasScheme(s):
		return s
	case strings.HasPrefix(s, "www."):
		return "https://" + s
	case !strings.Contains(s, ":"):
		return origin + "/" + strings.TrimLeft(s, "/")
	}
	return s
}

// ResolveTracked resolves like Resolve and appends the tracking parameter
// when the result points at a listing detail page.
func ResolveTracked(raw, origin string) string {
	resolved := Resolve(raw, origin)
	if resolved == "" || !strings.Contains(resolved, DetailPathSegment) {
		return resolved
	}
	sep := "?"
	if strings.Contains(resolved, "?") {
		sep = "&"
	}
	return resolved + sep + trackingParam
}

// DetailID extracts the numeric listing id embedded in a detail page URL,
// e.g. "https://irres.be/pand/8749906/gent" yields "8749906". Returns an
// empty string when the URL carries no numeric path segment.
func DetailID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	marker := strings.Trim(DetailPathSegment, "/")
	for i, seg := range segs {
		if seg != marker {
			continue
		}
		if i+1 < len(segs) && isDigits(segs[i+1]) {
			return segs[i+1]
		}
	}
	// Some template variants carry the id in a different position.
	for _, seg := range segs {
		if isDigits(seg) {
			return seg
		}
	}
	return ""
}

func hasScheme(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	for _, r := range s[:i] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
