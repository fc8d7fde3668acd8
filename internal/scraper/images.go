package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"irres-scraper/internal/urlutil"
)

// Attribute names that may carry a photo URL, in gathering order.
var (
	imageSrcAttrs  = []string{"src", "data-src", "data-lazy-src", "data-original"}
	srcsetAttrs    = []string{"srcset", "data-srcset"}
	imageDataAttrs = []string{"data-bg", "data-background", "data-image"}
)

var backgroundURLPattern = regexp.MustCompile(`(?i)background(?:-image)?\s*:\s*url\(\s*['"]?([^'")\s]+)['"]?\s*\)`)

// Path markers and extensions that identify a proper listing photo.
var (
	preferredPathMarkers = []string{"uploads", "/assets/", urlutil.DetailPathSegment}
	rasterExtensions     = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}
)

// BestImage scans one DOM fragment for every plausible photo source and
// returns the best normalized candidate. Inline data URIs and vector
// graphics are never returned; when nothing usable exists the result is
// the empty string, which callers treat as "no photo".
func BestImage(scope *goquery.Selection, origin string) string {
	var normalized []string
	for _, raw := range imageCandidates(scope) {
		c := strings.TrimSpace(raw)
		if c == "" {
			continue
		}
		lower := strings.ToLower(c)
		if strings.HasPrefix(lower, "data:") || strings.Contains(lower, "svg") {
			continue
		}
		if resolved := urlutil.Resolve(c, origin); resolved != "" {
			normalized = append(normalized, resolved)
		}
	}
	for _, u := range normalized {
		if isPreferredImage(u) {
			return u
		}
	}
	if len(normalized) > 0 {
		return normalized[0]
	}
	return ""
}

// BestImageInScope searches a whole detail page, preferring the estate
// main-content container when the template provides one.
func BestImageInScope(doc *goquery.Document, origin string) string {
	if main := doc.Find(`main[data-barba-namespace="estate"]`); main.Length() > 0 {
		if u := BestImage(main, origin); u != "" {
			return u
		}
	}
	return BestImage(doc.Selection, origin)
}

// imageCandidates gathers raw URL candidates from the fragment and its
// descendants: image and source elements, inline background styles, and
// the generic lazy-photo data attributes.
func imageCandidates(scope *goquery.Selection) []string {
	var out []string

	collect := func(s *goquery.Selection) {
		for _, attr := range imageSrcAttrs {
			if v, ok := s.Attr(attr); ok && v != "" {
				out = append(out, v)
			}
		}
		for _, attr := range srcsetAttrs {
			if v, ok := s.Attr(attr); ok && v != "" {
				out = append(out, srcsetURLs(v)...)
			}
		}
	}

	// image elements rank ahead of responsive source elements, so a
	// picture's own img wins over its srcset variants
	scope.Find("img").Each(func(_ int, s *goquery.Selection) {
		collect(s)
	})
	scope.Find("source").Each(func(_ int, s *goquery.Selection) {
		collect(s)
	})

	styled := scope.Find("[style]").AddSelection(scope.Filter("[style]"))
	styled.Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		if m := backgroundURLPattern.FindStringSubmatch(style); m != nil {
			out = append(out, m[1])
		}
	})

	dataSel := "[" + strings.Join(imageDataAttrs, "], [") + "]"
	lazy := scope.Find(dataSel).AddSelection(scope.Filter(dataSel))
	lazy.Each(func(_ int, s *goquery.Selection) {
		for _, attr := range imageDataAttrs {
			if v, ok := s.Attr(attr); ok && v != "" {
				out = append(out, v)
			}
		}
	})

	return out
}

// srcsetURLs splits a responsive candidate list, keeping the URL token
// and dropping the width/density descriptors.
func srcsetURLs(srcset string) []string {
	var urls []string
	for _, entry := range strings.Split(srcset, ",") {
		fields := strings.Fields(entry)
		if len(fields) > 0 {
			urls = append(urls, fields[0])
		}
	}
	return urls
}

func isPreferredImage(u string) bool {
	lower := strings.ToLower(u)
	for _, marker := range preferredPathMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	for _, ext := range rasterExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
