package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"irres-scraper/internal/urlutil"
)

// segmentSeparator joins the text nodes of a card anchor before the
// heuristic segmentation pass splits them back apart.
const segmentSeparator = "|"

// cardRule classifies one free-text segment of a card. Rules are applied
// in order; the first match consumes the segment.
type cardRule struct {
	name  string
	match func(p *Preview, seg string) bool
	apply func(p *Preview, seg string)
}

var cardRules = []cardRule{
	{
		name: "price",
		match: func(_ *Preview, seg string) bool {
			return looksLikePrice(seg)
		},
		apply: func(p *Preview, seg string) {
			// only the first price-like segment is kept
			if p.RawPrice == "" {
				p.RawPrice = seg
			}
		},
	},
	{
		name: "type",
		match: func(_ *Preview, seg string) bool {
			return isTypeToken(seg)
		},
		apply: func(p *Preview, seg string) {
			if p.RawType == "" {
				p.RawType = TranslateType(seg)
			}
		},
	},
	{
		name: "description",
		match: func(p *Preview, seg string) bool {
			return p.Description == "" && seg != p.Location && seg != p.RawType
		},
		apply: func(p *Preview, seg string) {
			p.Description = seg
		},
	},
}

// ParseCard extracts a listing preview from one index-page anchor node.
// The second return value is false when the anchor carries no resolvable
// href, which means the node is not a listing and must be skipped.
func ParseCard(anchor *goquery.Selection, origin string) (Preview, bool) {
	href, ok := anchor.Attr("href")
	if !ok {
		return Preview{}, false
	}
	resolved := urlutil.ResolveTracked(href, origin)
	if resolved == "" {
		return Preview{}, false
	}

	p := Preview{URL: resolved}

	if id, ok := anchor.Attr("name"); ok && strings.TrimSpace(id) != "" {
		p.AnchorID = strings.TrimSpace(id)
	} else if id, ok := anchor.Attr("id"); ok && strings.TrimSpace(id) != "" {
		p.AnchorID = strings.TrimSpace(id)
	}

	p.Location = cardLocation(anchor)

	segments := textSegments(anchor)
	for _, seg := range segments {
		for _, rule := range cardRules {
			if rule.match(&p, seg) {
				rule.apply(&p, seg)
				break
			}
		}
	}

	// Cards that put the blurb last sometimes leave the description unset
	// after the rule pass.
	if p.Description == "" && len(segments) >= 2 {
		last := segments[len(segments)-1]
		if !isTypeToken(last) && !strings.Contains(last, "€") && last != p.Location {
			p.Description = last
		}
	}

	p.PhotoCandidate = BestImage(anchor, origin)

	return p, true
}

// cardLocation reads the dedicated location sub-element, preferring its
// explicit data-value over the rendered text.
func cardLocation(anchor *goquery.Selection) string {
	loc := anchor.Find(`[class*="estate-city"]`).First()
	if loc.Length() == 0 {
		return ""
	}
	if v, ok := loc.Attr("data-value"); ok {
		if normalized := NormalizeText(v); normalized != "" {
			return normalized
		}
	}
	text := loc.Text()
	if i := strings.Index(text, segmentSeparator); i >= 0 {
		text = text[:i]
	}
	return NormalizeText(text)
}

// textSegments flattens the anchor's text nodes into separator-joined
// form, then returns the normalized non-empty segments.
func textSegments(anchor *goquery.Selection) []string {
	var parts []string
	for _, node := range anchor.Nodes {
		collectTextNodes(node, &parts)
	}
	var segments []string
	for _, part := range strings.Split(strings.Join(parts, segmentSeparator), segmentSeparator) {
		if seg := NormalizeText(part); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

func collectTextNodes(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		*out = append(*out, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTextNodes(c, out)
	}
}
