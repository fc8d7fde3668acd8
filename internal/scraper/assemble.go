package scraper

import (
	"net/url"
	"strings"

	"irres-scraper/internal/urlutil"
)

// Fixed call-to-action texts, matching the site's Dutch copy.
const (
	ctaLabel            = "Bekijk het op onze website"
	priceInquiryLabel   = "Vraag prijs aan"
	genericContactLabel = "Contacteer Irres"
	contactLabelSuffix  = " - Irres"

	// inquiry mails fall back to the office address when a listing has
	// no personal contact
	officeEmail = "info@irres.be"

	titleSeparator = "⎥"
)

// Assemble folds one preview and its detail info into the canonical
// listing record. A zero-valued Detail (failed or skipped detail fetch)
// is valid input and yields a record without contact info or attributes.
func Assemble(p Preview, d Detail, origin string) Listing {
	price := ParsePrice(p.RawPrice)

	l := Listing{
		ListingID:   deriveID(p),
		ListingURL:  p.URL,
		Price:       price,
		Location:    p.Location,
		Description: p.Description,
		ListingType: TranslateType(p.RawType),
		CTALabel:    ctaLabel,
		Attributes:  d.Attributes,
	}
	if l.Attributes == nil {
		l.Attributes = emptyAttributes()
	}

	photo := p.PhotoCandidate
	if photo == "" {
		photo = d.FallbackPhoto
	}
	l.PhotoURL = urlutil.Resolve(photo, origin)

	l.Title = buildTitle(l.Location, price)

	if d.ContactEmail != "" {
		name := d.ContactDisplayName
		if name == "" {
			name = d.ContactFirstName
		}
		l.ContactLabel = "Contacteer " + name + contactLabelSuffix
		l.ContactEmail = "mailto:" + d.ContactEmail
	} else {
		l.ContactLabel = genericContactLabel
	}

	if price.Kind == PriceOnRequest {
		target := d.ContactEmail
		if target == "" {
			target = officeEmail
		}
		l.PriceInquiryLabel = priceInquiryLabel
		l.PriceInquiryTarget = "mailto:" + target + "?subject=" + url.QueryEscape("Prijsaanvraag "+l.ListingID)
	}

	return l
}

// HasContent reports whether the record passes the content-quality gate:
// at least one of location, price and description must be present.
func (l Listing) HasContent() bool {
	return l.Location != "" || l.Price.String() != "" || l.Description != ""
}

// Dedupe drops records whose listing id was already seen, keeping the
// first occurrence in input order.
func Dedupe(listings []Listing) []Listing {
	seen := make(map[string]struct{}, len(listings))
	out := listings[:0:0]
	for _, l := range listings {
		if _, ok := seen[l.ListingID]; ok {
			continue
		}
		seen[l.ListingID] = struct{}{}
		out = append(out, l)
	}
	return out
}

func buildTitle(location string, price Price) string {
	rendered := price.String()
	switch {
	case location != "" && rendered != "":
		return location + titleSeparator + rendered
	case location != "":
		return location
	default:
		return rendered
	}
}

// deriveID prefers the anchor-level identifier, then the numeric id from
// the URL path joined with a sanitized location token, then the URL
// itself so the id is never empty.
func deriveID(p Preview) string {
	if p.AnchorID != "" {
		return p.AnchorID
	}
	if num := urlutil.DetailID(p.URL); num != "" {
		if tok := locationToken(p.Location); tok != "" {
			return num + "-" + tok
		}
		return num
	}
	return p.URL
}

// locationToken sanitizes the first word of the location down to
// alphanumerics and hyphens.
func locationToken(location string) string {
	fields := strings.Fields(location)
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToLower(fields[0]) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
