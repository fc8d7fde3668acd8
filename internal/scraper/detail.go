package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// attributeKeywords maps lower-cased label fragments to attribute keys.
// Evaluated top to bottom; order matters, e.g. "bouw" without "reno" must
// win before the generic "reno" match so Verbouwjaar lands on Bouwjaar.
var attributeKeywords = []struct {
	keyword string
	exclude string
	key     AttributeKey
}{
	{"terrein", "", AttrLandArea},
	{"bewoonbare", "", AttrLivingArea},
	{"terras", "", AttrTerraceArea},
	{"ori", "", AttrOrientation},
	{"slaap", "", AttrBedrooms},
	{"bad", "", AttrBathrooms},
	{"bouw", "reno", AttrYearBuilt},
	{"reno", "", AttrYearRenovated},
	{"epc", "", AttrEnergyRating},
	{"beschik", "", AttrAvailability},
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractDetail pulls the Kenmerken attributes and the contact info out of
// one detail-page document. When wantPhoto is set (the index card carried
// no photo) it also resolves a fallback image from the page. Structural
// absence is never an error: missing pieces resolve to empty values.
func ExtractDetail(doc *goquery.Document, origin string, wantPhoto bool) Detail {
	d := Detail{Attributes: emptyAttributes()}

	doc.Find("li[data-value]").Each(func(_ int, item *goquery.Selection) {
		label, _ := item.Attr("data-value")
		label = lowerTrimmed(NormalizeText(label))
		if label == "" {
			return
		}
		value := NormalizeText(item.Find("p").First().Text())
		if value == "" {
			value = NormalizeText(item.Text())
		}
		if value == "" {
			return
		}
		for _, kw := range attributeKeywords {
			if !strings.Contains(label, kw.keyword) {
				continue
			}
			if kw.exclude != "" && strings.Contains(label, kw.exclude) {
				continue
			}
			d.Attributes[kw.key] = value
			break
		}
	})

	d.ContactDisplayName, d.ContactFirstName, d.ContactEmail = extractContact(doc)

	if wantPhoto {
		d.FallbackPhoto = BestImageInScope(doc, origin)
	}

	return d
}

// extractContact locates the listing's contact person. The contact-form
// region is tried first, then any mail link on the page, then a bare
// email pattern in the visible text.
func extractContact(doc *goquery.Document) (display, first, email string) {
	var link *goquery.Selection
	for _, scope := range []*goquery.Selection{
		doc.Find("form#footer-form"),
		doc.Selection,
	} {
		if scope.Length() == 0 {
			continue
		}
		if l := scope.Find(`a[href^="mailto:"]`).First(); l.Length() > 0 {
			link = l
			break
		}
	}

	if link != nil {
		href, _ := link.Attr("href")
		email = emailPattern.FindString(href)
		if email == "" {
			email = emailPattern.FindString(link.Text())
		}
		display = boldNameNear(link)
	} else {
		email = emailPattern.FindString(doc.Text())
	}

	if email == "" {
		return "", "", ""
	}
	first = firstNameFromEmail(email)
	if display == "" {
		display = first
	}
	return display, first, email
}

// boldNameNear looks for the bold-styled full-name element in the same
// form or container as the mail link.
func boldNameNear(link *goquery.Selection) string {
	container := link.Closest("form")
	if container.Length() == 0 {
		container = link.Parent()
	}
	name := container.Find("p.font-bold").First()
	if name.Length() == 0 {
		return ""
	}
	return NormalizeText(name.Text())
}

// firstNameFromEmail derives a presentable first name from the local part
// of an address: "kasper.devos@example.test" becomes "Kasper".
func firstNameFromEmail(email string) string {
	local := email
	if i := strings.Index(local, "@"); i >= 0 {
		local = local[:i]
	}
	tokens := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(tokens) == 0 {
		return ""
	}
	return cases.Title(language.Und).String(strings.ToLower(tokens[0]))
}
