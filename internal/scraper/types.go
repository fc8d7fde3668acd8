package scraper

// AttributeKey identifies one entry of the Kenmerken section on a detail
// page. The JSON names mirror the labels the site uses.
type AttributeKey string

const (
	AttrLandArea      AttributeKey = "Terrein_oppervlakte"
	AttrLivingArea    AttributeKey = "Bewoonbare_oppervlakte"
	AttrTerraceArea   AttributeKey = "Terras_oppervlakte"
	AttrOrientation   AttributeKey = "Orientatie"
	AttrBedrooms      AttributeKey = "Slaapkamers"
	AttrBathrooms     AttributeKey = "Badkamers"
	AttrYearBuilt     AttributeKey = "Bouwjaar"
	AttrYearRenovated AttributeKey = "Renovatiejaar"
	AttrEnergyRating  AttributeKey = "EPC"
	AttrAvailability  AttributeKey = "Beschikbaarheid"
)

// AttributeKeys returns every known key in display order.
func AttributeKeys() []AttributeKey {
	return []AttributeKey{
		AttrLandArea,
		AttrLivingArea,
		AttrTerraceArea,
		AttrOrientation,
		AttrBedrooms,
		AttrBathrooms,
		AttrYearBuilt,
		AttrYearRenovated,
		AttrEnergyRating,
		AttrAvailability,
	}
}

// emptyAttributes builds the attribute map with every key present.
// Missing values are always the empty string, never an absent key.
func emptyAttributes() map[AttributeKey]string {
	m := make(map[AttributeKey]string, 10)
	for _, k := range AttributeKeys() {
		m[k] = ""
	}
	return m
}

// Preview is what one index-page card yields before the detail fetch.
type Preview struct {
	AnchorID       string
	URL            string // absolute, with tracking parameter
	Location       string
	RawPrice       string
	Description    string
	RawType        string
	PhotoCandidate string
}

// Detail holds everything extracted from one listing detail page.
type Detail struct {
	ContactFirstName   string
	ContactDisplayName string // full name from the bold element when present
	ContactEmail       string // bare address, no mailto prefix
	Attributes         map[AttributeKey]string
	FallbackPhoto      string
}

// Listing is the canonical output record.
type Listing struct {
	ListingID          string                  `json:"listing_id"`
	ListingURL         string                  `json:"listing_url"`
	PhotoURL           string                  `json:"photo_url"`
	Price              Price                   `json:"price"`
	Location           string                  `json:"location"`
	Description        string                  `json:"description"`
	ListingType        string                  `json:"listing_type"`
	Title              string                  `json:"title"`
	CTALabel           string                  `json:"cta_label"`
	ContactLabel       string                  `json:"contact_label"`
	ContactEmail       string                  `json:"contact_email,omitempty"`
	PriceInquiryLabel  string                  `json:"price_inquiry_label,omitempty"`
	PriceInquiryTarget string                  `json:"price_inquiry_target,omitempty"`
	Attributes         map[AttributeKey]string `json:"attributes"`
}

// SkipReason explains why one listing was dropped without aborting the run.
type SkipReason string

const (
	SkipNoHref       SkipReason = "no_href"
	SkipEmptyContent SkipReason = "empty_content"
	SkipDuplicate    SkipReason = "duplicate"
)

// typeTranslations maps the site's English type labels to their Dutch
// output form. Keys are matched case-insensitively.
var typeTranslations = map[string]string{
	"dwelling": "Huis",
	"flat":     "Appartement",
	"land":     "Grond",
}

// TranslateType maps a raw listing type to its Dutch form. Already-Dutch
// and unknown values pass through unchanged.
func TranslateType(raw string) string {
	if translated, ok := typeTranslations[lowerTrimmed(raw)]; ok {
		return translated
	}
	return raw
}

// isTypeToken reports whether a text segment is a known listing type,
// either in its English source form or its Dutch output form.
func isTypeToken(s string) bool {
	key := lowerTrimmed(s)
	if _, ok := typeTranslations[key]; ok {
		return true
	}
	for _, dutch := range typeTranslations {
		if key == lowerTrimmed(dutch) {
			return true
		}
	}
	return false
}
