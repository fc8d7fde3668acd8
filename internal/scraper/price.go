package scraper

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PriceKind tags the classification of a raw price fragment.
type PriceKind int

const (
	PriceEmpty PriceKind = iota
	PriceNumeric
	PriceOnRequest
	PriceUnderCompromise
	PriceRawText
)

// Special price phrases as the site renders them.
const (
	phraseOnRequest       = "prijs op aanvraag"
	phraseUnderCompromise = "onder compromis"

	displayOnRequest       = "Prijs op aanvraag"
	displayUnderCompromise = "Onder compromis"
)

// Price is the parsed form of a listing price. Numeric prices keep the
// amount in whole euros; unclassifiable but non-empty input is kept
// verbatim as raw text.
type Price struct {
	Kind   PriceKind
	Amount int
	Raw    string
}

// ParsePrice classifies a raw price fragment. It never fails: anything
// that is not a known phrase or a digit-bearing amount degrades to raw
// text, and blank input yields the empty price.
func ParsePrice(raw string) Price {
	s := NormalizeText(raw)
	if s == "" {
		return Price{Kind: PriceEmpty}
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, phraseOnRequest) {
		return Price{Kind: PriceOnRequest}
	}
	if strings.Contains(lower, phraseUnderCompromise) {
		return Price{Kind: PriceUnderCompromise}
	}

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() > 0 {
		if amount, err := strconv.Atoi(digits.String()); err == nil {
			return Price{Kind: PriceNumeric, Amount: amount}
		}
	}
	return Price{Kind: PriceRawText, Raw: s}
}

// String renders the price the way the site displays it, e.g. a numeric
// 1085000 becomes "€ 1.085.000". The empty price renders as "".
func (p Price) String() string {
	switch p.Kind {
	case PriceNumeric:
		return "€ " + formatThousands(p.Amount)
	case PriceOnRequest:
		return displayOnRequest
	case PriceUnderCompromise:
		return displayUnderCompromise
	case PriceRawText:
		return p.Raw
	}
	return ""
}

// MarshalJSON encodes the display form, matching the site's own rendering.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// looksLikePrice reports whether a free-text segment carries a price:
// either a currency symbol or one of the special phrases.
func looksLikePrice(s string) bool {
	if strings.Contains(s, "€") {
		return true
	}
	lower := strings.ToLower(s)
	return strings.Contains(lower, phraseOnRequest) || strings.Contains(lower, phraseUnderCompromise)
}

func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
