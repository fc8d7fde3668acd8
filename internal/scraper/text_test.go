package scraper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"irres-scraper/internal/scraper"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "Gent", "Gent"},
		{"numeric entities", "264&#160;m&#178;", "264 m²"},
		{
			"mixed entities",
			"Bewoonbare&#160;oppervlakte:&#160;264&nbsp;m&#178;",
			"Bewoonbare oppervlakte: 264 m²",
		},
		{"named euro entity", "&euro; 495.000", "€ 495.000"},
		{"double-encoded entities", "264&amp;nbsp;m&amp;#178;", "264 m²"},
		{"whitespace runs", "  Gent \t\n Zuid  ", "Gent Zuid"},
		{"non-breaking space", "Gent\u00a0Zuid", "Gent Zuid"},
		{"unicode escape", `Gent \u20ac 100`, "Gent € 100"},
		{"broken escape kept", `C:\users\x`, `C:\users\x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scraper.NormalizeText(tt.raw))
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Gent",
		"Bewoonbare&#160;oppervlakte:&#160;264&nbsp;m&#178;",
		"264&amp;nbsp;m&amp;#178;",
		"&amp;amp;euro; 495.000",
		"  veel   spaties  ",
		"€ 1.085.000",
		`Gent \u20ac 100`,
	}
	for _, in := range inputs {
		once := scraper.NormalizeText(in)
		assert.Equal(t, once, scraper.NormalizeText(once), "input %q", in)
	}
}
