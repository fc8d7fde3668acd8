package urlutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"irres-scraper/internal/urlutil"
)

const origin = "https://example.test"

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
		{"protocol relative", "//cdn.example/img.jpg", "https://cdn.example/img.jpg"},
		{"root relative", "/pand/123/x", "https://example.test/pand/123/x"},
		{"already absolute", "https://other.test/a", "https://other.test/a"},
		{"www prefix", "www.example.test/a", "https://www.example.test/a"},
		{"bare relative path", "uploads_c/img.jpg", "https://example.test/uploads_c/img.jpg"},
		{"quoted input", `"/pand/9/x"`, "https://example.test/pand/9/x"},
		{"single quoted input", "'//cdn.example/a.jpg'", "https://cdn.example/a.jpg"},
		{"scheme but not url-like", "mailto:a@b.test", "mailto:a@b.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, urlutil.Resolve(tt.raw, origin))
		})
	}
}

func TestResolveTracked(t *testing.T) {
	t.Parallel()

	t.Run("appends tracking parameter on detail pages", func(t *testing.T) {
		t.Parallel()
		got := urlutil.ResolveTracked("/pand/123/x", origin)
		assert.Equal(t, "https://example.test/pand/123/x?utm_source=chatbot", got)
	})

	t.Run("uses ampersand when a query already exists", func(t *testing.T) {
		t.Parallel()
		got := urlutil.ResolveTracked("/pand/123/x?lang=nl", origin)
		assert.Equal(t, "https://example.test/pand/123/x?lang=nl&utm_source=chatbot", got)
	})

	t.Run("leaves non-detail pages alone", func(t *testing.T) {
		t.Parallel()
		got := urlutil.ResolveTracked("/over-ons", origin)
		assert.Equal(t, "https://example.test/over-ons", got)
	})
}

func TestDetailID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"id after detail marker", "https://example.test/pand/8749906/gent", "8749906"},
		{"id elsewhere in path", "https://example.test/listing/42", "42"},
		{"no numeric segment", "https://example.test/pand/gent", ""},
		{"unparseable url", "://bad", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, urlutil.DetailID(tt.url))
		})
	}
}
