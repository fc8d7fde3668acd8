package scraper_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irres-scraper/internal/scraper"
)

const imgOrigin = "https://irres.be"

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestBestImage(t *testing.T) {
	t.Parallel()

	t.Run("prefers uploads path over other candidates", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>
			<img src="https://tracker.example/pixel">
			<img src="/uploads_c/img1.jpg">
		</div>`)
		got := scraper.BestImage(doc.Find("div"), imgOrigin)
		assert.Equal(t, "https://irres.be/uploads_c/img1.jpg", got)
	})

	t.Run("reads srcset taking the url before the descriptor", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<picture>
			<source srcset="/uploads_c/a-small.jpg 480w, /uploads_c/a-large.jpg 1600w">
		</picture>`)
		got := scraper.BestImage(doc.Find("picture"), imgOrigin)
		assert.Equal(t, "https://irres.be/uploads_c/a-small.jpg", got)
	})

	t.Run("picture img ranks ahead of its source variants", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<picture>
			<source srcset="/uploads_c/a-small.jpg 480w, /uploads_c/a-large.jpg 1600w">
			<img src="/uploads_c/fallback.jpg">
		</picture>`)
		got := scraper.BestImage(doc.Find("picture"), imgOrigin)
		assert.Equal(t, "https://irres.be/uploads_c/fallback.jpg", got)
	})

	t.Run("reads lazy-load attributes", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><img data-src="/uploads_c/lazy.jpg"></div>`)
		got := scraper.BestImage(doc.Find("div"), imgOrigin)
		assert.Equal(t, "https://irres.be/uploads_c/lazy.jpg", got)
	})

	t.Run("reads inline background style", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><span style="background-image: url('/uploads_c/bg.jpg')"></span></div>`)
		got := scraper.BestImage(doc.Find("div"), imgOrigin)
		assert.Equal(t, "https://irres.be/uploads_c/bg.jpg", got)
	})

	t.Run("reads generic data attributes", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><figure data-bg="/uploads_c/fig.jpg"></figure></div>`)
		got := scraper.BestImage(doc.Find("div"), imgOrigin)
		assert.Equal(t, "https://irres.be/uploads_c/fig.jpg", got)
	})

	t.Run("never returns data uris or svg", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>
			<img src="data:image/png;base64,iVBORw0KGgo=">
			<img src="/icons/logo.svg">
		</div>`)
		got := scraper.BestImage(doc.Find("div"), imgOrigin)
		assert.Equal(t, "", got)
	})

	t.Run("falls back to first candidate when none preferred", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>
			<img src="https://cdn.example/one">
			<img src="https://cdn.example/two">
		</div>`)
		got := scraper.BestImage(doc.Find("div"), imgOrigin)
		assert.Equal(t, "https://cdn.example/one", got)
	})

	t.Run("raster extension qualifies even off-site", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>
			<img src="https://cdn.example/banner">
			<img src="https://cdn.example/photo.webp?v=2">
		</div>`)
		got := scraper.BestImage(doc.Find("div"), imgOrigin)
		assert.Equal(t, "https://cdn.example/photo.webp?v=2", got)
	})

	t.Run("empty fragment yields empty string", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><p>geen foto</p></div>`)
		assert.Equal(t, "", scraper.BestImage(doc.Find("div"), imgOrigin))
	})
}

func TestBestImageInScope(t *testing.T) {
	t.Parallel()

	t.Run("prefers the estate main container", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
			<header><img src="/uploads_c/header.jpg"></header>
			<main data-barba-namespace="estate"><img src="/uploads_c/hero.jpg"></main>
		</body></html>`)
		got := scraper.BestImageInScope(doc, imgOrigin)
		assert.Equal(t, "https://irres.be/uploads_c/hero.jpg", got)
	})

	t.Run("whole document fallback", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
			<div><img src="/uploads_c/anywhere.jpg"></div>
		</body></html>`)
		got := scraper.BestImageInScope(doc, imgOrigin)
		assert.Equal(t, "https://irres.be/uploads_c/anywhere.jpg", got)
	})
}
