package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"irres-scraper/internal/observability"
)

// Fetcher is the web-fetch collaborator. Any non-2xx status or transport
// failure surfaces as the error; the pipeline treats that as "no document".
type Fetcher interface {
	FetchBytes(ctx context.Context, rawURL string) ([]byte, int, error)
}

// Config carries the read-only site parameters for one scraper instance.
type Config struct {
	Origin    string // e.g. "https://irres.be"
	IndexPath string // e.g. "/te-koop"
}

func DefaultConfig() Config {
	return Config{
		Origin:    "https://irres.be",
		IndexPath: "/te-koop",
	}
}

// Service runs the full extraction pipeline: index page, one sequential
// detail fetch per discovered card, assembly and dedup. The fetcher's
// per-host rate limiter is the politeness mechanism between requests.
type Service struct {
	cfg     Config
	fetcher Fetcher
	logger  *slog.Logger
}

func NewService(cfg Config, fetcher Fetcher, logger *slog.Logger) *Service {
	if cfg.Origin == "" {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, fetcher: fetcher, logger: logger}
}

// Scrape fetches the index page and extracts one canonical record per
// listing. An index-level failure is the only fatal error; everything at
// the per-listing level degrades to a logged skip or an empty detail so
// one bad listing never aborts the batch.
func (s *Service) Scrape(ctx context.Context) ([]Listing, error) {
	start := time.Now()
	defer func() {
		observability.ObserveScrapeDuration(time.Since(start).Seconds())
	}()

	indexURL := s.cfg.Origin + s.cfg.IndexPath
	body, _, err := s.fetcher.FetchBytes(ctx, indexURL)
	if err != nil {
		observability.IncError(observability.ClassifyFetchError(err), "index")
		return nil, fmt.Errorf("index fetch failed: %w", err)
	}
	observability.IncPageFetched()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		observability.IncError(observability.ErrorParsing, "index")
		return nil, fmt.Errorf("index parse failed: %w", err)
	}

	anchors := cardAnchors(doc)
	s.logger.Info("index scraped", "url", indexURL, "candidates", len(anchors))

	var listings []Listing
	for _, anchor := range anchors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		preview, ok := ParseCard(anchor, s.cfg.Origin)
		if !ok {
			s.skip(SkipNoHref, "")
			continue
		}

		detail := s.fetchDetail(ctx, preview)
		listing := Assemble(preview, detail, s.cfg.Origin)
		if !listing.HasContent() {
			s.skip(SkipEmptyContent, listing.ListingURL)
			continue
		}

		listings = append(listings, listing)
		observability.IncListingExtracted()
	}

	deduped := Dedupe(listings)
	for i := len(deduped); i < len(listings); i++ {
		s.skip(SkipDuplicate, "")
	}

	s.logger.Info("scrape finished", "listings", len(deduped), "duration", time.Since(start))
	return deduped, nil
}

// fetchDetail loads and parses one detail page. Failure degrades the
// listing to "no detail info" rather than erroring.
func (s *Service) fetchDetail(ctx context.Context, p Preview) Detail {
	empty := Detail{Attributes: emptyAttributes()}

	body, _, err := s.fetcher.FetchBytes(ctx, p.URL)
	if err != nil {
		observability.IncError(observability.ClassifyFetchError(err), "detail")
		s.logger.Warn("detail fetch failed", "url", p.URL, "error", err)
		return empty
	}
	observability.IncPageFetched()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		observability.IncError(observability.ErrorParsing, "detail")
		s.logger.Warn("detail parse failed", "url", p.URL, "error", err)
		return empty
	}

	return ExtractDetail(doc, s.cfg.Origin, p.PhotoCandidate == "")
}

func (s *Service) skip(reason SkipReason, url string) {
	observability.IncListingSkipped(string(reason))
	s.logger.Warn("listing skipped", "reason", string(reason), "url", url)
}

// cardAnchors collects the listing anchors from the index page in
// document order. The card-block lookup matches the current template; the
// href fallback keeps discovery working when the markup shifts.
func cardAnchors(doc *goquery.Document) []*goquery.Selection {
	var anchors []*goquery.Selection
	sel := doc.Find("div.inner-container a[name]")
	if sel.Length() == 0 {
		sel = doc.Find(`a[href*="/pand/"]`)
	}
	sel.Each(func(_ int, a *goquery.Selection) {
		anchors = append(anchors, a)
	})
	return anchors
}
