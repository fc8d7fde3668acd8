package observability

import (
	"sync"
	"sync/atomic"
)

type StatsSnapshot struct {
	PagesFetched      uint64            `json:"pages_fetched"`
	ListingsExtracted uint64            `json:"listings_extracted"`
	ListingsSkipped   uint64            `json:"listings_skipped"`
	ErrorsTotal       uint64            `json:"errors_total"`
	ScrapeSecondsAvg  float64           `json:"scrape_seconds_avg"`
	SkipsByReason     map[string]uint64 `json:"skips_by_reason,omitempty"`
	ErrorsByType      map[string]uint64 `json:"errors_by_type,omitempty"`
	ErrorsByComponent map[string]uint64 `json:"errors_by_component,omitempty"`
}

var (
	pagesFetched      uint64
	listingsExtracted uint64
	listingsSkipped   uint64
	errorsTotal       uint64

	scrapeCount uint64
	scrapeNanos uint64

	statsMu           sync.Mutex
	skipsByReason     = map[string]uint64{}
	errorsByType      = map[string]uint64{}
	errorsByComponent = map[string]uint64{}
)

func IncPageFetched() {
	atomic.AddUint64(&pagesFetched, 1)
}

func IncListingExtracted() {
	atomic.AddUint64(&listingsExtracted, 1)
}

func IncListingSkipped(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	atomic.AddUint64(&listingsSkipped, 1)
	statsMu.Lock()
	skipsByReason[reason]++
	statsMu.Unlock()
}

func ObserveScrapeDuration(seconds float64) {
	if seconds <= 0 {
		return
	}
	atomic.AddUint64(&scrapeCount, 1)
	atomic.AddUint64(&scrapeNanos, uint64(seconds*1e9))
}

func IncError(errType, component string) {
	if errType == "" {
		errType = "unknown"
	}
	if component == "" {
		component = "unknown"
	}
	atomic.AddUint64(&errorsTotal, 1)
	statsMu.Lock()
	errorsByType[errType]++
	errorsByComponent[component]++
	statsMu.Unlock()
}

func Snapshot() StatsSnapshot {
	statsMu.Lock()
	skipsCopy := copyMap(skipsByReason)
	errorsTypeCopy := copyMap(errorsByType)
	errorsComponentCopy := copyMap(errorsByComponent)
	statsMu.Unlock()

	count := atomic.LoadUint64(&scrapeCount)
	avg := 0.0
	if count > 0 {
		avg = float64(atomic.LoadUint64(&scrapeNanos)) / float64(count) / 1e9
	}

	return StatsSnapshot{
		PagesFetched:      atomic.LoadUint64(&pagesFetched),
		ListingsExtracted: atomic.LoadUint64(&listingsExtracted),
		ListingsSkipped:   atomic.LoadUint64(&listingsSkipped),
		ErrorsTotal:       atomic.LoadUint64(&errorsTotal),
		ScrapeSecondsAvg:  avg,
		SkipsByReason:     skipsCopy,
		ErrorsByType:      errorsTypeCopy,
		ErrorsByComponent: errorsComponentCopy,
	}
}

func copyMap(src map[string]uint64) map[string]uint64 {
	if len(src) == 0 {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
