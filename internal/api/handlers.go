package api

import (
	"net/http"

	"irres-scraper/internal/observability"
	"irres-scraper/internal/scraper"
)

// ListingsResponse is the wire shape of the read endpoint. The response
// is always HTTP 200 so bot callers never see a hard failure; errors
// surface through the success flag and the error string.
type ListingsResponse struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Error    string            `json:"error,omitempty"`
	Listings []scraper.Listing `json:"listings"`
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	listings, err := s.scraper.Scrape(r.Context())
	if err != nil {
		respondJSON(w, http.StatusOK, ListingsResponse{
			Success:  false,
			Error:    err.Error(),
			Listings: []scraper.Listing{},
		})
		return
	}
	if listings == nil {
		listings = []scraper.Listing{}
	}
	respondJSON(w, http.StatusOK, ListingsResponse{
		Success:  true,
		Count:    len(listings),
		Listings: listings,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": "irres-scraper",
		"endpoints": []string{
			"/listings",
			"/health",
			"/stats",
		},
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, observability.Snapshot())
}
