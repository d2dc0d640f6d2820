package handlers

import (
	"net/http"

	"networth/internal/quotes"
	"networth/internal/service"
	"networth/internal/session"
)

// PriceHandler handles quote snapshot and manual refresh endpoints.
type PriceHandler struct {
	pricingService *service.PricingService
	cache          *quotes.Cache
	session        *session.Session
}

// NewPriceHandler creates a new PriceHandler with the provided dependencies.
func NewPriceHandler(
	pricingService *service.PricingService,
	cache *quotes.Cache,
	session *session.Session,
) *PriceHandler {
	return &PriceHandler{
		pricingService: pricingService,
		cache:          cache,
		session:        session,
	}
}

// Prices handles GET requests for the current quote snapshot.
//
// Endpoint: GET /api/prices
// Response: 200 OK with array of PriceQuote
func (h *PriceHandler) Prices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cache.Prices())
}

// Refresh handles POST requests that force a quote refresh regardless of
// session freshness. Per-symbol failures keep prior cached quotes; only a
// failure to resolve the tracked-symbol set is an error.
//
// Endpoint: POST /api/prices/refresh
// Response: 200 OK with the refreshed quote snapshot
// Error: 500 Internal Server Error if the symbol set cannot be resolved
func (h *PriceHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.session.MarkStale()

	if err := h.pricingService.RefreshAll(r.Context()); err != nil {
		respondServiceError(w, err, "Failed to refresh prices")
		return
	}

	h.session.MarkFresh()
	respondJSON(w, http.StatusOK, h.cache.Prices())
}
