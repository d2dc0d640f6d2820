package handlers

import (
	"log"
	"net/http"

	"networth/internal/service"
	"networth/internal/session"
)

// NetWorthHandler handles the dashboard valuation endpoint. It owns the
// session gate: quotes are refreshed at most once per session, and a
// failed refresh degrades to previously cached quotes with a notice
// rather than failing the request.
type NetWorthHandler struct {
	netWorthService *service.NetWorthService
	pricingService  *service.PricingService
	session         *session.Session
}

// NewNetWorthHandler creates a new NetWorthHandler with the provided dependencies.
func NewNetWorthHandler(
	netWorthService *service.NetWorthService,
	pricingService *service.PricingService,
	session *session.Session,
) *NetWorthHandler {
	return &NetWorthHandler{
		netWorthService: netWorthService,
		pricingService:  pricingService,
		session:         session,
	}
}

// NetWorthResponse is the dashboard payload: the aggregate figure with
// its per-component breakdown. Notice is set when a refresh failed and
// the valuation used previously cached quotes.
type NetWorthResponse struct {
	NetWorth   float64 `json:"netWorth"`
	Cash       float64 `json:"cash"`
	Equities   float64 `json:"equities"`
	Treasuries float64 `json:"treasuries"`
	Retirement float64 `json:"retirement"`
	Notice     string  `json:"notice,omitempty"`
}

// NetWorth handles GET requests for the aggregate valuation.
//
// Endpoint: GET /api/networth
// Response: 200 OK with NetWorthResponse (always - a refresh failure is
// surfaced as a notice, never as an error status)
func (h *NetWorthHandler) NetWorth(w http.ResponseWriter, r *http.Request) {
	notice := ""
	if err := h.session.EnsureFresh(r.Context(), h.pricingService.RefreshAll); err != nil {
		log.Printf("price refresh failed, using cached quotes: %v", err)
		notice = "price refresh failed; values use previously cached quotes"
	}

	breakdown := h.netWorthService.Breakdown()

	respondJSON(w, http.StatusOK, NetWorthResponse{
		NetWorth:   breakdown.Total,
		Cash:       breakdown.Cash,
		Equities:   breakdown.Equities,
		Treasuries: breakdown.Treasuries,
		Retirement: breakdown.Retirement,
		Notice:     notice,
	})
}
