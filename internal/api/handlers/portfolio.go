package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"networth/internal/api/request"
	"networth/internal/service"
	"networth/internal/session"
)

// PortfolioHandler handles HTTP requests for the primary portfolio and
// cash accounts. Mutations mark the session stale so the next valuation
// refreshes quotes.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	session          *session.Session
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided dependencies.
func NewPortfolioHandler(portfolioService *service.PortfolioService, session *session.Session) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		session:          session,
	}
}

// Stocks handles GET requests for all primary portfolio positions.
//
// Endpoint: GET /api/portfolio
// Response: 200 OK with array of StockPosition
func (h *PortfolioHandler) Stocks(w http.ResponseWriter, r *http.Request) {
	positions, err := h.portfolioService.GetStocks()
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve portfolio")
		return
	}

	respondJSON(w, http.StatusOK, positions)
}

// AddStock handles POST requests that add shares to the portfolio.
// Adding to an existing symbol increments the position.
//
// Endpoint: POST /api/portfolio
// Response: 201 Created
// Error: 400 Bad Request on invalid symbol or negative shares
func (h *PortfolioHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req request.AddStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.portfolioService.AddStock(r.Context(), req.Symbol, req.Shares); err != nil {
		respondServiceError(w, err, "Failed to add stock")
		return
	}

	h.session.MarkStale()
	respondJSON(w, http.StatusCreated, nil)
}

// RemoveStock handles DELETE requests that remove a position entirely.
//
// Endpoint: DELETE /api/portfolio/{symbol}
// Response: 204 No Content
// Error: 404 Not Found for an unknown symbol
func (h *PortfolioHandler) RemoveStock(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	if err := h.portfolioService.RemoveStock(r.Context(), symbol); err != nil {
		respondServiceError(w, err, "Failed to remove stock")
		return
	}

	h.session.MarkStale()
	respondJSON(w, http.StatusNoContent, nil)
}

// CashBalances handles GET requests for all cash account balances.
//
// Endpoint: GET /api/cash
// Response: 200 OK with map of account name to balance
func (h *PortfolioHandler) CashBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.portfolioService.GetCashBalances()
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve cash balances")
		return
	}

	respondJSON(w, http.StatusOK, balances)
}

// SetCash handles PUT requests that overwrite a cash account balance.
// The account is created on first write; the operation is idempotent.
//
// Endpoint: PUT /api/cash
// Response: 200 OK
// Error: 400 Bad Request on empty name or negative balance
func (h *PortfolioHandler) SetCash(w http.ResponseWriter, r *http.Request) {
	var req request.SetCashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.portfolioService.SetCashBalance(r.Context(), req.Name, req.Balance); err != nil {
		respondServiceError(w, err, "Failed to set cash balance")
		return
	}

	respondJSON(w, http.StatusOK, nil)
}
