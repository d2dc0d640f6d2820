package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"networth/internal/api/request"
	"networth/internal/model"
	"networth/internal/service"
	"networth/internal/session"
)

// RetirementHandler handles HTTP requests for retirement accounts and
// the equity holdings of IRA-typed accounts.
type RetirementHandler struct {
	retirementService *service.RetirementService
	session           *session.Session
}

// NewRetirementHandler creates a new RetirementHandler with the provided dependencies.
func NewRetirementHandler(retirementService *service.RetirementService, session *session.Session) *RetirementHandler {
	return &RetirementHandler{
		retirementService: retirementService,
		session:           session,
	}
}

// Accounts handles GET requests for all retirement accounts.
//
// Endpoint: GET /api/retirement
// Response: 200 OK with array of RetirementAccount
func (h *RetirementHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.retirementService.GetAccounts()
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve retirement accounts")
		return
	}

	respondJSON(w, http.StatusOK, accounts)
}

// CreateAccount handles POST requests that create a retirement account.
//
// Endpoint: POST /api/retirement
// Response: 201 Created with the created account (including its ID)
// Error: 400 Bad Request on an unknown type or negative balance
func (h *RetirementHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRetirementAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	acct, err := h.retirementService.CreateAccount(r.Context(), req.Name, model.RetirementType(req.Type), req.Balance)
	if err != nil {
		respondServiceError(w, err, "Failed to create retirement account")
		return
	}

	respondJSON(w, http.StatusCreated, acct)
}

// UpdateBalance handles PUT requests that overwrite an account balance.
//
// Endpoint: PUT /api/retirement/{accountID}/balance
// Response: 200 OK
// Error: 404 Not Found for an unknown account
func (h *RetirementHandler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req request.UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.retirementService.UpdateBalance(r.Context(), accountID, req.Balance); err != nil {
		respondServiceError(w, err, "Failed to update balance")
		return
	}

	respondJSON(w, http.StatusOK, nil)
}

// DeleteAccount handles DELETE requests that remove an account and all of
// its holdings (cascade).
//
// Endpoint: DELETE /api/retirement/{accountID}
// Response: 204 No Content
// Error: 404 Not Found for an unknown account
func (h *RetirementHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	if err := h.retirementService.DeleteAccount(r.Context(), accountID); err != nil {
		respondServiceError(w, err, "Failed to delete retirement account")
		return
	}

	h.session.MarkStale()
	respondJSON(w, http.StatusNoContent, nil)
}

// Holdings handles GET requests for all holdings of an account.
//
// Endpoint: GET /api/retirement/{accountID}/holdings
// Response: 200 OK with array of IRAHolding (empty for unknown accounts)
func (h *RetirementHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	holdings, err := h.retirementService.GetHoldings(accountID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve holdings")
		return
	}

	respondJSON(w, http.StatusOK, holdings)
}

// AddHolding handles POST requests that add an equity holding to an
// IRA-typed account. Each call inserts a new row, even for a symbol the
// account already holds.
//
// Endpoint: POST /api/retirement/{accountID}/holdings
// Response: 201 Created with the created holding
// Error: 404 Not Found for an unknown account, 400 Bad Request when the
// account is not IRA-typed or the input is invalid
func (h *RetirementHandler) AddHolding(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req request.AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	holding, err := h.retirementService.AddHolding(r.Context(), accountID, req.Symbol, req.Shares)
	if err != nil {
		respondServiceError(w, err, "Failed to add holding")
		return
	}

	h.session.MarkStale()
	respondJSON(w, http.StatusCreated, holding)
}

// RemoveHolding handles DELETE requests that remove a single holding.
//
// Endpoint: DELETE /api/retirement/holdings/{holdingID}
// Response: 204 No Content
// Error: 404 Not Found for an unknown holding
func (h *RetirementHandler) RemoveHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "holdingID")

	if err := h.retirementService.RemoveHolding(r.Context(), holdingID); err != nil {
		respondServiceError(w, err, "Failed to remove holding")
		return
	}

	h.session.MarkStale()
	respondJSON(w, http.StatusNoContent, nil)
}
