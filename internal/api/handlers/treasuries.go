package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"networth/internal/api/request"
	"networth/internal/model"
	"networth/internal/service"
	"networth/internal/validation"
)

// TreasuryHandler handles HTTP requests for treasury securities.
type TreasuryHandler struct {
	treasuryService *service.TreasuryService
}

// NewTreasuryHandler creates a new TreasuryHandler with the provided service dependency.
func NewTreasuryHandler(treasuryService *service.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{
		treasuryService: treasuryService,
	}
}

// Treasuries handles GET requests for all treasuries with their accrued
// values as of now.
//
// Endpoint: GET /api/treasury
// Response: 200 OK with array of TreasuryValuation
func (h *TreasuryHandler) Treasuries(w http.ResponseWriter, r *http.Request) {
	valuations, err := h.treasuryService.List()
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve treasuries")
		return
	}

	respondJSON(w, http.StatusOK, valuations)
}

// AddTreasury handles POST requests that create a treasury security.
//
// Endpoint: POST /api/treasury
// Response: 201 Created
// Error: 400 Bad Request on invalid fields or dates, 409 Conflict on a
// duplicate name
func (h *TreasuryHandler) AddTreasury(w http.ResponseWriter, r *http.Request) {
	var req request.AddTreasuryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	purchase, err := validation.ParseDate(req.PurchaseDate)
	if err != nil {
		respondServiceError(w, err, "Invalid purchase date")
		return
	}
	maturity, err := validation.ParseDate(req.MaturityDate)
	if err != nil {
		respondServiceError(w, err, "Invalid maturity date")
		return
	}

	treasury := model.Treasury{
		Name:         req.Name,
		Type:         req.Type,
		FaceValue:    req.FaceValue,
		InterestRate: req.InterestRate,
		PurchaseDate: purchase,
		MaturityDate: maturity,
	}

	if err := h.treasuryService.Add(r.Context(), treasury); err != nil {
		respondServiceError(w, err, "Failed to add treasury")
		return
	}

	respondJSON(w, http.StatusCreated, nil)
}

// RemoveTreasury handles DELETE requests that remove a treasury by name.
//
// Endpoint: DELETE /api/treasury/{name}
// Response: 204 No Content
// Error: 404 Not Found for an unknown name
func (h *TreasuryHandler) RemoveTreasury(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.treasuryService.Remove(r.Context(), name); err != nil {
		respondServiceError(w, err, "Failed to remove treasury")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
