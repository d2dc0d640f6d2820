package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"networth/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service-layer errors to HTTP responses:
// not-found sentinels become 404, validation sentinels 400, everything
// else 500 with the message hidden behind a generic error string.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrStockNotFound),
		errors.Is(err, apperrors.ErrTreasuryNotFound),
		errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrHoldingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidSymbol),
		errors.Is(err, apperrors.ErrNegativeShares),
		errors.Is(err, apperrors.ErrNegativeBalance),
		errors.Is(err, apperrors.ErrInvalidFaceValue),
		errors.Is(err, apperrors.ErrInvalidInterestRate),
		errors.Is(err, apperrors.ErrInvalidDate),
		errors.Is(err, apperrors.ErrInvalidAccountType),
		errors.Is(err, apperrors.ErrInvalidUUID),
		errors.Is(err, apperrors.ErrEmptyName):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		status = http.StatusConflict
	}

	respondJSON(w, status, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}
