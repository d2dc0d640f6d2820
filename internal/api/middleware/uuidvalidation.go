// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"networth/internal/api/response"
	"networth/internal/validation"
)

// ValidateUUIDParam returns middleware that validates a URL parameter as a
// UUID, responding 400 Bad Request when it is missing or malformed. Applied
// to the retirement routes whose path carries an account or holding ID.
//
// Example usage in router:
//
//	r.Route("/{accountID}", func(r chi.Router) {
//	    r.Use(middleware.ValidateUUIDParam("accountID"))
//	    r.Delete("/", handler.DeleteAccount)
//	})
func ValidateUUIDParam(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)

			if id == "" {
				response.RespondError(w, http.StatusBadRequest, "valid UUID is required", "")
				return
			}

			if err := validation.ValidateUUID(id); err != nil {
				response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
