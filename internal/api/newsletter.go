package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/opticode/backend/internal/services"
)

type emailRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/subscribe. Idempotent: an already-active
// email reports success without touching the row.
func (a *API) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		errorResponse(w, http.StatusBadRequest, "Email is required")
		return
	}
	if !validEmail(email) {
		errorResponse(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	result, err := services.Subscribe(a.DB, email)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}
	switch result {
	case services.AlreadySubscribed:
		successResponse(w, "Already subscribed", nil)
	case services.Resubscribed:
		successResponse(w, "Subscription reactivated", nil)
	default:
		successResponse(w, "Successfully subscribed to newsletter", nil)
	}
}

// Unsubscribe handles POST /api/unsubscribe. Unknown emails are 404;
// repeating the call on an inactive email succeeds and re-stamps.
func (a *API) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		errorResponse(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := services.Unsubscribe(a.DB, email); err != nil {
		if errors.Is(err, services.ErrSubscriberNotFound) {
			errorResponse(w, http.StatusNotFound, "Email not found")
			return
		}
		errorResponse(w, http.StatusInternalServerError, "Failed to unsubscribe")
		return
	}
	successResponse(w, "Successfully unsubscribed", nil)
}
