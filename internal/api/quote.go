package api

import (
	"net/http"
	"strings"

	"github.com/opticode/backend/internal/services"
)

type quoteRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ProjectType string `json:"project_type"`
	Message     string `json:"message"`
}

// CreateQuote handles POST /api/quote: validates the form, allocates a
// unique ticket and seeds the conversation with the customer's message.
func (a *API) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fields := map[string]string{
		"name":         req.Name,
		"email":        req.Email,
		"project_type": req.ProjectType,
		"message":      req.Message,
	}
	if missing := missingFields(fields, []string{"name", "email", "project_type", "message"}); len(missing) > 0 {
		errorResponse(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}
	if !validEmail(strings.TrimSpace(req.Email)) {
		errorResponse(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	ticket, err := services.CreateQuote(a.DB, req.Name, req.Email, req.ProjectType, req.Message)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to create ticket")
		return
	}
	successResponse(w, "Quote request submitted successfully", map[string]any{
		"ticket_id": ticket.Code,
	})
}
