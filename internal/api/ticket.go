package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/opticode/backend/internal/models"
	"github.com/opticode/backend/internal/services"
)

// GetTicket handles GET /api/ticket/{code}. Codes are matched
// case-insensitively; the raw ticket object is returned, not the success
// envelope — the status portal consumes it directly.
func (a *API) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticket, ok := a.ticketFromURL(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}

// ListMessages handles GET /api/ticket/{code}/messages, oldest first.
func (a *API) ListMessages(w http.ResponseWriter, r *http.Request) {
	ticket, ok := a.ticketFromURL(w, r)
	if !ok {
		return
	}
	msgs, err := services.TicketMessages(a.DB, ticket.ID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	respondJSON(w, http.StatusOK, msgs)
}

type messageRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// AddMessage handles POST /api/ticket/{code}/message and returns the stored
// message with 201.
func (a *API) AddMessage(w http.ResponseWriter, r *http.Request) {
	ticket, ok := a.ticketFromURL(w, r)
	if !ok {
		return
	}
	var req messageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	fields := map[string]string{"sender": req.Sender, "message": req.Message}
	if missing := missingFields(fields, []string{"sender", "message"}); len(missing) > 0 {
		errorResponse(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	msg, err := services.AppendMessage(a.DB, ticket.ID, req.Sender, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSender) {
			errorResponse(w, http.StatusBadRequest, `Invalid sender. Must be "user" or "admin"`)
			return
		}
		errorResponse(w, http.StatusInternalServerError, "Failed to add message")
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/ticket/{code}/status. Only exact members of
// the valid status set are accepted; the error enumerates them.
func (a *API) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		errorResponse(w, http.StatusBadRequest, "Status is required")
		return
	}

	ticket, err := services.UpdateTicketStatus(a.DB, chi.URLParam(r, "code"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			errorResponse(w, http.StatusBadRequest, "Invalid status. Valid values: "+strings.Join(models.ValidStatuses, ", "))
		case errors.Is(err, services.ErrTicketNotFound):
			errorResponse(w, http.StatusNotFound, "Ticket not found")
		default:
			errorResponse(w, http.StatusInternalServerError, "Failed to update ticket")
		}
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}

// ListTickets handles GET /api/tickets with an optional status filter.
func (a *API) ListTickets(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	status := r.URL.Query().Get("status")

	tickets, total, err := services.ListTickets(a.DB, status, limit, offset)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to list tickets")
		return
	}
	successResponse(w, "Success", map[string]any{
		"tickets": tickets,
		"total":   total,
		"limit":   services.ClampLimit(limit),
		"offset":  offset,
	})
}

// ticketFromURL resolves the {code} URL param, writing the 404 envelope on
// a miss.
func (a *API) ticketFromURL(w http.ResponseWriter, r *http.Request) (*models.Ticket, bool) {
	ticket, err := services.TicketByCode(a.DB, chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			errorResponse(w, http.StatusNotFound, "Ticket not found")
		} else {
			errorResponse(w, http.StatusInternalServerError, "Failed to load ticket")
		}
		return nil, false
	}
	return ticket, true
}
