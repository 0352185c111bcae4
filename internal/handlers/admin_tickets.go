package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/opticode/backend/internal/models"
	"github.com/opticode/backend/internal/services"
)

// Admin list pages show 20 rows per page, independent of the API's limits.
const adminPageSize = 20

// GET /admin/tickets?status=&page=
func (app *App) AdminTickets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status == "all" {
			status = ""
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		tickets, total, err := services.ListTickets(app.DB, status, adminPageSize, (page-1)*adminPageSize)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		app.render(w, "admin/tickets.tmpl", map[string]any{
			"Title":    "Admin • Tickets",
			"Tickets":  tickets,
			"Total":    total,
			"Page":     page,
			"Pages":    int((total + adminPageSize - 1) / adminPageSize),
			"Status":   status,
			"Statuses": models.ValidStatuses,
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}

// GET /admin/tickets/{code}
func (app *App) AdminTicketDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticket, err := services.TicketByCode(app.DB, chi.URLParam(r, "code"))
		if err != nil {
			http.Redirect(w, r, "/admin/tickets?error=not_found", http.StatusSeeOther)
			return
		}
		messages, err := services.TicketMessages(app.DB, ticket.ID)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		app.render(w, "admin/ticket_detail.tmpl", map[string]any{
			"Title":    "Admin • " + ticket.Code,
			"Ticket":   ticket,
			"Messages": messages,
			"Statuses": models.ValidStatuses,
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}

// POST /admin/tickets/{code}/reply — append an admin-authored message.
func (app *App) AdminTicketReply(w http.ResponseWriter, r *http.Request) {
	ticket, err := services.TicketByCode(app.DB, chi.URLParam(r, "code"))
	if err != nil {
		http.Redirect(w, r, "/admin/tickets?error=not_found", http.StatusSeeOther)
		return
	}
	_ = r.ParseForm()
	body := strings.TrimSpace(r.FormValue("message"))
	if body == "" {
		http.Redirect(w, r, "/admin/tickets/"+ticket.Code+"?error=empty_message", http.StatusSeeOther)
		return
	}
	if _, err := services.AppendMessage(app.DB, ticket.ID, models.SenderAdmin, body); err != nil {
		http.Redirect(w, r, "/admin/tickets/"+ticket.Code+"?error=reply_failed", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/tickets/"+ticket.Code+"?ok=reply_sent", http.StatusSeeOther)
}

// POST /admin/tickets/{code}/status — move the ticket to any valid status.
func (app *App) AdminTicketStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	_ = r.ParseForm()

	ticket, err := services.UpdateTicketStatus(app.DB, code, r.FormValue("status"))
	if err != nil {
		switch err {
		case services.ErrTicketNotFound:
			http.Redirect(w, r, "/admin/tickets?error=not_found", http.StatusSeeOther)
		case services.ErrInvalidStatus:
			http.Redirect(w, r, "/admin/tickets/"+strings.ToUpper(strings.TrimSpace(code))+"?error=invalid_status", http.StatusSeeOther)
		default:
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/admin/tickets/"+ticket.Code+"?ok=status_updated", http.StatusSeeOther)
}
