package handlers

import (
	"net/http"
	"strconv"

	"github.com/opticode/backend/internal/services"
)

// GET /admin/leads?page=
func (app *App) AdminLeads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		leads, total, err := services.ListLeads(app.DB, adminPageSize, (page-1)*adminPageSize)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		app.render(w, "admin/leads.tmpl", map[string]any{
			"Title": "Admin • Leads",
			"Leads": leads,
			"Total": total,
			"Page":  page,
			"Pages": int((total + adminPageSize - 1) / adminPageSize),
			"Flash": MakeFlash(r, "", ""),
		})
	}
}
