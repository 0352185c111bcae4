package handlers

import (
	"net/http"
	"strconv"

	"github.com/opticode/backend/internal/services"
)

// GET /admin/subscribers?status=&page= — status is all|active|inactive.
func (app *App) AdminSubscribers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("status")
		if filter != "active" && filter != "inactive" {
			filter = ""
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		subs, total, err := services.ListSubscribers(app.DB, filter, adminPageSize, (page-1)*adminPageSize)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		app.render(w, "admin/subscribers.tmpl", map[string]any{
			"Title":       "Admin • Subscribers",
			"Subscribers": subs,
			"Total":       total,
			"Page":        page,
			"Pages":       int((total + adminPageSize - 1) / adminPageSize),
			"Status":      filter,
			"Flash":       MakeFlash(r, "", ""),
		})
	}
}
