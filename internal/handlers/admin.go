package handlers

import (
	"net/http"

	"github.com/opticode/backend/internal/models"
	"github.com/opticode/backend/internal/services"
)

// GET /admin — dashboard with aggregate counts and recent activity.
func (app *App) AdminDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := services.LoadDashboardStats(app.DB)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		app.render(w, "admin/dashboard.tmpl", map[string]any{
			"Title":    "Admin • Dashboard",
			"Stats":    stats,
			"Statuses": models.ValidStatuses,
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}
