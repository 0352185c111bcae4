package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"github.com/opticode/backend/internal/api"
	"github.com/opticode/backend/internal/config"
	"github.com/opticode/backend/internal/handlers"
)

// Router assembles the public JSON API and the admin dashboard. All state
// is injected through cfg and conn; nothing here is package-global.
func Router(cfg *config.Config, conn *gorm.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	app := &handlers.App{
		DB:                conn,
		Sessions:          handlers.NewSessionStore(),
		Tmpl:              mustParseTemplates("templates"),
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
	}

	// Public pages
	r.Get("/", app.Home())
	r.Get("/status", app.StatusPortal())

	// Public JSON API. CORS-enabled: the marketing site posting these forms
	// lives on a different origin.
	r.Route("/api", func(ar chi.Router) {
		ar.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
		ar.Mount("/", api.New(conn).Routes())
	})

	// Admin: login endpoints are public, everything else sits behind the
	// session gate.
	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/login", app.AdminLoginForm())
		ar.Post("/login", app.AdminLoginSubmit)
		ar.Post("/logout", app.AdminLogout)

		ar.Group(func(ag chi.Router) {
			ag.Use(app.RequireAdmin)

			ag.Get("/", app.AdminDashboard())

			ag.Get("/tickets", app.AdminTickets())
			ag.Get("/tickets/{code}", app.AdminTicketDetail())
			ag.Post("/tickets/{code}/reply", app.AdminTicketReply)
			ag.Post("/tickets/{code}/status", app.AdminTicketStatus)

			ag.Get("/leads", app.AdminLeads())
			ag.Get("/subscribers", app.AdminSubscribers())
		})
	})

	return r
}

func mustParseTemplates(baseDir string) *template.Template {
	funcs := template.FuncMap{
		"add":         func(a, b int) int { return a + b },
		"sub":         func(a, b int) int { return a - b },
		"year":        func() string { return time.Now().Format("2006") },
		"fmtDate":     func(t time.Time) string { return t.Format("02 Jan 2006") },
		"fmtDateTime": func(t time.Time) string { return t.Format("Mon, 02 Jan 2006 15:04") },
	}

	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "layouts", "*.tmpl")))
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "partials", "*.tmpl")))
	return p
}
