package handlers

import "net/http"

// GET / — landing stub. The marketing site proper is static and served
// elsewhere; this page just links the forms and the status portal.
func (app *App) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.render(w, "home.tmpl", map[string]any{
			"Title": "OptiCode",
		})
	}
}

// GET /status — public ticket tracking portal. The page looks tickets up
// through the JSON API; ?ticket= prefills the lookup field (QR codes land
// here).
func (app *App) StatusPortal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.render(w, "status.tmpl", map[string]any{
			"Title":  "Track your ticket",
			"Ticket": r.URL.Query().Get("ticket"),
		})
	}
}
