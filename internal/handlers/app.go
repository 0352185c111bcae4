package handlers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"gorm.io/gorm"
)

// App bundles the dependencies the page handlers need. Everything is
// injected by the router; the package keeps no globals.
type App struct {
	DB       *gorm.DB
	Sessions *SessionStore
	Tmpl     *template.Template

	AdminUsername     string
	AdminPasswordHash string // bcrypt
}

// render clones the base template set, parses the requested page on top of
// it and executes it. page is the template's defined name relative to
// templates/pages, e.g. "admin/tickets.tmpl".
func (app *App) render(w http.ResponseWriter, page string, data map[string]any) {
	view, err := app.Tmpl.Clone()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if _, err := view.ParseFiles(filepath.Join("templates", "pages", filepath.FromSlash(page))); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.ExecuteTemplate(w, page, data); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}
