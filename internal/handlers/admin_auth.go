package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const adminCookieName = "admin_session"

// RequireAdmin is middleware: blocks access unless the request carries a
// live session, preserving the original destination for post-login redirect.
func (app *App) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(adminCookieName)
		if err != nil || c.Value == "" {
			app.redirectToLogin(w, r)
			return
		}
		if _, ok := app.Sessions.Get(c.Value); !ok {
			app.redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (app *App) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
}

// GET /admin/login
func (app *App) AdminLoginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Already logged in → straight to the dashboard.
		if c, err := r.Cookie(adminCookieName); err == nil {
			if _, ok := app.Sessions.Get(c.Value); ok {
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
		}
		app.render(w, "admin/login.tmpl", map[string]any{
			"Title": "Admin • Login",
			"Next":  r.URL.Query().Get("next"),
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// POST /admin/login
func (app *App) AdminLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if username != app.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(app.AdminPasswordHash), []byte(password)) != nil {
		http.Redirect(w, r, "/admin/login?error=bad_login&next="+url.QueryEscape(next), http.StatusSeeOther)
		return
	}

	token, err := app.Sessions.Create(username)
	if err != nil {
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})

	// Only honor same-site relative destinations.
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/admin"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// POST /admin/logout
func (app *App) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(adminCookieName); err == nil {
		app.Sessions.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/admin/login?ok=logged_out", http.StatusSeeOther)
}
