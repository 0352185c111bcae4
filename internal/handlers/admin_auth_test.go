package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newAuthApp(t *testing.T) *App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &App{
		Sessions:          NewSessionStore(),
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}
}

func TestRequireAdmin_RedirectsAnonymous(t *testing.T) {
	app := newAuthApp(t)
	protected := app.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/tickets?status=Pending", nil)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: want 303, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	want := "/admin/login?next=" + url.QueryEscape("/admin/tickets?status=Pending")
	if loc != want {
		t.Errorf("redirect: want %q, got %q", want, loc)
	}
}

func TestAdminLoginSubmit_WrongPassword(t *testing.T) {
	app := newAuthApp(t)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}, "next": {"/admin/leads"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.AdminLoginSubmit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: want 303, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/admin/login?error=bad_login") {
		t.Errorf("expected bad_login redirect, got %q", loc)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("failed login must not set a cookie")
	}
}

func TestAdminLoginSubmit_Success(t *testing.T) {
	app := newAuthApp(t)

	form := url.Values{"username": {"admin"}, "password": {"secret"}, "next": {"/admin/tickets"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.AdminLoginSubmit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: want 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/tickets" {
		t.Errorf("redirect: want /admin/tickets, got %q", loc)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != adminCookieName {
		t.Errorf("cookie name: want %q, got %q", adminCookieName, c.Name)
	}
	if !c.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	// The cookie now passes the auth gate.
	protected := app.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated request: want 200, got %d", rec.Code)
	}
}

// Absolute and protocol-relative destinations fall back to /admin.
func TestAdminLoginSubmit_NextSanitized(t *testing.T) {
	app := newAuthApp(t)
	for _, next := range []string{"https://evil.example", "//evil.example", "evil"} {
		form := url.Values{"username": {"admin"}, "password": {"secret"}, "next": {next}}
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		app.AdminLoginSubmit(rec, req)

		if loc := rec.Header().Get("Location"); loc != "/admin" {
			t.Errorf("next=%q: want /admin, got %q", next, loc)
		}
	}
}

func TestAdminLogout(t *testing.T) {
	app := newAuthApp(t)
	token, err := app.Sessions.Create("admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: adminCookieName, Value: token})
	rec := httptest.NewRecorder()
	app.AdminLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: want 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login?ok=logged_out" {
		t.Errorf("redirect: %q", loc)
	}
	if _, ok := app.Sessions.Get(token); ok {
		t.Error("session still live after logout")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "" || cookies[0].MaxAge != -1 {
		t.Error("expected an expired, emptied cookie")
	}
}
